package dto

// CreateDealRequest is the payload for adding a deal to the pipeline.
type CreateDealRequest struct {
	Name         string  `json:"name" binding:"required"`
	Company      string  `json:"company" binding:"required"`
	Status       string  `json:"status" binding:"required"`
	Amount       float64 `json:"amount"`
	Stage        string  `json:"stage"`
	AssignedTo   string  `json:"assignedTo"`
	Description  string  `json:"description"`
	ContactName  string  `json:"contactName"`
	ContactEmail string  `json:"contactEmail" binding:"omitempty,email"`
	Notes        string  `json:"notes"`
	Sector       string  `json:"sector"`
	WeekDeals    string  `json:"weekDeals"`
}

// UpdateDealRequest is the payload for editing a deal. The updated timestamp
// is always refreshed server-side, never taken from the client.
type UpdateDealRequest struct {
	Name         string  `json:"name" binding:"required"`
	Company      string  `json:"company" binding:"required"`
	Status       string  `json:"status" binding:"required"`
	Amount       float64 `json:"amount"`
	Stage        string  `json:"stage"`
	AssignedTo   string  `json:"assignedTo"`
	Description  string  `json:"description"`
	ContactName  string  `json:"contactName"`
	ContactEmail string  `json:"contactEmail" binding:"omitempty,email"`
	Notes        string  `json:"notes"`
	Sector       string  `json:"sector"`
	WeekDeals    string  `json:"weekDeals"`
}

// UniqueValuesResponse lists the distinct values observed for a column key.
type UniqueValuesResponse struct {
	Key    string   `json:"key"`
	Values []string `json:"values"`
}
