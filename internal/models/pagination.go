package models

// Pagination contains pagination metadata returned in list responses. The
// tracker displays a fixed page size; the metadata is informational only.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
