package models

import "time"

// DealStatus enumerates the pipeline stages a deal can be in.
type DealStatus string

const (
	DealStatusPass       DealStatus = "Pass"
	DealStatusEngage     DealStatus = "Engage"
	DealStatusOnHold     DealStatus = "OnHold"
	DealStatusBusinessDD DealStatus = "BusinessDD"
	DealStatusTermSheet  DealStatus = "TermSheet"
	DealStatusPortfolio  DealStatus = "Portfolio"
)

// AllDealStatuses lists statuses in pipeline order.
var AllDealStatuses = []DealStatus{
	DealStatusPass,
	DealStatusEngage,
	DealStatusOnHold,
	DealStatusBusinessDD,
	DealStatusTermSheet,
	DealStatusPortfolio,
}

var dealStatusColors = map[DealStatus]string{
	DealStatusPass:       "#8A898C",
	DealStatusEngage:     "#33C3F0",
	DealStatusOnHold:     "#403E43",
	DealStatusBusinessDD: "#1EAEDB",
	DealStatusTermSheet:  "#0FA0CE",
	DealStatusPortfolio:  "#222222",
}

// DealStatusNeutralColor is used for statuses outside the known set.
const DealStatusNeutralColor = "#F1F0FB"

// Valid reports whether the status is one of the known pipeline stages.
func (s DealStatus) Valid() bool {
	_, ok := dealStatusColors[s]
	return ok
}

// Color returns the display color assigned to the status, or the neutral
// default for unknown values.
func (s DealStatus) Color() string {
	if color, ok := dealStatusColors[s]; ok {
		return color
	}
	return DealStatusNeutralColor
}

// Deal is the business record listed, filtered and displayed by the tracker.
type Deal struct {
	ID           string     `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Company      string     `db:"company" json:"company"`
	Status       DealStatus `db:"status" json:"status"`
	Amount       float64    `db:"amount" json:"amount"`
	Stage        string     `db:"stage" json:"stage"`
	AssignedTo   string     `db:"assigned_to" json:"assignedTo"`
	DateReceived time.Time  `db:"date_received" json:"dateReceived"`
	DateUpdated  time.Time  `db:"date_updated" json:"dateUpdated"`
	Description  string     `db:"description" json:"description"`
	ContactName  string     `db:"contact_name" json:"contactName"`
	ContactEmail string     `db:"contact_email" json:"contactEmail"`
	Notes        string     `db:"notes" json:"notes"`
	Sector       string     `db:"sector" json:"sector"`
	WeekDeals    string     `db:"week_deals" json:"weekDeals"`
}

// SearchableDealKeys is the fixed field subset the global search term is
// matched against, independent of column configuration.
var SearchableDealKeys = []string{"name", "company", "assignedTo"}

// Field resolves a column key to the deal's value for that field. The key is
// the canonical accessor path; unknown keys report ok=false so stale column
// configurations degrade gracefully instead of breaking the view.
func (d Deal) Field(key string) (interface{}, bool) {
	switch key {
	case "id":
		return d.ID, true
	case "name":
		return d.Name, true
	case "company":
		return d.Company, true
	case "status":
		return string(d.Status), true
	case "amount":
		return d.Amount, true
	case "stage":
		return d.Stage, true
	case "assignedTo":
		return d.AssignedTo, true
	case "dateReceived":
		return d.DateReceived, true
	case "dateUpdated":
		return d.DateUpdated, true
	case "description":
		return d.Description, true
	case "contactName":
		return d.ContactName, true
	case "contactEmail":
		return d.ContactEmail, true
	case "notes":
		return d.Notes, true
	case "sector":
		return d.Sector, true
	case "weekDeals":
		return d.WeekDeals, true
	default:
		return nil, false
	}
}

// StatusCount aggregates how many deals sit in a given status.
type StatusCount struct {
	Status DealStatus `json:"status"`
	Count  int        `json:"count"`
	Color  string     `json:"color"`
}
