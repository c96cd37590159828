package dto

import (
	"github.com/dealdesk/dealdesk-api/internal/models"
	"github.com/dealdesk/dealdesk-api/internal/render"
)

// TableRow is one deal rendered against the visible column set.
type TableRow struct {
	DealID string        `json:"dealId"`
	Cells  []render.Cell `json:"cells"`
}

// TableRowsResponse carries display-ready rows plus the column metadata they
// were rendered with.
type TableRowsResponse struct {
	Columns       []models.ColumnDefinition `json:"columns"`
	Rows          []TableRow                `json:"rows"`
	FilteredCount int                       `json:"filteredCount"`
	TotalCount    int                       `json:"totalCount"`
}
