package dto

import "github.com/dealdesk/dealdesk-api/internal/models"

// IncludeSearchKey is the inclusion-mask entry governing the search term.
const IncludeSearchKey = "searchTerm"

// SaveViewRequest captures the current filter state as a named view. Include
// is the per-filter "include this filter?" mask: when nil every field is
// snapshotted; otherwise a filter key (or IncludeSearchKey) is kept only
// when its entry is true.
type SaveViewRequest struct {
	Name       string              `json:"name" binding:"required"`
	Filters    models.PredicateSet `json:"filters"`
	SearchTerm string              `json:"searchTerm"`
	Include    map[string]bool     `json:"include"`
}

// ViewSnapshot is returned on selection so the caller can re-seed its filter
// state.
type ViewSnapshot struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Filters    models.PredicateSet `json:"filters"`
	SearchTerm string              `json:"searchTerm"`
}
