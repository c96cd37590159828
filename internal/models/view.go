package models

import "time"

// PredicateSet maps a column key to its active filter value. Presence of a
// key means the filter is active; an empty string or "all" value is the
// sentinel for "no constraint".
type PredicateSet map[string]string

// FilterSentinel is the reserved select value meaning "no constraint".
const FilterSentinel = "all"

// Active reports whether the value stored under key constrains anything.
func (p PredicateSet) Active(key string) bool {
	value, ok := p[key]
	return ok && value != "" && value != FilterSentinel
}

// Clone returns an independent copy of the predicate set.
func (p PredicateSet) Clone() PredicateSet {
	if p == nil {
		return nil
	}
	out := make(PredicateSet, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// SavedView is a named, persisted snapshot of a predicate set and search
// term. At most one view is active at a time.
type SavedView struct {
	ID         string       `db:"id" json:"id"`
	Name       string       `db:"name" json:"name"`
	Filters    PredicateSet `db:"-" json:"filters"`
	SearchTerm string       `db:"search_term" json:"searchTerm"`
	Active     bool         `db:"active" json:"active"`
	CreatedAt  time.Time    `db:"created_at" json:"createdAt"`
}
