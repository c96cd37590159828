// Package filter evaluates typed filter predicates and a global search term
// against a record collection. Evaluation is pure: fixed inputs always
// produce the same ordered subsequence of the input, and no predicate ever
// performs I/O.
package filter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dealdesk/dealdesk-api/internal/models"
)

// Record exposes fields by their canonical column key. Unknown keys report
// ok=false.
type Record interface {
	Field(key string) (interface{}, bool)
}

// dateLayouts are tried in order when coercing filter or record values to a
// calendar date.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// Evaluate returns the ordered subsequence of records satisfying every
// active predicate and, when searchTerm is non-empty, matching it
// case-insensitively on at least one of the searchable keys. Relative order
// is preserved; the result is always a subset of the input.
//
// Predicate interpretation needs column metadata: a predicate whose key has
// no matching column definition is a no-op, so stale or renamed columns
// never break the view. Malformed filter values (a non-numeric currency
// threshold, an unparseable date) likewise degrade to "no constraint".
func Evaluate[R Record](records []R, predicates models.PredicateSet, searchTerm string, searchableKeys []string, columns []models.ColumnDefinition) []R {
	types := make(map[string]models.ColumnType, len(columns))
	for _, col := range columns {
		types[col.Key] = col.Type
	}

	result := make([]R, 0, len(records))
	for _, record := range records {
		if searchTerm != "" && !matchesSearch(record, searchTerm, searchableKeys) {
			continue
		}
		if !matchesPredicates(record, predicates, types) {
			continue
		}
		result = append(result, record)
	}
	return result
}

// UniqueValues returns the distinct non-empty values observed for key across
// records, in first-seen order. Select-type filters use this to build their
// option lists when a column carries no static options.
func UniqueValues[R Record](records []R, key string) []string {
	seen := make(map[string]struct{})
	values := []string{}
	for _, record := range records {
		raw, ok := record.Field(key)
		if !ok {
			continue
		}
		value := stringify(raw)
		if value == "" {
			continue
		}
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		values = append(values, value)
	}
	return values
}

func matchesSearch(record Record, term string, keys []string) bool {
	needle := strings.ToLower(term)
	for _, key := range keys {
		raw, ok := record.Field(key)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(stringify(raw)), needle) {
			return true
		}
	}
	return false
}

func matchesPredicates(record Record, predicates models.PredicateSet, types map[string]models.ColumnType) bool {
	for key, value := range predicates {
		if !predicates.Active(key) {
			continue
		}
		colType, known := types[key]
		if !known {
			continue
		}
		if !matchesPredicate(record, key, value, colType) {
			return false
		}
	}
	return true
}

func matchesPredicate(record Record, key, value string, colType models.ColumnType) bool {
	raw, ok := record.Field(key)
	if !ok {
		// Dangling predicate over a field the record does not carry.
		return true
	}

	switch colType {
	case models.ColumnTypeNumber, models.ColumnTypeCurrency:
		threshold, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return true
		}
		actual, ok := toFloat(raw)
		if !ok {
			return false
		}
		return actual >= threshold

	case models.ColumnTypeDate:
		floor, ok := parseDate(value)
		if !ok {
			return true
		}
		actual, ok := toDate(raw)
		if !ok {
			return false
		}
		return !actual.Before(floor)

	case models.ColumnTypeSingleSelect:
		return stringify(raw) == value

	case models.ColumnTypeMultiSelect:
		// Set-membership semantics: the filter value is a comma-separated
		// candidate set and the record matches when its value is a member.
		actual := stringify(raw)
		for _, candidate := range strings.Split(value, ",") {
			if strings.TrimSpace(candidate) == actual {
				return true
			}
		}
		return false

	default:
		return strings.Contains(strings.ToLower(stringify(raw)), strings.ToLower(value))
	}
}

func stringify(raw interface{}) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format("2006-01-02")
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func toFloat(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func toDate(raw interface{}) (time.Time, bool) {
	switch v := raw.(type) {
	case time.Time:
		return v, !v.IsZero()
	case string:
		return parseDate(v)
	default:
		return time.Time{}, false
	}
}

func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
