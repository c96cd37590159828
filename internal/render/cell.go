// Package render maps (deal, column) pairs to display-ready cell values.
package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/dealdesk/dealdesk-api/internal/models"
)

// Badge is a tagged, colored rendering of an enumerated value.
type Badge struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Cell is the display-ready value for one table cell.
type Cell struct {
	Text  string `json:"text"`
	Badge *Badge `json:"badge,omitempty"`
}

const (
	yesBadgeColor = "#16A34A"
	noBadgeColor  = "#8A898C"
)

var currencyPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCell renders the deal's field for the given column. It never mutates
// the deal; values that cannot be interpreted for the column type pass
// through unchanged.
func FormatCell(deal models.Deal, column models.ColumnDefinition) Cell {
	raw, ok := deal.Field(column.Key)
	if !ok {
		return Cell{}
	}

	switch column.Type {
	case models.ColumnTypeCurrency:
		if amount, ok := asFloat(raw); ok {
			return Cell{Text: currencyPrinter.Sprintf("$%v", number.Decimal(amount, number.MaxFractionDigits(0)))}
		}
		return Cell{Text: asString(raw)}

	case models.ColumnTypeDate:
		if date, ok := asDate(raw); ok {
			return Cell{Text: date.Format("Jan 2, 2006")}
		}
		return Cell{Text: asString(raw)}

	case models.ColumnTypeSingleSelect:
		value := asString(raw)
		if column.Key == "status" {
			return Cell{Text: value, Badge: &Badge{Label: value, Color: models.DealStatus(value).Color()}}
		}
		switch value {
		case "Yes":
			return Cell{Text: value, Badge: &Badge{Label: value, Color: yesBadgeColor}}
		case "No":
			return Cell{Text: value, Badge: &Badge{Label: value, Color: noBadgeColor}}
		}
		return Cell{Text: value}

	default:
		return Cell{Text: asString(raw)}
	}
}

func asString(raw interface{}) string {
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

func asFloat(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func asDate(raw interface{}) (time.Time, bool) {
	switch v := raw.(type) {
	case time.Time:
		return v, !v.IsZero()
	case string:
		for _, layout := range []string{"2006-01-02", time.RFC3339} {
			if parsed, err := time.Parse(layout, strings.TrimSpace(v)); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}
