package models

// ColumnType determines both the filter widget a column offers and how its
// cells are formatted.
type ColumnType string

const (
	ColumnTypeText         ColumnType = "text"
	ColumnTypeNumber       ColumnType = "number"
	ColumnTypeDate         ColumnType = "date"
	ColumnTypeSingleSelect ColumnType = "singleSelect"
	ColumnTypeMultiSelect  ColumnType = "multiSelect"
	ColumnTypeCurrency     ColumnType = "currency"
)

// Valid reports whether the column type is supported.
func (t ColumnType) Valid() bool {
	switch t {
	case ColumnTypeText, ColumnTypeNumber, ColumnTypeDate,
		ColumnTypeSingleSelect, ColumnTypeMultiSelect, ColumnTypeCurrency:
		return true
	}
	return false
}

// ColumnDefinition describes one displayable/filterable field of a deal.
// Key is immutable once created and is the canonical accessor path into the
// record; Order values form a dense 0..n-1 permutation across the set.
type ColumnDefinition struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Key      string     `json:"key"`
	Type     ColumnType `json:"type"`
	Options  []string   `json:"options,omitempty"`
	Required bool       `json:"required"`
	Visible  bool       `json:"visible"`
	Order    int        `json:"order"`
}

// TableKey identifies which screen owns a column set.
type TableKey string

const (
	TableKeyDeals TableKey = "deals"
	TableKeyLists TableKey = "lists"
)

// Valid reports whether the table key names a known screen.
func (k TableKey) Valid() bool {
	return k == TableKeyDeals || k == TableKeyLists
}

// DefaultDealColumns returns the built-in column configuration used when no
// customized set has been persisted, or when the persisted set is unreadable.
func DefaultDealColumns() []ColumnDefinition {
	return []ColumnDefinition{
		{ID: "1", Name: "Deal Name", Key: "name", Type: ColumnTypeText, Required: true, Visible: true, Order: 0},
		{ID: "2", Name: "Company", Key: "company", Type: ColumnTypeText, Required: true, Visible: true, Order: 1},
		{ID: "3", Name: "Status", Key: "status", Type: ColumnTypeSingleSelect, Options: []string{"Pass", "Engage", "OnHold", "BusinessDD", "TermSheet", "Portfolio"}, Required: true, Visible: true, Order: 2},
		{ID: "4", Name: "Amount", Key: "amount", Type: ColumnTypeCurrency, Required: true, Visible: true, Order: 3},
		{ID: "5", Name: "Assigned To", Key: "assignedTo", Type: ColumnTypeText, Required: true, Visible: true, Order: 4},
		{ID: "6", Name: "Date Received", Key: "dateReceived", Type: ColumnTypeDate, Required: true, Visible: true, Order: 5},
		{ID: "7", Name: "Week Deals", Key: "weekDeals", Type: ColumnTypeSingleSelect, Options: []string{"Yes", "No"}, Visible: true, Order: 6},
		{ID: "8", Name: "Sector", Key: "sector", Type: ColumnTypeSingleSelect, Options: []string{"Technology", "Healthcare", "Finance", "Consumer", "Energy", "Real Estate", "Manufacturing", "Other"}, Visible: true, Order: 7},
	}
}
