package dto

import "github.com/dealdesk/dealdesk-api/internal/models"

// CreateColumnRequest adds a column to a table's configuration. The key is
// assigned once here and never changes afterwards.
type CreateColumnRequest struct {
	Name     string   `json:"name" binding:"required" validate:"required"`
	Key      string   `json:"key" binding:"required" validate:"required,column_key"`
	Type     string   `json:"type" binding:"required" validate:"required,column_type"`
	Options  []string `json:"options"`
	Required bool     `json:"required"`
	Visible  *bool    `json:"visible"`
}

// UpdateColumnRequest edits a column's mutable fields. Key is deliberately
// absent.
type UpdateColumnRequest struct {
	Name     string   `json:"name" binding:"required" validate:"required"`
	Type     string   `json:"type" binding:"required" validate:"required,column_type"`
	Options  []string `json:"options"`
	Required bool     `json:"required"`
	Visible  bool     `json:"visible"`
}

// MoveColumnRequest nudges a column one position up or down.
type MoveColumnRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

// ReplaceColumnsRequest overwrites a table's column set wholesale, the way
// the settings drawer saves its result.
type ReplaceColumnsRequest struct {
	Columns []models.ColumnDefinition `json:"columns" binding:"required"`
}
