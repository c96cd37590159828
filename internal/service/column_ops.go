package service

import (
	"sort"

	"github.com/dealdesk/dealdesk-api/internal/models"
)

// Pure transition functions over column sets. Every mutation returns a new
// slice whose Order values are a dense 0..n-1 permutation; callers persist
// the result wholesale.

// normalizeColumnOrders sorts by Order (stable, so ties keep their relative
// position) and reassigns dense order values.
func normalizeColumnOrders(columns []models.ColumnDefinition) []models.ColumnDefinition {
	result := make([]models.ColumnDefinition, len(columns))
	copy(result, columns)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Order < result[j].Order
	})
	for i := range result {
		result[i].Order = i
	}
	return result
}

func appendColumn(columns []models.ColumnDefinition, column models.ColumnDefinition) []models.ColumnDefinition {
	column.Order = len(columns)
	result := make([]models.ColumnDefinition, 0, len(columns)+1)
	result = append(result, columns...)
	return append(result, column)
}

// removeColumn drops the column with the given id and compacts the remaining
// order values. Reports whether anything was removed.
func removeColumn(columns []models.ColumnDefinition, id string) ([]models.ColumnDefinition, bool) {
	result := make([]models.ColumnDefinition, 0, len(columns))
	found := false
	for _, col := range columns {
		if col.ID == id {
			found = true
			continue
		}
		result = append(result, col)
	}
	if !found {
		return columns, false
	}
	return normalizeColumnOrders(result), true
}

// moveColumn swaps the column's order with its neighbour in the given
// direction. Boundary moves and unknown ids leave the set unchanged.
func moveColumn(columns []models.ColumnDefinition, id string, direction string) ([]models.ColumnDefinition, bool) {
	ordered := normalizeColumnOrders(columns)
	index := -1
	for i, col := range ordered {
		if col.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return columns, false
	}

	neighbour := index - 1
	if direction == "down" {
		neighbour = index + 1
	}
	if neighbour < 0 || neighbour >= len(ordered) {
		return columns, false
	}

	ordered[index].Order, ordered[neighbour].Order = ordered[neighbour].Order, ordered[index].Order
	return normalizeColumnOrders(ordered), true
}

func findColumn(columns []models.ColumnDefinition, id string) (models.ColumnDefinition, int) {
	for i, col := range columns {
		if col.ID == id {
			return col, i
		}
	}
	return models.ColumnDefinition{}, -1
}

func hasColumnKey(columns []models.ColumnDefinition, key string) bool {
	for _, col := range columns {
		if col.Key == key {
			return true
		}
	}
	return false
}
