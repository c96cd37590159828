package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealdesk/dealdesk-api/internal/models"
)

func threeColumns() []models.ColumnDefinition {
	return []models.ColumnDefinition{
		{ID: "a", Name: "A", Key: "a", Type: models.ColumnTypeText, Visible: true, Order: 0},
		{ID: "b", Name: "B", Key: "b", Type: models.ColumnTypeText, Visible: true, Order: 1},
		{ID: "c", Name: "C", Key: "c", Type: models.ColumnTypeText, Visible: true, Order: 2},
	}
}

func orderOf(columns []models.ColumnDefinition) []string {
	out := make([]string, len(columns))
	for _, col := range columns {
		out[col.Order] = col.ID
	}
	return out
}

func assertDenseOrders(t *testing.T, columns []models.ColumnDefinition) {
	t.Helper()
	seen := make(map[int]bool, len(columns))
	for _, col := range columns {
		require.GreaterOrEqual(t, col.Order, 0)
		require.Less(t, col.Order, len(columns))
		require.False(t, seen[col.Order], "duplicate order %d", col.Order)
		seen[col.Order] = true
	}
}

func TestNormalizeColumnOrdersCompactsGaps(t *testing.T) {
	columns := []models.ColumnDefinition{
		{ID: "x", Order: 7},
		{ID: "y", Order: 2},
		{ID: "z", Order: 5},
	}
	result := normalizeColumnOrders(columns)
	assert.Equal(t, []string{"y", "z", "x"}, orderOf(result))
	assertDenseOrders(t, result)
}

func TestAppendColumnTakesNextSlot(t *testing.T) {
	result := appendColumn(threeColumns(), models.ColumnDefinition{ID: "d", Key: "d"})
	require.Len(t, result, 4)
	assert.Equal(t, 3, result[3].Order)
	assertDenseOrders(t, result)
}

func TestRemoveColumnCompacts(t *testing.T) {
	result, removed := removeColumn(threeColumns(), "b")
	require.True(t, removed)
	require.Len(t, result, 2)
	assert.Equal(t, []string{"a", "c"}, orderOf(result))
	assertDenseOrders(t, result)
}

func TestRemoveColumnUnknownIDIsNoOp(t *testing.T) {
	columns := threeColumns()
	result, removed := removeColumn(columns, "ghost")
	assert.False(t, removed)
	assert.Equal(t, columns, result)
}

func TestMoveColumnSwapsNeighbours(t *testing.T) {
	result, moved := moveColumn(threeColumns(), "b", "up")
	require.True(t, moved)
	assert.Equal(t, []string{"b", "a", "c"}, orderOf(result))

	result, moved = moveColumn(threeColumns(), "b", "down")
	require.True(t, moved)
	assert.Equal(t, []string{"a", "c", "b"}, orderOf(result))
}

func TestMoveColumnBoundariesAreNoOps(t *testing.T) {
	columns := threeColumns()

	result, moved := moveColumn(columns, "a", "up")
	assert.False(t, moved)
	assert.Equal(t, columns, result)

	result, moved = moveColumn(columns, "c", "down")
	assert.False(t, moved)
	assert.Equal(t, columns, result)
}

func TestMoveColumnUnknownIDIsNoOp(t *testing.T) {
	columns := threeColumns()
	result, moved := moveColumn(columns, "ghost", "up")
	assert.False(t, moved)
	assert.Equal(t, columns, result)
}

func TestMoveColumnPreservesSetMembership(t *testing.T) {
	result, _ := moveColumn(threeColumns(), "c", "up")
	keys := map[string]bool{}
	for _, col := range result {
		keys[col.ID] = true
	}
	assert.Equal(t, map[string]bool{"a": true, "b": true, "c": true}, keys)
}
