package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/dealdesk/dealdesk-api/internal/models"
)

// ColumnRepository persists column configurations as opaque JSON arrays, one
// row per table key, overwritten wholesale on every structural change.
type ColumnRepository struct {
	db *sqlx.DB
}

// NewColumnRepository constructs the repository.
func NewColumnRepository(db *sqlx.DB) *ColumnRepository {
	return &ColumnRepository{db: db}
}

// Get returns the raw stored column JSON for a table. Callers own decoding
// so a corrupt blob can be discarded in favour of defaults. Returns
// sql.ErrNoRows when nothing has been stored yet.
func (r *ColumnRepository) Get(ctx context.Context, table models.TableKey) (json.RawMessage, error) {
	const query = `SELECT columns FROM table_columns WHERE table_key = $1`
	var raw []byte
	if err := r.db.GetContext(ctx, &raw, query, string(table)); err != nil {
		return nil, err
	}
	return raw, nil
}

// Put overwrites the stored column set for a table.
func (r *ColumnRepository) Put(ctx context.Context, table models.TableKey, columns []models.ColumnDefinition) error {
	payload, err := json.Marshal(columns)
	if err != nil {
		return fmt.Errorf("marshal columns for %s: %w", table, err)
	}
	const query = `INSERT INTO table_columns (table_key, columns, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (table_key)
DO UPDATE SET columns = EXCLUDED.columns, updated_at = EXCLUDED.updated_at`
	if _, err := r.db.ExecContext(ctx, query, string(table), payload, time.Now().UTC()); err != nil {
		return fmt.Errorf("store columns for %s: %w", table, err)
	}
	return nil
}
