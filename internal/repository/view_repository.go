package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/dealdesk/dealdesk-api/internal/models"
)

// ViewRepository persists saved filter views.
type ViewRepository struct {
	db *sqlx.DB
}

// NewViewRepository constructs a ViewRepository.
func NewViewRepository(db *sqlx.DB) *ViewRepository {
	return &ViewRepository{db: db}
}

type savedViewRow struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	Filters    []byte    `db:"filters"`
	SearchTerm string    `db:"search_term"`
	Active     bool      `db:"active"`
	CreatedAt  time.Time `db:"created_at"`
}

func (row savedViewRow) toModel() (models.SavedView, error) {
	view := models.SavedView{
		ID:         row.ID,
		Name:       row.Name,
		SearchTerm: row.SearchTerm,
		Active:     row.Active,
		CreatedAt:  row.CreatedAt,
	}
	if len(row.Filters) > 0 {
		if err := json.Unmarshal(row.Filters, &view.Filters); err != nil {
			return models.SavedView{}, fmt.Errorf("decode filters for view %s: %w", row.ID, err)
		}
	}
	if view.Filters == nil {
		view.Filters = models.PredicateSet{}
	}
	return view, nil
}

// List returns all saved views, most recently saved first.
func (r *ViewRepository) List(ctx context.Context) ([]models.SavedView, error) {
	const query = `SELECT id, name, filters, search_term, active, created_at
FROM saved_views ORDER BY created_at DESC, id ASC`
	var rows []savedViewRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list saved views: %w", err)
	}
	views := make([]models.SavedView, 0, len(rows))
	for _, row := range rows {
		view, err := row.toModel()
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// FindByID fetches one saved view.
func (r *ViewRepository) FindByID(ctx context.Context, id string) (*models.SavedView, error) {
	const query = `SELECT id, name, filters, search_term, active, created_at FROM saved_views WHERE id = $1`
	var row savedViewRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, err
	}
	view, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// Create inserts a saved view. New views are never active on creation.
func (r *ViewRepository) Create(ctx context.Context, view *models.SavedView) error {
	if view.ID == "" {
		view.ID = uuid.NewString()
	}
	if view.CreatedAt.IsZero() {
		view.CreatedAt = time.Now().UTC()
	}
	filters, err := json.Marshal(view.Filters)
	if err != nil {
		return fmt.Errorf("encode filters: %w", err)
	}
	const query = `INSERT INTO saved_views (id, name, filters, search_term, active, created_at)
VALUES ($1, $2, $3, $4, false, $5)`
	if _, err := r.db.ExecContext(ctx, query, view.ID, view.Name, filters, view.SearchTerm, view.CreatedAt); err != nil {
		return fmt.Errorf("create saved view: %w", err)
	}
	return nil
}

// Activate marks the view active and deactivates every other view inside a
// transaction, keeping "at most one active" a storage-level guarantee.
// Returns the number of rows the activation touched; zero means the id is
// unknown.
func (r *ViewRepository) Activate(ctx context.Context, id string) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin activate tx: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE saved_views SET active = false WHERE active = true AND id <> $1`, id); err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("deactivate views: %w", err)
	}
	result, err := tx.ExecContext(ctx, `UPDATE saved_views SET active = true WHERE id = $1`, id)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("activate view: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("activate view rows: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit activate tx: %w", err)
	}
	return affected, nil
}

// Delete removes a view. Deleting the active view leaves no view active.
func (r *ViewRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM saved_views WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete saved view: %w", err)
	}
	return nil
}
