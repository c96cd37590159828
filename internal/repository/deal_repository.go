package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/dealdesk/dealdesk-api/internal/models"
)

// DealRepository manages persistence for deal records.
type DealRepository struct {
	db *sqlx.DB
}

// NewDealRepository constructs a DealRepository.
func NewDealRepository(db *sqlx.DB) *DealRepository {
	return &DealRepository{db: db}
}

const dealColumns = `id, name, company, status, amount, stage, assigned_to, date_received, date_updated,
        description, contact_name, contact_email, notes, sector, week_deals`

// List returns the full deal collection, most recently received first.
// Filtering happens in memory against this collection, not in SQL.
func (r *DealRepository) List(ctx context.Context) ([]models.Deal, error) {
	query := fmt.Sprintf(`SELECT %s FROM deals ORDER BY date_received DESC, id ASC`, dealColumns)
	var deals []models.Deal
	if err := r.db.SelectContext(ctx, &deals, query); err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}
	return deals, nil
}

// FindByID fetches a single deal.
func (r *DealRepository) FindByID(ctx context.Context, id string) (*models.Deal, error) {
	query := fmt.Sprintf(`SELECT %s FROM deals WHERE id = $1`, dealColumns)
	var deal models.Deal
	if err := r.db.GetContext(ctx, &deal, query, id); err != nil {
		return nil, err
	}
	return &deal, nil
}

// Create inserts a new deal record.
func (r *DealRepository) Create(ctx context.Context, deal *models.Deal) error {
	if deal.ID == "" {
		deal.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if deal.DateReceived.IsZero() {
		deal.DateReceived = now
	}
	deal.DateUpdated = now
	const query = `INSERT INTO deals (id, name, company, status, amount, stage, assigned_to, date_received, date_updated,
        description, contact_name, contact_email, notes, sector, week_deals)
        VALUES (:id, :name, :company, :status, :amount, :stage, :assigned_to, :date_received, :date_updated,
        :description, :contact_name, :contact_email, :notes, :sector, :week_deals)`
	if _, err := r.db.NamedExecContext(ctx, query, deal); err != nil {
		return fmt.Errorf("create deal: %w", err)
	}
	return nil
}

// Update modifies an existing deal. The updated timestamp is always
// refreshed here so clients cannot submit a stale one.
func (r *DealRepository) Update(ctx context.Context, deal *models.Deal) error {
	deal.DateUpdated = time.Now().UTC()
	const query = `UPDATE deals SET name = :name, company = :company, status = :status, amount = :amount,
        stage = :stage, assigned_to = :assigned_to, date_updated = :date_updated, description = :description,
        contact_name = :contact_name, contact_email = :contact_email, notes = :notes,
        sector = :sector, week_deals = :week_deals
        WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, deal)
	if err != nil {
		return fmt.Errorf("update deal: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("update deal %s: no rows affected", deal.ID)
	}
	return nil
}

// Delete removes a deal. Deleting an unknown id affects zero rows and is not
// an error.
func (r *DealRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM deals WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete deal: %w", err)
	}
	return nil
}
