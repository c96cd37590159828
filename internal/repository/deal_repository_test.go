package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealdesk/dealdesk-api/internal/models"
)

func newDealMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func dealRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "company", "status", "amount", "stage", "assigned_to",
		"date_received", "date_updated", "description", "contact_name",
		"contact_email", "notes", "sector", "week_deals",
	}).AddRow(
		"1", "Series A Investment", "Tech Innovators Inc.", "Engage", 500000.0,
		"Initial Meeting", "John Doe", time.Now(), time.Now(),
		"desc", "Mike Johnson", "mike@techinnovators.com", "notes", "Technology", "Yes",
	)
}

func TestDealRepositoryList(t *testing.T) {
	db, mock, cleanup := newDealMock(t)
	defer cleanup()
	repo := NewDealRepository(db)

	mock.ExpectQuery("FROM deals ORDER BY date_received DESC, id ASC").
		WillReturnRows(dealRows())

	deals, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, models.DealStatusEngage, deals[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepositoryFindByID(t *testing.T) {
	db, mock, cleanup := newDealMock(t)
	defer cleanup()
	repo := NewDealRepository(db)

	mock.ExpectQuery("FROM deals WHERE id = \\$1").
		WithArgs("1").
		WillReturnRows(dealRows())

	deal, err := repo.FindByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Tech Innovators Inc.", deal.Company)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepositoryCreateAssignsIDAndTimestamps(t *testing.T) {
	db, mock, cleanup := newDealMock(t)
	defer cleanup()
	repo := NewDealRepository(db)

	mock.ExpectExec("INSERT INTO deals").
		WillReturnResult(sqlmock.NewResult(0, 1))

	deal := &models.Deal{Name: "New Deal", Company: "Acme", Status: models.DealStatusEngage}
	require.NoError(t, repo.Create(context.Background(), deal))
	assert.NotEmpty(t, deal.ID)
	assert.False(t, deal.DateReceived.IsZero())
	assert.False(t, deal.DateUpdated.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepositoryUpdateRefreshesTimestamp(t *testing.T) {
	db, mock, cleanup := newDealMock(t)
	defer cleanup()
	repo := NewDealRepository(db)

	mock.ExpectExec("UPDATE deals SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	stale := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	deal := &models.Deal{ID: "1", Name: "Deal", Company: "Acme", Status: models.DealStatusEngage, DateUpdated: stale}
	require.NoError(t, repo.Update(context.Background(), deal))
	assert.True(t, deal.DateUpdated.After(stale))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepositoryUpdateUnknownIDFails(t *testing.T) {
	db, mock, cleanup := newDealMock(t)
	defer cleanup()
	repo := NewDealRepository(db)

	mock.ExpectExec("UPDATE deals SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	deal := &models.Deal{ID: "ghost", Name: "Deal", Company: "Acme", Status: models.DealStatusEngage}
	err := repo.Update(context.Background(), deal)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepositoryDeleteUnknownIDIsNotAnError(t *testing.T) {
	db, mock, cleanup := newDealMock(t)
	defer cleanup()
	repo := NewDealRepository(db)

	mock.ExpectExec("DELETE FROM deals WHERE id = \\$1").
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "ghost"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
