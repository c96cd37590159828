package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealdesk/dealdesk-api/internal/models"
)

func newColumnMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestColumnRepositoryGetReturnsRawJSON(t *testing.T) {
	db, mock, cleanup := newColumnMock(t)
	defer cleanup()
	repo := NewColumnRepository(db)

	stored := `[{"id":"1","name":"Deal Name","key":"name","type":"text","required":true,"visible":true,"order":0}]`
	mock.ExpectQuery("SELECT columns FROM table_columns WHERE table_key = \\$1").
		WithArgs("deals").
		WillReturnRows(sqlmock.NewRows([]string{"columns"}).AddRow([]byte(stored)))

	raw, err := repo.Get(context.Background(), models.TableKeyDeals)
	require.NoError(t, err)

	var columns []models.ColumnDefinition
	require.NoError(t, json.Unmarshal(raw, &columns))
	require.Len(t, columns, 1)
	assert.Equal(t, "name", columns[0].Key)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestColumnRepositoryGetMissingRowPassesThrough(t *testing.T) {
	db, mock, cleanup := newColumnMock(t)
	defer cleanup()
	repo := NewColumnRepository(db)

	mock.ExpectQuery("SELECT columns FROM table_columns WHERE table_key = \\$1").
		WithArgs("deals").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), models.TableKeyDeals)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestColumnRepositoryPutUpserts(t *testing.T) {
	db, mock, cleanup := newColumnMock(t)
	defer cleanup()
	repo := NewColumnRepository(db)

	mock.ExpectExec("INSERT INTO table_columns").
		WithArgs("deals", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Put(context.Background(), models.TableKeyDeals, models.DefaultDealColumns())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
