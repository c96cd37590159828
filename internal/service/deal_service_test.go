package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dealdesk/dealdesk-api/internal/dto"
	"github.com/dealdesk/dealdesk-api/internal/models"
	appErrors "github.com/dealdesk/dealdesk-api/pkg/errors"
)

type fakeDealStore struct {
	deals     []models.Deal
	listErr   error
	created   *models.Deal
	updated   *models.Deal
	deletedID string
}

func (f *fakeDealStore) List(context.Context) ([]models.Deal, error) {
	return f.deals, f.listErr
}

func (f *fakeDealStore) FindByID(_ context.Context, id string) (*models.Deal, error) {
	for i := range f.deals {
		if f.deals[i].ID == id {
			deal := f.deals[i]
			return &deal, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeDealStore) Create(_ context.Context, deal *models.Deal) error {
	deal.ID = "new-id"
	deal.DateReceived = time.Now().UTC()
	deal.DateUpdated = deal.DateReceived
	f.created = deal
	return nil
}

func (f *fakeDealStore) Update(_ context.Context, deal *models.Deal) error {
	deal.DateUpdated = time.Now().UTC()
	f.updated = deal
	return nil
}

func (f *fakeDealStore) Delete(_ context.Context, id string) error {
	f.deletedID = id
	return nil
}

type fakeColumnProvider struct {
	columns []models.ColumnDefinition
}

func (f *fakeColumnProvider) List(context.Context, models.TableKey) ([]models.ColumnDefinition, error) {
	return f.columns, nil
}

func (f *fakeColumnProvider) ListVisible(context.Context, models.TableKey) ([]models.ColumnDefinition, error) {
	visible := make([]models.ColumnDefinition, 0, len(f.columns))
	for _, col := range f.columns {
		if col.Visible {
			visible = append(visible, col)
		}
	}
	return visible, nil
}

func pipelineDeals() []models.Deal {
	return []models.Deal{
		{ID: "1", Name: "Series A Investment", Company: "Tech Innovators Inc.", Status: models.DealStatusEngage, Amount: 500000, AssignedTo: "John Doe", Sector: "Technology"},
		{ID: "2", Name: "Seed Round", Company: "Green Energy Solutions", Status: models.DealStatusBusinessDD, Amount: 250000, AssignedTo: "Jane Smith", Sector: "Energy"},
		{ID: "3", Name: "Series B Expansion", Company: "HealthTech Global", Status: models.DealStatusTermSheet, Amount: 2000000, AssignedTo: "John Doe", Sector: "Healthcare"},
	}
}

func newDealService(store *fakeDealStore) *DealService {
	return NewDealService(store, &fakeColumnProvider{columns: models.DefaultDealColumns()}, nil, zap.NewNop())
}

func TestDealServiceListAppliesFilters(t *testing.T) {
	svc := newDealService(&fakeDealStore{deals: pipelineDeals()})
	deals, total, err := svc.List(context.Background(), models.PredicateSet{"status": "Engage"}, "")
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, deals, 1)
	assert.Equal(t, "1", deals[0].ID)
}

func TestDealServiceListFiltersOnHiddenColumn(t *testing.T) {
	columns := models.DefaultDealColumns()
	for i := range columns {
		if columns[i].Key == "sector" {
			columns[i].Visible = false
		}
	}
	svc := NewDealService(&fakeDealStore{deals: pipelineDeals()}, &fakeColumnProvider{columns: columns}, nil, zap.NewNop())

	deals, _, err := svc.List(context.Background(), models.PredicateSet{"sector": "Energy"}, "")
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, "2", deals[0].ID)
}

func TestDealServiceGetUnknownIsNotFound(t *testing.T) {
	svc := newDealService(&fakeDealStore{deals: pipelineDeals()})
	_, err := svc.Get(context.Background(), "ghost")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestDealServiceCreateValidatesStatus(t *testing.T) {
	store := &fakeDealStore{}
	svc := newDealService(store)
	_, err := svc.Create(context.Background(), dto.CreateDealRequest{
		Name: "X", Company: "Y", Status: "Archived",
	})
	require.Error(t, err)
	assert.Nil(t, store.created)
}

func TestDealServiceCreatePersists(t *testing.T) {
	store := &fakeDealStore{}
	svc := newDealService(store)
	deal, err := svc.Create(context.Background(), dto.CreateDealRequest{
		Name: "  New Deal ", Company: "Acme", Status: "Engage", Amount: 100,
	})
	require.NoError(t, err)
	require.NotNil(t, store.created)
	assert.Equal(t, "new-id", deal.ID)
	assert.Equal(t, "New Deal", deal.Name)
	assert.Equal(t, models.DealStatusEngage, deal.Status)
}

func TestDealServiceUpdateRefusesUnknownDeal(t *testing.T) {
	svc := newDealService(&fakeDealStore{deals: pipelineDeals()})
	_, err := svc.Update(context.Background(), "ghost", dto.UpdateDealRequest{
		Name: "X", Company: "Y", Status: "Engage",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestDealServiceUpdateReplacesFields(t *testing.T) {
	store := &fakeDealStore{deals: pipelineDeals()}
	svc := newDealService(store)
	deal, err := svc.Update(context.Background(), "2", dto.UpdateDealRequest{
		Name: "Seed Round II", Company: "Green Energy Solutions", Status: "TermSheet", Amount: 400000,
	})
	require.NoError(t, err)
	assert.Equal(t, "Seed Round II", deal.Name)
	assert.Equal(t, models.DealStatusTermSheet, deal.Status)
	require.NotNil(t, store.updated)
	assert.Equal(t, "2", store.updated.ID)
}

func TestDealServiceDelete(t *testing.T) {
	store := &fakeDealStore{deals: pipelineDeals()}
	svc := newDealService(store)
	require.NoError(t, svc.Delete(context.Background(), "3"))
	assert.Equal(t, "3", store.deletedID)
}

func TestDealServiceUniqueValues(t *testing.T) {
	svc := newDealService(&fakeDealStore{deals: pipelineDeals()})
	values, err := svc.UniqueValues(context.Background(), "assignedTo")
	require.NoError(t, err)
	assert.Equal(t, "assignedTo", values.Key)
	assert.Equal(t, []string{"John Doe", "Jane Smith"}, values.Values)
}

func TestDealServiceTableRowsRendersVisibleColumnsOnly(t *testing.T) {
	columns := models.DefaultDealColumns()
	for i := range columns {
		if columns[i].Key != "name" && columns[i].Key != "amount" {
			columns[i].Visible = false
		}
	}
	svc := NewDealService(&fakeDealStore{deals: pipelineDeals()}, &fakeColumnProvider{columns: columns}, nil, zap.NewNop())

	rows, err := svc.TableRows(context.Background(), models.TableKeyDeals, models.PredicateSet{"status": "Engage"}, "")
	require.NoError(t, err)
	assert.Equal(t, 1, rows.FilteredCount)
	assert.Equal(t, 3, rows.TotalCount)
	require.Len(t, rows.Columns, 2)
	require.Len(t, rows.Rows, 1)
	require.Len(t, rows.Rows[0].Cells, 2)
	assert.Equal(t, "1", rows.Rows[0].DealID)
	assert.Equal(t, "Series A Investment", rows.Rows[0].Cells[0].Text)
	assert.Equal(t, "$500,000", rows.Rows[0].Cells[1].Text)
}
