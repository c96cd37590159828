package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealdesk/dealdesk-api/internal/dto"
	"github.com/dealdesk/dealdesk-api/internal/models"
	appErrors "github.com/dealdesk/dealdesk-api/pkg/errors"
)

type responseEnvelope struct {
	Data  json.RawMessage        `json:"data"`
	Error map[string]interface{} `json:"error"`
	Meta  map[string]interface{} `json:"meta"`
}

type fakeDealSrv struct {
	deals          []models.Deal
	total          int
	listErr        error
	lastPredicates models.PredicateSet
	lastSearch     string
	deal           *models.Deal
	dealErr        error
	values         *dto.UniqueValuesResponse
	rows           *dto.TableRowsResponse
	deletedID      string
}

func (f *fakeDealSrv) List(_ context.Context, predicates models.PredicateSet, searchTerm string) ([]models.Deal, int, error) {
	f.lastPredicates = predicates
	f.lastSearch = searchTerm
	return f.deals, f.total, f.listErr
}

func (f *fakeDealSrv) Get(context.Context, string) (*models.Deal, error) {
	return f.deal, f.dealErr
}

func (f *fakeDealSrv) Create(_ context.Context, req dto.CreateDealRequest) (*models.Deal, error) {
	if f.dealErr != nil {
		return nil, f.dealErr
	}
	return &models.Deal{ID: "new", Name: req.Name}, nil
}

func (f *fakeDealSrv) Update(_ context.Context, id string, req dto.UpdateDealRequest) (*models.Deal, error) {
	if f.dealErr != nil {
		return nil, f.dealErr
	}
	return &models.Deal{ID: id, Name: req.Name}, nil
}

func (f *fakeDealSrv) Delete(_ context.Context, id string) error {
	f.deletedID = id
	return nil
}

func (f *fakeDealSrv) UniqueValues(context.Context, string) (*dto.UniqueValuesResponse, error) {
	return f.values, nil
}

func (f *fakeDealSrv) TableRows(context.Context, models.TableKey, models.PredicateSet, string) (*dto.TableRowsResponse, error) {
	return f.rows, nil
}

func TestDealHandlerListExtractsFiltersFromQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeDealSrv{deals: []models.Deal{{ID: "1"}}, total: 3}
	handler := NewDealHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/deals?status=Engage&searchTerm=tech", nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.PredicateSet{"status": "Engage"}, srv.lastPredicates)
	assert.Equal(t, "tech", srv.lastSearch)

	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, float64(1), envelope.Meta["filteredCount"])
	assert.Equal(t, float64(3), envelope.Meta["totalCount"])
}

func TestDealHandlerGetNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDealHandler(&fakeDealSrv{dealErr: appErrors.ErrNotFound})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/deals/ghost", nil)
	c.Params = gin.Params{{Key: "id", Value: "ghost"}}

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDealHandlerCreateValidatesPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDealHandler(&fakeDealSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/deals", strings.NewReader(`{"name":"Only name"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDealHandlerCreateSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDealHandler(&fakeDealSrv{})

	body := `{"name":"New Deal","company":"Acme","status":"Engage"}`
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/deals", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestDealHandlerDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeDealSrv{}
	handler := NewDealHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodDelete, "/deals/1", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	handler.Delete(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "1", srv.deletedID)
}

func TestDealHandlerUniqueValuesRequiresKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDealHandler(&fakeDealSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/deals/values/%20", nil)
	c.Params = gin.Params{{Key: "key", Value: " "}}

	handler.UniqueValues(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDealHandlerUniqueValuesSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDealHandler(&fakeDealSrv{
		values: &dto.UniqueValuesResponse{Key: "sector", Values: []string{"Technology"}},
	})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/deals/values/sector", nil)
	c.Params = gin.Params{{Key: "key", Value: "sector"}}

	handler.UniqueValues(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	var values dto.UniqueValuesResponse
	require.NoError(t, json.Unmarshal(envelope.Data, &values))
	assert.Equal(t, []string{"Technology"}, values.Values)
}
