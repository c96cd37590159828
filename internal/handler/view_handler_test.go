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

type fakeViewSrv struct {
	views     []models.SavedView
	saved     *models.SavedView
	snapshot  *dto.ViewSnapshot
	err       error
	deletedID string
	lastSave  dto.SaveViewRequest
}

func (f *fakeViewSrv) List(context.Context) ([]models.SavedView, error) {
	return f.views, f.err
}

func (f *fakeViewSrv) Save(_ context.Context, req dto.SaveViewRequest) (*models.SavedView, error) {
	f.lastSave = req
	return f.saved, f.err
}

func (f *fakeViewSrv) Select(context.Context, string) (*dto.ViewSnapshot, error) {
	return f.snapshot, f.err
}

func (f *fakeViewSrv) Delete(_ context.Context, id string) error {
	f.deletedID = id
	return f.err
}

func TestViewHandlerSaveValidatesPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewViewHandler(&fakeViewSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/views", strings.NewReader(`{"filters":{}}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Save(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestViewHandlerSavePassesIncludeMask(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeViewSrv{saved: &models.SavedView{ID: "v1", Name: "Tech deals"}}
	handler := NewViewHandler(srv)

	body := `{"name":"Tech deals","filters":{"status":"Engage","sector":"Technology"},"searchTerm":"tech","include":{"status":true}}`
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/views", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Save(c)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, map[string]bool{"status": true}, srv.lastSave.Include)
	assert.Equal(t, "tech", srv.lastSave.SearchTerm)
}

func TestViewHandlerSelectNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewViewHandler(&fakeViewSrv{err: appErrors.ErrNotFound})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/views/ghost/select", nil)
	c.Params = gin.Params{{Key: "id", Value: "ghost"}}

	handler.Select(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestViewHandlerSelectReturnsSnapshot(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewViewHandler(&fakeViewSrv{
		snapshot: &dto.ViewSnapshot{
			ID: "v1", Name: "Tech deals",
			Filters:    models.PredicateSet{"status": "Engage"},
			SearchTerm: "tech",
		},
	})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/views/v1/select", nil)
	c.Params = gin.Params{{Key: "id", Value: "v1"}}

	handler.Select(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	var snapshot dto.ViewSnapshot
	require.NoError(t, json.Unmarshal(envelope.Data, &snapshot))
	assert.Equal(t, "Engage", snapshot.Filters["status"])
}

func TestViewHandlerDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeViewSrv{}
	handler := NewViewHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodDelete, "/views/v1", nil)
	c.Params = gin.Params{{Key: "id", Value: "v1"}}

	handler.Delete(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "v1", srv.deletedID)
}
