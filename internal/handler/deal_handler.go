package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dealdesk/dealdesk-api/internal/dto"
	"github.com/dealdesk/dealdesk-api/internal/models"
	appErrors "github.com/dealdesk/dealdesk-api/pkg/errors"
	"github.com/dealdesk/dealdesk-api/pkg/response"
)

type dealService interface {
	List(ctx context.Context, predicates models.PredicateSet, searchTerm string) ([]models.Deal, int, error)
	Get(ctx context.Context, id string) (*models.Deal, error)
	Create(ctx context.Context, req dto.CreateDealRequest) (*models.Deal, error)
	Update(ctx context.Context, id string, req dto.UpdateDealRequest) (*models.Deal, error)
	Delete(ctx context.Context, id string) error
	UniqueValues(ctx context.Context, key string) (*dto.UniqueValuesResponse, error)
	TableRows(ctx context.Context, table models.TableKey, predicates models.PredicateSet, searchTerm string) (*dto.TableRowsResponse, error)
}

// DealHandler wires deal service to HTTP endpoints.
type DealHandler struct {
	service dealService
}

// NewDealHandler constructs the handler.
func NewDealHandler(service dealService) *DealHandler {
	return &DealHandler{service: service}
}

// searchTermParam is the reserved query parameter carrying the global search
// term; every other parameter is read as a column filter.
const searchTermParam = "searchTerm"

func extractPredicates(c *gin.Context) (models.PredicateSet, string) {
	predicates := models.PredicateSet{}
	for key, values := range c.Request.URL.Query() {
		if key == searchTermParam || len(values) == 0 {
			continue
		}
		predicates[key] = values[0]
	}
	return predicates, strings.TrimSpace(c.Query(searchTermParam))
}

// List godoc
// @Summary List deals with filters applied
// @Tags Deals
// @Produce json
// @Param searchTerm query string false "Global search over name, company and assignee"
// @Success 200 {object} response.Envelope
// @Router /deals [get]
func (h *DealHandler) List(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	predicates, searchTerm := extractPredicates(c)
	deals, total, err := h.service.List(c.Request.Context(), predicates, searchTerm)
	if err != nil {
		response.Error(c, err)
		return
	}
	meta := map[string]interface{}{
		"filteredCount": len(deals),
		"totalCount":    total,
	}
	response.JSON(c, http.StatusOK, deals, nil, meta)
}

// Get godoc
// @Summary Fetch one deal
// @Tags Deals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /deals/{id} [get]
func (h *DealHandler) Get(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	deal, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, deal, nil)
}

// Create godoc
// @Summary Add a deal to the pipeline
// @Tags Deals
// @Accept json
// @Produce json
// @Param payload body dto.CreateDealRequest true "Deal payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /deals [post]
func (h *DealHandler) Create(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var req dto.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, err.Error()))
		return
	}
	deal, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, deal)
}

// Update godoc
// @Summary Edit a deal
// @Tags Deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Param payload body dto.UpdateDealRequest true "Deal payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /deals/{id} [put]
func (h *DealHandler) Update(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var req dto.UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, err.Error()))
		return
	}
	deal, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, deal, nil)
}

// Delete godoc
// @Summary Remove a deal
// @Tags Deals
// @Param id path string true "Deal ID"
// @Success 204
// @Router /deals/{id} [delete]
func (h *DealHandler) Delete(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// UniqueValues godoc
// @Summary Distinct values for a column key
// @Tags Deals
// @Produce json
// @Param key path string true "Column key"
// @Success 200 {object} response.Envelope
// @Router /deals/values/{key} [get]
func (h *DealHandler) UniqueValues(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "column key is required"))
		return
	}
	values, err := h.service.UniqueValues(c.Request.Context(), key)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, values, nil)
}
