package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dealdesk/dealdesk-api/internal/dto"
	"github.com/dealdesk/dealdesk-api/internal/models"
	appErrors "github.com/dealdesk/dealdesk-api/pkg/errors"
	"github.com/dealdesk/dealdesk-api/pkg/response"
)

type viewService interface {
	List(ctx context.Context) ([]models.SavedView, error)
	Save(ctx context.Context, req dto.SaveViewRequest) (*models.SavedView, error)
	Select(ctx context.Context, id string) (*dto.ViewSnapshot, error)
	Delete(ctx context.Context, id string) error
}

// ViewHandler wires saved filter views to HTTP endpoints.
type ViewHandler struct {
	service viewService
}

// NewViewHandler constructs the handler.
func NewViewHandler(service viewService) *ViewHandler {
	return &ViewHandler{service: service}
}

// List godoc
// @Summary List saved views
// @Tags Views
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /views [get]
func (h *ViewHandler) List(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	views, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, views, nil)
}

// Save godoc
// @Summary Save the current filter state as a named view
// @Tags Views
// @Accept json
// @Produce json
// @Param payload body dto.SaveViewRequest true "View payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /views [post]
func (h *ViewHandler) Save(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var req dto.SaveViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, err.Error()))
		return
	}
	view, err := h.service.Save(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, view)
}

// Select godoc
// @Summary Activate a view and return its filter snapshot
// @Tags Views
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /views/{id}/select [post]
func (h *ViewHandler) Select(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	snapshot, err := h.service.Select(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, snapshot, nil)
}

// Delete godoc
// @Summary Delete a saved view
// @Tags Views
// @Param id path string true "View ID"
// @Success 204
// @Router /views/{id} [delete]
func (h *ViewHandler) Delete(c *gin.Context) {
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
