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

type columnService interface {
	List(ctx context.Context, table models.TableKey) ([]models.ColumnDefinition, error)
	Add(ctx context.Context, table models.TableKey, req dto.CreateColumnRequest) ([]models.ColumnDefinition, error)
	Edit(ctx context.Context, table models.TableKey, id string, req dto.UpdateColumnRequest) ([]models.ColumnDefinition, error)
	Remove(ctx context.Context, table models.TableKey, id string) ([]models.ColumnDefinition, error)
	Move(ctx context.Context, table models.TableKey, id, direction string) ([]models.ColumnDefinition, error)
	ToggleVisibility(ctx context.Context, table models.TableKey, id string) ([]models.ColumnDefinition, error)
	Replace(ctx context.Context, table models.TableKey, columns []models.ColumnDefinition) ([]models.ColumnDefinition, error)
}

type tableRowsService interface {
	TableRows(ctx context.Context, table models.TableKey, predicates models.PredicateSet, searchTerm string) (*dto.TableRowsResponse, error)
}

// ColumnHandler wires column configuration to HTTP endpoints. Every mutation
// responds with the complete post-mutation column set so clients never need a
// follow-up read.
type ColumnHandler struct {
	columns columnService
	rows    tableRowsService
}

// NewColumnHandler constructs the handler.
func NewColumnHandler(columns columnService, rows tableRowsService) *ColumnHandler {
	return &ColumnHandler{columns: columns, rows: rows}
}

func tableKey(c *gin.Context) (models.TableKey, bool) {
	table := models.TableKey(c.Param("table"))
	if !table.Valid() {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown table key"))
		return "", false
	}
	return table, true
}

// List godoc
// @Summary Column configuration for a table
// @Tags Columns
// @Produce json
// @Param table path string true "Table key" Enums(deals, lists)
// @Success 200 {object} response.Envelope
// @Router /tables/{table}/columns [get]
func (h *ColumnHandler) List(c *gin.Context) {
	if h.columns == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	table, ok := tableKey(c)
	if !ok {
		return
	}
	columns, err := h.columns.List(c.Request.Context(), table)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, columns, nil)
}

// Create godoc
// @Summary Add a column
// @Tags Columns
// @Accept json
// @Produce json
// @Param table path string true "Table key" Enums(deals, lists)
// @Param payload body dto.CreateColumnRequest true "Column payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /tables/{table}/columns [post]
func (h *ColumnHandler) Create(c *gin.Context) {
	if h.columns == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	table, ok := tableKey(c)
	if !ok {
		return
	}
	var req dto.CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, err.Error()))
		return
	}
	columns, err := h.columns.Add(c.Request.Context(), table, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, columns)
}

// Update godoc
// @Summary Edit a column
// @Tags Columns
// @Accept json
// @Produce json
// @Param table path string true "Table key" Enums(deals, lists)
// @Param id path string true "Column ID"
// @Param payload body dto.UpdateColumnRequest true "Column payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /tables/{table}/columns/{id} [put]
func (h *ColumnHandler) Update(c *gin.Context) {
	if h.columns == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	table, ok := tableKey(c)
	if !ok {
		return
	}
	var req dto.UpdateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, err.Error()))
		return
	}
	columns, err := h.columns.Edit(c.Request.Context(), table, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, columns, nil)
}

// Delete godoc
// @Summary Remove a column
// @Tags Columns
// @Produce json
// @Param table path string true "Table key" Enums(deals, lists)
// @Param id path string true "Column ID"
// @Success 200 {object} response.Envelope
// @Router /tables/{table}/columns/{id} [delete]
func (h *ColumnHandler) Delete(c *gin.Context) {
	if h.columns == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	table, ok := tableKey(c)
	if !ok {
		return
	}
	columns, err := h.columns.Remove(c.Request.Context(), table, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, columns, nil)
}

// Move godoc
// @Summary Move a column up or down
// @Tags Columns
// @Accept json
// @Produce json
// @Param table path string true "Table key" Enums(deals, lists)
// @Param id path string true "Column ID"
// @Param payload body dto.MoveColumnRequest true "Move payload"
// @Success 200 {object} response.Envelope
// @Router /tables/{table}/columns/{id}/move [post]
func (h *ColumnHandler) Move(c *gin.Context) {
	if h.columns == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	table, ok := tableKey(c)
	if !ok {
		return
	}
	var req dto.MoveColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, err.Error()))
		return
	}
	columns, err := h.columns.Move(c.Request.Context(), table, c.Param("id"), req.Direction)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, columns, nil)
}

// ToggleVisibility godoc
// @Summary Toggle a column's visibility
// @Tags Columns
// @Produce json
// @Param table path string true "Table key" Enums(deals, lists)
// @Param id path string true "Column ID"
// @Success 200 {object} response.Envelope
// @Router /tables/{table}/columns/{id}/visibility [post]
func (h *ColumnHandler) ToggleVisibility(c *gin.Context) {
	if h.columns == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	table, ok := tableKey(c)
	if !ok {
		return
	}
	columns, err := h.columns.ToggleVisibility(c.Request.Context(), table, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, columns, nil)
}

// Replace godoc
// @Summary Replace a table's column set wholesale
// @Tags Columns
// @Accept json
// @Produce json
// @Param table path string true "Table key" Enums(deals, lists)
// @Param payload body dto.ReplaceColumnsRequest true "Column set"
// @Success 200 {object} response.Envelope
// @Router /tables/{table}/columns [put]
func (h *ColumnHandler) Replace(c *gin.Context) {
	if h.columns == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	table, ok := tableKey(c)
	if !ok {
		return
	}
	var req dto.ReplaceColumnsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, err.Error()))
		return
	}
	columns, err := h.columns.Replace(c.Request.Context(), table, req.Columns)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, columns, nil)
}

// Rows godoc
// @Summary Display-ready table rows
// @Tags Columns
// @Produce json
// @Param table path string true "Table key" Enums(deals, lists)
// @Param searchTerm query string false "Global search over name, company and assignee"
// @Success 200 {object} response.Envelope
// @Router /tables/{table}/rows [get]
func (h *ColumnHandler) Rows(c *gin.Context) {
	if h.rows == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	table, ok := tableKey(c)
	if !ok {
		return
	}
	predicates, searchTerm := extractPredicates(c)
	rows, err := h.rows.TableRows(c.Request.Context(), table, predicates, searchTerm)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows, nil)
}
