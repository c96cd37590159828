package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dealdesk/dealdesk-api/internal/dto"
	"github.com/dealdesk/dealdesk-api/internal/models"
	appErrors "github.com/dealdesk/dealdesk-api/pkg/errors"
)

var columnKeyPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

type columnStore interface {
	Get(ctx context.Context, table models.TableKey) (json.RawMessage, error)
	Put(ctx context.Context, table models.TableKey, columns []models.ColumnDefinition) error
}

// ColumnService owns table column configurations. Hidden columns stay in the
// set and remain valid filter targets; visibility only controls rendering.
type ColumnService struct {
	repo     columnStore
	validate *validator.Validate
	logger   *zap.Logger
}

// NewColumnService constructs a ColumnService.
func NewColumnService(repo columnStore, validate *validator.Validate, logger *zap.Logger) *ColumnService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	_ = validate.RegisterValidation("column_key", func(fl validator.FieldLevel) bool {
		return columnKeyPattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("column_type", func(fl validator.FieldLevel) bool {
		return models.ColumnType(fl.Field().String()).Valid()
	})
	return &ColumnService{repo: repo, validate: validate, logger: logger}
}

// List returns the full column set for a table, sorted by order. A missing
// or unreadable stored configuration falls back to the built-in defaults.
func (s *ColumnService) List(ctx context.Context, table models.TableKey) ([]models.ColumnDefinition, error) {
	if !table.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown table key")
	}
	raw, err := s.repo.Get(ctx, table)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DefaultDealColumns(), nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load columns")
	}

	var columns []models.ColumnDefinition
	if err := json.Unmarshal(raw, &columns); err != nil {
		// Corrupt persisted configuration: discard and fall back.
		s.logger.Warn("discarding malformed column configuration",
			zap.String("table", string(table)), zap.Error(err))
		return models.DefaultDealColumns(), nil
	}

	sort.SliceStable(columns, func(i, j int) bool { return columns[i].Order < columns[j].Order })
	return columns, nil
}

// ListVisible returns the rendered subset: visible columns ascending by order.
func (s *ColumnService) ListVisible(ctx context.Context, table models.TableKey) ([]models.ColumnDefinition, error) {
	columns, err := s.List(ctx, table)
	if err != nil {
		return nil, err
	}
	visible := make([]models.ColumnDefinition, 0, len(columns))
	for _, col := range columns {
		if col.Visible {
			visible = append(visible, col)
		}
	}
	return visible, nil
}

// Add validates and appends a new column, assigning a fresh id and the next
// order slot. Returns the complete new set.
func (s *ColumnService) Add(ctx context.Context, table models.TableKey, req dto.CreateColumnRequest) ([]models.ColumnDefinition, error) {
	columns, err := s.List(ctx, table)
	if err != nil {
		return nil, err
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid column payload")
	}
	if hasColumnKey(columns, req.Key) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "column key already in use")
	}
	colType := models.ColumnType(req.Type)

	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}
	column := models.ColumnDefinition{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Key:      req.Key,
		Type:     colType,
		Options:  selectOptions(colType, req.Options),
		Required: req.Required,
		Visible:  visible,
	}

	updated := appendColumn(columns, column)
	return s.persist(ctx, table, updated)
}

// Edit replaces a column's mutable fields in place. The key never changes.
func (s *ColumnService) Edit(ctx context.Context, table models.TableKey, id string, req dto.UpdateColumnRequest) ([]models.ColumnDefinition, error) {
	columns, err := s.List(ctx, table)
	if err != nil {
		return nil, err
	}
	column, index := findColumn(columns, id)
	if index < 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "column not found")
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid column payload")
	}
	colType := models.ColumnType(req.Type)

	column.Name = req.Name
	column.Type = colType
	column.Options = selectOptions(colType, req.Options)
	column.Required = req.Required
	column.Visible = req.Visible

	updated := make([]models.ColumnDefinition, len(columns))
	copy(updated, columns)
	updated[index] = column
	return s.persist(ctx, table, updated)
}

// Remove deletes a column and compacts the remaining order values. Removing
// an id that no longer exists is a defensive no-op.
func (s *ColumnService) Remove(ctx context.Context, table models.TableKey, id string) ([]models.ColumnDefinition, error) {
	columns, err := s.List(ctx, table)
	if err != nil {
		return nil, err
	}
	updated, removed := removeColumn(columns, id)
	if !removed {
		return columns, nil
	}
	return s.persist(ctx, table, updated)
}

// Move nudges a column one position up or down. Boundary moves and unknown
// ids leave the set untouched.
func (s *ColumnService) Move(ctx context.Context, table models.TableKey, id, direction string) ([]models.ColumnDefinition, error) {
	if direction != "up" && direction != "down" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "direction must be up or down")
	}
	columns, err := s.List(ctx, table)
	if err != nil {
		return nil, err
	}
	updated, moved := moveColumn(columns, id, direction)
	if !moved {
		return columns, nil
	}
	return s.persist(ctx, table, updated)
}

// ToggleVisibility flips a column's visible flag without touching order.
func (s *ColumnService) ToggleVisibility(ctx context.Context, table models.TableKey, id string) ([]models.ColumnDefinition, error) {
	columns, err := s.List(ctx, table)
	if err != nil {
		return nil, err
	}
	column, index := findColumn(columns, id)
	if index < 0 {
		return columns, nil
	}
	updated := make([]models.ColumnDefinition, len(columns))
	copy(updated, columns)
	column.Visible = !column.Visible
	updated[index] = column
	return s.persist(ctx, table, updated)
}

// Replace overwrites the whole column set, the way the settings drawer saves
// its result. Orders are normalized and keys must stay unique.
func (s *ColumnService) Replace(ctx context.Context, table models.TableKey, columns []models.ColumnDefinition) ([]models.ColumnDefinition, error) {
	if !table.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown table key")
	}
	seen := make(map[string]struct{}, len(columns))
	for i := range columns {
		col := &columns[i]
		if strings.TrimSpace(col.Name) == "" {
			return nil, appErrors.Clone(appErrors.ErrValidation, "column name is required")
		}
		if !columnKeyPattern.MatchString(col.Key) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "column key may only contain letters, numbers and underscores")
		}
		if _, dup := seen[col.Key]; dup {
			return nil, appErrors.Clone(appErrors.ErrValidation, "column keys must be unique")
		}
		seen[col.Key] = struct{}{}
		if !col.Type.Valid() {
			return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported column type")
		}
		if col.ID == "" {
			col.ID = uuid.NewString()
		}
	}
	return s.persist(ctx, table, normalizeColumnOrders(columns))
}

func (s *ColumnService) persist(ctx context.Context, table models.TableKey, columns []models.ColumnDefinition) ([]models.ColumnDefinition, error) {
	if err := s.repo.Put(ctx, table, columns); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store columns")
	}
	return columns, nil
}

// selectOptions keeps options only for select-type columns.
func selectOptions(colType models.ColumnType, options []string) []string {
	if colType != models.ColumnTypeSingleSelect && colType != models.ColumnTypeMultiSelect {
		return nil
	}
	cleaned := make([]string, 0, len(options))
	for _, opt := range options {
		if trimmed := strings.TrimSpace(opt); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		return nil
	}
	return cleaned
}
