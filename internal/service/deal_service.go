package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/dealdesk/dealdesk-api/internal/dto"
	"github.com/dealdesk/dealdesk-api/internal/filter"
	"github.com/dealdesk/dealdesk-api/internal/models"
	"github.com/dealdesk/dealdesk-api/internal/render"
	appErrors "github.com/dealdesk/dealdesk-api/pkg/errors"
)

// dashboardCachePattern covers every cached dashboard payload. Deal writes
// invalidate it so the summary never serves stale aggregates.
const dashboardCachePattern = "dash:*"

type dealStore interface {
	List(ctx context.Context) ([]models.Deal, error)
	FindByID(ctx context.Context, id string) (*models.Deal, error)
	Create(ctx context.Context, deal *models.Deal) error
	Update(ctx context.Context, deal *models.Deal) error
	Delete(ctx context.Context, id string) error
}

type columnProvider interface {
	List(ctx context.Context, table models.TableKey) ([]models.ColumnDefinition, error)
	ListVisible(ctx context.Context, table models.TableKey) ([]models.ColumnDefinition, error)
}

// DealService implements deal CRUD plus the in-memory list pipeline: the full
// collection is loaded, filtered against column metadata and rendered. Hidden
// columns still participate in filtering; only rendering skips them.
type DealService struct {
	repo    dealStore
	columns columnProvider
	cache   *CacheService
	logger  *zap.Logger
}

// NewDealService constructs a DealService.
func NewDealService(repo dealStore, columns columnProvider, cache *CacheService, logger *zap.Logger) *DealService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DealService{repo: repo, columns: columns, cache: cache, logger: logger}
}

// List returns the deals matching the predicate set and search term, in
// storage order, together with the unfiltered collection size.
func (s *DealService) List(ctx context.Context, predicates models.PredicateSet, searchTerm string) ([]models.Deal, int, error) {
	deals, err := s.repo.List(ctx)
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load deals")
	}
	columns, err := s.columns.List(ctx, models.TableKeyDeals)
	if err != nil {
		return nil, 0, err
	}
	trimmed := strings.TrimSpace(searchTerm)
	filtered := filter.Evaluate(deals, predicates, trimmed, models.SearchableDealKeys, columns)
	return filtered, len(deals), nil
}

// Get fetches one deal by id.
func (s *DealService) Get(ctx context.Context, id string) (*models.Deal, error) {
	deal, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "deal not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load deal")
	}
	return deal, nil
}

// Create validates and persists a new deal.
func (s *DealService) Create(ctx context.Context, req dto.CreateDealRequest) (*models.Deal, error) {
	status := models.DealStatus(req.Status)
	if !status.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown deal status")
	}
	deal := &models.Deal{
		Name:         strings.TrimSpace(req.Name),
		Company:      strings.TrimSpace(req.Company),
		Status:       status,
		Amount:       req.Amount,
		Stage:        req.Stage,
		AssignedTo:   req.AssignedTo,
		Description:  req.Description,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		Notes:        req.Notes,
		Sector:       req.Sector,
		WeekDeals:    req.WeekDeals,
	}
	if err := s.repo.Create(ctx, deal); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create deal")
	}
	s.invalidateDashboard(ctx)
	return deal, nil
}

// Update replaces a deal's mutable fields. The updated timestamp is refreshed
// by the repository, never taken from the request.
func (s *DealService) Update(ctx context.Context, id string, req dto.UpdateDealRequest) (*models.Deal, error) {
	status := models.DealStatus(req.Status)
	if !status.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown deal status")
	}
	deal, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	deal.Name = strings.TrimSpace(req.Name)
	deal.Company = strings.TrimSpace(req.Company)
	deal.Status = status
	deal.Amount = req.Amount
	deal.Stage = req.Stage
	deal.AssignedTo = req.AssignedTo
	deal.Description = req.Description
	deal.ContactName = req.ContactName
	deal.ContactEmail = req.ContactEmail
	deal.Notes = req.Notes
	deal.Sector = req.Sector
	deal.WeekDeals = req.WeekDeals

	if err := s.repo.Update(ctx, deal); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update deal")
	}
	s.invalidateDashboard(ctx)
	return deal, nil
}

// Delete removes a deal. Unknown ids are a no-op.
func (s *DealService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete deal")
	}
	s.invalidateDashboard(ctx)
	return nil
}

// UniqueValues returns the distinct values stored for a column key, in
// first-seen order. Select filters use this to build dynamic option lists.
func (s *DealService) UniqueValues(ctx context.Context, key string) (*dto.UniqueValuesResponse, error) {
	deals, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load deals")
	}
	return &dto.UniqueValuesResponse{Key: key, Values: filter.UniqueValues(deals, key)}, nil
}

// TableRows assembles the display-ready table: visible columns in order, the
// filtered deal set rendered cell by cell, plus filtered and total counts.
func (s *DealService) TableRows(ctx context.Context, table models.TableKey, predicates models.PredicateSet, searchTerm string) (*dto.TableRowsResponse, error) {
	filtered, total, err := s.List(ctx, predicates, searchTerm)
	if err != nil {
		return nil, err
	}
	visible, err := s.columns.ListVisible(ctx, table)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.TableRow, 0, len(filtered))
	for _, deal := range filtered {
		cells := make([]render.Cell, 0, len(visible))
		for _, col := range visible {
			cells = append(cells, render.FormatCell(deal, col))
		}
		rows = append(rows, dto.TableRow{DealID: deal.ID, Cells: cells})
	}

	return &dto.TableRowsResponse{
		Columns:       visible,
		Rows:          rows,
		FilteredCount: len(filtered),
		TotalCount:    total,
	}, nil
}

func (s *DealService) invalidateDashboard(ctx context.Context) {
	if s.cache == nil || !s.cache.Enabled() {
		return
	}
	if err := s.cache.Invalidate(ctx, dashboardCachePattern); err != nil {
		s.logger.Warn("dashboard cache invalidation failed", zap.Error(err))
	}
}
