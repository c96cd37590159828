package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/dealdesk/dealdesk-api/internal/dto"
	"github.com/dealdesk/dealdesk-api/internal/models"
	appErrors "github.com/dealdesk/dealdesk-api/pkg/errors"
)

type viewStore interface {
	List(ctx context.Context) ([]models.SavedView, error)
	FindByID(ctx context.Context, id string) (*models.SavedView, error)
	Create(ctx context.Context, view *models.SavedView) error
	Activate(ctx context.Context, id string) (int64, error)
	Delete(ctx context.Context, id string) error
}

// ViewService manages saved filter views. Saving snapshots the caller's
// current filter state through an inclusion mask; selecting returns the
// snapshot so the caller can re-seed its filters.
type ViewService struct {
	repo   viewStore
	logger *zap.Logger
}

// NewViewService constructs a ViewService.
func NewViewService(repo viewStore, logger *zap.Logger) *ViewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ViewService{repo: repo, logger: logger}
}

// List returns all saved views, most recently saved first.
func (s *ViewService) List(ctx context.Context) ([]models.SavedView, error) {
	views, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load views")
	}
	return views, nil
}

// Save persists a named snapshot of the submitted filter state. A nil Include
// mask keeps everything; otherwise only filters whose mask entry is true
// survive, and the search term is kept only when its own entry is true.
func (s *ViewService) Save(ctx context.Context, req dto.SaveViewRequest) (*models.SavedView, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "view name is required")
	}

	filters := models.PredicateSet{}
	for key, value := range req.Filters {
		if req.Include != nil && !req.Include[key] {
			continue
		}
		filters[key] = value
	}

	searchTerm := req.SearchTerm
	if req.Include != nil && !req.Include[dto.IncludeSearchKey] {
		searchTerm = ""
	}

	view := &models.SavedView{
		Name:       name,
		Filters:    filters,
		SearchTerm: searchTerm,
	}
	if err := s.repo.Create(ctx, view); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save view")
	}
	return view, nil
}

// Select activates the view and returns its snapshot. At most one view is
// active at a time; the storage layer enforces that transactionally.
func (s *ViewService) Select(ctx context.Context, id string) (*dto.ViewSnapshot, error) {
	affected, err := s.repo.Activate(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to activate view")
	}
	if affected == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "view not found")
	}

	view, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "view not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load view")
	}

	return &dto.ViewSnapshot{
		ID:         view.ID,
		Name:       view.Name,
		Filters:    view.Filters.Clone(),
		SearchTerm: view.SearchTerm,
	}, nil
}

// Delete removes a view. Unknown ids are a no-op; deleting the active view
// simply leaves no view active.
func (s *ViewService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete view")
	}
	return nil
}
