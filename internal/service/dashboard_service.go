package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/dealdesk/dealdesk-api/internal/dto"
	"github.com/dealdesk/dealdesk-api/internal/models"
	appErrors "github.com/dealdesk/dealdesk-api/pkg/errors"
)

const dashboardSummaryKey = "dash:summary"

// upcomingWindow is how far ahead the deadline panel looks.
const upcomingWindow = 7 * 24 * time.Hour

// DashboardService computes the headline pipeline aggregates. Results are
// cached under dash:* keys; deal writes invalidate that pattern.
type DashboardService struct {
	deals         dealStore
	cache         *CacheService
	cacheTTL      time.Duration
	upcomingLimit int
	logger        *zap.Logger
	now           func() time.Time
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(deals dealStore, cache *CacheService, cacheTTL time.Duration, upcomingLimit int, logger *zap.Logger) *DashboardService {
	if upcomingLimit <= 0 {
		upcomingLimit = 3
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		deals:         deals,
		cache:         cache,
		cacheTTL:      cacheTTL,
		upcomingLimit: upcomingLimit,
		logger:        logger,
		now:           time.Now,
	}
}

// Summary returns the dashboard aggregates. The second return value reports
// whether the payload came from cache.
func (s *DashboardService) Summary(ctx context.Context) (*dto.DashboardSummaryResponse, bool, error) {
	if s.cache.Enabled() {
		var cached dto.DashboardSummaryResponse
		if hit, err := s.cache.Get(ctx, dashboardSummaryKey, &cached); err == nil && hit {
			return &cached, true, nil
		}
	}

	deals, err := s.deals.List(ctx)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load deals")
	}

	summary := s.compose(deals)

	if s.cache.Enabled() {
		if err := s.cache.Set(ctx, dashboardSummaryKey, summary, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache dashboard summary", zap.Error(err))
		}
	}
	return summary, false, nil
}

func (s *DashboardService) compose(deals []models.Deal) *dto.DashboardSummaryResponse {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	horizon := today.Add(upcomingWindow)

	counts := make(map[models.DealStatus]int, len(models.AllDealStatuses))
	var totalValue float64
	active := 0
	closedThisMonth := 0
	upcoming := make([]dto.DealDigest, 0, s.upcomingLimit)

	for _, deal := range deals {
		counts[deal.Status]++
		totalValue += deal.Amount

		inPipeline := deal.Status != models.DealStatusPass && deal.Status != models.DealStatusPortfolio
		if inPipeline {
			active++
		}
		if deal.Status == models.DealStatusPortfolio &&
			deal.DateUpdated.Year() == now.Year() && deal.DateUpdated.Month() == now.Month() {
			closedThisMonth++
		}
		if inPipeline && len(upcoming) < s.upcomingLimit {
			updated := deal.DateUpdated.UTC()
			if !updated.Before(today) && updated.Before(horizon) {
				upcoming = append(upcoming, dto.DealDigest{
					ID:          deal.ID,
					Name:        deal.Name,
					Company:     deal.Company,
					Status:      string(deal.Status),
					DateUpdated: updated.Format("2006-01-02"),
				})
			}
		}
	}

	statusCounts := make([]models.StatusCount, 0, len(models.AllDealStatuses))
	for _, status := range models.AllDealStatuses {
		statusCounts = append(statusCounts, models.StatusCount{
			Status: status,
			Count:  counts[status],
			Color:  status.Color(),
		})
	}

	return &dto.DashboardSummaryResponse{
		StatusCounts:      statusCounts,
		TotalDealValue:    totalValue,
		ActiveDealCount:   active,
		ClosedThisMonth:   closedThisMonth,
		UpcomingDeadlines: upcoming,
	}
}
