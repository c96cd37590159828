package dto

import "github.com/dealdesk/dealdesk-api/internal/models"

// DealDigest is the abbreviated deal shape shown on dashboard panels.
type DealDigest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Company     string `json:"company"`
	Status      string `json:"status"`
	DateUpdated string `json:"dateUpdated"`
}

// DashboardSummaryResponse aggregates the headline pipeline metrics.
type DashboardSummaryResponse struct {
	StatusCounts      []models.StatusCount `json:"statusCounts"`
	TotalDealValue    float64              `json:"totalDealValue"`
	ActiveDealCount   int                  `json:"activeDealCount"`
	ClosedThisMonth   int                  `json:"closedThisMonth"`
	UpcomingDeadlines []DealDigest         `json:"upcomingDeadlines"`
}
