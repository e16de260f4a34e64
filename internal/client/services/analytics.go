package services

import (
	"context"

	"github.com/dmitrijs2005/jobtrackr/internal/client/api"
	"github.com/dmitrijs2005/jobtrackr/internal/client/models"
)

// AnalyticsService exposes the read-only pipeline statistics. Both calls are
// plain proxies; a user with no applications gets zero-valued aggregates,
// not an error.
type AnalyticsService interface {
	Overview(ctx context.Context) (*models.AnalyticsOverview, error)
	Charts(ctx context.Context) (*models.ChartsData, error)
}

type analyticsService struct {
	client api.Client
}

func NewAnalyticsService(client api.Client) AnalyticsService {
	return &analyticsService{client: client}
}

func (s *analyticsService) Overview(ctx context.Context) (*models.AnalyticsOverview, error) {
	return s.client.AnalyticsOverview(ctx)
}

func (s *analyticsService) Charts(ctx context.Context) (*models.ChartsData, error) {
	return s.client.AnalyticsCharts(ctx)
}
