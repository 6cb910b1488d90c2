package http

import (
	"context"

	"cinepulse/internal/dataprocessing"
	"cinepulse/internal/services"
	"cinepulse/pkg/contracts/domain"
)

// DashboardServiceInterface defines the operations the dashboard handler
// needs from the service layer.
type DashboardServiceInterface interface {
	Dashboard(ctx context.Context, filter dataprocessing.Filter) (*domain.Dashboard, error)
	KPIs(ctx context.Context, filter dataprocessing.Filter) (domain.DashboardKPIs, error)
	GenreMetrics(ctx context.Context, filter dataprocessing.Filter) ([]domain.GenreMetric, error)
	Correlations(ctx context.Context, filter dataprocessing.Filter) (domain.CorrelationMatrix, error)
	YearlyTrends(ctx context.Context, filter dataprocessing.Filter) ([]domain.YearlyTrend, error)
	TopDirectors(ctx context.Context, filter dataprocessing.Filter) ([]domain.DirectorStats, error)
	Countries(ctx context.Context, filter dataprocessing.Filter) ([]domain.CountryVolume, []domain.CountryRating, error)
	FilteredMovies(ctx context.Context, filter dataprocessing.Filter) ([]domain.Movie, error)
}

// DatasetServiceInterface defines the operations the meta handler needs.
type DatasetServiceInterface interface {
	Meta(ctx context.Context) (domain.DatasetMeta, error)
}

// HealthServiceInterface defines the operations the health handler needs.
type HealthServiceInterface interface {
	HealthCheck(ctx context.Context) services.HealthStatus
	ReadinessCheck(ctx context.Context) services.HealthStatus
	LivenessCheck(ctx context.Context) services.HealthStatus
	Version() map[string]interface{}
}
