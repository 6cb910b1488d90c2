package services

import (
	"context"
	"log/slog"
	"time"

	"cinepulse/internal/dataprocessing"
	"cinepulse/internal/infrastructure"
	"cinepulse/pkg/contracts/domain"
)

// DashboardService computes dashboard view models over the filtered subset
// of the clean table. It is stateless; all state lives in the dataset
// service.
type DashboardService struct {
	datasets *DatasetService
	logger   *slog.Logger
	metrics  *infrastructure.PipelineMetrics
}

// NewDashboardService creates a dashboard service. metrics may be nil.
func NewDashboardService(datasets *DatasetService, logger *slog.Logger, metrics *infrastructure.PipelineMetrics) *DashboardService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardService{
		datasets: datasets,
		logger:   logger.With(slog.String("component", "dashboard_service")),
		metrics:  metrics,
	}
}

// subset resolves the filter against the clean table. Zero year bounds are
// widened to the dataset's own range so an omitted bound means "no limit".
func (s *DashboardService) subset(ctx context.Context, filter dataprocessing.Filter) ([]domain.Movie, domain.DatasetMeta, error) {
	movies, err := s.datasets.Movies(ctx)
	if err != nil {
		return nil, domain.DatasetMeta{}, err
	}
	meta, err := s.datasets.Meta(ctx)
	if err != nil {
		return nil, domain.DatasetMeta{}, err
	}

	if filter.YearMin == 0 {
		filter.YearMin = meta.MinYear
	}
	if filter.YearMax == 0 {
		filter.YearMax = meta.MaxYear
	}

	return filter.Apply(movies), meta, nil
}

// Dashboard computes the complete view model for one render cycle. Every
// aggregate sees the same filtered subset.
func (s *DashboardService) Dashboard(ctx context.Context, filter dataprocessing.Filter) (*domain.Dashboard, error) {
	start := time.Now()

	subset, meta, err := s.subset(ctx, filter)
	if err != nil {
		return nil, err
	}

	volumes := dataprocessing.CountryVolumes(subset)
	dashboard := &domain.Dashboard{
		KPIs:           dataprocessing.KPIs(subset),
		GenreMetrics:   dataprocessing.GenreMetrics(subset, meta.Genres),
		Correlations:   dataprocessing.Correlations(subset),
		YearlyTrends:   dataprocessing.YearlyTrends(subset),
		TopDirectors:   dataprocessing.TopDirectors(subset),
		CountryVolumes: volumes,
		CountryRatings: dataprocessing.CountryRatings(subset, volumes),
	}

	duration := time.Since(start)
	if s.metrics != nil {
		s.metrics.DashboardDuration.Record(ctx, duration.Seconds())
	}

	s.logger.DebugContext(ctx, "dashboard computed",
		slog.Int("subset_size", len(subset)),
		slog.Duration("duration", duration),
	)

	return dashboard, nil
}

// KPIs computes only the headline metrics.
func (s *DashboardService) KPIs(ctx context.Context, filter dataprocessing.Filter) (domain.DashboardKPIs, error) {
	subset, _, err := s.subset(ctx, filter)
	if err != nil {
		return domain.DashboardKPIs{}, err
	}
	return dataprocessing.KPIs(subset), nil
}

// GenreMetrics computes only the per-genre aggregates.
func (s *DashboardService) GenreMetrics(ctx context.Context, filter dataprocessing.Filter) ([]domain.GenreMetric, error) {
	subset, meta, err := s.subset(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dataprocessing.GenreMetrics(subset, meta.Genres), nil
}

// Correlations computes only the correlation matrix.
func (s *DashboardService) Correlations(ctx context.Context, filter dataprocessing.Filter) (domain.CorrelationMatrix, error) {
	subset, _, err := s.subset(ctx, filter)
	if err != nil {
		return domain.CorrelationMatrix{}, err
	}
	return dataprocessing.Correlations(subset), nil
}

// YearlyTrends computes only the per-year financial means.
func (s *DashboardService) YearlyTrends(ctx context.Context, filter dataprocessing.Filter) ([]domain.YearlyTrend, error) {
	subset, _, err := s.subset(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dataprocessing.YearlyTrends(subset), nil
}

// TopDirectors computes only the director ranking.
func (s *DashboardService) TopDirectors(ctx context.Context, filter dataprocessing.Filter) ([]domain.DirectorStats, error) {
	subset, _, err := s.subset(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dataprocessing.TopDirectors(subset), nil
}

// Countries computes the production-country volumes and the ratings of the
// top hubs.
func (s *DashboardService) Countries(ctx context.Context, filter dataprocessing.Filter) ([]domain.CountryVolume, []domain.CountryRating, error) {
	subset, _, err := s.subset(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	volumes := dataprocessing.CountryVolumes(subset)
	return volumes, dataprocessing.CountryRatings(subset, volumes), nil
}

// FilteredMovies returns the filtered subset itself, for exports.
func (s *DashboardService) FilteredMovies(ctx context.Context, filter dataprocessing.Filter) ([]domain.Movie, error) {
	subset, _, err := s.subset(ctx, filter)
	return subset, err
}
