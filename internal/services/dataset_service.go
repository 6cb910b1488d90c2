package services

import (
	"context"
	"log/slog"
	"sync"

	"cinepulse/internal/dataprocessing"
	"cinepulse/pkg/contracts/domain"
)

// DatasetService owns the clean movie table. The table is loaded lazily on
// first use and memoized; every request after that shares the same immutable
// slice. A failed load is not cached, the next request retries.
type DatasetService struct {
	loader *dataprocessing.Loader
	logger *slog.Logger

	mu     sync.Mutex
	loaded bool
	movies []domain.Movie
	meta   domain.DatasetMeta
	stats  *dataprocessing.LoadStats
}

// NewDatasetService creates a dataset service around the given loader.
func NewDatasetService(loader *dataprocessing.Loader, logger *slog.Logger) *DatasetService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DatasetService{
		loader: loader,
		logger: logger.With(slog.String("component", "dataset_service")),
	}
}

// Movies returns the full clean table, loading it on first call. Callers
// must treat the returned slice as read-only.
func (s *DatasetService) Movies(ctx context.Context) ([]domain.Movie, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return s.movies, nil
}

// Meta returns the dataset envelope the UI needs to build its controls.
func (s *DatasetService) Meta(ctx context.Context) (domain.DatasetMeta, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return domain.DatasetMeta{}, err
	}
	return s.meta, nil
}

// Stats returns the stats of the memoized load, or nil before the first
// successful load.
func (s *DatasetService) Stats() *dataprocessing.LoadStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Loaded reports whether the table is resident without triggering a load.
func (s *DatasetService) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Reload discards the memoized table and loads fresh from disk.
func (s *DatasetService) Reload(ctx context.Context) error {
	s.mu.Lock()
	s.loaded = false
	s.mu.Unlock()
	return s.ensureLoaded(ctx)
}

func (s *DatasetService) ensureLoaded(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return nil
	}

	movies, stats, err := s.loader.Load(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "dataset load failed", slog.String("error", err.Error()))
		return err
	}

	s.movies = movies
	s.stats = stats
	minYear, maxYear := dataprocessing.YearBounds(movies)
	s.meta = domain.DatasetMeta{
		Genres:      dataprocessing.GenreUniverse(movies),
		MinYear:     minYear,
		MaxYear:     maxYear,
		RecordCount: len(movies),
	}
	s.loaded = true
	return nil
}
