package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinepulse/internal/dataprocessing"
	apierrors "cinepulse/internal/errors"
	"cinepulse/pkg/contracts/domain"
)

// fakeDashboardService implements DashboardServiceInterface with function
// fields so each test can stub exactly what it needs.
type fakeDashboardService struct {
	dashboardFn func(ctx context.Context, f dataprocessing.Filter) (*domain.Dashboard, error)
	kpisFn      func(ctx context.Context, f dataprocessing.Filter) (domain.DashboardKPIs, error)
	moviesFn    func(ctx context.Context, f dataprocessing.Filter) ([]domain.Movie, error)
	lastFilter  dataprocessing.Filter
}

func (s *fakeDashboardService) Dashboard(ctx context.Context, f dataprocessing.Filter) (*domain.Dashboard, error) {
	s.lastFilter = f
	if s.dashboardFn != nil {
		return s.dashboardFn(ctx, f)
	}
	return &domain.Dashboard{}, nil
}

func (s *fakeDashboardService) KPIs(ctx context.Context, f dataprocessing.Filter) (domain.DashboardKPIs, error) {
	s.lastFilter = f
	if s.kpisFn != nil {
		return s.kpisFn(ctx, f)
	}
	return domain.DashboardKPIs{}, nil
}

func (s *fakeDashboardService) GenreMetrics(ctx context.Context, f dataprocessing.Filter) ([]domain.GenreMetric, error) {
	s.lastFilter = f
	return []domain.GenreMetric{{Genre: "Action", Count: 7}}, nil
}

func (s *fakeDashboardService) Correlations(ctx context.Context, f dataprocessing.Filter) (domain.CorrelationMatrix, error) {
	s.lastFilter = f
	return domain.CorrelationMatrix{Columns: []string{"budget"}}, nil
}

func (s *fakeDashboardService) YearlyTrends(ctx context.Context, f dataprocessing.Filter) ([]domain.YearlyTrend, error) {
	s.lastFilter = f
	return []domain.YearlyTrend{{Year: 2010}}, nil
}

func (s *fakeDashboardService) TopDirectors(ctx context.Context, f dataprocessing.Filter) ([]domain.DirectorStats, error) {
	s.lastFilter = f
	return []domain.DirectorStats{{Director: "X", FilmCount: 3}}, nil
}

func (s *fakeDashboardService) Countries(ctx context.Context, f dataprocessing.Filter) ([]domain.CountryVolume, []domain.CountryRating, error) {
	s.lastFilter = f
	return []domain.CountryVolume{{Country: "USA", Count: 2}},
		[]domain.CountryRating{{Country: "USA", MeanVoteAverage: 7}}, nil
}

func (s *fakeDashboardService) FilteredMovies(ctx context.Context, f dataprocessing.Filter) ([]domain.Movie, error) {
	s.lastFilter = f
	if s.moviesFn != nil {
		return s.moviesFn(ctx, f)
	}
	return nil, nil
}

func newTestDashboardHandler(service DashboardServiceInterface) *DashboardHandler {
	logger := slog.Default()
	return NewDashboardHandler(service, logger, apierrors.NewErrorHandler(logger, false))
}

func TestDashboardHandler_GetDashboard(t *testing.T) {
	service := &fakeDashboardService{
		dashboardFn: func(ctx context.Context, f dataprocessing.Filter) (*domain.Dashboard, error) {
			return &domain.Dashboard{
				KPIs: domain.DashboardKPIs{TotalRevenue: 8000000, RecordCount: 2},
			}, nil
		},
	}
	handler := newTestDashboardHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/?genres=Action,Drama&year_min=2000&year_max=2015", nil)
	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, []string{"Action", "Drama"}, service.lastFilter.Genres)
	assert.Equal(t, 2000, service.lastFilter.YearMin)
	assert.Equal(t, 2015, service.lastFilter.YearMax)

	var body domain.Dashboard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.KPIs.RecordCount)
}

func TestDashboardHandler_EmptyQueryMeansNoFilter(t *testing.T) {
	service := &fakeDashboardService{}
	handler := newTestDashboardHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, service.lastFilter.Genres)
	assert.Zero(t, service.lastFilter.YearMin)
	assert.Zero(t, service.lastFilter.YearMax)
}

func TestDashboardHandler_InvalidYearParam(t *testing.T) {
	handler := newTestDashboardHandler(&fakeDashboardService{})

	req := httptest.NewRequest(http.MethodGet, "/?year_min=abc", nil)
	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/problem+json")
}

func TestDashboardHandler_InvertedYearRange(t *testing.T) {
	handler := newTestDashboardHandler(&fakeDashboardService{})

	req := httptest.NewRequest(http.MethodGet, "/?year_min=2015&year_max=2000", nil)
	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardHandler_YearOutOfRange(t *testing.T) {
	handler := newTestDashboardHandler(&fakeDashboardService{})

	req := httptest.NewRequest(http.MethodGet, "/?year_min=999", nil)
	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardHandler_DatasetUnavailable(t *testing.T) {
	service := &fakeDashboardService{
		dashboardFn: func(ctx context.Context, f dataprocessing.Filter) (*domain.Dashboard, error) {
			return nil, fmt.Errorf("dataset file not found: /data/tmdb_5000_movies.csv")
		},
	}
	handler := newTestDashboardHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/problem+json")

	var problem map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Contains(t, problem["type"], "dataset")
}

func TestDashboardHandler_PerViewRoutes(t *testing.T) {
	handler := newTestDashboardHandler(&fakeDashboardService{})
	router := handler.Routes()

	tests := []struct {
		path    string
		wantKey string
	}{
		{"/genres", "genre_metrics"},
		{"/trends", "yearly_trends"},
		{"/directors", "top_directors"},
		{"/countries", "country_volumes"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, body, tt.wantKey)
		})
	}
}

func TestDashboardHandler_KPIsRoute(t *testing.T) {
	service := &fakeDashboardService{
		kpisFn: func(ctx context.Context, f dataprocessing.Filter) (domain.DashboardKPIs, error) {
			return domain.DashboardKPIs{RecordCount: 42}, nil
		},
	}
	handler := newTestDashboardHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/kpis", nil)
	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var kpis domain.DashboardKPIs
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &kpis))
	assert.Equal(t, 42, kpis.RecordCount)
}
