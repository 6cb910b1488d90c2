package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	apierrors "cinepulse/internal/errors"
)

// DashboardHandler handles dashboard view-model HTTP requests
type DashboardHandler struct {
	service      DashboardServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	validator    *validator.Validate
}

// NewDashboardHandler creates a new dashboard handler with RFC 7807 error handling
func NewDashboardHandler(service DashboardServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *DashboardHandler {
	return &DashboardHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "dashboard_handler")),
		errorHandler: errorHandler,
		validator:    validator.New(),
	}
}

// Routes returns the dashboard routes with proper Chi patterns
func (h *DashboardHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	// Full view model plus one route per tab
	r.Get("/", h.GetDashboard)
	r.Get("/kpis", h.GetKPIs)
	r.Get("/genres", h.GetGenreMetrics)
	r.Get("/correlations", h.GetCorrelations)
	r.Get("/trends", h.GetYearlyTrends)
	r.Get("/directors", h.GetTopDirectors)
	r.Get("/countries", h.GetCountries)

	return r
}

// GetDashboard handles GET /api/dashboard
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	filter, err := bindFilter(h.validator, r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	dashboard, err := h.service.Dashboard(r.Context(), filter)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to compute dashboard",
			slog.String("error", err.Error()))
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, dashboard)
}

// GetKPIs handles GET /api/dashboard/kpis
func (h *DashboardHandler) GetKPIs(w http.ResponseWriter, r *http.Request) {
	filter, err := bindFilter(h.validator, r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	kpis, err := h.service.KPIs(r.Context(), filter)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, kpis)
}

// GetGenreMetrics handles GET /api/dashboard/genres
func (h *DashboardHandler) GetGenreMetrics(w http.ResponseWriter, r *http.Request) {
	filter, err := bindFilter(h.validator, r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	metrics, err := h.service.GenreMetrics(r.Context(), filter)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"genre_metrics": metrics,
		"count":         len(metrics),
	})
}

// GetCorrelations handles GET /api/dashboard/correlations
func (h *DashboardHandler) GetCorrelations(w http.ResponseWriter, r *http.Request) {
	filter, err := bindFilter(h.validator, r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	matrix, err := h.service.Correlations(r.Context(), filter)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, matrix)
}

// GetYearlyTrends handles GET /api/dashboard/trends
func (h *DashboardHandler) GetYearlyTrends(w http.ResponseWriter, r *http.Request) {
	filter, err := bindFilter(h.validator, r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	trends, err := h.service.YearlyTrends(r.Context(), filter)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"yearly_trends": trends,
		"count":         len(trends),
	})
}

// GetTopDirectors handles GET /api/dashboard/directors
func (h *DashboardHandler) GetTopDirectors(w http.ResponseWriter, r *http.Request) {
	filter, err := bindFilter(h.validator, r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	directors, err := h.service.TopDirectors(r.Context(), filter)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"top_directors": directors,
		"count":         len(directors),
	})
}

// GetCountries handles GET /api/dashboard/countries
func (h *DashboardHandler) GetCountries(w http.ResponseWriter, r *http.Request) {
	filter, err := bindFilter(h.validator, r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	volumes, ratings, err := h.service.Countries(r.Context(), filter)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"country_volumes": volumes,
		"country_ratings": ratings,
	})
}
