package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	apierrors "cinepulse/internal/errors"
	"cinepulse/internal/exporter"
)

// ExportHandler streams the filtered movie table as a file download. It
// accepts the same filter query parameters as the dashboard routes.
type ExportHandler struct {
	service      DashboardServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	validator    *validator.Validate
}

// NewExportHandler creates a new export handler
func NewExportHandler(service DashboardServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *ExportHandler {
	return &ExportHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "export_handler")),
		errorHandler: errorHandler,
		validator:    validator.New(),
	}
}

// Routes returns the export routes
func (h *ExportHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/movies.csv", h.ExportCSV)
	r.Get("/movies.xlsx", h.ExportXLSX)
	return r
}

// ExportCSV handles GET /api/export/movies.csv
func (h *ExportHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	filter, err := bindFilter(h.validator, r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	movies, err := h.service.FilteredMovies(r.Context(), filter)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="movies.csv"`)

	if err := exporter.WriteCSV(w, movies); err != nil {
		// Headers are gone; log and abandon the response.
		h.logger.ErrorContext(r.Context(), "csv export failed mid-stream",
			slog.String("error", err.Error()))
		return
	}

	h.logger.InfoContext(r.Context(), "csv export complete",
		slog.Int("movie_count", len(movies)))
}

// ExportXLSX handles GET /api/export/movies.xlsx
func (h *ExportHandler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	filter, err := bindFilter(h.validator, r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	movies, err := h.service.FilteredMovies(r.Context(), filter)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="movies.xlsx"`)

	if err := exporter.WriteXLSX(w, movies); err != nil {
		h.logger.ErrorContext(r.Context(), "xlsx export failed mid-stream",
			slog.String("error", err.Error()))
		return
	}

	h.logger.InfoContext(r.Context(), "xlsx export complete",
		slog.Int("movie_count", len(movies)))
}
