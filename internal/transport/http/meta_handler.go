package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "cinepulse/internal/errors"
)

// MetaHandler serves the dataset envelope the UI builds its controls from
type MetaHandler struct {
	service      DatasetServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewMetaHandler creates a new meta handler
func NewMetaHandler(service DatasetServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *MetaHandler {
	return &MetaHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "meta_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the meta routes
func (h *MetaHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Get("/", h.GetMeta)
	return r
}

// GetMeta handles GET /api/meta
func (h *MetaHandler) GetMeta(w http.ResponseWriter, r *http.Request) {
	meta, err := h.service.Meta(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to get dataset meta",
			slog.String("error", err.Error()))
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, meta)
}
