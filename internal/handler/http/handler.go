package http

import (
	"github.com/MKhiriev/go-restviews/internal/config"
	"github.com/MKhiriev/go-restviews/internal/logger"
	"github.com/MKhiriev/go-restviews/internal/render"
	"github.com/MKhiriev/go-restviews/internal/service"
	"github.com/MKhiriev/go-restviews/internal/utils"
)

// Handler serves the demo site: the grid index, one page per grid and the
// debug endpoints.
type Handler struct {
	services *service.Services
	pages    render.Renderer
	traceIDs traceIDGenerator

	staticURL string
	staticDir string

	logger *logger.Logger
}

type traceIDGenerator interface {
	Generate() string
}

// NewHandler builds a handler that renders pages with pages, a renderer over
// [Pages] or a compatible template set.
func NewHandler(services *service.Services, pages render.Renderer, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		pages:     pages,
		traceIDs:  utils.NewUUIDGenerator(),
		staticURL: cfg.StaticURL,
		staticDir: cfg.StaticDir,
		logger:    logger,
	}
}
