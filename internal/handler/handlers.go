package handler

import (
	"github.com/MKhiriev/go-restviews/internal/config"
	"github.com/MKhiriev/go-restviews/internal/handler/http"
	"github.com/MKhiriev/go-restviews/internal/logger"
	"github.com/MKhiriev/go-restviews/internal/render"
	"github.com/MKhiriev/go-restviews/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers for the configured addresses.
func NewHandlers(services *service.Services, pages render.Renderer, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, pages, cfg, logger),
	}, nil
}
