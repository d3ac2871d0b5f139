package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-restviews/internal/config"
	myHTTP "github.com/MKhiriev/go-restviews/internal/handler/http"
	"github.com/MKhiriev/go-restviews/internal/logger"
	"github.com/MKhiriev/go-restviews/internal/render"
	"github.com/MKhiriev/go-restviews/internal/restviews"
	"github.com/MKhiriev/go-restviews/internal/service"
	"github.com/MKhiriev/go-restviews/models"
)

// app is everything a command needs once configuration and site settings
// are loaded.
type app struct {
	cfg      *config.StructuredConfig
	logger   *logger.Logger
	services *service.Services
	pages    render.Renderer
}

func bootstrap(cmd *cobra.Command, info models.AppBuildInfo, base *logger.Logger) (*app, error) {
	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	log, err := base.WithLevel(cfg.App.LogLevel)
	if err != nil {
		return nil, err
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	site, err := service.LoadSite(*cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error loading site settings: %w", err)
	}

	assets, err := render.NewStaticAssets(cfg.Server.StaticURL)
	if err != nil {
		return nil, err
	}
	translator, err := render.NewCatalogTranslator(cfg.App.Language)
	if err != nil {
		return nil, err
	}

	fragments, err := render.NewTemplateRenderer(restviews.Templates(), ".", assets, translator)
	if err != nil {
		return nil, err
	}
	pages, err := render.NewTemplateRenderer(myHTTP.Pages(), ".", assets, translator)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Strs("fragments", fragments.Names()).
		Strs("pages", pages.Names()).
		Msg("templates parsed")

	tags := restviews.NewTags(site.Live, fragments, assets)

	services, err := service.NewServices(site, tags, cfg.App, info, log)
	if err != nil {
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	return &app{
		cfg:      cfg,
		logger:   log,
		services: services,
		pages:    pages,
	}, nil
}
