package service

import (
	"github.com/MKhiriev/go-restviews/internal/config"
	"github.com/MKhiriev/go-restviews/internal/logger"
	"github.com/MKhiriev/go-restviews/internal/restviews"
	"github.com/MKhiriev/go-restviews/internal/settings"
	"github.com/MKhiriev/go-restviews/models"
)

type Services struct {
	AppInfoService  AppInfoService
	GridService     GridService
	SettingsService SettingsService
}

func NewServices(site *settings.Site, tags *restviews.Tags, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AppInfoService:  appInfoService,
		GridService:     NewGridService(site.Live, tags, logger),
		SettingsService: NewSettingsService(site, logger),
	}, nil
}
