package service

import (
	"context"
	"html/template"

	"github.com/MKhiriev/go-restviews/internal/restviews"
	"github.com/MKhiriev/go-restviews/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// GridService serves the grids a site declares in RESTVIEWS_GRIDS.
type GridService interface {
	ListGrids(ctx context.Context) ([]models.GridSummary, error)
	RenderGrid(ctx context.Context, name string) (models.GridPage, error)
}

// SettingsService exposes the site's live settings and defaults registry.
type SettingsService interface {
	Debug(ctx context.Context) bool
	Dump(ctx context.Context, withDefaults bool) (models.SettingsDump, error)
	Value(ctx context.Context, path string, fromDefaults bool) (any, error)
}

// GridTags renders the restviews template tags. It is satisfied by
// *restviews.Tags.
type GridTags interface {
	Head() (template.HTML, error)
	Grid(grid, url string, opts restviews.Options) (template.HTML, error)
}
