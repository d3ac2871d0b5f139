package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-restviews/internal/logger"
	"github.com/MKhiriev/go-restviews/internal/restviews"
	"github.com/MKhiriev/go-restviews/internal/settings"
	"github.com/MKhiriev/go-restviews/models"
)

type settingsService struct {
	site *settings.Site

	logger *logger.Logger
}

func NewSettingsService(site *settings.Site, logger *logger.Logger) SettingsService {
	return &settingsService{
		site:   site,
		logger: logger,
	}
}

// Debug reports the live DEBUG setting. Anything but a boolean true is off.
func (s *settingsService) Debug(ctx context.Context) bool {
	v, _ := s.site.Live.Get(restviews.SettingDebug)
	debug, _ := v.(bool)
	return debug
}

func (s *settingsService) Dump(ctx context.Context, withDefaults bool) (models.SettingsDump, error) {
	live, err := s.site.Live.Snapshot()
	if err != nil {
		return models.SettingsDump{}, fmt.Errorf("error copying live settings: %w", err)
	}

	dump := models.SettingsDump{Live: live}
	if !withDefaults {
		return dump, nil
	}

	defaults, err := s.site.Defaults.Snapshot()
	if err != nil {
		return models.SettingsDump{}, fmt.Errorf("error copying defaults registry: %w", err)
	}
	dump.Defaults = defaults

	return dump, nil
}

// Value returns a deep copy of the setting at a dotted path such as
// "RESTVIEWS_GRID.itemsPerPage". With fromDefaults it reads the defaults
// registry instead of the live settings.
func (s *settingsService) Value(ctx context.Context, path string, fromDefaults bool) (any, error) {
	name, rest, nested := strings.Cut(path, ".")

	var (
		v  any
		ok bool
	)
	if fromDefaults {
		v, ok = s.site.Defaults.Get(name)
	} else {
		v, ok = s.site.Live.Get(name)
	}

	if ok && nested {
		var tree settings.Tree
		if tree, ok = settings.AsTree(v); ok {
			v, ok = tree.Lookup(rest)
		}
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSettingNotFound, path)
	}

	out, err := settings.Clone(settings.Tree{name: v})
	if err != nil {
		return nil, fmt.Errorf("error copying setting %s: %w", path, err)
	}

	return out[name], nil
}
