package service

import (
	"fmt"
	"slices"

	"github.com/MKhiriev/go-restviews/internal/config"
	"github.com/MKhiriev/go-restviews/internal/logger"
	"github.com/MKhiriev/go-restviews/internal/restviews"
	"github.com/MKhiriev/go-restviews/internal/settings"
)

// LoadSite builds the live settings of a site and injects component
// defaults into them.
//
// The base settings file is read first. The override file, if any, is
// merged over it with its values winning. DEBUG is seeded from cfg.App when
// neither file sets it. Then the defaults of restviews and of every
// configured component are injected, in that order. Component defaults are
// looked up among the built-in components first and in
// cfg.Settings.ComponentsDir second.
func LoadSite(cfg config.StructuredConfig, logger *logger.Logger) (*settings.Site, error) {
	live, err := loadSettingsFiles(cfg.Settings)
	if err != nil {
		return nil, err
	}

	if _, ok := live[restviews.SettingDebug]; !ok {
		live[restviews.SettingDebug] = cfg.App.Debug
	}

	site := settings.NewSite(settings.NewMapStore(live))
	resolver := settings.ChainResolver{
		builtinComponents(),
		settings.NewFileResolver(cfg.Settings.ComponentsDir),
	}

	components := []string{restviews.ComponentName}
	for _, component := range cfg.Settings.Components {
		if !slices.Contains(components, component) {
			components = append(components, component)
		}
	}

	injector := settings.NewInjector(site, resolver, logger)
	if err := injector.InjectAll(components...); err != nil {
		return nil, err
	}

	logger.Info().Strs("components", components).Msg("site settings loaded")

	return site, nil
}

func builtinComponents() settings.StaticResolver {
	return settings.StaticResolver{
		restviews.ComponentName: restviews.Defaults,
	}
}

func loadSettingsFiles(cfg config.Settings) (settings.Tree, error) {
	live := settings.Tree{}

	if cfg.File != "" {
		base, err := settings.LoadFile(cfg.File)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadSettings, err)
		}
		live = settings.SettingNames(base)
	}

	if cfg.OverrideFile != "" {
		override, err := settings.LoadFile(cfg.OverrideFile)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadSettings, err)
		}

		live, err = settings.Merge(live, settings.SettingNames(override), settings.WithOverwrite())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadSettings, err)
		}
	}

	return live, nil
}
