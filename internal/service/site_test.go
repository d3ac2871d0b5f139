package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-restviews/internal/config"
	"github.com/MKhiriev/go-restviews/internal/logger"
	"github.com/MKhiriev/go-restviews/internal/restviews"
	"github.com/MKhiriev/go-restviews/internal/settings"
)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func liveSetting(t *testing.T, site *settings.Site, dotted string) any {
	t.Helper()
	snapshot, err := site.Live.Snapshot()
	require.NoError(t, err)
	v, ok := snapshot.Lookup(dotted)
	require.True(t, ok, dotted)
	return v
}

func TestLoadSite_NoFiles(t *testing.T) {
	site, err := LoadSite(config.StructuredConfig{}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, false, liveSetting(t, site, "DEBUG"))
	assert.Equal(t, restviews.KnockoutURL, liveSetting(t, site, restviews.SettingKnockoutURL))
	assert.Equal(t, restviews.DefaultUI, liveSetting(t, site, restviews.SettingUI))
	assert.Equal(t, 10, liveSetting(t, site, "RESTVIEWS_GRID.itemsPerPage"))
}

func TestLoadSite_DebugFromConfig(t *testing.T) {
	site, err := LoadSite(config.StructuredConfig{App: config.App{Debug: true}}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, true, liveSetting(t, site, "DEBUG"))
	assert.Equal(t, restviews.KnockoutDebugURL, liveSetting(t, site, restviews.SettingKnockoutURL))
}

func TestLoadSite_SettingsFileWins(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, filepath.Join(dir, "settings.yaml"), `
DEBUG: false
lowercase_ignored: 1
RESTVIEWS_UI: generic
RESTVIEWS_GRID:
  itemsPerPage: 25
RESTVIEWS_GRIDS:
  books:
    url: /api/books/
`)
	override := writeFile(t, filepath.Join(dir, "local.yaml"), `
RESTVIEWS_GRID:
  itemsPerPage: 50
  maxPages: 7
`)

	cfg := config.StructuredConfig{
		App: config.App{Debug: true},
		Settings: config.Settings{
			File:         base,
			OverrideFile: override,
		},
	}

	site, err := LoadSite(cfg, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, false, liveSetting(t, site, "DEBUG"), "settings file beats process config")
	assert.Equal(t, restviews.KnockoutURL, liveSetting(t, site, restviews.SettingKnockoutURL))
	assert.Equal(t, "generic", liveSetting(t, site, restviews.SettingUI))
	assert.Equal(t, 50, liveSetting(t, site, "RESTVIEWS_GRID.itemsPerPage"), "override file wins")
	assert.Equal(t, 7, liveSetting(t, site, "RESTVIEWS_GRID.maxPages"))
	assert.Equal(t, "page", liveSetting(t, site, "RESTVIEWS_GRID.pageParam"), "component default filled in")
	assert.Equal(t, "/api/books/", liveSetting(t, site, "RESTVIEWS_GRIDS.books.url"))

	assert.False(t, site.Live.Has("lowercase_ignored"))
}

func TestLoadSite_ComponentsDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "components", "blog", "settings.yaml"), `
BLOG_PAGE_SIZE: 20
BLOG_FEED:
  title: News
  enabled: true
`)
	base := writeFile(t, filepath.Join(dir, "settings.json"), `{"BLOG_FEED": {"title": "Site news"}}`)

	cfg := config.StructuredConfig{
		Settings: config.Settings{
			File:          base,
			ComponentsDir: filepath.Join(dir, "components"),
			Components:    []string{"blog", "restviews", "missing"},
		},
	}

	site, err := LoadSite(cfg, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, 20, liveSetting(t, site, "BLOG_PAGE_SIZE"))
	assert.Equal(t, "Site news", liveSetting(t, site, "BLOG_FEED.title"))
	assert.Equal(t, true, liveSetting(t, site, "BLOG_FEED.enabled"))

	registered, ok := site.Defaults.Get("BLOG_FEED")
	require.True(t, ok)
	assert.True(t, settings.Equal(settings.Tree{"title": "News", "enabled": true}, registered))
}

func TestLoadSite_MissingSettingsFile(t *testing.T) {
	cfg := config.StructuredConfig{
		Settings: config.Settings{File: filepath.Join(t.TempDir(), "nope.yaml")},
	}

	_, err := LoadSite(cfg, logger.Nop())
	assert.ErrorIs(t, err, ErrLoadSettings)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadSite_MalformedOverride(t *testing.T) {
	dir := t.TempDir()
	cfg := config.StructuredConfig{
		Settings: config.Settings{
			OverrideFile: writeFile(t, filepath.Join(dir, "local.yaml"), "A: ["),
		},
	}

	_, err := LoadSite(cfg, logger.Nop())
	assert.ErrorIs(t, err, ErrLoadSettings)
}

func TestLoadSite_BrokenComponent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "shop", "settings.yaml"), "SHOP: [")

	cfg := config.StructuredConfig{
		Settings: config.Settings{
			ComponentsDir: dir,
			Components:    []string{"shop"},
		},
	}

	_, err := LoadSite(cfg, logger.Nop())
	assert.ErrorIs(t, err, settings.ErrComponentDefaults)
}
