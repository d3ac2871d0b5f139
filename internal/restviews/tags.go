package restviews

import (
	"fmt"
	"html/template"
	"regexp"
	"slices"
	"strings"

	"github.com/MKhiriev/go-restviews/internal/render"
	"github.com/MKhiriev/go-restviews/internal/settings"
)

var (
	jsIdentifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	uiName       = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// Client scripts loaded by Head after rvBootstrap.js, relative to the static
// prefix.
var clientScripts = []string{
	"restviews/js/rvModel.js",
	"restviews/js/rvFunctions.js",
	"restviews/js/rvKoBindings.js",
	"restviews/js/rvValidators.js",
	"restviews/js/restviews.js",
}

// Options are per-call grid options keyed by option name.
type Options map[string]any

// Tags renders the component's template tags against the live settings.
type Tags struct {
	live     settings.Reader
	renderer render.Renderer
	assets   render.AssetResolver
}

func NewTags(live settings.Reader, renderer render.Renderer, assets render.AssetResolver) *Tags {
	return &Tags{
		live:     live,
		renderer: renderer,
		assets:   assets,
	}
}

type headData struct {
	KnockoutURL  string
	BootstrapURL string
	UI           string
	Scripts      []string
}

// Head renders the script tags every page with grids needs.
func (t *Tags) Head() (template.HTML, error) {
	ui, err := t.ui()
	if err != nil {
		return "", err
	}

	bootstrap, err := t.assets.URL("restviews/js/rvBootstrap.js")
	if err != nil {
		return "", err
	}

	scripts := make([]string, 0, len(clientScripts)+1)
	for _, p := range slices.Concat(clientScripts, []string{"restviews/js/ui/" + ui + ".js"}) {
		u, err := t.assets.URL(p)
		if err != nil {
			return "", err
		}
		scripts = append(scripts, u)
	}

	return t.renderer.Render(HeadTemplate, headData{
		KnockoutURL:  t.stringSetting(SettingKnockoutURL, KnockoutURL),
		BootstrapURL: bootstrap,
		UI:           ui,
		Scripts:      scripts,
	})
}

type gridData struct {
	Grid   string
	Config settings.Tree
}

// Grid renders one grid bound to the REST endpoint at url.
func (t *Tags) Grid(grid, url string, opts Options) (template.HTML, error) {
	config, err := t.GridConfig(grid, url, opts)
	if err != nil {
		return "", err
	}

	return t.renderer.Render(GridTemplate, gridData{
		Grid:   grid,
		Config: config,
	})
}

// GridConfig returns the configuration object handed to the client for a
// grid. The result is a copy and may be modified by the caller.
func (t *Tags) GridConfig(grid, url string, opts Options) (settings.Tree, error) {
	if !jsIdentifier.MatchString(grid) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGridName, grid)
	}
	if strings.TrimSpace(url) == "" {
		return nil, ErrEmptyURL
	}

	config := GridDefaults()
	if v, ok := t.get(SettingGrid); ok {
		if site, ok := settings.AsTree(v); ok {
			overlay(config, site)
		}
	}
	overlay(config, settings.Tree(opts))

	config["grid"] = grid
	config["url"] = url

	return settings.Clone(config)
}

// overlay copies values of the keys config already has.
func overlay(config, values settings.Tree) {
	for key := range config {
		if v, ok := values[key]; ok {
			config[key] = v
		}
	}
}

func (t *Tags) ui() (string, error) {
	ui := t.stringSetting(SettingUI, DefaultUI)
	if !uiName.MatchString(ui) {
		return "", fmt.Errorf("%w: %q", ErrInvalidUI, ui)
	}
	return ui, nil
}

func (t *Tags) get(name string) (any, bool) {
	if t.live == nil {
		return nil, false
	}
	return t.live.Get(name)
}

func (t *Tags) stringSetting(name, fallback string) string {
	v, ok := t.get(name)
	if !ok {
		return fallback
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return fallback
	}
	return s
}
