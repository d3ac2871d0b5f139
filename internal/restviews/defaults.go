package restviews

import "github.com/MKhiriev/go-restviews/internal/settings"

// ComponentName is the name the component's defaults are registered under.
const ComponentName = "restviews"

// Setting names read by this package.
const (
	SettingDebug       = "DEBUG"
	SettingKnockoutURL = "RESTVIEWS_KNOCKOUT_URL"
	SettingUI          = "RESTVIEWS_UI"
	SettingGrid        = "RESTVIEWS_GRID"
	SettingGrids       = "RESTVIEWS_GRIDS"
)

const (
	KnockoutURL      = "http://knockoutjs.com/downloads/knockout-3.0.0.js"
	KnockoutDebugURL = "http://knockoutjs.com/downloads/knockout-3.0.0.debug.js"
	DefaultUI        = "bootstrap3"
)

// Grid option keys.
const (
	OptionHideFields        = "hideFields"
	OptionFields            = "fields"
	OptionPaginationEnabled = "paginationEnabled"
	OptionItemsPerPage      = "itemsPerPage"
	OptionMaxPages          = "maxPages"
	OptionCurrentPage       = "currentPage"
	OptionPaginateByParam   = "paginateByParam"
	OptionPageParam         = "pageParam"
)

// GridDefaults returns a fresh copy of the built-in grid options.
func GridDefaults() settings.Tree {
	return settings.Tree{
		OptionHideFields:        "",
		OptionFields:            "",
		OptionPaginationEnabled: false,
		OptionItemsPerPage:      10,
		OptionMaxPages:          0,
		OptionCurrentPage:       1,
		OptionPaginateByParam:   "page_size",
		OptionPageParam:         "page",
	}
}

// Defaults is the component's settings provider. The knockout URL depends
// on the live DEBUG setting, so it must run after DEBUG is in place.
func Defaults(live settings.Reader) settings.Tree {
	knockout := KnockoutURL
	if isDebug(live) {
		knockout = KnockoutDebugURL
	}

	return settings.Tree{
		SettingKnockoutURL: knockout,
		SettingUI:          DefaultUI,
		SettingGrid:        GridDefaults(),
		SettingGrids:       settings.Tree{},
	}
}

func isDebug(live settings.Reader) bool {
	if live == nil {
		return false
	}

	v, _ := live.Get(SettingDebug)
	debug, _ := v.(bool)
	return debug
}
