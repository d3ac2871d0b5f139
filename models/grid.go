package models

import "html/template"

// GridSummary describes one grid declared in the RESTVIEWS_GRIDS setting.
type GridSummary struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// GridPage holds the rendered fragments of a page showing a single grid.
type GridPage struct {
	Name string
	URL  string
	Head template.HTML
	Grid template.HTML
}
