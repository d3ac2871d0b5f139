package http

import (
	"embed"
	"io/fs"
)

// Page template names inside [Pages].
const (
	indexPage = "pages/index.html"
	gridPage  = "pages/grid.html"
)

//go:embed templates
var templates embed.FS

// Pages returns the site page templates rooted so that names start with
// "pages/".
func Pages() fs.FS {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}
