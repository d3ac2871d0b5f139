package render

import (
	"html/template"

	"golang.org/x/text/language"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/render_mock.go -package=mock

// Renderer executes a named template.
type Renderer interface {
	Render(name string, data any) (template.HTML, error)
}

// AssetResolver maps a relative asset path such as "restviews/js/rvModel.js"
// to the URL a browser should load it from.
type AssetResolver interface {
	URL(path string) (string, error)
}

// Translator formats a message key in the active language.
type Translator interface {
	Translate(key string, args ...any) string
	Language() language.Tag
}
