package render

import "errors"

var (
	ErrTemplateNotFound    = errors.New("template not found")
	ErrRenderTemplate      = errors.New("error rendering template")
	ErrParseTemplates      = errors.New("error parsing templates")
	ErrInvalidAssetPath    = errors.New("invalid asset path")
	ErrInvalidStaticURL    = errors.New("invalid static url")
	ErrUnsupportedLanguage = errors.New("unsupported language")
)
