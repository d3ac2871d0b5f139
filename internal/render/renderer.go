package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"slices"
	"strings"
)

// TemplateRenderer holds every *.html file of a file system parsed into one
// template set. Templates are addressed by their slash-separated path, for
// example "restviews/grid.html".
type TemplateRenderer struct {
	templates *template.Template
}

// NewTemplateRenderer parses all *.html files below root in fsys. The
// templates can call {{t "key" args...}}, {{static "path"}} and {{lang}},
// the BCP 47 tag of the active language.
func NewTemplateRenderer(fsys fs.FS, root string, assets AssetResolver, translator Translator) (*TemplateRenderer, error) {
	templates := template.New("").Funcs(template.FuncMap{
		"t":      translator.Translate,
		"static": assets.URL,
		"lang":   func() string { return translator.Language().String() },
	})

	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".html" {
			return nil
		}

		body, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}

		name := p
		if root != "." {
			name = strings.TrimPrefix(strings.TrimPrefix(p, root), "/")
		}
		if _, err := templates.New(name).Parse(string(body)); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseTemplates, err)
	}

	return &TemplateRenderer{templates: templates}, nil
}

func (r *TemplateRenderer) Render(name string, data any) (template.HTML, error) {
	if r.templates.Lookup(name) == nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrRenderTemplate, name, err)
	}

	// html/template has already escaped the output for its context.
	return template.HTML(buf.String()), nil
}

// Names lists the parsed template names in sorted order.
func (r *TemplateRenderer) Names() []string {
	names := make([]string, 0)
	for _, t := range r.templates.Templates() {
		if t.Name() != "" {
			names = append(names, t.Name())
		}
	}
	slices.Sort(names)
	return names
}
