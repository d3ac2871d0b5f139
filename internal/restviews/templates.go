package restviews

import (
	"embed"
	"io/fs"
)

// Template names inside [Templates].
const (
	HeadTemplate = "restviews/head.html"
	GridTemplate = "restviews/grid.html"
)

//go:embed templates
var templates embed.FS

// Templates returns the component's templates rooted so that names start
// with "restviews/".
func Templates() fs.FS {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		// "templates" is embedded above and always present.
		panic(err)
	}
	return sub
}
