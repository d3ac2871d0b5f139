package render

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// StaticAssets resolves asset paths against a static URL prefix, which may
// be a path ("/static/") or an absolute URL ("https://cdn.example.com/").
type StaticAssets struct {
	base string
}

func NewStaticAssets(base string) (*StaticAssets, error) {
	if strings.TrimSpace(base) == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidStaticURL)
	}

	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStaticURL, err)
	}

	return &StaticAssets{base: base}, nil
}

// URL joins path onto the static prefix. Paths climbing out of the prefix
// are rejected.
func (a *StaticAssets) URL(path string) (string, error) {
	path = strings.TrimLeft(path, "/")
	if path == "" || slices.Contains(strings.Split(path, "/"), "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidAssetPath, path)
	}

	joined, err := url.JoinPath(a.base, path)
	if err != nil {
		return "", fmt.Errorf("error resolving asset %q: %w", path, err)
	}

	return joined, nil
}
