// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// Provider builds a component's defaults. It may consult the live settings,
// for instance to pick debug variants of URLs.
type Provider func(live Reader) Tree

// StaticResolver resolves components registered in process by name.
type StaticResolver map[string]Provider

// Resolve implements [Resolver].
func (r StaticResolver) Resolve(component string, live Reader) (Tree, bool, error) {
	provider, ok := r[component]
	if !ok || provider == nil {
		return nil, false, nil
	}

	return provider(live), true, nil
}

// settingsFileNames lists the candidate defaults files inside a component
// directory, in lookup order.
var settingsFileNames = []string{"settings.yaml", "settings.yml", "settings.json"}

// FileResolver resolves components from a directory tree laid out as
// <Dir>/<component>/settings.{yaml,yml,json}.
type FileResolver struct {
	Dir string
}

// NewFileResolver returns a resolver rooted at dir.
func NewFileResolver(dir string) *FileResolver {
	return &FileResolver{Dir: dir}
}

// Resolve implements [Resolver]. A missing directory or file means the
// component has no defaults.
func (r *FileResolver) Resolve(component string, _ Reader) (Tree, bool, error) {
	if r.Dir == "" {
		return nil, false, nil
	}
	if err := validateComponentName(component); err != nil {
		return nil, false, err
	}

	for _, name := range settingsFileNames {
		path := filepath.Join(r.Dir, component, name)

		tree, err := LoadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, false, err
		}

		return tree, true, nil
	}

	return nil, false, nil
}

func validateComponentName(component string) error {
	if component == "" || component == "." || component == ".." ||
		strings.ContainsAny(component, `/\`) || component != filepath.Base(component) {
		return fmt.Errorf("%w: %q", ErrInvalidComponentName, component)
	}

	return nil
}

// ChainResolver asks each resolver in turn and returns the first hit.
type ChainResolver []Resolver

// Resolve implements [Resolver]. An error from any link stops the chain.
func (c ChainResolver) Resolve(component string, live Reader) (Tree, bool, error) {
	for _, r := range c {
		tree, found, err := r.Resolve(component, live)
		if err != nil {
			return nil, false, err
		}
		if found {
			return tree, true, nil
		}
	}

	return nil, false, nil
}
