// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML or JSON settings document into a Tree. JSON files
// go through the YAML decoder too, which keeps integers as int instead of
// float64. An empty file yields an empty tree.
//
// Errors from opening the file are wrapped, so errors.Is(err,
// fs.ErrNotExist) still identifies a missing file.
func LoadFile(path string) (Tree, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSettingsFile, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening settings file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses a single YAML (or JSON) document from r. Nested mappings
// come back as Tree; YAML keys that are not strings (numbers, booleans) are
// converted with fmt.Sprint, so every mapping merges and encodes as a tree.
func Decode(r io.Reader) (Tree, error) {
	var doc map[string]any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Tree{}, nil
		}
		return nil, fmt.Errorf("error decoding settings: %w", err)
	}

	if doc == nil {
		return Tree{}, nil
	}

	return normalizeValue(doc).(Tree), nil
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(Tree, len(t))
		for k, child := range t {
			out[k] = normalizeValue(child)
		}
		return out
	case map[any]any:
		out := make(Tree, len(t))
		for k, child := range t {
			out[fmt.Sprint(k)] = normalizeValue(child)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return v
	}
}

// SettingNames returns a shallow copy of t holding only the top-level keys
// that pass [IsSettingName].
func SettingNames(t Tree) Tree {
	out := make(Tree, len(t))
	for k, v := range t {
		if IsSettingName(k) {
			out[k] = v
		}
	}

	return out
}
