// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
	"unicode"
)

// Tree is a possibly nested configuration mapping. Values are scalars
// (strings, numbers, booleans, or opaque leaves such as lists) or further
// trees. Both Tree and plain map[string]any values are treated as nested
// trees, so documents decoded from YAML or JSON can be used directly.
type Tree map[string]any

// AsTree reports whether v is a nested configuration tree and returns it.
// The returned Tree shares storage with v.
func AsTree(v any) (Tree, bool) {
	switch t := v.(type) {
	case Tree:
		return t, true
	case map[string]any:
		return Tree(t), true
	default:
		return nil, false
	}
}

// Keys returns the keys of t in sorted order.
func (t Tree) Keys() []string {
	return slices.Sorted(maps.Keys(t))
}

// Lookup walks a dotted path such as "RESTVIEWS_GRID.itemsPerPage" and
// returns the value found there.
func (t Tree) Lookup(path string) (any, bool) {
	var cur any = t
	for _, key := range strings.Split(path, ".") {
		node, ok := AsTree(cur)
		if !ok {
			return nil, false
		}
		if cur, ok = node[key]; !ok {
			return nil, false
		}
	}

	return cur, true
}

// Clone returns a deep copy of t. Nested maps are normalised to Tree.
// A tree that contains itself yields [ErrCyclicConfiguration].
func Clone(t Tree) (Tree, error) {
	if t == nil {
		return nil, nil
	}

	v, err := cloneValue(t, visitStack{}, nil)
	if err != nil {
		return nil, err
	}

	return v.(Tree), nil
}

// Equal reports whether a and b hold the same configuration. Trees are
// compared key by key regardless of whether they are typed as Tree or
// map[string]any; other values fall back to reflect.DeepEqual.
//
// Equal expects acyclic input.
func Equal(a, b any) bool {
	at, aIsTree := AsTree(a)
	bt, bIsTree := AsTree(b)
	if aIsTree || bIsTree {
		if !aIsTree || !bIsTree || len(at) != len(bt) {
			return false
		}
		for k, av := range at {
			bv, ok := bt[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	}

	as, aIsList := a.([]any)
	bs, bIsList := b.([]any)
	if aIsList && bIsList {
		return slices.EqualFunc(as, bs, Equal)
	}

	return reflect.DeepEqual(a, b)
}

// IsSettingName reports whether name follows the setting naming convention:
// it has at least one cased letter and every cased letter is upper-case.
// Digits and underscores are allowed anywhere.
func IsSettingName(name string) bool {
	cased := false
	for _, r := range name {
		switch {
		case unicode.IsLower(r):
			return false
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			cased = true
		}
	}

	return cased
}

// visitStack holds the maps on the current recursion path.
type visitStack map[uintptr]struct{}

func (s visitStack) enter(t Tree, path []string) error {
	if t == nil {
		return nil
	}

	p := reflect.ValueOf(t).Pointer()
	if _, seen := s[p]; seen {
		return fmt.Errorf("%w at %s", ErrCyclicConfiguration, formatPath(path))
	}
	s[p] = struct{}{}

	return nil
}

func (s visitStack) leave(t Tree) {
	if t == nil {
		return
	}
	delete(s, reflect.ValueOf(t).Pointer())
}

func cloneValue(v any, stack visitStack, path []string) (any, error) {
	if t, ok := AsTree(v); ok {
		if t == nil {
			return Tree(nil), nil
		}
		if err := stack.enter(t, path); err != nil {
			return nil, err
		}
		defer stack.leave(t)

		out := make(Tree, len(t))
		for k, child := range t {
			c, err := cloneValue(child, stack, appendPath(path, k))
			if err != nil {
				return nil, err
			}
			out[k] = c
		}
		return out, nil
	}

	if list, ok := v.([]any); ok {
		out := make([]any, len(list))
		for i, item := range list {
			c, err := cloneValue(item, stack, appendPath(path, fmt.Sprintf("[%d]", i)))
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	}

	return v, nil
}

func appendPath(path []string, key string) []string {
	return append(slices.Clip(path), key)
}

func formatPath(path []string) string {
	if len(path) == 0 {
		return "<root>"
	}

	return strings.Join(path, ".")
}
