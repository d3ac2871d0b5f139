// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

// MergeOption adjusts the behaviour of [Merge].
type MergeOption func(*merger)

// WithOverwrite makes source values win scalar conflicts. Without it the
// target keeps every scalar it already holds.
func WithOverwrite() MergeOption {
	return func(m *merger) {
		m.overwrite = true
	}
}

// WithPath sets the key path that target and source are rooted at. It only
// affects error messages.
func WithPath(path ...string) MergeOption {
	return func(m *merger) {
		m.path = path
	}
}

// Merge folds source into target and returns target.
//
// For every key of source:
//   - a key missing from target, or holding nil there, receives a deep copy
//     of the source value;
//   - two trees are merged recursively and the result is written back;
//   - deep-equal values are left alone;
//   - two scalars keep the target value (see [WithOverwrite]);
//   - a tree meeting a scalar is replaced by a deep copy of the source value.
//
// Source is never modified and target never aliases any part of it. A nil
// target is replaced by a new Tree. Cyclic trees are reported as
// [ErrCyclicConfiguration].
func Merge(target, source Tree, opts ...MergeOption) (Tree, error) {
	m := &merger{
		targets: visitStack{},
		sources: visitStack{},
	}
	for _, opt := range opts {
		opt(m)
	}

	if target == nil {
		target = Tree{}
	}

	if err := m.merge(target, source, m.path); err != nil {
		return nil, err
	}

	return target, nil
}

type merger struct {
	overwrite bool
	path      []string

	targets visitStack
	sources visitStack
}

func (m *merger) merge(target, source Tree, path []string) error {
	if err := m.targets.enter(target, path); err != nil {
		return err
	}
	defer m.targets.leave(target)

	if err := m.sources.enter(source, path); err != nil {
		return err
	}
	defer m.sources.leave(source)

	for _, key := range source.Keys() {
		sv := source[key]
		keyPath := appendPath(path, key)

		tv, exists := target[key]
		if !exists || tv == nil {
			if err := m.adopt(target, key, sv, keyPath); err != nil {
				return err
			}
			continue
		}

		tt, targetIsTree := AsTree(tv)
		st, sourceIsTree := AsTree(sv)

		switch {
		case targetIsTree && sourceIsTree:
			if tt == nil {
				tt = Tree{}
			}
			if err := m.merge(tt, st, keyPath); err != nil {
				return err
			}
			target[key] = tt
		case targetIsTree != sourceIsTree:
			if err := m.adopt(target, key, sv, keyPath); err != nil {
				return err
			}
		case Equal(tv, sv):
			// same leaf value
		case m.overwrite:
			if err := m.adopt(target, key, sv, keyPath); err != nil {
				return err
			}
		}
	}

	return nil
}

func (m *merger) adopt(target Tree, key string, value any, path []string) error {
	c, err := cloneValue(value, m.sources, path)
	if err != nil {
		return err
	}
	target[key] = c

	return nil
}
