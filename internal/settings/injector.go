// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"fmt"

	"github.com/MKhiriev/go-restviews/internal/logger"
)

// Injector folds component defaults into a [Site].
type Injector struct {
	site     *Site
	resolver Resolver

	logger *logger.Logger
}

// NewInjector returns an injector that resolves defaults through resolver
// and writes them into site.
func NewInjector(site *Site, resolver Resolver, logger *logger.Logger) *Injector {
	return &Injector{
		site:     site,
		resolver: resolver,
		logger:   logger,
	}
}

// Inject resolves the defaults of component and applies them to the site.
//
// For every setting name in the defaults, in sorted order:
//  1. the value is recorded in the defaults registry, replacing any earlier
//     component's value;
//  2. a setting the live store lacks is added;
//  3. a tree default meeting a tree live value is merged into it, the live
//     value winning every leaf conflict;
//  4. anything else already in the live store is left untouched.
//
// A component without defaults is a silent no-op. Other resolution and merge
// failures are returned wrapped in [ErrComponentDefaults] and leave the site
// as it was for the failing setting.
func (i *Injector) Inject(component string) error {
	i.site.mu.Lock()
	defer i.site.mu.Unlock()

	defaults, found, err := i.resolver.Resolve(component, i.site.Live)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrComponentDefaults, component, err)
	}
	if !found {
		return nil
	}

	var added, merged, kept int
	for _, name := range defaults.Keys() {
		if !IsSettingName(name) {
			continue
		}

		value, err := cloneValue(defaults[name], visitStack{}, []string{name})
		if err != nil {
			return fmt.Errorf("%w %q: %w", ErrComponentDefaults, component, err)
		}

		// Nothing is written until the new live value is fully computed, so a
		// failure leaves both the registry and the live store as they were.
		current, ok := i.site.Live.Get(name)
		if !ok {
			live, err := cloneValue(value, visitStack{}, []string{name})
			if err != nil {
				return fmt.Errorf("%w %q: %w", ErrComponentDefaults, component, err)
			}
			i.site.Defaults.Set(name, value)
			i.site.Live.Set(name, live)
			added++
			continue
		}

		defaultTree, defaultIsTree := AsTree(value)
		liveTree, liveIsTree := AsTree(current)
		if !defaultIsTree || !liveIsTree {
			i.site.Defaults.Set(name, value)
			kept++
			continue
		}

		result, err := mergeDefaults(name, liveTree, defaultTree)
		if err != nil {
			return fmt.Errorf("%w %q: %w", ErrComponentDefaults, component, err)
		}
		i.site.Defaults.Set(name, value)
		i.site.Live.Set(name, result)
		merged++
	}

	i.logger.Debug().
		Str("component", component).
		Int("added", added).
		Int("merged", merged).
		Int("kept", kept).
		Msg("component defaults injected")

	return nil
}

// mergeDefaults merges defaults into a copy of live, leaving live untouched
// when the merge fails.
func mergeDefaults(name string, live, defaults Tree) (Tree, error) {
	target, err := cloneValue(live, visitStack{}, []string{name})
	if err != nil {
		return nil, err
	}

	return Merge(target.(Tree), defaults, WithPath(name))
}

// InjectAll injects the given components one after another and stops at the
// first error.
func (i *Injector) InjectAll(components ...string) error {
	for _, component := range components {
		if err := i.Inject(component); err != nil {
			return err
		}
	}

	return nil
}
