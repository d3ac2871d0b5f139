package settings

import "sync"

// Reader is a read-only view of the live settings.
type Reader interface {
	// Has reports whether a setting with the given name is defined.
	Has(name string) bool
	// Get returns the value of a setting and whether it is defined.
	Get(name string) (any, bool)
}

// Store is the live settings object consulted by the running application.
type Store interface {
	Reader
	// Set defines or replaces a setting.
	Set(name string, value any)
	// Snapshot returns a deep copy of every setting.
	Snapshot() (Tree, error)
}

// MapStore is a [Store] backed by a [Tree]. It is safe for concurrent use.
type MapStore struct {
	mu     sync.RWMutex
	values Tree
}

// NewMapStore returns a store holding initial. The tree is used as is, not
// copied; callers hand over ownership.
func NewMapStore(initial Tree) *MapStore {
	if initial == nil {
		initial = Tree{}
	}

	return &MapStore{values: initial}
}

func (s *MapStore) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.values[name]
	return ok
}

func (s *MapStore) Get(name string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[name]
	return v, ok
}

func (s *MapStore) Set(name string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[name] = value
}

// Snapshot returns a deep copy of all live settings.
func (s *MapStore) Snapshot() (Tree, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Clone(s.values)
}

// Defaults is the global defaults registry: the last default value seen per
// setting name, independent of what the live store actually uses.
type Defaults struct {
	mu     sync.RWMutex
	values Tree
}

// NewDefaults returns an empty registry.
func NewDefaults() *Defaults {
	return &Defaults{values: Tree{}}
}

// Set records value as the default for name, replacing any earlier one.
func (d *Defaults) Set(name string, value any) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.values[name] = value
}

// Get returns the recorded default for name.
func (d *Defaults) Get(name string) (any, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	v, ok := d.values[name]
	return v, ok
}

// Snapshot returns a deep copy of the registry.
func (d *Defaults) Snapshot() (Tree, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return Clone(d.values)
}

// Site is the configuration sink shared by every component during startup.
// It is built once by the caller and passed to every injection.
type Site struct {
	// Live holds the settings the application reads.
	Live Store
	// Defaults records every component default that was injected.
	Defaults *Defaults

	// mu serialises injections so that one component's defaults land
	// atomically with respect to another's.
	mu sync.Mutex
}

// NewSite returns a site over the given live store and an empty registry.
func NewSite(live Store) *Site {
	return &Site{
		Live:     live,
		Defaults: NewDefaults(),
	}
}
