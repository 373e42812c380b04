package registry

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
)

var (
	// ErrNotFound is returned for unknown theme IDs.
	ErrNotFound = errors.New("theme not registered")
	// ErrDuplicate is returned when an ID is already registered.
	ErrDuplicate = errors.New("theme already registered")
)

// Registry persists named theme locations.
type Registry struct {
	path    string
	mu      sync.RWMutex
	version string
	themes  []Entry
}

// NewRegistry opens the registry at path, starting empty when the file
// does not exist yet.
func NewRegistry(path string) (*Registry, error) {
	r := &Registry{path: path, version: fileVersion}

	if err := ensureDir(path); err != nil {
		return nil, err
	}

	if err := r.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		r.themes = []Entry{}
	}

	return r, nil
}

// Path returns the registry file location.
func (r *Registry) Path() string {
	return r.path
}

// Load reads the registry from disk.
func (r *Registry) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var file File
	if err := readJSON(r.path, &file); err != nil {
		return err
	}

	r.version = file.Version
	r.themes = file.Themes
	return nil
}

// Save writes the registry to disk atomically.
func (r *Registry) Save() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return writeJSON(r.path, File{Version: r.version, Themes: r.themes})
}

// List returns registered themes sorted by ID.
func (r *Registry) List() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Entry, len(r.themes))
	copy(result, r.themes)
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Get returns the entry registered under id.
func (r *Registry) Get(id string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.themes {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Add registers a new theme.
func (r *Registry) Add(e Entry) error {
	if err := ValidateThemeID(e.ID); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.themes {
		if existing.ID == e.ID {
			return fmt.Errorf("%w: %s", ErrDuplicate, e.ID)
		}
	}

	r.themes = append(r.themes, e)
	return nil
}

// Update replaces an existing entry.
func (r *Registry) Update(e Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.themes {
		if existing.ID == e.ID {
			r.themes[i] = e
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, e.ID)
}

// Remove deletes the entry registered under id.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.themes {
		if e.ID == id {
			r.themes = append(r.themes[:i], r.themes[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}
