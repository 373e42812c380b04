package theme

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/themekit/internal/styleconfig"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Registry maps component names to their style configs.
type Registry struct {
	mu      sync.RWMutex
	configs map[string]styleconfig.Config
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{configs: make(map[string]styleconfig.Config)}
}

// Register adds or replaces the config for name.
func (r *Registry) Register(name string, cfg styleconfig.Config) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return themeerrors.NewValidationError("components", "component name cannot be empty", nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs[name] = cfg
	return nil
}

// Get returns the config for name.
func (r *Registry) Get(name string) (styleconfig.Config, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg, ok := r.configs[name]
	if !ok {
		return styleconfig.Config{}, fmt.Errorf("%w: %q", themeerrors.ErrUnknownComponent, name)
	}
	return cfg, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.configs[name]
	return ok
}

// Names returns registered component names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.configs))
	for name := range r.configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered components.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.configs)
}

// Clone returns an independent registry with the same entries.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := NewRegistry()
	for name, cfg := range r.configs {
		out.configs[name] = cfg
	}
	return out
}
