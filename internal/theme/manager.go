package theme

import "sync"

// Manager coordinates access to the active Theme.
type Manager struct {
	mu    sync.RWMutex
	theme *Theme
}

// NewManager allocates a Manager holding theme, or the default theme when nil.
func NewManager(theme *Theme) *Manager {
	if theme == nil {
		theme = Default()
	}
	return &Manager{theme: theme}
}

// Current returns the active theme. Themes are immutable, so the pointer is
// safe to use after the manager swaps.
func (m *Manager) Current() *Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

// Swap replaces the active theme and returns the previous one.
func (m *Manager) Swap(theme *Theme) *Theme {
	m.mu.Lock()
	defer m.mu.Unlock()
	previous := m.theme
	m.theme = theme
	return previous
}
