// Package colormode models the light/dark display preference and the binary
// selector used by mode-dependent style values.
package colormode

import (
	"strings"
	"sync/atomic"

	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// ColorMode is the active display preference.
type ColorMode string

const (
	Light ColorMode = "light"
	Dark  ColorMode = "dark"
)

// Valid reports whether m is light or dark.
func (m ColorMode) Valid() bool {
	return m == Light || m == Dark
}

// Opposite returns the other mode. Invalid modes toggle to Light.
func (m ColorMode) Opposite() ColorMode {
	if m == Light {
		return Dark
	}
	return Light
}

func (m ColorMode) String() string {
	return string(m)
}

// Parse converts user input into a ColorMode.
func Parse(raw string) (ColorMode, error) {
	mode := ColorMode(strings.ToLower(strings.TrimSpace(raw)))
	if !mode.Valid() {
		return "", themeerrors.NewMissingColorModeError(raw)
	}
	return mode, nil
}

// Selector picks between a light and a dark value once the mode is known.
type Selector struct {
	Light any
	Dark  any
}

// Mode builds a Selector; call Select once the current mode is available.
func Mode(light, dark any) Selector {
	return Selector{Light: light, Dark: dark}
}

// Select returns the value for mode. There is no default: an empty or
// unknown mode fails with ErrMissingColorMode.
func (s Selector) Select(mode ColorMode) (any, error) {
	switch mode {
	case Light:
		return s.Light, nil
	case Dark:
		return s.Dark, nil
	default:
		return nil, themeerrors.NewMissingColorModeError(string(mode))
	}
}

// MustSelect is Select for callers that already validated mode.
func (s Selector) MustSelect(mode ColorMode) any {
	value, err := s.Select(mode)
	if err != nil {
		panic(err)
	}
	return value
}

// Func returns Select as a plain function value for embedding in style thunks.
func (s Selector) Func() func(ColorMode) (any, error) {
	return s.Select
}

// Manager holds the process-wide current mode. Reads are lock-free and
// return a consistent snapshot; writes are expected only on user toggles.
type Manager struct {
	current atomic.Value
}

// NewManager creates a Manager starting at initial. Invalid input starts at Light.
func NewManager(initial ColorMode) *Manager {
	if !initial.Valid() {
		initial = Light
	}
	m := &Manager{}
	m.current.Store(initial)
	return m
}

// Current returns the active mode.
func (m *Manager) Current() ColorMode {
	if m == nil {
		return ""
	}
	mode, _ := m.current.Load().(ColorMode)
	return mode
}

// Set replaces the active mode.
func (m *Manager) Set(mode ColorMode) error {
	if !mode.Valid() {
		return themeerrors.NewMissingColorModeError(string(mode))
	}
	m.current.Store(mode)
	return nil
}

// Toggle flips the active mode and returns the new value.
func (m *Manager) Toggle() ColorMode {
	for {
		old := m.Current()
		next := old.Opposite()
		if m.current.CompareAndSwap(old, next) {
			return next
		}
	}
}
