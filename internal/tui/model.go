// Package tui is an interactive explorer that resolves component styles as
// the user cycles through variants, sizes, color schemes and color modes.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/themekit/internal/colormode"
	"github.com/alexisbeaulieu97/themekit/internal/engine"
	"github.com/alexisbeaulieu97/themekit/internal/responsive"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// resolvedMsg carries the outcome of a background resolution.
type resolvedMsg struct {
	request engine.Request
	result  engine.Result
	bps     responsive.Breakpoints
	err     error
}

// Model is the explorer state. Option indexes of -1 mean "use the
// component default".
type Model struct {
	runtime *engine.Runtime
	keys    keyMap

	themes     []*theme.Theme
	themeIndex int

	components []string
	schemes    []string
	cursor     int
	variant    int
	size       int
	scheme     int

	result   engine.Result
	bps      responsive.Breakpoints
	err      error
	resolved bool

	width      int
	height     int
	useUnicode bool
	quitting   bool
}

// NewModel builds an explorer over runtime.
func NewModel(runtime *engine.Runtime, useUnicode bool) (Model, error) {
	snap, err := runtime.Snapshot()
	if err != nil {
		return Model{}, err
	}
	t := snap.Engine.Theme()

	return Model{
		runtime:    runtime,
		keys:       defaultKeyMap(),
		components: t.Components.Names(),
		schemes:    t.ColorSchemes(),
		variant:    -1,
		size:       -1,
		scheme:     -1,
		useUnicode: useUnicode,
	}, nil
}

// WithThemes sets the themes the next-theme key rotates through. The
// runtime's current theme should be the first entry.
func (m Model) WithThemes(themes ...*theme.Theme) Model {
	m.themes = themes
	m.themeIndex = 0
	return m
}

// Init resolves the first component.
func (m Model) Init() tea.Cmd {
	return m.resolveCmd()
}

// Selected returns the component under the cursor, or "".
func (m Model) Selected() string {
	if m.cursor < 0 || m.cursor >= len(m.components) {
		return ""
	}
	return m.components[m.cursor]
}

// Mode returns the color mode styles currently resolve in.
func (m Model) Mode() colormode.ColorMode {
	return m.runtime.Modes().Current()
}

// Request returns the request for the current selection.
func (m Model) Request() engine.Request {
	req := engine.Request{Component: m.Selected()}
	variants, sizes := m.options()
	if m.variant >= 0 && m.variant < len(variants) {
		req.Variant = variants[m.variant]
	}
	if m.size >= 0 && m.size < len(sizes) {
		req.Size = sizes[m.size]
	}
	if m.scheme >= 0 && m.scheme < len(m.schemes) {
		req.ColorScheme = m.schemes[m.scheme]
	}
	return req
}

// options returns the variant and size names of the selected component.
func (m Model) options() ([]string, []string) {
	snap, err := m.runtime.Snapshot()
	if err != nil {
		return nil, nil
	}
	cfg, err := snap.Engine.Theme().Components.Get(m.Selected())
	if err != nil {
		return nil, nil
	}
	return cfg.VariantNames(), cfg.SizeNames()
}

func (m Model) resolveCmd() tea.Cmd {
	if m.Selected() == "" {
		return nil
	}
	req := m.Request()
	runtime := m.runtime
	return func() tea.Msg {
		snap, err := runtime.Snapshot()
		if err != nil {
			return resolvedMsg{request: req, err: err}
		}
		result, err := snap.Resolve(context.Background(), req)
		return resolvedMsg{request: req, result: result, bps: snap.Engine.Breakpoints(), err: err}
	}
}

func sameRequest(a, b engine.Request) bool {
	return a.Component == b.Component &&
		a.Variant == b.Variant &&
		a.Size == b.Size &&
		a.ColorScheme == b.ColorScheme
}

// cycle advances an option index through -1 (default) and 0..n-1.
func cycle(current, n int) int {
	if n == 0 {
		return -1
	}
	current++
	if current >= n {
		return -1
	}
	return current
}
