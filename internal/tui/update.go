package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// Update handles key presses and resolution results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case resolvedMsg:
		if !sameRequest(msg.request, m.Request()) {
			return m, nil
		}
		m.result = msg.result
		m.bps = msg.bps
		m.err = msg.err
		m.resolved = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.resetOptions()
				return m, m.resolveCmd()
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.components)-1 {
				m.cursor++
				m.resetOptions()
				return m, m.resolveCmd()
			}
		case key.Matches(msg, m.keys.Variant):
			variants, _ := m.options()
			m.variant = cycle(m.variant, len(variants))
			return m, m.resolveCmd()
		case key.Matches(msg, m.keys.Size):
			_, sizes := m.options()
			m.size = cycle(m.size, len(sizes))
			return m, m.resolveCmd()
		case key.Matches(msg, m.keys.Scheme):
			m.scheme = cycle(m.scheme, len(m.schemes))
			return m, m.resolveCmd()
		case key.Matches(msg, m.keys.Mode):
			m.runtime.ToggleMode(context.Background())
			return m, m.resolveCmd()
		case key.Matches(msg, m.keys.Theme):
			if len(m.themes) < 2 {
				return m, nil
			}
			next := (m.themeIndex + 1) % len(m.themes)
			if err := m.runtime.SwapTheme(context.Background(), m.themes[next]); err != nil {
				m.err = err
				return m, nil
			}
			m.themeIndex = next
			m.loadTheme(m.themes[next])
			return m, m.resolveCmd()
		case key.Matches(msg, m.keys.Reset):
			m.resetOptions()
			m.scheme = -1
			return m, m.resolveCmd()
		}
	}

	return m, nil
}

func (m *Model) loadTheme(t *theme.Theme) {
	selected := m.Selected()
	m.components = t.Components.Names()
	m.schemes = t.ColorSchemes()
	m.cursor = 0
	for i, name := range m.components {
		if name == selected {
			m.cursor = i
		}
	}
	m.scheme = -1
	m.err = nil
	m.resetOptions()
}

func (m *Model) resetOptions() {
	m.variant = -1
	m.size = -1
	m.resolved = false
}
