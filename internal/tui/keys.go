package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Variant key.Binding
	Size    key.Binding
	Scheme  key.Binding
	Mode    key.Binding
	Theme   key.Binding
	Reset   key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Variant: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "variant"),
		),
		Size: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "size"),
		),
		Scheme: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "color scheme"),
		),
		Mode: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle mode"),
		),
		Theme: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next theme"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Variant, k.Size, k.Scheme, k.Mode, k.Theme, k.Reset, k.Quit}
}
