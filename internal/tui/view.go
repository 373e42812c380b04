package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/responsive"
	"github.com/alexisbeaulieu97/themekit/internal/style"
)

// View renders the component list beside the resolved style.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := titleStyle.Render(fmt.Sprintf("themekit %s %s", m.bullet(), m.title()))
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.listView(), panelStyle.Render(m.detailView()))

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.helpView())
}

func (m Model) title() string {
	snap, err := m.runtime.Snapshot()
	if err != nil {
		return "explorer"
	}
	return fmt.Sprintf("%s (%s)", snap.Engine.Theme().Name, snap.Mode)
}

func (m Model) bullet() string {
	if m.useUnicode {
		return "•"
	}
	return "-"
}

func (m Model) pointer() string {
	if m.useUnicode {
		return "›"
	}
	return ">"
}

func (m Model) listView() string {
	lines := []string{sectionStyle.Render("Components")}
	for i, name := range m.components {
		if i == m.cursor {
			lines = append(lines, selectedStyle.Render(m.pointer()+" "+name))
			continue
		}
		lines = append(lines, itemStyle.Render("  "+name))
	}
	return strings.Join(lines, "\n")
}

func (m Model) detailView() string {
	req := m.Request()
	lines := []string{
		sectionStyle.Render("Request"),
		field("variant", orDefault(req.Variant)),
		field("size", orDefault(req.Size)),
		field("colorScheme", orDefault(req.ColorScheme)),
		sectionStyle.Render("Style"),
	}

	switch {
	case m.err != nil:
		lines = append(lines, errorStyle.Render(m.err.Error()))
	case !m.resolved:
		lines = append(lines, keyStyle.Render("resolving..."))
	default:
		lines = append(lines, styleLines(m.result.Style, m.bps)...)
	}
	return strings.Join(lines, "\n")
}

func (m Model) helpView() string {
	parts := make([]string, 0, len(m.keys.help()))
	for _, b := range m.keys.help() {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return helpStyle.Render(strings.Join(parts, "  "))
}

// styleLines renders obj as "path: value" lines. Media queries follow the
// plain properties of their level in breakpoint order.
func styleLines(obj style.Object, bps responsive.Breakpoints) []string {
	var lines []string
	var walk func(prefix string, node style.Object)
	walk = func(prefix string, node style.Object) {
		for _, key := range bps.OrderedKeys(node) {
			path := key
			if prefix != "" {
				path = prefix + "." + key
			}
			if nested, ok := style.AsObject(node[key]); ok {
				walk(path, nested)
				continue
			}
			lines = append(lines, field(path, style.FormatValue(node[key])))
		}
	}
	walk("", obj)

	if len(lines) == 0 {
		return []string{keyStyle.Render("(empty)")}
	}
	return lines
}

func field(k, v string) string {
	return keyStyle.Render(k+": ") + valueStyle.Render(v)
}

func orDefault(v string) string {
	if v == "" {
		return "(default)"
	}
	return v
}
