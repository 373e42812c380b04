// Package palette generates and previews color hue scales.
package palette

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/themekit/internal/style"
	"github.com/alexisbeaulieu97/themekit/internal/tokens"
)

// BaseShade is the shade a generated scale is anchored on.
const BaseShade = "500"

var (
	white = colorful.Color{R: 1, G: 1, B: 1}
	black = colorful.Color{R: 0, G: 0, B: 0}
)

// tints blend toward white, shades toward black, both in Lab space.
var mix = map[string]struct {
	target colorful.Color
	amount float64
}{
	"50":  {white, 0.92},
	"100": {white, 0.80},
	"200": {white, 0.62},
	"300": {white, 0.44},
	"400": {white, 0.22},
	"600": {black, 0.14},
	"700": {black, 0.30},
	"800": {black, 0.46},
	"900": {black, 0.60},
}

// Generate builds a complete hue scale with base as the 500 shade.
func Generate(base string) (tokens.Tree, error) {
	anchor, err := colorful.Hex(normalizeHex(base))
	if err != nil {
		return nil, fmt.Errorf("invalid base color %q: %w", base, err)
	}

	scale := make(tokens.Tree, len(tokens.HueShades))
	for _, shade := range tokens.HueShades {
		if shade == BaseShade {
			scale[shade] = anchor.Hex()
			continue
		}
		m := mix[shade]
		scale[shade] = anchor.BlendLab(m.target, m.amount).Clamped().Hex()
	}
	return scale, nil
}

func normalizeHex(value string) string {
	v := strings.TrimSpace(value)
	if !strings.HasPrefix(v, "#") {
		v = "#" + v
	}
	if len(v) == 4 {
		v = fmt.Sprintf("#%c%c%c%c%c%c", v[1], v[1], v[2], v[2], v[3], v[3])
	}
	return strings.ToLower(v)
}

var keywords = map[string]struct{}{
	"transparent":  {},
	"currentcolor": {},
	"inherit":      {},
	"initial":      {},
	"unset":        {},
	"black":        {},
	"white":        {},
}

var functions = []string{"rgb(", "rgba(", "hsl(", "hsla(", "var("}

// ValidColor reports whether value is a usable CSS color literal.
func ValidColor(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return false
	}
	if _, ok := keywords[v]; ok {
		return true
	}
	for _, fn := range functions {
		if strings.HasPrefix(v, fn) && strings.HasSuffix(v, ")") {
			return true
		}
	}
	if !strings.HasPrefix(v, "#") {
		return false
	}
	switch len(v) {
	case 4, 7:
		_, err := colorful.Hex(normalizeHex(v))
		return err == nil
	case 9:
		_, err := colorful.Hex(v[:7])
		return err == nil
	default:
		return false
	}
}

// Contrast returns the foreground ("#000000" or "#ffffff") readable on hex.
func Contrast(hex string) string {
	c, err := colorful.Hex(normalizeHex(hex))
	if err != nil {
		return "#000000"
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}

// Swatches renders a hue scale as a row of colored blocks labeled by shade.
// Shades that are missing or not hex colors render as blank cells.
func Swatches(name string, scale tokens.Tree) string {
	label := lipgloss.NewStyle().Bold(true).Width(12)
	blank := lipgloss.NewStyle().Width(6).Align(lipgloss.Center).Faint(true)

	cells := []string{label.Render(name)}
	for _, shade := range tokens.HueShades {
		value := style.FormatValue(scale[shade])
		if _, err := colorful.Hex(normalizeHex(value)); err != nil || value == "" {
			cells = append(cells, blank.Render(shade))
			continue
		}
		cell := lipgloss.NewStyle().
			Width(6).
			Align(lipgloss.Center).
			Background(lipgloss.Color(normalizeHex(value))).
			Foreground(lipgloss.Color(Contrast(value)))
		cells = append(cells, cell.Render(shade))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
