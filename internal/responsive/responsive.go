// Package responsive expands breakpoint-indexed values into ordered,
// media-conditioned style rules.
package responsive

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/themekit/internal/style"
	"github.com/alexisbeaulieu97/themekit/internal/tokens"
)

// Base is the implicit unconditional breakpoint.
const Base = "base"

const remBase = 16.0

// Breakpoint is a named minimum viewport width.
type Breakpoint struct {
	Name     string
	MinWidth string
	px       float64
}

// Breakpoints is ordered by ascending width; Base is always first.
type Breakpoints []Breakpoint

// DefaultBreakpoints mirrors the default theme scale.
func DefaultBreakpoints() Breakpoints {
	bps, _ := ParseBreakpoints(tokens.Tree{
		"sm":  "30em",
		"md":  "48em",
		"lg":  "62em",
		"xl":  "80em",
		"2xl": "96em",
	})
	return bps
}

// ParseBreakpoints orders a breakpoints token group by numeric width.
func ParseBreakpoints(tree tokens.Tree) (Breakpoints, error) {
	bps := Breakpoints{{Name: Base, MinWidth: "0em"}}
	for name, raw := range tree {
		if name == Base || raw == nil {
			continue
		}
		width := style.FormatValue(raw)
		px, err := widthInPixels(width)
		if err != nil {
			return nil, fmt.Errorf("breakpoint %q: %w", name, err)
		}
		if _, isString := raw.(string); !isString {
			width += "px"
		}
		bps = append(bps, Breakpoint{Name: name, MinWidth: width, px: px})
	}

	sort.SliceStable(bps[1:], func(i, j int) bool {
		a, b := bps[1+i], bps[1+j]
		if a.px == b.px {
			return a.Name < b.Name
		}
		return a.px < b.px
	})
	return bps, nil
}

func widthInPixels(width string) (float64, error) {
	trimmed := strings.TrimSpace(width)
	multiplier := 1.0
	switch {
	case strings.HasSuffix(trimmed, "rem"):
		trimmed, multiplier = strings.TrimSuffix(trimmed, "rem"), remBase
	case strings.HasSuffix(trimmed, "em"):
		trimmed, multiplier = strings.TrimSuffix(trimmed, "em"), remBase
	case strings.HasSuffix(trimmed, "px"):
		trimmed = strings.TrimSuffix(trimmed, "px")
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid width %q", width)
	}
	return value * multiplier, nil
}

// Names returns breakpoint names in ascending order.
func (b Breakpoints) Names() []string {
	names := make([]string, len(b))
	for i, bp := range b {
		names[i] = bp.Name
	}
	return names
}

// Lookup returns the breakpoint with the given name.
func (b Breakpoints) Lookup(name string) (Breakpoint, bool) {
	for _, bp := range b {
		if bp.Name == name {
			return bp, true
		}
	}
	return Breakpoint{}, false
}

// Condition describes when a rule applies.
type Condition struct {
	Breakpoint string
	MinWidth   string
}

// Unconditional reports whether the rule always applies.
func (c Condition) Unconditional() bool {
	return c.Breakpoint == "" || c.Breakpoint == Base
}

// Query renders the media query for a conditional rule.
func (c Condition) Query() string {
	if c.Unconditional() {
		return ""
	}
	return fmt.Sprintf("@media screen and (min-width: %s)", c.MinWidth)
}

// Rule pairs a condition with the value that applies under it.
type Rule struct {
	Condition Condition
	Value     any
}

// IsResponsive reports whether value is a breakpoint map or breakpoint array.
func (b Breakpoints) IsResponsive(value any) bool {
	switch v := value.(type) {
	case []any:
		return len(v) > 0
	default:
		obj, ok := style.AsObject(value)
		if !ok || len(obj) == 0 {
			return false
		}
		for key := range obj {
			if _, known := b.Lookup(key); !known {
				return false
			}
		}
		return true
	}
}

// Resolve expands value into rules in ascending breakpoint order. Literals
// yield a single unconditional rule. Breakpoints missing from the map yield
// nothing; no value is inherited downward.
func Resolve(value any, bps Breakpoints) []Rule {
	if !bps.IsResponsive(value) {
		return []Rule{{Value: value}}
	}

	if list, ok := value.([]any); ok {
		var rules []Rule
		for i, item := range list {
			if item == nil || i >= len(bps) {
				continue
			}
			rules = append(rules, ruleFor(bps[i], item))
		}
		return rules
	}

	obj, _ := style.AsObject(value)
	var rules []Rule
	for _, bp := range bps {
		item, ok := obj[bp.Name]
		if !ok || item == nil {
			continue
		}
		rules = append(rules, ruleFor(bp, item))
	}
	return rules
}

func ruleFor(bp Breakpoint, value any) Rule {
	if bp.Name == Base {
		return Rule{Value: value}
	}
	return Rule{Condition: Condition{Breakpoint: bp.Name, MinWidth: bp.MinWidth}, Value: value}
}

// Expand applies Resolve to every property of obj. Unconditional values stay
// in place; conditional ones move under "@media" keys. Nested selector
// objects are expanded recursively. The result is a map, so emitters must
// walk it with OrderedKeys to keep media queries in cascade order.
func Expand(obj style.Object, bps Breakpoints) style.Object {
	out := style.Object{}
	for _, key := range style.Keys(obj) {
		value := obj[key]
		if value == nil {
			continue
		}
		if nested, ok := style.AsObject(value); ok && !bps.IsResponsive(value) {
			out = style.Merge(out, style.Object{key: Expand(nested, bps)})
			continue
		}
		for _, rule := range Resolve(value, bps) {
			if rule.Condition.Unconditional() {
				out = style.Merge(out, style.Object{key: rule.Value})
				continue
			}
			out = style.Merge(out, style.Object{rule.Condition.Query(): style.Object{key: rule.Value}})
		}
	}
	return out
}

// OrderedKeys returns obj's keys for emission: plain properties and selectors
// first in lexical order, then media queries by ascending breakpoint width.
// Media keys that match no breakpoint in b come last, lexically.
func (b Breakpoints) OrderedKeys(obj style.Object) []string {
	rank := make(map[string]int, len(b))
	for i, bp := range b {
		if query := (Condition{Breakpoint: bp.Name, MinWidth: bp.MinWidth}).Query(); query != "" {
			rank[query] = i
		}
	}

	var plain, media, unknown []string
	for _, key := range style.Keys(obj) {
		switch _, known := rank[key]; {
		case known:
			media = append(media, key)
		case strings.HasPrefix(key, "@media"):
			unknown = append(unknown, key)
		default:
			plain = append(plain, key)
		}
	}
	sort.SliceStable(media, func(i, j int) bool { return rank[media[i]] < rank[media[j]] })

	out := make([]string, 0, len(obj))
	out = append(out, plain...)
	out = append(out, media...)
	return append(out, unknown...)
}
