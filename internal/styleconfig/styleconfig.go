// Package styleconfig resolves a component style config against a theming
// request into a single merged style object.
package styleconfig

import (
	"sort"

	"github.com/alexisbeaulieu97/themekit/internal/colormode"
	"github.com/alexisbeaulieu97/themekit/internal/style"
)

// TokenReader is the read-only token access handed to style thunks.
type TokenReader interface {
	Lookup(dotted string) (any, error)
}

// Props is everything a style thunk may read. Thunks get nothing else.
type Props struct {
	ColorMode   colormode.ColorMode
	ColorScheme string
	Variant     string
	Size        string
	Orientation string
	Theme       TokenReader
}

// StyleFunc computes a style object from props.
type StyleFunc func(Props) (style.Object, error)

// StyleOrThunk is either a literal style object or a function of Props.
type StyleOrThunk struct {
	literal style.Object
	thunk   StyleFunc
}

// Literal wraps a static style object.
func Literal(obj style.Object) StyleOrThunk {
	return StyleOrThunk{literal: obj}
}

// Thunk wraps a props-dependent style function.
func Thunk(fn StyleFunc) StyleOrThunk {
	return StyleOrThunk{thunk: fn}
}

// IsThunk reports whether evaluation calls a function.
func (s StyleOrThunk) IsThunk() bool {
	return s.thunk != nil
}

// IsZero reports whether s contributes nothing.
func (s StyleOrThunk) IsZero() bool {
	return s.thunk == nil && s.literal == nil
}

// Evaluate returns the style for props. Literals are cloned so callers may
// mutate the result.
func (s StyleOrThunk) Evaluate(p Props) (style.Object, error) {
	if s.thunk != nil {
		obj, err := s.thunk(p)
		if err != nil {
			return nil, err
		}
		return obj, nil
	}
	if s.literal == nil {
		return nil, nil
	}
	return style.Clone(s.literal), nil
}

// DefaultProps are the selectors used when a request omits them.
type DefaultProps struct {
	Variant     string
	Size        string
	ColorScheme string
}

// Config is a component style config. Multi-part configs key every style
// object by part name.
type Config struct {
	Parts        []string
	BaseStyle    StyleOrThunk
	Sizes        map[string]StyleOrThunk
	Variants     map[string]StyleOrThunk
	DefaultProps DefaultProps
}

// IsMultiPart reports whether the config styles named parts.
func (c Config) IsMultiPart() bool {
	return len(c.Parts) > 0
}

// HasPart reports whether part is declared.
func (c Config) HasPart(part string) bool {
	for _, p := range c.Parts {
		if p == part {
			return true
		}
	}
	return false
}

// SizeNames returns the declared sizes in sorted order.
func (c Config) SizeNames() []string {
	return sortedKeys(c.Sizes)
}

// VariantNames returns the declared variants in sorted order.
func (c Config) VariantNames() []string {
	return sortedKeys(c.Variants)
}

func sortedKeys(m map[string]StyleOrThunk) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Request selects what to resolve. Empty fields mean "not given".
type Request struct {
	Component   string
	Variant     string
	Size        string
	ColorScheme string
	Orientation string
	StyleConfig style.Object
}

// Props builds the thunk props for req after applying cfg defaults.
func (c Config) Props(req Request, mode colormode.ColorMode, theme TokenReader) Props {
	p := Props{
		ColorMode:   mode,
		ColorScheme: req.ColorScheme,
		Variant:     req.Variant,
		Size:        req.Size,
		Orientation: req.Orientation,
		Theme:       theme,
	}
	if p.Variant == "" {
		p.Variant = c.DefaultProps.Variant
	}
	if p.Size == "" {
		p.Size = c.DefaultProps.Size
	}
	if p.ColorScheme == "" {
		p.ColorScheme = c.DefaultProps.ColorScheme
	}
	return p
}

// Resolve merges base style, size, variant and the request override, in that
// order. Unknown sizes and variants contribute nothing. Multi-part configs
// merge each declared part independently; undeclared parts are dropped.
func Resolve(cfg Config, req Request, mode colormode.ColorMode, theme TokenReader) (style.Object, error) {
	props := cfg.Props(req, mode, theme)

	steps := make([]style.Object, 0, 4)
	base, err := cfg.BaseStyle.Evaluate(props)
	if err != nil {
		return nil, err
	}
	steps = append(steps, base)

	if selected, ok := cfg.Sizes[props.Size]; ok && props.Size != "" {
		obj, err := selected.Evaluate(props)
		if err != nil {
			return nil, err
		}
		steps = append(steps, obj)
	}
	if selected, ok := cfg.Variants[props.Variant]; ok && props.Variant != "" {
		obj, err := selected.Evaluate(props)
		if err != nil {
			return nil, err
		}
		steps = append(steps, obj)
	}
	steps = append(steps, req.StyleConfig)

	if !cfg.IsMultiPart() {
		return style.Merge(steps...), nil
	}

	out := style.Object{}
	for _, part := range cfg.Parts {
		partSteps := make([]style.Object, 0, len(steps))
		for _, step := range steps {
			if obj, ok := style.AsObject(step[part]); ok {
				partSteps = append(partSteps, obj)
			}
		}
		out[part] = style.Merge(partSteps...)
	}
	return out, nil
}

// Combine layers b over a. Thunks on either side are evaluated with the same
// props and the results merged.
func Combine(a, b StyleOrThunk) StyleOrThunk {
	switch {
	case a.IsZero():
		return b
	case b.IsZero():
		return a
	case !a.IsThunk() && !b.IsThunk():
		return Literal(style.Merge(a.literal, b.literal))
	}
	return Thunk(func(p Props) (style.Object, error) {
		left, err := a.Evaluate(p)
		if err != nil {
			return nil, err
		}
		right, err := b.Evaluate(p)
		if err != nil {
			return nil, err
		}
		return style.Merge(left, right), nil
	})
}

// Extend layers override onto cfg. Declared parts, sizes and variants are
// unioned; entries present in both are combined.
func Extend(cfg, override Config) Config {
	out := Config{
		Parts:        append([]string(nil), cfg.Parts...),
		BaseStyle:    Combine(cfg.BaseStyle, override.BaseStyle),
		Sizes:        combineMap(cfg.Sizes, override.Sizes),
		Variants:     combineMap(cfg.Variants, override.Variants),
		DefaultProps: cfg.DefaultProps,
	}
	for _, part := range override.Parts {
		if !out.HasPart(part) {
			out.Parts = append(out.Parts, part)
		}
	}
	if override.DefaultProps.Variant != "" {
		out.DefaultProps.Variant = override.DefaultProps.Variant
	}
	if override.DefaultProps.Size != "" {
		out.DefaultProps.Size = override.DefaultProps.Size
	}
	if override.DefaultProps.ColorScheme != "" {
		out.DefaultProps.ColorScheme = override.DefaultProps.ColorScheme
	}
	return out
}

func combineMap(base, override map[string]StyleOrThunk) map[string]StyleOrThunk {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]StyleOrThunk, len(base)+len(override))
	for name, s := range base {
		out[name] = s
	}
	for name, s := range override {
		out[name] = Combine(out[name], s)
	}
	return out
}
