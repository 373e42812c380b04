package styleconfig

import (
	"strings"

	"github.com/alexisbeaulieu97/themekit/internal/colormode"
	"github.com/alexisbeaulieu97/themekit/internal/style"
)

const (
	// ModeKey marks a {light, dark} selector in a document style.
	ModeKey = "$mode"
	// ColorSchemePlaceholder is replaced by the active color scheme.
	ColorSchemePlaceholder = "{colorScheme}"
)

// Compile turns a document style into a StyleOrThunk. Styles that use
// ModeKey selectors or ColorSchemePlaceholder become thunks; everything else
// stays literal.
func Compile(obj style.Object) StyleOrThunk {
	if obj == nil {
		return StyleOrThunk{}
	}
	if !isDynamic(obj) {
		return Literal(style.Clone(obj))
	}
	source := style.Clone(obj)
	return Thunk(func(p Props) (style.Object, error) {
		out, err := substitute(source, p)
		if err != nil {
			return nil, err
		}
		resolved, _ := style.AsObject(out)
		return resolved, nil
	})
}

// CompileAll compiles every entry of a name-keyed style map.
func CompileAll(m style.Object) map[string]StyleOrThunk {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]StyleOrThunk, len(m))
	for name, value := range m {
		obj, ok := style.AsObject(value)
		if !ok {
			continue
		}
		out[name] = Compile(obj)
	}
	return out
}

// IsModeSelector reports whether v is a {"$mode": {...}} selector and
// returns its light and dark branches.
func IsModeSelector(v any) (colormode.Selector, bool) {
	obj, ok := style.AsObject(v)
	if !ok || len(obj) != 1 {
		return colormode.Selector{}, false
	}
	branches, ok := style.AsObject(obj[ModeKey])
	if !ok {
		return colormode.Selector{}, false
	}
	return colormode.Mode(branches[string(colormode.Light)], branches[string(colormode.Dark)]), true
}

func isDynamic(v any) bool {
	if _, ok := IsModeSelector(v); ok {
		return true
	}
	switch t := v.(type) {
	case string:
		return strings.Contains(t, ColorSchemePlaceholder)
	case []any:
		for _, item := range t {
			if isDynamic(item) {
				return true
			}
		}
		return false
	default:
		obj, ok := style.AsObject(v)
		if !ok {
			return false
		}
		for _, value := range obj {
			if isDynamic(value) {
				return true
			}
		}
		return false
	}
}

// substitute evaluates selectors and placeholders. A placeholder with no
// color scheme available yields nil, which the merger treats as undefined.
func substitute(v any, p Props) (any, error) {
	if sel, ok := IsModeSelector(v); ok {
		chosen, err := sel.Select(p.ColorMode)
		if err != nil {
			return nil, err
		}
		return substitute(chosen, p)
	}
	switch t := v.(type) {
	case string:
		if !strings.Contains(t, ColorSchemePlaceholder) {
			return t, nil
		}
		if p.ColorScheme == "" {
			return nil, nil
		}
		return strings.ReplaceAll(t, ColorSchemePlaceholder, p.ColorScheme), nil
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			value, err := substitute(item, p)
			if err != nil {
				return nil, err
			}
			out[i] = value
		}
		return out, nil
	default:
		obj, ok := style.AsObject(v)
		if !ok {
			return v, nil
		}
		out := make(style.Object, len(obj))
		for key, value := range obj {
			resolved, err := substitute(value, p)
			if err != nil {
				return nil, err
			}
			out[key] = resolved
		}
		return out, nil
	}
}
