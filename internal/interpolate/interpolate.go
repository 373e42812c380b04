// Package interpolate replaces token names in resolved style objects with
// references to their projected CSS variables.
package interpolate

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/themekit/internal/cssvar"
	"github.com/alexisbeaulieu97/themekit/internal/style"
	"github.com/alexisbeaulieu97/themekit/internal/tokens"
)

// Options controls how token hits are rendered.
type Options struct {
	// Values emits the token's literal value instead of a var() reference.
	Values bool
}

// Interpolator rewrites style values against one token store and its projection.
type Interpolator struct {
	store *tokens.Store
	vars  cssvar.Projection
	opts  Options
}

// New creates an Interpolator. vars must be the projection of store.
func New(store *tokens.Store, vars cssvar.Projection, opts Options) *Interpolator {
	return &Interpolator{store: store, vars: vars, opts: opts}
}

// Apply returns a copy of obj with shorthands expanded and token names
// replaced. Values that name no token are kept as literals.
func (i *Interpolator) Apply(obj style.Object) style.Object {
	out := style.Object{}
	for _, key := range style.Keys(obj) {
		value := obj[key]
		if value == nil {
			continue
		}
		if nested, ok := style.AsObject(value); ok && !IsStyleProp(key) {
			out = style.Merge(out, style.Object{key: i.Apply(nested)})
			continue
		}
		for _, prop := range Properties(key) {
			out = style.Merge(out, style.Object{prop: i.value(prop, value)})
		}
	}
	return out
}

func (i *Interpolator) value(prop string, value any) any {
	switch t := value.(type) {
	case []any:
		out := make([]any, len(t))
		for idx, item := range t {
			if item != nil {
				out[idx] = i.value(prop, item)
			}
		}
		return out
	default:
		if obj, ok := style.AsObject(value); ok {
			out := make(style.Object, len(obj))
			for k, v := range obj {
				out[k] = i.value(prop, v)
			}
			return out
		}
	}

	scale, ok := Scale(prop)
	if !ok || !style.IsScalar(value) {
		return value
	}
	return i.token(scale, value)
}

// token resolves value within scale. Misses fall back to the raw value.
func (i *Interpolator) token(scale string, value any) any {
	raw := style.FormatValue(value)
	if raw == "" {
		return value
	}

	if resolved, ok := i.lookup(scale, raw); ok {
		return resolved
	}
	if scale == "space" && strings.HasPrefix(raw, "-") {
		if resolved, ok := i.lookup(scale, strings.TrimPrefix(raw, "-")); ok {
			return negate(resolved)
		}
	}
	return value
}

func (i *Interpolator) lookup(scale, raw string) (any, bool) {
	if i.store == nil {
		return nil, false
	}
	path, err := i.store.Path(scale + "." + raw)
	if err != nil {
		return nil, false
	}

	if i.opts.Values {
		resolved, err := i.store.Resolve(strings.Join(path, "."))
		if err != nil || !style.IsScalar(resolved) {
			return nil, false
		}
		return resolved, true
	}

	ref, ok := i.vars.Ref(path...)
	if !ok {
		return nil, false
	}
	return ref, true
}

func negate(value any) any {
	str := style.FormatValue(value)
	if strings.HasPrefix(str, "var(") {
		return fmt.Sprintf("calc(%s * -1)", str)
	}
	return "-" + str
}
