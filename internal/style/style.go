// Package style holds the shared style object type and the deep-merge rule
// used by every resolver in the theming engine.
package style

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Object is a style or token mapping. Values are scalars, slices, or nested
// Objects. A nil value means "undefined".
type Object map[string]any

// Merge deep-merges objects left to right. When both sides hold mappings the
// merge recurses; otherwise the later value replaces the earlier one. Nil
// values never overwrite. Inputs are left untouched.
func Merge(objects ...Object) Object {
	out := Object{}
	for _, obj := range objects {
		mergeInto(out, obj)
	}
	return out
}

func mergeInto(dst, src Object) {
	for key, value := range src {
		if value == nil {
			continue
		}
		incoming, incomingIsMap := AsObject(value)
		if incomingIsMap {
			if existing, ok := dst[key].(Object); ok {
				mergeInto(existing, incoming)
				continue
			}
			next := Object{}
			mergeInto(next, incoming)
			dst[key] = next
			continue
		}
		dst[key] = cloneValue(value)
	}
}

// AsObject reports whether v is a mapping and returns it as an Object.
func AsObject(v any) (Object, bool) {
	switch m := v.(type) {
	case Object:
		return m, true
	case map[string]any:
		return Object(m), true
	default:
		return nil, false
	}
}

// Clone returns a deep copy of obj.
func Clone(obj Object) Object {
	if obj == nil {
		return nil
	}
	out := make(Object, len(obj))
	for k, v := range obj {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case Object:
		return Clone(t)
	case map[string]any:
		return Clone(Object(t))
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}

// Normalize converts decoder output (yaml, json, toml) into Object trees with
// string keys. Integer keys such as hue shades become their decimal form.
func Normalize(v any) any {
	switch t := v.(type) {
	case Object:
		out := make(Object, len(t))
		for k, val := range t {
			out[k] = Normalize(val)
		}
		return out
	case map[string]any:
		out := make(Object, len(t))
		for k, val := range t {
			out[k] = Normalize(val)
		}
		return out
	case map[any]any:
		out := make(Object, len(t))
		for k, val := range t {
			out[keyString(k)] = Normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = Normalize(item)
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = Normalize(item)
		}
		return out
	case int64:
		return int(t)
	default:
		return v
	}
}

// NormalizeObject is Normalize for callers that already hold a mapping.
func NormalizeObject(m map[string]any) Object {
	if m == nil {
		return nil
	}
	obj, _ := Normalize(m).(Object)
	return obj
}

func keyString(k any) string {
	switch t := k.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

// Keys returns obj's keys in lexical order.
func Keys(obj Object) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Flatten returns every leaf of obj keyed by its dotted path.
func Flatten(obj Object) map[string]any {
	out := make(map[string]any)
	flatten(out, nil, obj)
	return out
}

func flatten(out map[string]any, prefix []string, obj Object) {
	for key, value := range obj {
		path := append(append([]string(nil), prefix...), key)
		if nested, ok := AsObject(value); ok {
			flatten(out, path, nested)
			continue
		}
		out[strings.Join(path, ".")] = value
	}
}

// FormatValue renders a scalar the way it should appear in CSS output.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

// IsScalar reports whether v is a leaf value (not a mapping or slice).
func IsScalar(v any) bool {
	switch v.(type) {
	case string, float64, float32, int, int64, uint64, bool:
		return true
	default:
		return false
	}
}
