package logging

import (
	"context"
	"sort"

	"github.com/alexisbeaulieu97/themekit/internal/ports"
)

// Logger is the ports.Logger returned by New.
type Logger = ports.Logger

// fieldSet is an ordered key/value list where later keys replace earlier ones.
type fieldSet struct {
	order  []string
	values map[string]interface{}
}

func newFieldSet() *fieldSet {
	return &fieldSet{values: make(map[string]interface{})}
}

func (f *fieldSet) set(key string, value interface{}) {
	if key == "" {
		return
	}
	if _, exists := f.values[key]; !exists {
		f.order = append(f.order, key)
	}
	f.values[key] = value
}

// pairs adds alternating key/value arguments; non-string keys are skipped.
func (f *fieldSet) pairs(kv []interface{}) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		f.set(key, kv[i+1])
	}
}

func (f *fieldSet) flatten() []interface{} {
	out := make([]interface{}, 0, len(f.order)*2)
	for _, key := range f.order {
		out = append(out, key, f.values[key])
	}
	return out
}

// entryFields merges persistent fields, call fields, the layer default and
// the context correlation ID.
func entryFields(ctx context.Context, layer string, persistent, call []interface{}) []interface{} {
	set := newFieldSet()
	set.set("layer", layer)
	set.pairs(persistent)
	set.pairs(call)
	if id := ports.GetCorrelationID(ctx); id != "" {
		set.set("correlation_id", id)
	}
	return set.flatten()
}

func mapToFields(input map[string]interface{}) []interface{} {
	if len(input) == 0 {
		return nil
	}
	keys := make([]string, 0, len(input))
	for k := range input {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	res := make([]interface{}, 0, len(input)*2)
	for _, k := range keys {
		res = append(res, k, input[k])
	}
	return res
}

func extend(base []interface{}, more []interface{}) []interface{} {
	next := make([]interface{}, 0, len(base)+len(more))
	next = append(next, base...)
	return append(next, more...)
}
