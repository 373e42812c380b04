package style

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		inputs []Object
		want   Object
	}{
		{
			name:   "later scalar wins",
			inputs: []Object{{"color": "black"}, {"color": "blue"}, {"color": "red"}},
			want:   Object{"color": "red"},
		},
		{
			name:   "nested mappings recurse",
			inputs: []Object{{"th": Object{"fontWeight": "bold"}}, {"th": Object{"borderBottom": "1px"}}},
			want:   Object{"th": Object{"fontWeight": "bold", "borderBottom": "1px"}},
		},
		{
			name:   "nil values are treated as absent",
			inputs: []Object{{"color": "black", "bg": "white"}, {"color": nil}},
			want:   Object{"color": "black", "bg": "white"},
		},
		{
			name:   "slices replace wholesale",
			inputs: []Object{{"fonts": []any{"a", "b"}}, {"fonts": []any{"c"}}},
			want:   Object{"fonts": []any{"c"}},
		},
		{
			name:   "scalar replaces mapping",
			inputs: []Object{{"border": Object{"width": "1px"}}, {"border": "none"}},
			want:   Object{"border": "none"},
		},
		{
			name:   "plain maps are accepted",
			inputs: []Object{{"a": map[string]any{"b": 1}}, {"a": Object{"c": 2}}},
			want:   Object{"a": Object{"b": 1, "c": 2}},
		},
		{
			name:   "no inputs",
			inputs: nil,
			want:   Object{},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Merge(tc.inputs...))
		})
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	base := Object{"th": Object{"fontWeight": "bold"}, "list": []any{"x"}}
	override := Object{"th": Object{"color": "red"}}

	merged := Merge(base, override)
	merged["th"].(Object)["fontWeight"] = "light"
	merged["list"].([]any)[0] = "y"

	require.Equal(t, Object{"fontWeight": "bold"}, base["th"])
	require.Equal(t, []any{"x"}, base["list"])
	require.Equal(t, Object{"color": "red"}, override["th"])
}

func TestMergeAssociativeForConsistentTrees(t *testing.T) {
	t.Parallel()

	tokens := Object{
		"colors": Object{"gray": Object{"50": "#F7FAFC", "900": "#171923"}, "white": "#FFF"},
		"space":  Object{"1": "0.25rem", "2": "0.5rem"},
	}
	o1 := Object{"colors": Object{"gray": Object{"50": "#FAFAFA"}, "brand": Object{"500": "#3182CE"}}}
	o2 := Object{"colors": Object{"brand": Object{"500": "#2B6CB0", "600": "#2C5282"}}, "space": Object{"3": "0.75rem"}}

	left := Merge(Merge(tokens, o1), o2)
	right := Merge(tokens, Merge(o1, o2))

	require.Equal(t, left, right)
	require.Equal(t, Flatten(left), Flatten(right))
}

func TestMergeIdempotent(t *testing.T) {
	t.Parallel()

	obj := Object{"a": Object{"b": "c"}, "d": 1}
	require.Equal(t, obj, Merge(obj))
	require.Equal(t, obj, Merge(obj, obj))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"gray": map[any]any{50: "#F7FAFC", 100: "#EDF2F7"},
		"list": []any{map[string]any{"a": int64(1)}},
	}

	got := Normalize(raw)
	require.Equal(t, Object{
		"gray": Object{"50": "#F7FAFC", "100": "#EDF2F7"},
		"list": []any{Object{"a": 1}},
	}, got)
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	got := Flatten(Object{"colors": Object{"gray": Object{"50": "#fff"}}, "z": 1})
	require.Equal(t, map[string]any{"colors.gray.50": "#fff", "z": 1}, got)
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1.5", FormatValue(1.5))
	require.Equal(t, "4", FormatValue(float64(4)))
	require.Equal(t, "700", FormatValue(700))
	require.Equal(t, "2rem", FormatValue("2rem"))
	require.Equal(t, "", FormatValue(nil))
}

func TestKeysSorted(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"a", "b", "c"}, Keys(Object{"c": 1, "a": 2, "b": 3}))
}
