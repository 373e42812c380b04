package tokens

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

func sampleTree() Tree {
	return Tree{
		"colors": Tree{
			"gray": Tree{
				"50": "#F7FAFC", "100": "#EDF2F7", "200": "#E2E8F0", "300": "#CBD5E0", "400": "#A0AEC0",
				"500": "#718096", "600": "#4A5568", "700": "#2D3748", "800": "#1A202C", "900": "#171923",
			},
			"white": "#FFFFFF",
		},
		"space": Tree{"0.5": "0.125rem", "1": "0.25rem", "4": "1rem"},
		"radii": Tree{"md": "0.375rem"},
	}
}

func TestStoreGet(t *testing.T) {
	t.Parallel()

	store, err := NewStore(sampleTree(), nil)
	require.NoError(t, err)

	value, err := store.Get("colors", "gray", "600")
	require.NoError(t, err)
	require.Equal(t, "#4A5568", value)

	sub, err := store.Get("radii")
	require.NoError(t, err)
	require.Equal(t, Tree{"md": "0.375rem"}, sub)
}

func TestStoreGetMissingSegment(t *testing.T) {
	t.Parallel()

	store, err := NewStore(sampleTree(), nil)
	require.NoError(t, err)

	_, err = store.Get("colors", "brand", "500")
	require.ErrorIs(t, err, themeerrors.ErrTokenNotFound)

	var notFound *themeerrors.TokenNotFoundError
	require.True(t, errors.As(err, &notFound))
	require.Equal(t, "brand", notFound.Segment)

	_, err = store.Get("colors", "white", "deeper")
	require.True(t, IsNotFound(err))
}

func TestStoreOverrideWins(t *testing.T) {
	t.Parallel()

	store, err := NewStore(sampleTree(), Tree{
		"colors": Tree{"white": "#FAFAFA", "brand": Tree{"500": "#3182CE"}},
		"radii":  Tree{"md": nil},
	})
	require.NoError(t, err)

	white, err := store.Lookup("colors.white")
	require.NoError(t, err)
	require.Equal(t, "#FAFAFA", white)

	brand, err := store.Lookup("colors.brand.500")
	require.NoError(t, err)
	require.Equal(t, "#3182CE", brand)

	gray, err := store.Lookup("colors.gray.50")
	require.NoError(t, err)
	require.Equal(t, "#F7FAFC", gray)

	radius, err := store.Lookup("radii.md")
	require.NoError(t, err)
	require.Equal(t, "0.375rem", radius)
}

func TestStoreIsImmutable(t *testing.T) {
	t.Parallel()

	base := sampleTree()
	store, err := NewStore(base, nil)
	require.NoError(t, err)

	base["radii"].(Tree)["md"] = "99px"
	sub, err := store.Get("radii")
	require.NoError(t, err)
	sub.(Tree)["md"] = "1px"

	value, err := store.Lookup("radii.md")
	require.NoError(t, err)
	require.Equal(t, "0.375rem", value)
}

func TestLookupDottedKeys(t *testing.T) {
	t.Parallel()

	store, err := NewStore(sampleTree(), nil)
	require.NoError(t, err)

	value, err := store.Lookup("space.0.5")
	require.NoError(t, err)
	require.Equal(t, "0.125rem", value)

	require.True(t, store.Has("space.4"))
	require.False(t, store.Has("space.9"))
	require.False(t, store.Has(""))
}

func TestAliasResolution(t *testing.T) {
	t.Parallel()

	store, err := NewStore(sampleTree(), Tree{
		"colors": Tree{
			"border":  "{colors.gray.200}",
			"divider": "{colors.border}",
		},
	})
	require.NoError(t, err)

	raw, err := store.Lookup("colors.divider")
	require.NoError(t, err)
	require.Equal(t, "{colors.border}", raw)

	resolved, err := store.Resolve("colors.divider")
	require.NoError(t, err)
	require.Equal(t, "#E2E8F0", resolved)

	target, ok := store.IsAlias("colors.border")
	require.True(t, ok)
	require.Equal(t, "colors.gray.200", target)
}

func TestAliasCycleRejected(t *testing.T) {
	t.Parallel()

	_, err := NewStore(Tree{
		"colors": Tree{
			"a": "{colors.b}",
			"b": "{colors.c}",
			"c": "{colors.a}",
		},
	}, nil)
	require.Error(t, err)
	require.ErrorIs(t, err, themeerrors.ErrTokenCycle)
	require.Contains(t, err.Error(), "colors.a -> colors.b -> colors.c -> colors.a")
}

func TestAliasToMissingTokenRejected(t *testing.T) {
	t.Parallel()

	_, err := NewStore(Tree{"colors": Tree{"a": "{colors.nope}"}}, nil)
	var validationErr *themeerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "colors.a", validationErr.Field)
	require.ErrorIs(t, err, themeerrors.ErrTokenNotFound)
}

func TestAliasToGroupRejected(t *testing.T) {
	t.Parallel()

	base := Tree{"colors": Tree{"blue": Tree{"500": "#3182ce"}}}

	_, err := NewStore(base, Tree{"colors": Tree{"brand": "{colors.blue}"}})
	var validationErr *themeerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "colors.brand", validationErr.Field)
	require.Contains(t, validationErr.Error(), "token group")

	store, err := NewStore(base, Tree{"colors": Tree{"brand": "{colors.blue.500}"}})
	require.NoError(t, err)
	value, err := store.Resolve("colors.brand")
	require.NoError(t, err)
	require.Equal(t, "#3182ce", value)
}

func TestNonScalarLeafRejected(t *testing.T) {
	t.Parallel()

	_, err := NewStore(Tree{"fonts": Tree{"body": []any{"Inter", "sans-serif"}}}, nil)
	var validationErr *themeerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "fonts.body", validationErr.Field)
}

func TestPathsDeterministic(t *testing.T) {
	t.Parallel()

	store, err := NewStore(sampleTree(), nil)
	require.NoError(t, err)

	first := store.Paths()
	second := store.Paths()
	require.Equal(t, first, second)
	require.Contains(t, first, "colors.gray.900")
	require.Contains(t, first, "space.0.5")
}

func TestHueScaleHelpers(t *testing.T) {
	t.Parallel()

	gray := sampleTree()["colors"].(Tree)["gray"].(Tree)
	require.True(t, IsHueScale(gray))
	require.True(t, LooksLikeHueScale(gray))

	partial := Tree{"50": "#fff", "500": "#888"}
	require.False(t, IsHueScale(partial))
	require.Len(t, MissingShades(partial), 8)

	issues := HueScaleIssues(Tree{"gray": gray, "brand": partial, "white": "#fff", "odd": Tree{"50": "#fff", "950": "#000"}})
	require.NotContains(t, issues, "gray")
	require.NotContains(t, issues, "white")
	require.Len(t, issues["brand"], 8)
	require.Contains(t, issues["odd"], "unexpected 950")
}

func TestDetectCycle(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		aliases map[string]string
		want    []string
	}{
		{name: "chain", aliases: map[string]string{"a": "b", "b": "c"}},
		{name: "pair", aliases: map[string]string{"a": "b", "b": "a"}, want: []string{"a", "b", "a"}},
		{name: "self", aliases: map[string]string{"x": "x"}, want: []string{"x", "x"}},
		{name: "tail into loop", aliases: map[string]string{"a": "b", "b": "c", "c": "b"}, want: []string{"b", "c", "b"}},
		{name: "shared target", aliases: map[string]string{"a": "c", "b": "c", "c": "d"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, detectCycle(tc.aliases))
		})
	}
}
