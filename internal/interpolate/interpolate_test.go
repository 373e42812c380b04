package interpolate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/cssvar"
	"github.com/alexisbeaulieu97/themekit/internal/style"
	"github.com/alexisbeaulieu97/themekit/internal/tokens"
)

func newInterpolator(t *testing.T, opts Options) *Interpolator {
	t.Helper()

	store, err := tokens.NewStore(tokens.Tree{
		"colors": tokens.Tree{
			"white":  "#FFFFFF",
			"gray":   tokens.Tree{"600": "#4A5568"},
			"accent": "{colors.gray.600}",
		},
		"space":     tokens.Tree{"0.5": "0.125rem", "4": "1rem"},
		"sizes":     tokens.Tree{"full": "100%"},
		"fontSizes": tokens.Tree{"sm": "0.875rem", "lg": "1.125rem"},
		"borders":   tokens.Tree{"1px": "1px solid"},
	}, nil)
	require.NoError(t, err)

	return New(store, cssvar.ProjectStore(store, cssvar.DefaultOptions()), opts)
}

func TestApplyReplacesTokens(t *testing.T) {
	t.Parallel()

	got := newInterpolator(t, Options{}).Apply(style.Object{
		"color":        "gray.600",
		"bg":           "white",
		"px":           4,
		"width":        "full",
		"borderBottom": "1px",
		"mt":           "0.5",
	})

	require.Equal(t, style.Object{
		"color":              "var(--chakra-colors-gray-600)",
		"background":         "var(--chakra-colors-white)",
		"paddingInlineStart": "var(--chakra-space-4)",
		"paddingInlineEnd":   "var(--chakra-space-4)",
		"width":              "var(--chakra-sizes-full)",
		"borderBottom":       "var(--chakra-borders-1px)",
		"marginTop":          `var(--chakra-space-0\.5)`,
	}, got)
}

func TestApplyFallsBackToLiteral(t *testing.T) {
	t.Parallel()

	got := newInterpolator(t, Options{}).Apply(style.Object{
		"color":         "#ff0000",
		"fontSize":      "13px",
		"textTransform": "uppercase",
		"bg":            "gray",
		"zIndex":        10,
	})

	require.Equal(t, style.Object{
		"color":         "#ff0000",
		"fontSize":      "13px",
		"textTransform": "uppercase",
		"background":    "gray",
		"zIndex":        10,
	}, got)
}

func TestApplyNestedSelectorsAndResponsive(t *testing.T) {
	t.Parallel()

	got := newInterpolator(t, Options{}).Apply(style.Object{
		"_hover":   style.Object{"color": "white"},
		"fontSize": style.Object{"base": "sm", "md": "lg"},
		"p":        []any{"4", nil, "0.5"},
	})

	require.Equal(t, style.Object{
		"_hover":   style.Object{"color": "var(--chakra-colors-white)"},
		"fontSize": style.Object{"base": "var(--chakra-fontSizes-sm)", "md": "var(--chakra-fontSizes-lg)"},
		"padding":  []any{"var(--chakra-space-4)", nil, `var(--chakra-space-0\.5)`},
	}, got)
}

func TestApplyValuesMode(t *testing.T) {
	t.Parallel()

	got := newInterpolator(t, Options{Values: true}).Apply(style.Object{
		"color":       "accent",
		"marginLeft":  "-4",
		"paddingLeft": "4",
	})

	require.Equal(t, style.Object{
		"color":       "#4A5568",
		"marginLeft":  "-1rem",
		"paddingLeft": "1rem",
	}, got)
}

func TestApplyNegativeSpaceReference(t *testing.T) {
	t.Parallel()

	got := newInterpolator(t, Options{}).Apply(style.Object{"mt": "-4"})
	require.Equal(t, style.Object{"marginTop": "calc(var(--chakra-space-4) * -1)"}, got)
}

func TestApplyWithoutStoreKeepsLiterals(t *testing.T) {
	t.Parallel()

	got := New(nil, cssvar.Projection{}, Options{}).Apply(style.Object{"bg": "white"})
	require.Equal(t, style.Object{"background": "white"}, got)
}

func TestScaleAndProperties(t *testing.T) {
	t.Parallel()

	scale, ok := Scale("borderRadius")
	require.True(t, ok)
	require.Equal(t, "radii", scale)

	_, ok = Scale("display")
	require.False(t, ok)

	require.Equal(t, []string{"paddingTop", "paddingBottom"}, Properties("py"))
	require.Equal(t, []string{"display"}, Properties("display"))
	require.True(t, IsStyleProp("bg"))
	require.False(t, IsStyleProp("_hover"))
}
