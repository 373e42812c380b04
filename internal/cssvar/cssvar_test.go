package cssvar

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/tokens"
)

func fixtureTokens() tokens.Tree {
	return tokens.Tree{
		"colors": tokens.Tree{
			"blue": tokens.Tree{
				"50": "#ebf8ff", "100": "#bee3f8", "200": "#90cdf4", "300": "#63b3ed", "400": "#4299e1",
				"500": "#3182ce", "600": "#2b6cb0", "700": "#2c5282", "800": "#2a4365", "900": "#1A365D",
			},
			"white": "#FFFFFF",
		},
		"space":       tokens.Tree{"0.5": "0.125rem", "4": "1rem"},
		"sizes":       tokens.Tree{"1/2": "50%"},
		"fontWeights": tokens.Tree{"bold": 700},
		"lineHeights": tokens.Tree{"normal": "normal", "tall": 1.625},
	}
}

func TestProjectNamesAndValues(t *testing.T) {
	t.Parallel()

	p := Project(fixtureTokens(), DefaultOptions())

	require.Equal(t, "#3182ce", p.Vars["--chakra-colors-blue-500"])
	require.Equal(t, "#FFFFFF", p.Vars["--chakra-colors-white"])
	require.Equal(t, "0.125rem", p.Vars[`--chakra-space-0\.5`])
	require.Equal(t, "50%", p.Vars[`--chakra-sizes-1\/2`])
	require.Equal(t, "700", p.Vars["--chakra-fontWeights-bold"])
	require.Equal(t, "1.625", p.Vars["--chakra-lineHeights-tall"])
}

func TestProjectHueScaleProjectsEveryShade(t *testing.T) {
	t.Parallel()

	p := Project(fixtureTokens(), DefaultOptions())
	for _, shade := range tokens.HueShades {
		_, ok := p.Vars["--chakra-colors-blue-"+shade]
		require.True(t, ok, "shade %s not projected", shade)
	}
}

func TestProjectRefsMirrorTree(t *testing.T) {
	t.Parallel()

	p := Project(fixtureTokens(), DefaultOptions())

	ref, ok := p.Ref("colors", "blue", "500")
	require.True(t, ok)
	require.Equal(t, "var(--chakra-colors-blue-500)", ref)

	ref, ok = p.Ref("space", "0.5")
	require.True(t, ok)
	require.Equal(t, `var(--chakra-space-0\.5)`, ref)

	_, ok = p.Ref("colors", "blue")
	require.False(t, ok)
	_, ok = p.Ref("colors", "missing")
	require.False(t, ok)

	blue := p.Refs["colors"].(tokens.Tree)["blue"].(tokens.Tree)
	require.Len(t, blue, 10)
}

func TestProjectDeterministic(t *testing.T) {
	t.Parallel()

	first := Project(fixtureTokens(), DefaultOptions())
	second := Project(fixtureTokens(), DefaultOptions())

	require.Equal(t, first.Names(), second.Names())
	require.Equal(t, first.Sheet(""), second.Sheet(""))
}

func TestPrefixAndSeparator(t *testing.T) {
	t.Parallel()

	require.Equal(t, "--colors-white", Name([]string{"colors", "white"}, Options{}))
	require.Equal(t, "--ck_colors_white", Name([]string{"colors", "white"}, Options{Prefix: "ck", Separator: "_"}))
}

func TestProjectStoreAliases(t *testing.T) {
	t.Parallel()

	store, err := tokens.NewStore(fixtureTokens(), tokens.Tree{
		"colors": tokens.Tree{"accent": "{colors.blue.500}"},
		"space":  tokens.Tree{"gutter": "{space.0.5}"},
	})
	require.NoError(t, err)

	p := ProjectStore(store, DefaultOptions())
	require.Equal(t, "var(--chakra-colors-blue-500)", p.Vars["--chakra-colors-accent"])
	require.Equal(t, `var(--chakra-space-0\.5)`, p.Vars["--chakra-space-gutter"])
}

func TestSheet(t *testing.T) {
	t.Parallel()

	p := Project(tokens.Tree{"colors": tokens.Tree{"white": "#fff", "black": "#000"}}, Options{Prefix: "tk"})
	require.Equal(t, ":root {\n  --tk-colors-black: #000;\n  --tk-colors-white: #fff;\n}\n", p.Sheet(""))
	require.Contains(t, p.Sheet(".dark"), ".dark {")
}
