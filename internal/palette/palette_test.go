package palette

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/tokens"
)

func TestGenerateBuildsCompleteScale(t *testing.T) {
	t.Parallel()

	scale, err := Generate("#3182CE")
	require.NoError(t, err)
	require.True(t, tokens.IsHueScale(scale))
	require.Equal(t, "#3182ce", scale["500"])

	for _, shade := range tokens.HueShades {
		require.True(t, ValidColor(scale[shade].(string)), "shade %s", shade)
	}
	require.NotEqual(t, scale["50"], scale["900"])
}

func TestGenerateIsMonotonicInLightness(t *testing.T) {
	t.Parallel()

	scale, err := Generate("319795")
	require.NoError(t, err)

	require.Equal(t, "#000000", Contrast(scale["50"].(string)))
	require.Equal(t, "#ffffff", Contrast(scale["900"].(string)))
}

func TestGenerateShortHex(t *testing.T) {
	t.Parallel()

	scale, err := Generate("#f60")
	require.NoError(t, err)
	require.Equal(t, "#ff6600", scale["500"])
}

func TestGenerateRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := Generate("not-a-color")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid base color")
}

func TestValidColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{"#fff", true},
		{"#FFFFFF", true},
		{"#ffffff80", true},
		{"rgba(0, 0, 0, 0.5)", true},
		{"hsl(210, 50%, 40%)", true},
		{"currentColor", true},
		{"transparent", true},
		{"var(--chakra-colors-white)", true},
		{"#ggg", false},
		{"#12345", false},
		{"blue.500", false},
		{"", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, ValidColor(tt.value))
		})
	}
}

func TestSwatches(t *testing.T) {
	t.Parallel()

	out := Swatches("brand", tokens.Tree{"50": "#f7fafc", "500": "#3182ce", "900": "rgba(0,0,0,1)"})
	require.Contains(t, out, "brand")
	for _, shade := range tokens.HueShades {
		require.Contains(t, out, shade)
	}
	require.Equal(t, 1, len(strings.Split(strings.TrimRight(out, "\n"), "\n")))
}
