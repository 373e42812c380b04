package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/themekit/internal/colormode"
	"github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/internal/style"
	"github.com/alexisbeaulieu97/themekit/internal/tui"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	out, err := newTestEnv(t).run(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "themekit ")
	require.Contains(t, out, "commit: none")
	require.Contains(t, out, "theme schema: ^1")
	require.Contains(t, out, "css prefix: chakra")

	env := newTestEnv(t)
	require.NoError(t, os.WriteFile(env.settings, []byte("css_prefix: acme\n"), 0o600))
	out, err = env.run(t, "version", "--json")
	require.NoError(t, err)

	var info buildInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	require.NotEmpty(t, info.Version)
	require.Equal(t, "unknown", info.Built)
	require.Equal(t, config.SupportedSchema, info.ThemeSchema)
	require.Equal(t, "acme", info.DefaultPrefix)
}

func TestVarsCommand(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	out, err := env.run(t, "vars", "default")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, ":root {\n"))
	require.Contains(t, out, "  --chakra-colors-blue-500: #3182ce;\n")

	out, err = env.run(t, "vars", "default", "--selector", ".theme")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, ".theme {\n"))
}

func TestVarsCommandWritesJSON(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	path := env.writeTheme(t, "brand.yaml", brandTheme)
	target := filepath.Join(t.TempDir(), "vars.json")

	out, err := env.run(t, "vars", path, "--json", "--out", target)
	require.NoError(t, err)
	require.Contains(t, out, "Wrote")
	require.Contains(t, out, target)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	var vars map[string]string
	require.NoError(t, json.Unmarshal(data, &vars))
	require.Equal(t, "#ff0080", vars["--brand-colors-accent"])
	require.Equal(t, "#3182ce", vars["--brand-colors-blue-500"])
}

func TestVarsCommandHonorsPrefixSetting(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	require.NoError(t, os.WriteFile(env.settings, []byte("css_prefix: acme\n"), 0o600))

	out, err := env.run(t, "vars", "default")
	require.NoError(t, err)
	require.Contains(t, out, "--acme-colors-blue-500")
	require.NotContains(t, out, "--chakra-")
}

func decodeResolve(t *testing.T, out string) resolvePayload {
	t.Helper()

	var payload resolvePayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	return payload
}

func TestResolveCommand(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	out, err := env.run(t, "resolve", "default", "Badge", "--variant", "outline", "--mode", "dark", "--raw")
	require.NoError(t, err)
	payload := decodeResolve(t, out)
	require.Equal(t, "Badge", payload.Component)
	require.Equal(t, "dark", payload.Mode)
	require.Equal(t, "uppercase", payload.Style["textTransform"])

	out, err = env.run(t, "resolve", "default", "Table", "--raw")
	require.NoError(t, err)
	payload = decodeResolve(t, out)
	require.Contains(t, payload.Parts, "th")
	_, ok := style.AsObject(payload.Style["th"])
	require.True(t, ok)
}

func TestResolveCommandFromDocument(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	path := env.writeTheme(t, "brand.yaml", brandTheme)

	out, err := env.run(t, "resolve", path, "Badge", "--variant", "loud", "--values")
	require.NoError(t, err)
	payload := decodeResolve(t, out)
	require.Equal(t, "#ff0080", payload.Style["background"])
	require.Equal(t, "9999px", payload.Style["borderRadius"])
}

func TestResolveCommandOverrides(t *testing.T) {
	t.Parallel()

	out, err := newTestEnv(t).run(t, "resolve", "default", "Badge", "--raw",
		"--override", "px=4",
		"--override", "_hover.bg=red.500",
	)
	require.NoError(t, err)
	payload := decodeResolve(t, out)
	require.EqualValues(t, 4, payload.Style["px"])
	hover, ok := style.AsObject(payload.Style["_hover"])
	require.True(t, ok)
	require.Equal(t, "red.500", hover["bg"])
}

func TestResolveCommandErrors(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	_, err := env.run(t, "resolve", "default", "Tooltip")
	require.ErrorIs(t, err, themeerrors.ErrUnknownComponent)
	require.Contains(t, err.Error(), "Suggestion:")

	_, err = env.run(t, "resolve", "default", "Badge", "--mode", "dim")
	require.ErrorIs(t, err, themeerrors.ErrMissingColorMode)

	_, err = env.run(t, "resolve", "default", "Badge", "--override", "novalue")
	require.Error(t, err)
	require.Contains(t, err.Error(), "path=value")
}

func TestParseOverrides(t *testing.T) {
	t.Parallel()

	obj, err := parseOverrides([]string{"p=2", "color=gray.600", "w={base: 100%, md: 50%}", "m=[1, 2]", "empty="})
	require.NoError(t, err)
	require.Equal(t, 2, obj["p"])
	require.Equal(t, "gray.600", obj["color"])
	require.Equal(t, style.Object{"base": "100%", "md": "50%"}, obj["w"])
	require.Equal(t, []any{1, 2}, obj["m"])
	require.Equal(t, "", obj["empty"])

	none, err := parseOverrides(nil)
	require.NoError(t, err)
	require.Nil(t, none)

	_, err = parseOverrides([]string{"p=1", "p.x=2"})
	require.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	path := env.writeTheme(t, "brand.yaml", brandTheme)

	out, err := env.run(t, "validate", path)
	require.NoError(t, err)
	require.Contains(t, out, "Brand is valid")
	require.Contains(t, out, "Schema:     1.0.0")

	broken := env.writeTheme(t, "broken.yaml", "version: \"1.0.0\"\nname: Broken\ntokens:\n  colors:\n    accent: \"#zzzzzz\"\n")
	_, err = env.run(t, "validate", broken)
	var validationErr *themeerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "tokens.colors.accent", validationErr.Field)
	require.Contains(t, err.Error(), `Fix the "tokens.colors.accent" field`)

	_, err = env.run(t, "validate", filepath.Join(t.TempDir(), "missing.yaml"))
	var sourceErr *themeerrors.SourceError
	require.ErrorAs(t, err, &sourceErr)
}

func TestComponentsCommand(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	out, err := env.run(t, "components", "default")
	require.NoError(t, err)
	require.Contains(t, out, "COMPONENT")
	for _, name := range []string{"Badge", "Drawer", "Link", "Modal", "Table"} {
		require.Contains(t, out, name)
	}
	require.Contains(t, out, "Outline, Solid, Subtle")
	require.Contains(t, out, "variant=subtle")

	out, err = env.run(t, "components", "default", "--check", "--color-scheme", "blue")
	require.NoError(t, err)
	require.Contains(t, out, "in light mode")
	require.Contains(t, out, "in dark mode")
}

func TestTokensCommand(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	path := env.writeTheme(t, "alias.yaml", "version: \"1.0.0\"\nname: Alias\ntokens:\n  colors:\n    primary: \"{colors.blue.500}\"\n")

	out, err := env.run(t, "tokens", path, "colors.primary")
	require.NoError(t, err)
	require.Contains(t, out, "alias of: colors.blue.500")
	require.Contains(t, out, "resolved: #3182ce")
	require.Contains(t, out, "variable: --chakra-colors-primary")

	out, err = env.run(t, "tokens", "default", "--prefix", "space")
	require.NoError(t, err)
	require.Contains(t, out, "space.0.5")
	require.Contains(t, out, `--chakra-space-0\.5`)
	require.NotContains(t, out, "colors.")

	out, err = env.run(t, "tokens", "default", "colors.blue")
	require.NoError(t, err)
	require.Contains(t, out, "colors.blue.900")

	_, err = env.run(t, "tokens", "default", "colors.nope")
	require.ErrorIs(t, err, themeerrors.ErrTokenNotFound)
}

func TestPaletteGenerateCommand(t *testing.T) {
	t.Parallel()

	out, err := newTestEnv(t).run(t, "palette", "generate", "#3182ce", "--name", "ocean")
	require.NoError(t, err)

	var doc struct {
		Tokens struct {
			Colors map[string]map[string]string `yaml:"colors"`
		} `yaml:"tokens"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	scale := doc.Tokens.Colors["ocean"]
	require.Len(t, scale, 10)
	require.Equal(t, "#3182ce", scale["500"])
	require.Less(t, strings.Index(out, `"50"`), strings.Index(out, `"900"`))

	_, err = newTestEnv(t).run(t, "palette", "generate", "teal")
	require.Error(t, err)
}

func TestPaletteShowCommand(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	out, err := env.run(t, "palette", "show", "default", "blue")
	require.NoError(t, err)
	require.Contains(t, out, "blue")
	require.Contains(t, out, "900")

	_, err = env.run(t, "palette", "show", "default", "white")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a hue scale")
}

func TestDiffCommand(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	before := env.writeTheme(t, "before.yaml", "version: \"1.0.0\"\nname: A\nextends: none\ntokens:\n  colors:\n    accent: \"#ff0000\"\n    muted: \"#777777\"\n")
	after := env.writeTheme(t, "after.yaml", "version: \"1.0.0\"\nname: B\nextends: none\ntokens:\n  colors:\n    accent: \"#ff0080\"\n    fg: \"#111111\"\n")

	out, err := env.run(t, "diff", before, after)
	require.NoError(t, err)
	require.Contains(t, out, "--- "+before)
	require.Contains(t, out, "+  --chakra-colors-fg: #111111;")
	require.Contains(t, out, "-  --chakra-colors-muted: #777777;")

	out, err = env.run(t, "diff", before, after, "--summary")
	require.NoError(t, err)
	require.Contains(t, out, "~ --chakra-colors-accent: #ff00")
	require.Contains(t, out, "{+8")
	require.Contains(t, out, "+ --chakra-colors-fg: #111111")
	require.Contains(t, out, "- --chakra-colors-muted: #777777")

	out, err = env.run(t, "diff", before, before)
	require.NoError(t, err)
	require.Equal(t, "No differences.\n", out)
}

func TestExploreCommand(t *testing.T) {
	original := runProgram
	t.Cleanup(func() { runProgram = original })

	var started tea.Model
	runProgram = func(m tea.Model) error {
		started = m
		return nil
	}

	env := newTestEnv(t)
	path := env.writeTheme(t, "brand.yaml", brandTheme)
	_, err := env.run(t, "explore", "default", path, "--mode", "dark")
	require.NoError(t, err)

	model, ok := started.(tui.Model)
	require.True(t, ok)
	require.Equal(t, "Badge", model.Selected())
	require.Equal(t, colormode.Dark, model.Mode())
	require.Contains(t, model.View(), "default")

	next, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	require.Contains(t, next.View(), "Brand")
	require.Contains(t, env.logs.String(), "theme.swapped")
}

func TestCommandLogsCarryCorrelationID(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	_, err := env.run(t, "vars", "default")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(env.logs.String()), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		require.Equal(t, "test-corr-id", entry["correlation_id"])
		require.NotEmpty(t, entry["layer"])
	}
}

func TestBadSettings(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	require.NoError(t, os.WriteFile(env.settings, []byte("log_format: xml\n"), 0o600))

	_, err := env.run(t, "version")
	require.Error(t, err)
	require.Contains(t, err.Error(), "log_format")
}
