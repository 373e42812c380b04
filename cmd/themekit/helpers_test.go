package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/ports"
)

const brandTheme = `version: "1.0.0"
name: Brand
config:
  cssVarPrefix: brand
tokens:
  colors:
    accent: "#ff0080"
  radii:
    pill: 9999px
components:
  Badge:
    variants:
      loud:
        bg: accent
        rounded: pill
`

type testEnv struct {
	home     string
	settings string
	logs     *bytes.Buffer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	settings := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(settings, []byte("log_level: info\nlog_format: json\n"), 0o600))

	return &testEnv{home: filepath.Join(dir, "home"), settings: settings, logs: &bytes.Buffer{}}
}

func (e *testEnv) writeTheme(t *testing.T, name, body string) string {
	t.Helper()

	path := filepath.Join(filepath.Dir(e.settings), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// run executes the root command with args and returns stdout.
func (e *testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	app := newAppContext()
	app.Settings.Set(settingHome, e.home)
	app.logWriter = e.logs

	cmd := newRootCmd(app)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", e.settings}, args...))

	ctx := ports.WithCorrelationID(context.Background(), "test-corr-id")
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}
