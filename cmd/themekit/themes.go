package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/themekit/internal/registry"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// builtinTheme names the built-in default theme on the command line.
const builtinTheme = "default"

func registryPaths(app *AppContext) (string, string, error) {
	home, err := app.Home()
	if err != nil {
		return "", "", err
	}
	return filepath.Join(home, "registry.json"), filepath.Join(home, "status.json"), nil
}

// loadTheme resolves arg as the built-in theme, a registered theme ID or a
// theme location, in that order. A configured css_prefix is applied last.
func loadTheme(ctx context.Context, app *AppContext, arg string) (*theme.Theme, error) {
	t, err := lookupTheme(ctx, app, arg)
	if err != nil {
		return nil, err
	}
	if prefix := app.CSSPrefix(); prefix != "" && prefix != t.Config.CSSVarPrefix {
		return theme.Extend(t, theme.Override{Config: theme.Config{CSSVarPrefix: prefix}})
	}
	return t, nil
}

func lookupTheme(ctx context.Context, app *AppContext, arg string) (*theme.Theme, error) {
	if arg == builtinTheme {
		if _, err := os.Stat(arg); err != nil {
			return theme.Default(), nil
		}
	}

	location := arg
	if registryPath, _, err := registryPaths(app); err == nil {
		if _, statErr := os.Stat(registryPath); statErr == nil {
			if reg, err := registry.NewRegistry(registryPath); err == nil {
				if entry, err := reg.Get(arg); err == nil {
					app.Logger.Debug(ctx, "theme resolved from registry", "theme_id", arg, "location", entry.Location)
					location = entry.Location
				}
			}
		}
	}

	return app.Loader().Load(ctx, location)
}
