// Package theme assembles tokens, component style configs and color-mode
// settings into an immutable Theme, and ships the built-in default theme.
package theme

import (
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/themekit/internal/colormode"
	"github.com/alexisbeaulieu97/themekit/internal/cssvar"
	"github.com/alexisbeaulieu97/themekit/internal/responsive"
	"github.com/alexisbeaulieu97/themekit/internal/style"
	"github.com/alexisbeaulieu97/themekit/internal/styleconfig"
	"github.com/alexisbeaulieu97/themekit/internal/tokens"
)

// DefaultName names the built-in theme.
const DefaultName = "default"

// Config holds theme-wide settings.
type Config struct {
	CSSVarPrefix     string
	InitialColorMode colormode.ColorMode
}

// Theme is a validated, read-only theme. Re-theming builds a new Theme.
type Theme struct {
	Name       string
	Tokens     *tokens.Store
	Components *Registry
	Config     Config
}

// New builds a theme from a token tree and component configs.
func New(name string, tree tokens.Tree, components map[string]styleconfig.Config, cfg Config) (*Theme, error) {
	store, err := tokens.NewStore(tree, nil)
	if err != nil {
		return nil, err
	}

	registry := NewRegistry()
	for componentName, componentCfg := range components {
		if err := registry.Register(componentName, componentCfg); err != nil {
			return nil, err
		}
	}

	return &Theme{
		Name:       name,
		Tokens:     store,
		Components: registry,
		Config:     normalizeConfig(cfg),
	}, nil
}

func normalizeConfig(cfg Config) Config {
	if cfg.CSSVarPrefix == "" {
		cfg.CSSVarPrefix = cssvar.DefaultPrefix
	}
	if !cfg.InitialColorMode.Valid() {
		cfg.InitialColorMode = colormode.Light
	}
	return cfg
}

// Default returns a fresh copy of the built-in theme.
func Default() *Theme {
	t, err := New(DefaultName, foundations(), defaultComponents(), Config{})
	if err != nil {
		panic(fmt.Sprintf("default theme is invalid: %v", err))
	}
	return t
}

// VarOptions returns the CSS variable naming for this theme.
func (t *Theme) VarOptions() cssvar.Options {
	return cssvar.Options{Prefix: t.Config.CSSVarPrefix, Separator: cssvar.DefaultSeparator}
}

// Project projects the theme tokens onto CSS variables.
func (t *Theme) Project() cssvar.Projection {
	return cssvar.ProjectStore(t.Tokens, t.VarOptions())
}

// Breakpoints returns the ordered breakpoints from the breakpoints token group.
func (t *Theme) Breakpoints() (responsive.Breakpoints, error) {
	group, err := t.Tokens.Get("breakpoints")
	if err != nil {
		if tokens.IsNotFound(err) {
			return responsive.Breakpoints{{Name: responsive.Base, MinWidth: "0em"}}, nil
		}
		return nil, err
	}
	tree, ok := style.AsObject(group)
	if !ok {
		return nil, errors.New("breakpoints must be a token group")
	}
	return responsive.ParseBreakpoints(tree)
}

// ColorSchemes lists the color groups that are complete hue scales, sorted.
// These are the values a request's color scheme can name.
func (t *Theme) ColorSchemes() []string {
	colors, err := t.Tokens.Get("colors")
	if err != nil {
		return nil
	}
	group, ok := style.AsObject(colors)
	if !ok {
		return nil
	}
	var names []string
	for _, name := range style.Keys(group) {
		if hues, isGroup := style.AsObject(group[name]); isGroup && tokens.IsHueScale(hues) {
			names = append(names, name)
		}
	}
	return names
}

// Override describes changes layered onto a base theme by Extend.
type Override struct {
	Name       string
	Tokens     tokens.Tree
	Components map[string]styleconfig.Config
	Config     Config
}

// Extend returns a new theme with override layered onto base. Token trees
// are deep-merged and component configs extended entry by entry. base is
// left untouched.
func Extend(base *Theme, override Override) (*Theme, error) {
	store, err := tokens.NewStore(base.Tokens.Tree(), override.Tokens)
	if err != nil {
		return nil, err
	}

	registry := base.Components.Clone()
	for name, cfg := range override.Components {
		if existing, err := registry.Get(name); err == nil {
			cfg = styleconfig.Extend(existing, cfg)
		}
		if err := registry.Register(name, cfg); err != nil {
			return nil, err
		}
	}

	cfg := base.Config
	if override.Config.CSSVarPrefix != "" {
		cfg.CSSVarPrefix = override.Config.CSSVarPrefix
	}
	if override.Config.InitialColorMode != "" {
		cfg.InitialColorMode = override.Config.InitialColorMode
	}

	name := override.Name
	if name == "" {
		name = base.Name
	}

	return &Theme{
		Name:       name,
		Tokens:     store,
		Components: registry,
		Config:     normalizeConfig(cfg),
	}, nil
}
