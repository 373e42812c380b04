package config

import (
	"github.com/alexisbeaulieu97/themekit/internal/colormode"
	"github.com/alexisbeaulieu97/themekit/internal/style"
	"github.com/alexisbeaulieu97/themekit/internal/styleconfig"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	"github.com/alexisbeaulieu97/themekit/internal/tokens"
)

// Base theme selectors accepted by Document.Extends.
const (
	ExtendsDefault = "default"
	ExtendsNone    = "none"
)

// Document is a theme document as written on disk.
type Document struct {
	Version     string               `yaml:"version" json:"version" toml:"version" validate:"required,semver"`
	Name        string               `yaml:"name" json:"name" toml:"name" validate:"required,min=1,max=100"`
	Description string               `yaml:"description,omitempty" json:"description,omitempty" toml:"description,omitempty"`
	Extends     string               `yaml:"extends,omitempty" json:"extends,omitempty" toml:"extends,omitempty" validate:"omitempty,oneof=default none"`
	Config      Settings             `yaml:"config,omitempty" json:"config,omitempty" toml:"config,omitempty"`
	Tokens      map[string]any       `yaml:"tokens,omitempty" json:"tokens,omitempty" toml:"tokens,omitempty"`
	Components  map[string]Component `yaml:"components,omitempty" json:"components,omitempty" toml:"components,omitempty" validate:"omitempty,dive,keys,component_name,endkeys"`
}

// Settings holds theme-wide configuration.
type Settings struct {
	CSSVarPrefix     string `yaml:"cssVarPrefix,omitempty" json:"cssVarPrefix,omitempty" toml:"cssVarPrefix,omitempty" validate:"omitempty,css_prefix"`
	InitialColorMode string `yaml:"initialColorMode,omitempty" json:"initialColorMode,omitempty" toml:"initialColorMode,omitempty" validate:"omitempty,color_mode"`
}

// Component is a component style config as written in a document.
type Component struct {
	Parts        []string                  `yaml:"parts,omitempty" json:"parts,omitempty" toml:"parts,omitempty" validate:"omitempty,unique,dive,required"`
	BaseStyle    map[string]any            `yaml:"baseStyle,omitempty" json:"baseStyle,omitempty" toml:"baseStyle,omitempty"`
	Sizes        map[string]map[string]any `yaml:"sizes,omitempty" json:"sizes,omitempty" toml:"sizes,omitempty"`
	Variants     map[string]map[string]any `yaml:"variants,omitempty" json:"variants,omitempty" toml:"variants,omitempty"`
	DefaultProps DefaultProps              `yaml:"defaultProps,omitempty" json:"defaultProps,omitempty" toml:"defaultProps,omitempty"`
}

// DefaultProps mirrors styleconfig.DefaultProps.
type DefaultProps struct {
	Variant     string `yaml:"variant,omitempty" json:"variant,omitempty" toml:"variant,omitempty"`
	Size        string `yaml:"size,omitempty" json:"size,omitempty" toml:"size,omitempty"`
	ColorScheme string `yaml:"colorScheme,omitempty" json:"colorScheme,omitempty" toml:"colorScheme,omitempty"`
}

// TokenTree returns the document tokens with decoder types normalized.
func (d *Document) TokenTree() tokens.Tree {
	if d == nil || len(d.Tokens) == 0 {
		return nil
	}
	return style.NormalizeObject(d.Tokens)
}

// StyleConfig compiles the component into a resolver config.
func (c Component) StyleConfig() styleconfig.Config {
	return styleconfig.Config{
		Parts:     append([]string(nil), c.Parts...),
		BaseStyle: styleconfig.Compile(style.NormalizeObject(c.BaseStyle)),
		Sizes:     compileNamed(c.Sizes),
		Variants:  compileNamed(c.Variants),
		DefaultProps: styleconfig.DefaultProps{
			Variant:     c.DefaultProps.Variant,
			Size:        c.DefaultProps.Size,
			ColorScheme: c.DefaultProps.ColorScheme,
		},
	}
}

func compileNamed(named map[string]map[string]any) map[string]styleconfig.StyleOrThunk {
	if len(named) == 0 {
		return nil
	}
	out := make(map[string]styleconfig.StyleOrThunk, len(named))
	for name, obj := range named {
		out[name] = styleconfig.Compile(style.NormalizeObject(obj))
	}
	return out
}

// Override converts the document into a theme override.
func (d *Document) Override() theme.Override {
	components := make(map[string]styleconfig.Config, len(d.Components))
	for name, c := range d.Components {
		components[name] = c.StyleConfig()
	}
	return theme.Override{
		Name:       d.Name,
		Tokens:     d.TokenTree(),
		Components: components,
		Config: theme.Config{
			CSSVarPrefix:     d.Config.CSSVarPrefix,
			InitialColorMode: colormode.ColorMode(d.Config.InitialColorMode),
		},
	}
}
