package config

import (
	"fmt"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Build layers a validated document onto its base theme. Checks that depend
// on the merged result, such as alias cycles and default props naming
// inherited sizes, run here.
func Build(doc *Document) (*theme.Theme, error) {
	if doc == nil {
		return nil, themeerrors.NewValidationError("document", "document is nil", nil)
	}

	base, err := baseTheme(doc.Extends)
	if err != nil {
		return nil, err
	}

	built, err := theme.Extend(base, doc.Override())
	if err != nil {
		return nil, err
	}

	for _, name := range sortedComponentNames(doc.Components) {
		cfg, err := built.Components.Get(name)
		if err != nil {
			return nil, err
		}
		defaults := cfg.DefaultProps
		if defaults.Size != "" {
			if _, ok := cfg.Sizes[defaults.Size]; !ok {
				return nil, themeerrors.NewValidationError(
					fieldForComponent(name, "defaultProps", "size"),
					fmt.Sprintf("default size %q is not defined", defaults.Size),
					nil,
				)
			}
		}
		if defaults.Variant != "" {
			if _, ok := cfg.Variants[defaults.Variant]; !ok {
				return nil, themeerrors.NewValidationError(
					fieldForComponent(name, "defaultProps", "variant"),
					fmt.Sprintf("default variant %q is not defined", defaults.Variant),
					nil,
				)
			}
		}
	}

	if _, err := built.Breakpoints(); err != nil {
		return nil, themeerrors.NewValidationError(fieldForToken("breakpoints"), err.Error(), err)
	}

	return built, nil
}

// Load parses, validates and builds the theme document at path.
func Load(path string) (*theme.Theme, error) {
	doc, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return Build(doc)
}

func baseTheme(extends string) (*theme.Theme, error) {
	switch extends {
	case "", ExtendsDefault:
		return theme.Default(), nil
	case ExtendsNone:
		return theme.New(theme.DefaultName, nil, nil, theme.Config{})
	default:
		return nil, themeerrors.NewValidationError("extends", fmt.Sprintf("unknown base theme %q", extends), nil)
	}
}
