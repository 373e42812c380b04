package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/themekit/internal/engine"
	"github.com/alexisbeaulieu97/themekit/internal/ports"
	"github.com/alexisbeaulieu97/themekit/internal/style"
)

type resolveOptions struct {
	variant     string
	size        string
	colorScheme string
	orientation string
	mode        string
	overrides   []string
	raw         bool
	values      bool
}

type resolvePayload struct {
	Component string       `json:"component"`
	Mode      string       `json:"mode"`
	Parts     []string     `json:"parts,omitempty"`
	Style     style.Object `json:"style"`
}

func newResolveCmd(app *AppContext) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <theme> <component>",
		Short: "Resolve the style of a component for one variant, size and color mode",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.resolve")
			err := runResolve(ctx, logger, cmd, app, args[0], args[1], opts)
			if err != nil {
				logger.Error(ctx, "resolve command failed", "theme", args[0], "component", args[1], "error", err)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&opts.variant, "variant", "", "Variant name (defaults to the component default)")
	cmd.Flags().StringVar(&opts.size, "size", "", "Size name (defaults to the component default)")
	cmd.Flags().StringVar(&opts.colorScheme, "color-scheme", "", "Color scheme passed to style functions")
	cmd.Flags().StringVar(&opts.orientation, "orientation", "", "Orientation passed to style functions")
	cmd.Flags().StringVar(&opts.mode, "mode", "", "Color mode (light or dark)")
	cmd.Flags().StringArrayVar(&opts.overrides, "override", nil, "Per-call style override as path=value; repeatable")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "Skip token interpolation and responsive expansion")
	cmd.Flags().BoolVar(&opts.values, "values", false, "Interpolate tokens to literal values instead of CSS variables")

	return cmd
}

func runResolve(ctx context.Context, logger ports.Logger, cmd *cobra.Command, app *AppContext, themeArg, component string, opts *resolveOptions) error {
	t, err := loadTheme(ctx, app, themeArg)
	if err != nil {
		return newCommandError("resolve", fmt.Sprintf("loading theme %q", themeArg), err, "Run 'themekit validate "+themeArg+"' for details.")
	}

	mode, err := app.ColorMode(opts.mode, t.Config.InitialColorMode)
	if err != nil {
		return newCommandError("resolve", "reading color mode", err, "Use --mode light or --mode dark.")
	}

	override, err := parseOverrides(opts.overrides)
	if err != nil {
		return newCommandError("resolve", "parsing overrides", err, "Pass overrides as --override path=value, e.g. --override bg=red.500.")
	}

	eng, err := engine.New(t, engine.Options{Logger: logger, Raw: opts.raw, Values: opts.values})
	if err != nil {
		return newCommandError("resolve", "preparing engine", err, "Check the theme breakpoints.")
	}

	result, err := eng.Resolve(ctx, engine.Request{
		Component:   component,
		Variant:     opts.variant,
		Size:        opts.size,
		ColorScheme: opts.colorScheme,
		Orientation: opts.orientation,
		StyleConfig: override,
	}, mode)
	if err != nil {
		return newCommandError("resolve", fmt.Sprintf("resolving %s", component), err, "Run 'themekit components "+themeArg+"' to list components and their variants.")
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(resolvePayload{
		Component: result.Component,
		Mode:      result.Mode.String(),
		Parts:     result.Parts,
		Style:     result.Style,
	})
}

// parseOverrides turns path=value pairs into a style object. Values are
// decoded as YAML so numbers, lists and breakpoint maps keep their shape.
func parseOverrides(pairs []string) (style.Object, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	out := style.Object{}
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("override %q is not in path=value form", pair)
		}

		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			return nil, fmt.Errorf("override %q: %w", key, err)
		}
		if value == nil {
			value = raw
		}

		if err := setPath(out, strings.Split(key, "."), style.Normalize(value)); err != nil {
			return nil, fmt.Errorf("override %q: %w", key, err)
		}
	}
	return out, nil
}

func setPath(obj style.Object, path []string, value any) error {
	for _, segment := range path[:len(path)-1] {
		next, ok := style.AsObject(obj[segment])
		if !ok {
			if _, exists := obj[segment]; exists {
				return fmt.Errorf("%s is already set to a scalar", segment)
			}
			next = style.Object{}
			obj[segment] = next
		}
		obj = next
	}
	obj[path[len(path)-1]] = value
	return nil
}
