package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/themekit/internal/palette"
	"github.com/alexisbeaulieu97/themekit/internal/ports"
	"github.com/alexisbeaulieu97/themekit/internal/style"
	"github.com/alexisbeaulieu97/themekit/internal/tokens"
)

type paletteGenerateOptions struct {
	name    string
	preview bool
}

func newPaletteCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Generate and preview color hue scales",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newPaletteGenerateCmd(app))
	cmd.AddCommand(newPaletteShowCmd(app))

	return cmd
}

func newPaletteGenerateCmd(app *AppContext) *cobra.Command {
	opts := &paletteGenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <hex-color>",
		Short: "Generate a 50-900 hue scale anchored on a base color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.palette.generate")
			err := runPaletteGenerate(ctx, logger, cmd, args[0], opts)
			if err != nil {
				logger.Error(ctx, "palette generate failed", "color", args[0], "error", err)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "brand", "Color group name used in the emitted tokens")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "Render swatches after the tokens")

	return cmd
}

func runPaletteGenerate(ctx context.Context, logger ports.Logger, cmd *cobra.Command, base string, opts *paletteGenerateOptions) error {
	scale, err := palette.Generate(base)
	if err != nil {
		return newCommandError("generate palette", fmt.Sprintf("reading %q", base), err, "Pass a hex color such as #3182ce.")
	}
	logger.Debug(ctx, "palette generated", "color", base, "name", opts.name)

	data, err := yaml.Marshal(scaleDocument(opts.name, scale))
	if err != nil {
		return newCommandError("generate palette", "encoding tokens", err, "Report this as a bug.")
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return err
	}

	if opts.preview || supportsUnicode(cmd.OutOrStdout()) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout())
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), palette.Swatches(opts.name, scale))
	}
	return nil
}

// scaleDocument renders tokens.colors.<name> with shades in scale order
// rather than the lexical order a plain map would get.
func scaleDocument(name string, scale tokens.Tree) *yaml.Node {
	shades := &yaml.Node{Kind: yaml.MappingNode}
	for _, shade := range tokens.HueShades {
		shades.Content = append(shades.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: shade, Style: yaml.DoubleQuotedStyle},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: style.FormatValue(scale[shade]), Style: yaml.DoubleQuotedStyle},
		)
	}

	return &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		{Kind: yaml.ScalarNode, Value: "tokens"},
		{Kind: yaml.MappingNode, Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "colors"},
			{Kind: yaml.MappingNode, Content: []*yaml.Node{
				{Kind: yaml.ScalarNode, Value: name},
				shades,
			}},
		}},
	}}
}

func newPaletteShowCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <theme> [color]",
		Short: "Render the hue scales of a theme as swatches",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.palette.show")
			name := ""
			if len(args) == 2 {
				name = args[1]
			}
			err := runPaletteShow(ctx, cmd, app, args[0], name)
			if err != nil {
				logger.Error(ctx, "palette show failed", "theme", args[0], "color", name, "error", err)
			}
			return err
		},
	}

	return cmd
}

func runPaletteShow(ctx context.Context, cmd *cobra.Command, app *AppContext, arg, name string) error {
	t, err := loadTheme(ctx, app, arg)
	if err != nil {
		return newCommandError("show palette", fmt.Sprintf("loading theme %q", arg), err, "Run 'themekit validate "+arg+"' for details.")
	}

	names := t.ColorSchemes()
	if name != "" {
		names = []string{name}
	}

	for _, n := range names {
		raw, err := t.Tokens.Get("colors", n)
		if err != nil {
			return newCommandError("show palette", fmt.Sprintf("looking up colors.%s", n), err, "Run 'themekit palette show "+arg+"' to list every hue scale.")
		}
		scale, ok := style.AsObject(raw)
		if !ok {
			return newCommandError("show palette", fmt.Sprintf("reading colors.%s", n), fmt.Errorf("colors.%s is a single color, not a hue scale", n), "Pick a color group with 50-900 shades.")
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), palette.Swatches(n, scale))
	}
	return nil
}
