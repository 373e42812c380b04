package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/themekit/internal/colormode"
	"github.com/alexisbeaulieu97/themekit/internal/engine"
	"github.com/alexisbeaulieu97/themekit/internal/ports"
)

type componentsOptions struct {
	check       bool
	workers     int
	colorScheme string
}

func newComponentsCmd(app *AppContext) *cobra.Command {
	opts := &componentsOptions{}

	cmd := &cobra.Command{
		Use:   "components <theme>",
		Short: "List the components of a theme with their variants and sizes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.components")
			err := runComponents(ctx, logger, cmd, app, args[0], opts)
			if err != nil {
				logger.Error(ctx, "components command failed", "theme", args[0], "error", err)
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.check, "check", false, "Resolve every variant and size in both color modes")
	cmd.Flags().IntVar(&opts.workers, "workers", 4, "Concurrent resolutions when checking")
	cmd.Flags().StringVar(&opts.colorScheme, "color-scheme", "", "Color scheme used when checking")

	return cmd
}

func runComponents(ctx context.Context, logger ports.Logger, cmd *cobra.Command, app *AppContext, arg string, opts *componentsOptions) error {
	t, err := loadTheme(ctx, app, arg)
	if err != nil {
		return newCommandError("list components", fmt.Sprintf("loading theme %q", arg), err, "Run 'themekit validate "+arg+"' for details.")
	}

	title := cases.Title(language.English)
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "COMPONENT\tPARTS\tVARIANTS\tSIZES\tDEFAULTS")

	for _, name := range t.Components.Names() {
		cfg, err := t.Components.Get(name)
		if err != nil {
			return err
		}

		defaults := make([]string, 0, 3)
		if cfg.DefaultProps.Variant != "" {
			defaults = append(defaults, "variant="+cfg.DefaultProps.Variant)
		}
		if cfg.DefaultProps.Size != "" {
			defaults = append(defaults, "size="+cfg.DefaultProps.Size)
		}
		if cfg.DefaultProps.ColorScheme != "" {
			defaults = append(defaults, "colorScheme="+cfg.DefaultProps.ColorScheme)
		}

		fmt.Fprintf(writer, "%s\t%d\t%s\t%s\t%s\n",
			name,
			len(cfg.Parts),
			titleList(title, cfg.VariantNames()),
			titleList(title, cfg.SizeNames()),
			valueOrFallback(strings.Join(defaults, " "), "-"),
		)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	if !opts.check {
		return nil
	}

	eng, err := engine.New(t, engine.Options{Logger: logger})
	if err != nil {
		return newCommandError("list components", "preparing engine", err, "Check the theme breakpoints.")
	}
	reqs := eng.Matrix(opts.colorScheme)
	for _, mode := range []colormode.ColorMode{colormode.Light, colormode.Dark} {
		results, err := eng.ResolveAll(ctx, reqs, mode, opts.workers)
		if err != nil {
			return newCommandError("list components", fmt.Sprintf("resolving in %s mode", mode), err, "Fix the failing component style and try again.")
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Resolved %d combinations in %s mode\n", len(results), mode)
	}
	return nil
}

func titleList(caser cases.Caser, names []string) string {
	if len(names) == 0 {
		return "-"
	}
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = caser.String(name)
	}
	return strings.Join(out, ", ")
}
