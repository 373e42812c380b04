package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/colormode"
	"github.com/alexisbeaulieu97/themekit/internal/engine"
	"github.com/alexisbeaulieu97/themekit/internal/ports"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	"github.com/alexisbeaulieu97/themekit/internal/tui"
)

type exploreOptions struct {
	mode   string
	values bool
}

var runProgram = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func newExploreCmd(app *AppContext) *cobra.Command {
	opts := &exploreOptions{}

	cmd := &cobra.Command{
		Use:   "explore <theme> [theme...]",
		Short: "Browse components interactively and watch styles resolve",
		Long: `Browse components interactively and watch styles resolve.

With more than one theme, press n to switch to the next theme.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.explore")
			logger.Info(ctx, "launching explorer", "themes", args)
			err := runExplore(ctx, logger, cmd, app, args, opts)
			if err != nil {
				logger.Error(ctx, "explore command failed", "themes", args, "error", err)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&opts.mode, "mode", "", "Initial color mode (light or dark)")
	cmd.Flags().BoolVar(&opts.values, "values", false, "Show literal token values instead of CSS variables")

	return cmd
}

func runExplore(ctx context.Context, logger ports.Logger, cmd *cobra.Command, app *AppContext, args []string, opts *exploreOptions) error {
	themes := make([]*theme.Theme, 0, len(args))
	for _, arg := range args {
		t, err := loadTheme(ctx, app, arg)
		if err != nil {
			return newCommandError("explore", fmt.Sprintf("loading theme %q", arg), err, "Run 'themekit validate "+arg+"' for details.")
		}
		themes = append(themes, t)
	}
	t := themes[0]

	mode, err := app.ColorMode(opts.mode, t.Config.InitialColorMode)
	if err != nil {
		return newCommandError("explore", "reading color mode", err, "Use --mode light or --mode dark.")
	}

	runtime := engine.NewRuntime(theme.NewManager(t), colormode.NewManager(mode), engine.Options{
		Logger: logger,
		Events: app.Events(),
		Values: opts.values,
	})
	model, err := tui.NewModel(runtime, supportsUnicode(cmd.OutOrStdout()))
	if err != nil {
		return newCommandError("explore", "preparing explorer", err, "Check the theme breakpoints.")
	}

	if err := runProgram(model.WithThemes(themes...)); err != nil {
		return newCommandError("explore", "running explorer", err, "Run in an interactive terminal.")
	}
	logger.Info(ctx, "explorer closed")
	return nil
}
