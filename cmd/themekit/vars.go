package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/cssvar"
	"github.com/alexisbeaulieu97/themekit/internal/ports"
)

type varsOptions struct {
	jsonOutput bool
	out        string
	selector   string
}

func newVarsCmd(app *AppContext) *cobra.Command {
	opts := &varsOptions{}

	cmd := &cobra.Command{
		Use:   "vars <theme>",
		Short: "Emit the CSS custom properties of a theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.vars")
			err := runVars(ctx, logger, cmd, app, args[0], opts)
			if err != nil {
				logger.Error(ctx, "vars command failed", "theme", args[0], "error", err)
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output variables as a JSON object")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write output to a file instead of stdout")
	cmd.Flags().StringVar(&opts.selector, "selector", cssvar.DefaultSelector, "Selector wrapping the declarations")

	return cmd
}

func runVars(ctx context.Context, logger ports.Logger, cmd *cobra.Command, app *AppContext, arg string, opts *varsOptions) error {
	t, err := loadTheme(ctx, app, arg)
	if err != nil {
		return newCommandError("vars", fmt.Sprintf("loading theme %q", arg), err, "Run 'themekit validate "+arg+"' for details.")
	}

	projection := t.Project()

	var data []byte
	if opts.jsonOutput {
		data, err = json.MarshalIndent(projection.Vars, "", "  ")
		if err != nil {
			return newCommandError("vars", "encoding variables", err, "Report this as a bug.")
		}
		data = append(data, '\n')
	} else {
		data = []byte(projection.Sheet(opts.selector))
	}

	logger.Info(ctx, "variables projected", "theme", t.Name, "count", len(projection.Vars))

	if opts.out == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(opts.out, data, 0o644); err != nil {
		return newCommandError("vars", fmt.Sprintf("writing %s", opts.out), err, "Check that the directory exists and is writable.")
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d variables (%s) to %s\n", len(projection.Vars), humanize.Bytes(uint64(len(data))), opts.out)
	return nil
}
