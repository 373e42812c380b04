package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/ports"
	"github.com/alexisbeaulieu97/themekit/pkg/diff"
)

type diffOptions struct {
	summary bool
}

func newDiffCmd(app *AppContext) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <theme-a> <theme-b>",
		Short: "Compare the CSS variables of two themes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.diff")
			err := runDiff(ctx, logger, cmd, app, args[0], args[1], opts)
			if err != nil {
				logger.Error(ctx, "diff command failed", "before", args[0], "after", args[1], "error", err)
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.summary, "summary", false, "List changed variables with inline value edits instead of a unified diff")

	return cmd
}

func runDiff(ctx context.Context, logger ports.Logger, cmd *cobra.Command, app *AppContext, before, after string, opts *diffOptions) error {
	a, err := loadTheme(ctx, app, before)
	if err != nil {
		return newCommandError("diff", fmt.Sprintf("loading theme %q", before), err, "Run 'themekit validate "+before+"' for details.")
	}
	b, err := loadTheme(ctx, app, after)
	if err != nil {
		return newCommandError("diff", fmt.Sprintf("loading theme %q", after), err, "Run 'themekit validate "+after+"' for details.")
	}

	pa, pb := a.Project(), b.Project()
	out := cmd.OutOrStdout()

	if opts.summary {
		changes := diff.Compare(pa.Vars, pb.Vars)
		logger.Info(ctx, "themes compared", "changes", len(changes))
		if len(changes) == 0 {
			_, _ = fmt.Fprintln(out, "No differences.")
			return nil
		}
		for _, c := range changes {
			switch c.Kind {
			case diff.Added:
				_, _ = fmt.Fprintf(out, "+ %s: %s\n", c.Key, c.New)
			case diff.Removed:
				_, _ = fmt.Fprintf(out, "- %s: %s\n", c.Key, c.Old)
			default:
				_, _ = fmt.Fprintf(out, "~ %s: %s\n", c.Key, diff.Inline(c.Old, c.New))
			}
		}
		return nil
	}

	unified := diff.Unified([]byte(pa.Sheet("")), []byte(pb.Sheet("")), before, after)
	if unified == "" {
		_, _ = fmt.Fprintln(out, "No differences.")
		return nil
	}
	_, err = fmt.Fprint(out, unified)
	return err
}
