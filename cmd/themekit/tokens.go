package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/cssvar"
	"github.com/alexisbeaulieu97/themekit/internal/ports"
	"github.com/alexisbeaulieu97/themekit/internal/style"
	"github.com/alexisbeaulieu97/themekit/internal/tokens"
)

type tokensOptions struct {
	prefix string
}

func newTokensCmd(app *AppContext) *cobra.Command {
	opts := &tokensOptions{}

	cmd := &cobra.Command{
		Use:   "tokens <theme> [path]",
		Short: "List theme tokens or look one up by dotted path",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.tokens")
			path := ""
			if len(args) == 2 {
				path = args[1]
			}
			err := runTokens(ctx, logger, cmd, app, args[0], path, opts)
			if err != nil {
				logger.Error(ctx, "tokens command failed", "theme", args[0], "path", path, "error", err)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "Only list tokens under this dotted path")

	return cmd
}

func runTokens(ctx context.Context, logger ports.Logger, cmd *cobra.Command, app *AppContext, arg, path string, opts *tokensOptions) error {
	t, err := loadTheme(ctx, app, arg)
	if err != nil {
		return newCommandError("read tokens", fmt.Sprintf("loading theme %q", arg), err, "Run 'themekit validate "+arg+"' for details.")
	}

	out := cmd.OutOrStdout()
	varOpts := t.VarOptions()

	if path != "" {
		segments, err := t.Tokens.Path(path)
		if err != nil {
			return newCommandError("read tokens", fmt.Sprintf("looking up %q", path), err, "Run 'themekit tokens "+arg+"' to list every token path.")
		}
		rawValue, err := t.Tokens.Get(segments...)
		if err != nil {
			return newCommandError("read tokens", fmt.Sprintf("looking up %q", path), err, "Run 'themekit tokens "+arg+"' to list every token path.")
		}
		if _, isGroup := style.AsObject(rawValue); isGroup {
			return runTokenList(cmd, t.Tokens, varOpts, strings.Join(segments, "."))
		}

		resolved, err := t.Tokens.Resolve(path)
		if err != nil {
			return newCommandError("read tokens", fmt.Sprintf("resolving %q", path), err, "Check the alias chain of this token.")
		}

		logger.Debug(ctx, "token looked up", "path", path)
		_, _ = fmt.Fprintf(out, "path:     %s\n", strings.Join(segments, "."))
		_, _ = fmt.Fprintf(out, "value:    %s\n", style.FormatValue(rawValue))
		if target, ok := t.Tokens.IsAlias(path); ok {
			_, _ = fmt.Fprintf(out, "alias of: %s\n", target)
		}
		_, _ = fmt.Fprintf(out, "resolved: %s\n", style.FormatValue(resolved))
		_, _ = fmt.Fprintf(out, "variable: %s\n", cssvar.Name(segments, varOpts))
		return nil
	}

	return runTokenList(cmd, t.Tokens, varOpts, opts.prefix)
}

func runTokenList(cmd *cobra.Command, store *tokens.Store, varOpts cssvar.Options, prefix string) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "PATH\tVALUE\tVARIABLE")

	store.Walk(func(path []string, value any) {
		dotted := strings.Join(path, ".")
		if prefix != "" && dotted != prefix && !strings.HasPrefix(dotted, prefix+".") {
			return
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\n", dotted, style.FormatValue(value), cssvar.Name(path, varOpts))
	})
	return writer.Flush()
}
