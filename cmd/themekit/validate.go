package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/internal/ports"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

func newValidateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <theme-location>",
		Short: "Validate a theme document without resolving anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.validate")
			err := runValidate(ctx, logger, cmd, app, args[0])
			if err != nil {
				logger.Error(ctx, "validate command failed", "location", args[0], "error", err)
			}
			return err
		},
	}

	return cmd
}

func runValidate(ctx context.Context, logger ports.Logger, cmd *cobra.Command, app *AppContext, location string) error {
	useUnicode := supportsUnicode(cmd.OutOrStdout())

	doc, fetched, err := app.Loader().Document(ctx, location)
	if err != nil {
		return newCommandError("validate", fmt.Sprintf("reading %s", location), err, validationSuggestion(err))
	}

	built, err := config.Build(doc)
	if err != nil {
		return newCommandError("validate", fmt.Sprintf("building %s", location), err, validationSuggestion(err))
	}

	logger.Info(ctx, "theme valid", "location", location, "theme", built.Name)

	mark := "[OK]"
	if useUnicode {
		mark = "✓"
	}
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "%s %s is valid\n", mark, built.Name)
	_, _ = fmt.Fprintf(out, "  Schema:     %s\n", doc.Version)
	_, _ = fmt.Fprintf(out, "  Extends:    %s\n", valueOrFallback(doc.Extends, config.ExtendsDefault))
	_, _ = fmt.Fprintf(out, "  Components: %d (%d declared)\n", built.Components.Len(), len(doc.Components))
	_, _ = fmt.Fprintf(out, "  Tokens:     %d\n", len(built.Tokens.Paths()))
	if fetched != nil && fetched.Revision != "" {
		_, _ = fmt.Fprintf(out, "  Revision:   %s\n", fetched.Revision)
	}
	return nil
}

func validationSuggestion(err error) string {
	var parseErr *themeerrors.ParseError
	var validationErr *themeerrors.ValidationError
	var sourceErr *themeerrors.SourceError
	switch {
	case errors.As(err, &parseErr):
		return "Fix the syntax error at the reported line and try again."
	case errors.As(err, &validationErr):
		return fmt.Sprintf("Fix the %q field and try again.", validationErr.Field)
	case errors.As(err, &sourceErr):
		return "Check that the location exists and is reachable."
	default:
		return "Check the theme document and try again."
	}
}
