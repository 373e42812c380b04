package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type removeOptions struct {
	force bool
}

func newRemoveCmd(app *AppContext) *cobra.Command {
	opts := &removeOptions{}

	cmd := &cobra.Command{
		Use:   "remove <theme-id>",
		Short: "Remove a theme from the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.registry.remove")
			err := runRemove(cmd, app, args[0], opts)
			if err != nil {
				logger.Error(ctx, "remove command failed", "theme_id", args[0], "error", err)
			} else {
				logger.Info(ctx, "theme removed", "theme_id", args[0])
			}
			return err
		},
	}

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Remove without confirmation")

	return cmd
}

func runRemove(cmd *cobra.Command, app *AppContext, themeID string, opts *removeOptions) error {
	if strings.TrimSpace(themeID) == "" {
		return newCommandError("remove", "validating theme ID", errors.New("theme ID cannot be empty"), "Provide the theme ID you wish to remove.")
	}

	reg, cache, err := openRegistry(app, "remove")
	if err != nil {
		return err
	}

	entry, err := reg.Get(themeID)
	if err != nil {
		return newCommandError("remove", fmt.Sprintf("looking up theme %q", themeID), err, "Run 'themekit registry list' to view registered themes.")
	}

	if !opts.force {
		confirmed, err := confirmRemoval(cmd, themeID, entry.Name)
		if err != nil {
			return err
		}
		if !confirmed {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	if err := reg.Remove(themeID); err != nil {
		return newCommandError("remove", fmt.Sprintf("removing theme %q", themeID), err, "Verify the theme still exists using 'themekit registry list'.")
	}
	if err := reg.Save(); err != nil {
		return newCommandError("remove", "saving registry", err, "Check disk space and file permissions, then retry.")
	}

	cache.Invalidate(themeID)
	_ = cache.Save()

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed theme '%s'\n", themeID)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nThe theme document at %s was not deleted.\n", entry.Location)

	return nil
}

func confirmRemoval(cmd *cobra.Command, themeID, themeName string) (bool, error) {
	if !isTerminal(cmd.InOrStdin()) {
		return false, newCommandError("remove", "prompting for confirmation", errors.New("not a terminal"), "Use --force when running in non-interactive environments.")
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Remove theme '%s' (%s) from registry? [y/N]: ", themeID, themeName)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return false, scanner.Err()
	}

	answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
	return answer == "y" || answer == "yes", nil
}

func isTerminal(reader any) bool {
	if file, ok := reader.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}
