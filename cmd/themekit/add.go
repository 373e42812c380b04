package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/ports"
	"github.com/alexisbeaulieu97/themekit/internal/registry"
	"github.com/alexisbeaulieu97/themekit/internal/source"
)

type addOptions struct {
	id           string
	name         string
	description  string
	skipValidate bool
}

func newAddCmd(app *AppContext) *cobra.Command {
	opts := &addOptions{}

	cmd := &cobra.Command{
		Use:   "add <theme-location>",
		Short: "Add a theme location to the registry",
		Long:  "Register a theme document by file path, http(s) URL or git+<repo-url>#<path>[@ref].",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.registry.add")
			logger.Info(ctx, "adding theme", "location", args[0])
			err := runAdd(ctx, logger, cmd, app, args[0], opts)
			if err != nil {
				logger.Error(ctx, "add command failed", "location", args[0], "error", err)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.id, "id", "i", "", "Theme ID (derived from the location if omitted)")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Display name (defaults to the theme name)")
	cmd.Flags().StringVarP(&opts.description, "description", "d", "", "Optional description")
	cmd.Flags().BoolVar(&opts.skipValidate, "skip-validate", false, "Register without fetching and validating the theme")

	return cmd
}

func runAdd(ctx context.Context, logger ports.Logger, cmd *cobra.Command, app *AppContext, raw string, opts *addOptions) error {
	location, err := normalizeLocation(raw)
	if err != nil {
		return newCommandError("add", fmt.Sprintf("reading location %q", raw), err, "Use a file path, an http(s) URL or git+<repo-url>#<path>[@ref].")
	}

	if opts.id == "" {
		opts.id = registry.GenerateThemeID(location)
	}
	if err := registry.ValidateThemeID(opts.id); err != nil {
		return newCommandError("add", "validating theme ID", err, "Provide an ID using lowercase letters, numbers, and hyphens. IDs must start and end with alphanumeric characters.")
	}

	reg, cache, err := openRegistry(app, "add")
	if err != nil {
		return err
	}

	var status *registry.CachedStatus
	if !opts.skipValidate {
		checked := registry.Check(ctx, app.Loader(), registry.Entry{ID: opts.id, Location: location})
		publishChecked(ctx, app.Events(), opts.id, checked)
		if checked.Status != registry.StatusValid {
			return newCommandError("add", "validating theme", fmt.Errorf("%s: %s", checked.Summary, checked.Error), "Fix the theme document or pass --skip-validate.")
		}
		status = &checked
		if opts.name == "" {
			if built, err := app.Loader().Load(ctx, location); err == nil {
				opts.name = built.Name
			}
		}
	}
	if opts.name == "" {
		opts.name = opts.id
	}

	entry := registry.Entry{
		ID:           opts.id,
		Name:         opts.name,
		Location:     location,
		Description:  opts.description,
		RegisteredAt: time.Now().UTC(),
	}

	if err := reg.Add(entry); err != nil {
		return newCommandError("add", fmt.Sprintf("adding theme %q", opts.id), err, "Use a different ID or remove the existing theme first.")
	}
	if err := reg.Save(); err != nil {
		return newCommandError("add", "saving registry", err, "Check disk space and file permissions, then retry.")
	}

	if status != nil {
		cache.Set(entry.ID, *status)
		if err := cache.Save(); err != nil {
			logger.Warn(ctx, "status cache save failed", "theme_id", entry.ID, "error", err)
		}
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Added theme '%s' (%s)\n", entry.ID, entry.Name)
	_, _ = fmt.Fprintf(out, "  Location: %s\n", entry.Location)
	if status != nil {
		_, _ = fmt.Fprintf(out, "  Status:   %s\n", status.Summary)
	}
	_, _ = fmt.Fprintln(out, "\nUse 'themekit resolve "+entry.ID+" <component>' to resolve styles from it.")

	logger.Info(ctx, "theme registered", "theme_id", entry.ID, "location", entry.Location)
	return nil
}

// normalizeLocation makes file locations absolute so the registry works from
// any directory. Remote locations are returned unchanged.
func normalizeLocation(raw string) (string, error) {
	loc, err := source.ParseLocation(raw)
	if err != nil {
		return "", err
	}
	if loc.Kind != source.KindFile {
		return strings.TrimSpace(loc.Raw), nil
	}

	path := loc.Path
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory, not a file", abs)
	}
	return abs, nil
}
