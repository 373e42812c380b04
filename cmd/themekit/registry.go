package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/themekit/internal/ports"
	"github.com/alexisbeaulieu97/themekit/internal/registry"
)

func newRegistryCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Manage the themekit theme registry",
		Long:  "Manage the themekit theme registry, including adding, listing, removing, refreshing, and showing registered themes.",
		Aliases: []string{
			"reg",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newRemoveCmd(app))
	cmd.AddCommand(newRefreshCmd(app))
	cmd.AddCommand(newShowCmd(app))

	return cmd
}

func openRegistry(app *AppContext, operation string) (*registry.Registry, *registry.StatusCache, error) {
	registryPath, statusPath, err := registryPaths(app)
	if err != nil {
		return nil, nil, newCommandError(operation, "determining registry path", err, "Ensure your HOME directory is set correctly or set THEMEKIT_HOME.")
	}

	reg, err := registry.NewRegistry(registryPath)
	if err != nil {
		return nil, nil, newCommandError(operation, "loading registry", err, "Check registry file permissions and try again.")
	}

	cache, err := registry.NewStatusCache(statusPath)
	if err != nil {
		return nil, nil, newCommandError(operation, "loading status cache", err, "Check status cache file permissions and try again.")
	}

	return reg, cache, nil
}

func formatStatus(status registry.Status, useUnicode bool) string {
	if useUnicode {
		return fmt.Sprintf("%s %s", status.Icon(), status.String())
	}

	return fmt.Sprintf("%s %s", status.IconFallback(), status.String())
}

func formatRelativeTime(ts time.Time) string {
	if ts.IsZero() {
		return "never"
	}

	delta := time.Since(ts)
	if delta < time.Minute {
		return "just now"
	}
	if delta < time.Hour {
		return fmt.Sprintf("%d minutes ago", int(delta.Minutes()))
	}
	if delta < 24*time.Hour {
		return fmt.Sprintf("%d hours ago", int(delta.Hours()))
	}

	return fmt.Sprintf("%d days ago", int(delta.Hours()/24))
}

func publishChecked(ctx context.Context, publisher ports.EventPublisher, id string, status registry.CachedStatus) {
	_ = publisher.Publish(ctx, events.New(ports.EventThemeChecked, map[string]interface{}{
		"theme_id": id,
		"status":   status.Status.String(),
		"summary":  status.Summary,
	}))
}
