package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/themekit/internal/ports"
	"github.com/alexisbeaulieu97/themekit/internal/registry"
)

type refreshOptions struct {
	concurrency int
	themeID     string
	timeout     time.Duration
}

func newRefreshCmd(app *AppContext) *cobra.Command {
	opts := &refreshOptions{}

	cmd := &cobra.Command{
		Use:   "refresh [theme-id]",
		Short: "Refresh theme statuses by fetching and validating each theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.themeID = args[0]
			}
			ctx, logger := app.CommandContext(cmd, "command.registry.refresh")
			logger.Info(ctx, "refresh start", "target_theme", opts.themeID, "concurrency", opts.concurrency)
			err := runRefresh(ctx, logger, cmd, app, opts)
			if err != nil {
				logger.Error(ctx, "refresh command failed", "error", err)
			}
			return err
		},
	}

	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "c", 5, "Number of themes to check concurrently")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", time.Minute, "Overall timeout for the refresh (e.g. 45s, 2m)")

	return cmd
}

func runRefresh(ctx context.Context, logger ports.Logger, cmd *cobra.Command, app *AppContext, opts *refreshOptions) error {
	reg, cache, err := openRegistry(app, "refresh")
	if err != nil {
		return err
	}

	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	out := cmd.OutOrStdout()
	loader := app.Loader()

	var results map[string]registry.CachedStatus
	if opts.themeID != "" {
		entry, err := reg.Get(opts.themeID)
		if err != nil {
			logger.Warn(ctx, "target theme not found", "theme_id", opts.themeID)
			return newCommandError("refresh", fmt.Sprintf("looking up theme %q", opts.themeID), err, "Run 'themekit registry list' to view registered themes.")
		}
		status := registry.Check(ctx, loader, entry)
		cache.Set(entry.ID, status)
		results = map[string]registry.CachedStatus{entry.ID: status}
	} else {
		if len(reg.List()) == 0 {
			logger.Info(ctx, "no themes registered for refresh")
			_, _ = fmt.Fprintln(out, "No themes registered. Run 'themekit registry add <theme-location>' first.")
			return nil
		}
		results = registry.Refresh(ctx, reg, cache, loader, opts.concurrency)
	}

	if err := cache.Save(); err != nil {
		return newCommandError("refresh", "saving status cache", err, "Check disk space and file permissions, then retry.")
	}

	summary := refreshSummary{}
	publisher := app.Events()
	useUnicode := supportsUnicode(out)
	for _, entry := range reg.List() {
		status, ok := results[entry.ID]
		if !ok {
			continue
		}
		summary.add(status.Status)
		publishChecked(ctx, publisher, entry.ID, status)
		_, _ = fmt.Fprintf(out, "%s %s\n", entry.ID, formatRefreshResult(status, useUnicode))
	}

	_, _ = fmt.Fprintf(out, "\nSummary:\n  Valid:       %d\n  Invalid:     %d\n  Unreachable: %d\n", summary.valid, summary.invalid, summary.unreachable)
	logger.Info(ctx, "refresh completed", "themes", len(results), "valid", summary.valid, "invalid", summary.invalid, "unreachable", summary.unreachable)
	return nil
}

func formatRefreshResult(status registry.CachedStatus, useUnicode bool) string {
	label := cases.Title(language.English).String(status.Status.String())
	icon := status.Status.IconFallback()
	if useUnicode {
		icon = status.Status.Icon()
	}
	if status.Summary == "" {
		return fmt.Sprintf("%s %s", icon, label)
	}
	return fmt.Sprintf("%s %s (%s)", icon, label, status.Summary)
}

type refreshSummary struct {
	valid       int
	invalid     int
	unreachable int
}

func (s *refreshSummary) add(status registry.Status) {
	switch status {
	case registry.StatusValid:
		s.valid++
	case registry.StatusUnreachable:
		s.unreachable++
	default:
		s.invalid++
	}
}
