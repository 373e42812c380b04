package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/registry"
)

type showOptions struct {
	jsonOutput bool
}

func newShowCmd(app *AppContext) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <theme-id>",
		Short: "Show detailed information about a registered theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output theme details as JSON")

	return cmd
}

func runShow(cmd *cobra.Command, app *AppContext, themeID string, opts *showOptions) error {
	if strings.TrimSpace(themeID) == "" {
		return newCommandError("show", "validating theme ID", errors.New("theme ID cannot be empty"), "Provide the theme ID you wish to inspect.")
	}

	reg, cache, err := openRegistry(app, "show")
	if err != nil {
		return err
	}

	entry, err := reg.Get(themeID)
	if err != nil {
		return newCommandError("show", fmt.Sprintf("looking up theme %q", themeID), err, "Run 'themekit registry list' to view registered themes.")
	}

	status, ok := cache.Get(themeID)
	if !ok {
		status = registry.CachedStatus{Status: registry.StatusUnknown}
	}

	if opts.jsonOutput {
		return renderShowJSON(cmd, entry, status)
	}
	return renderShowTable(cmd, entry, status)
}

func renderShowTable(cmd *cobra.Command, entry registry.Entry, status registry.CachedStatus) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Theme:    %s\n", entry.ID)
	fmt.Fprintf(out, "Name:     %s\n", valueOrFallback(entry.Name, "(no name)"))
	fmt.Fprintf(out, "Location: %s\n", entry.Location)
	fmt.Fprintf(out, "\nDescription:\n  %s\n\n", valueOrFallback(entry.Description, "(none)"))

	fmt.Fprintf(out, "Status:     %s\n", formatStatus(status.Status, supportsUnicode(out)))
	fmt.Fprintf(out, "Checked:    %s\n", formatCheckedAt(status.CheckedAt))
	fmt.Fprintf(out, "Summary:    %s\n", valueOrFallback(status.Summary, "(none)"))
	fmt.Fprintf(out, "Components: %d\n", status.Components)
	fmt.Fprintf(out, "Tokens:     %d\n", status.Tokens)
	if status.Revision != "" {
		fmt.Fprintf(out, "Revision:   %s\n", status.Revision)
	}
	if status.Error != "" {
		fmt.Fprintf(out, "Error:\n  %s\n", status.Error)
	}

	fmt.Fprintf(out, "\nRegistered: %s\n", entry.RegisteredAt.Format(time.RFC3339))
	return nil
}

type showJSONPayload struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Location     string          `json:"location"`
	Description  string          `json:"description"`
	RegisteredAt time.Time       `json:"registered_at"`
	Status       registry.Status `json:"status"`
	CheckedAt    *time.Time      `json:"checked_at,omitempty"`
	Summary      string          `json:"summary"`
	Components   int             `json:"components"`
	Tokens       int             `json:"tokens"`
	Revision     string          `json:"revision,omitempty"`
	Error        string          `json:"error,omitempty"`
}

func renderShowJSON(cmd *cobra.Command, entry registry.Entry, status registry.CachedStatus) error {
	payload := showJSONPayload{
		ID:           entry.ID,
		Name:         entry.Name,
		Location:     entry.Location,
		Description:  entry.Description,
		RegisteredAt: entry.RegisteredAt,
		Status:       status.Status,
		Summary:      status.Summary,
		Components:   status.Components,
		Tokens:       status.Tokens,
		Revision:     status.Revision,
		Error:        status.Error,
	}
	if !status.CheckedAt.IsZero() {
		payload.CheckedAt = &status.CheckedAt
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func formatCheckedAt(ts time.Time) string {
	if ts.IsZero() {
		return "never"
	}
	return fmt.Sprintf("%s (%s)", ts.Format(time.RFC3339), formatRelativeTime(ts))
}
