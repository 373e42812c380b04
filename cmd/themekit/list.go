package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/registry"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(app *AppContext) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type themeWithStatus struct {
	Entry  registry.Entry
	Status registry.CachedStatus
}

func runList(cmd *cobra.Command, app *AppContext, opts *listOptions) error {
	reg, cache, err := openRegistry(app, "list")
	if err != nil {
		return err
	}

	entries := reg.List()
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No themes registered yet.")
		fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'themekit registry add <theme-location>' to add your first theme.")
		return nil
	}

	enriched := make([]themeWithStatus, len(entries))
	for i, e := range entries {
		status, ok := cache.Get(e.ID)
		if !ok {
			status = registry.CachedStatus{Status: registry.StatusUnknown}
		}
		enriched[i] = themeWithStatus{Entry: e, Status: status}
	}

	if opts.jsonOutput {
		return renderListJSON(cmd, enriched)
	}
	return renderListTable(cmd, enriched)
}

func renderListTable(cmd *cobra.Command, themes []themeWithStatus) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "ID\tNAME\tSTATUS\tCHECKED\tLOCATION")

	useUnicode := supportsUnicode(cmd.OutOrStdout())
	for _, t := range themes {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			t.Entry.ID,
			valueOrFallback(t.Entry.Name, "(no name)"),
			formatStatus(t.Status.Status, useUnicode),
			formatRelativeTime(t.Status.CheckedAt),
			t.Entry.Location,
		)
	}

	return writer.Flush()
}

type listJSONTheme struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Location     string          `json:"location"`
	Description  string          `json:"description"`
	RegisteredAt time.Time       `json:"registered_at"`
	Status       registry.Status `json:"status"`
	CheckedAt    time.Time       `json:"checked_at"`
	Summary      string          `json:"summary"`
	Components   int             `json:"components"`
	Tokens       int             `json:"tokens"`
}

type listJSONPayload struct {
	Version string          `json:"version"`
	Count   int             `json:"count"`
	Themes  []listJSONTheme `json:"themes"`
}

func renderListJSON(cmd *cobra.Command, themes []themeWithStatus) error {
	payload := listJSONPayload{
		Version: "1.0",
		Count:   len(themes),
		Themes:  make([]listJSONTheme, len(themes)),
	}

	for i, t := range themes {
		payload.Themes[i] = listJSONTheme{
			ID:           t.Entry.ID,
			Name:         t.Entry.Name,
			Location:     t.Entry.Location,
			Description:  t.Entry.Description,
			RegisteredAt: t.Entry.RegisteredAt,
			Status:       t.Status.Status,
			CheckedAt:    t.Status.CheckedAt,
			Summary:      t.Status.Summary,
			Components:   t.Status.Components,
			Tokens:       t.Status.Tokens,
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
