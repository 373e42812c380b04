package main

import (
	"encoding/json"
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/internal/cssvar"
)

// Set through -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type buildInfo struct {
	Version       string `json:"version"`
	Commit        string `json:"commit"`
	Built         string `json:"built"`
	ThemeSchema   string `json:"themeSchema"`
	DefaultPrefix string `json:"defaultPrefix"`
}

func currentBuild(app *AppContext) buildInfo {
	info := buildInfo{
		Version:       version,
		Commit:        commit,
		Built:         date,
		ThemeSchema:   config.SupportedSchema,
		DefaultPrefix: cssvar.DefaultPrefix,
	}
	if info.Version == "dev" {
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
	}
	if prefix := app.CSSPrefix(); prefix != "" {
		info.DefaultPrefix = prefix
	}
	return info
}

func newVersionCmd(app *AppContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information and supported theme schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := currentBuild(app)
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			_, _ = fmt.Fprintf(out, "themekit %s\ncommit: %s\nbuilt: %s\ntheme schema: %s\ncss prefix: %s\n",
				info.Version, info.Commit, info.Built, info.ThemeSchema, info.DefaultPrefix)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output build information as JSON")

	return cmd
}
