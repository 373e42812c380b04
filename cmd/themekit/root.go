package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "themekit",
		Short:         "themekit resolves design tokens and component styles from theme documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.initConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.configFile, "config", "", "Settings file (default ~/.config/themekit/config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "", "Log format (text, json)")
	_ = app.Settings.BindPFlag(settingLogLevel, cmd.PersistentFlags().Lookup("log-level"))
	_ = app.Settings.BindPFlag(settingLogFormat, cmd.PersistentFlags().Lookup("log-format"))

	cmd.AddCommand(newVarsCmd(app))
	cmd.AddCommand(newResolveCmd(app))
	cmd.AddCommand(newValidateCmd(app))
	cmd.AddCommand(newComponentsCmd(app))
	cmd.AddCommand(newTokensCmd(app))
	cmd.AddCommand(newPaletteCmd(app))
	cmd.AddCommand(newDiffCmd(app))
	cmd.AddCommand(newExploreCmd(app))
	cmd.AddCommand(newRegistryCmd(app))
	cmd.AddCommand(newVersionCmd(app))

	return cmd
}
