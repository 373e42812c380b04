package main

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/themekit/internal/colormode"
	"github.com/alexisbeaulieu97/themekit/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/themekit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/themekit/internal/ports"
	"github.com/alexisbeaulieu97/themekit/internal/source"
)

const (
	envPrefix        = "THEMEKIT"
	settingCSSPrefix = "css_prefix"
	settingColorMode = "color_mode"
	settingLogLevel  = "log_level"
	settingLogFormat = "log_format"
	settingHome      = "home"
)

// AppContext bundles the settings and services shared by every command.
type AppContext struct {
	Settings *viper.Viper
	Logger   ports.Logger

	configFile string
	buffer     *logging.Buffer
	logWriter  io.Writer
}

func newAppContext() *AppContext {
	buffer := logging.NewBuffer(0)
	return &AppContext{
		Settings: viper.New(),
		Logger:   buffer.Logger(),
		buffer:   buffer,
	}
}

// initConfig reads settings from the config file and THEMEKIT_* variables,
// then replaces the startup buffer with the configured logger.
func (a *AppContext) initConfig(cmd *cobra.Command) error {
	v := a.Settings
	v.SetDefault(settingLogLevel, "warn")
	v.SetDefault(settingLogFormat, string(logging.FormatText))

	if a.configFile != "" {
		v.SetConfigFile(a.configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "themekit"))
		}
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "themekit"))
		}
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	ctx := cmd.Context()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || a.configFile != "" {
			return newCommandError("start", "reading settings", err, "Fix or remove the themekit config file.")
		}
		a.Logger.Debug(ctx, "no settings file found")
	} else {
		a.Logger.Debug(ctx, "settings loaded", "path", v.ConfigFileUsed())
	}

	format, err := logging.ParseFormat(v.GetString(settingLogFormat))
	if err != nil {
		return newCommandError("start", "configuring logging", err, "Set log_format to text or json.")
	}

	writer := a.logWriter
	if writer == nil {
		writer = cmd.ErrOrStderr()
	}
	logger, err := logging.New(logging.Options{
		Writer: writer,
		Level:  v.GetString(settingLogLevel),
		Format: format,
	})
	if err != nil {
		return newCommandError("start", "configuring logging", err, "Set log_level to debug, info, warn or error.")
	}

	a.buffer.Flush(logger)
	a.Logger = logger
	return nil
}

// CommandContext returns the command context, guaranteed to carry a
// correlation ID, and a logger scoped to operation.
func (a *AppContext) CommandContext(cmd *cobra.Command, operation string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if ports.GetCorrelationID(ctx) == "" {
		ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())
	}
	return ctx, a.Logger.With("operation", operation)
}

// Loader returns a theme source loader logging through the app logger.
func (a *AppContext) Loader() *source.Loader {
	return source.New(source.WithLogger(a.Logger))
}

// Events returns a publisher that logs domain events through the app logger.
func (a *AppContext) Events() ports.EventPublisher {
	return events.NewLoggingPublisher(a.Logger)
}

// ColorMode returns the mode from flag, falling back to settings and then
// to fallback.
func (a *AppContext) ColorMode(flag string, fallback colormode.ColorMode) (colormode.ColorMode, error) {
	raw := flag
	if raw == "" {
		raw = a.Settings.GetString(settingColorMode)
	}
	if raw == "" {
		return fallback, nil
	}
	return colormode.Parse(raw)
}

// CSSPrefix returns the configured variable prefix override, or "".
func (a *AppContext) CSSPrefix() string {
	return strings.TrimSpace(a.Settings.GetString(settingCSSPrefix))
}

// Home returns the directory holding the registry and status cache.
func (a *AppContext) Home() (string, error) {
	if home := a.Settings.GetString(settingHome); home != "" {
		return home, nil
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".themekit"), nil
}
