// Package logging provides ports.Logger implementations: a terminal-friendly
// charmbracelet/log backend, a zerolog JSON backend, a buffer for events
// emitted before configuration is known, and a discarding logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Format selects the output backend.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

const defaultLayer = "cli"

// Options configures New.
type Options struct {
	Writer     io.Writer
	Level      string
	Format     Format
	TimeFormat string
	// Layer is attached to every entry unless a call overrides it.
	Layer  string
	Fields map[string]interface{}
}

// ParseFormat accepts "text", "json" or "" (text).
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown log format %q (want text or json)", raw)
	}
}

// New builds the logger selected by opts.Format.
func New(opts Options) (Logger, error) {
	if opts.Writer == nil {
		opts.Writer = os.Stderr
	}
	if opts.Layer == "" {
		opts.Layer = defaultLayer
	}

	switch opts.Format {
	case FormatJSON:
		l, err := newZerolog(opts)
		if err != nil {
			return nil, err
		}
		return l, nil
	case FormatText, "":
		l, err := newCharm(opts)
		if err != nil {
			return nil, err
		}
		return l, nil
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}
}
