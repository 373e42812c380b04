package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Format is a theme document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// FormatFromPath picks a format from a file extension. Unknown extensions
// are treated as YAML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// ParseFile reads and validates a theme document from disk.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, themeerrors.NewParseError(path, 0, err)
	}
	return Parse(data, FormatFromPath(path), path)
}

// Parse decodes and validates a theme document. name is used in errors only.
func Parse(data []byte, format Format, name string) (*Document, error) {
	var doc Document

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, themeerrors.NewParseError(name, 0, err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, themeerrors.NewParseError(name, tomlLine(err), err)
		}
	case FormatYAML, "":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, themeerrors.NewParseError(name, extractLine(err), err)
		}
	default:
		return nil, themeerrors.NewParseError(name, 0, fmt.Errorf("unsupported format %q", format))
	}

	if err := ValidateDocument(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}

func tomlLine(err error) int {
	var decodeErr *toml.DecodeError
	if !errors.As(err, &decodeErr) {
		return 0
	}
	row, _ := decodeErr.Position()
	return row
}
