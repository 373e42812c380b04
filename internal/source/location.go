// Package source fetches theme documents from local files, HTTP endpoints and
// git repositories.
package source

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/alexisbeaulieu97/themekit/internal/config"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Kind identifies where a theme document lives.
type Kind string

const (
	KindFile Kind = "file"
	KindHTTP Kind = "http"
	KindGit  Kind = "git"
)

const gitPrefix = "git+"

// Location is a parsed theme location.
//
//	./themes/brand.yaml
//	https://example.com/brand.json
//	git+https://example.com/themes.git#brand/theme.yaml@v1.2.0
type Location struct {
	Kind Kind
	Raw  string
	// URL is the remote address for http and git locations.
	URL string
	// Path is the file path, or the path inside a git repository.
	Path string
	// Ref is an optional git branch, tag or commit.
	Ref string
}

// ParseLocation classifies raw into a Location.
func ParseLocation(raw string) (Location, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Location{}, themeerrors.NewSourceError("", raw, fmt.Errorf("empty location"))
	}

	switch {
	case strings.HasPrefix(trimmed, gitPrefix):
		return parseGitLocation(trimmed)
	case strings.HasPrefix(trimmed, "http://"), strings.HasPrefix(trimmed, "https://"):
		if _, err := url.ParseRequestURI(trimmed); err != nil {
			return Location{}, themeerrors.NewSourceError(string(KindHTTP), raw, err)
		}
		return Location{Kind: KindHTTP, Raw: raw, URL: trimmed}, nil
	case strings.HasPrefix(trimmed, "file://"):
		return Location{Kind: KindFile, Raw: raw, Path: strings.TrimPrefix(trimmed, "file://")}, nil
	default:
		return Location{Kind: KindFile, Raw: raw, Path: trimmed}, nil
	}
}

func parseGitLocation(raw string) (Location, error) {
	rest := strings.TrimPrefix(raw, gitPrefix)
	repoURL, inner, found := strings.Cut(rest, "#")
	if !found || inner == "" {
		return Location{}, themeerrors.NewSourceError(string(KindGit), raw, fmt.Errorf("expected git+<url>#<path>[@ref]"))
	}
	if repoURL == "" {
		return Location{}, themeerrors.NewSourceError(string(KindGit), raw, fmt.Errorf("missing repository url"))
	}

	path, ref, _ := strings.Cut(inner, "@")
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return Location{}, themeerrors.NewSourceError(string(KindGit), raw, fmt.Errorf("missing document path"))
	}

	return Location{Kind: KindGit, Raw: raw, URL: repoURL, Path: path, Ref: ref}, nil
}

// Format guesses the document encoding from the location path.
func (l Location) Format() config.Format {
	switch l.Kind {
	case KindHTTP:
		if u, err := url.Parse(l.URL); err == nil {
			return config.FormatFromPath(u.Path)
		}
		return config.FormatYAML
	default:
		return config.FormatFromPath(l.Path)
	}
}

func (l Location) String() string {
	return l.Raw
}
