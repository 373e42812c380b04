package registry

import (
	"crypto/rand"
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"
)

const (
	themeIDMaxLength       = 64
	randomIDSuffixLength   = 8
	randomIDSuffixFallback = "abcdefgh"
)

var (
	themeIDPattern      = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)
	nonAlphanumericExpr = regexp.MustCompile(`[^a-z0-9]+`)
)

// GenerateThemeID derives an ID from a theme location. Generic file names
// such as theme.yaml use their parent directory instead.
func GenerateThemeID(location string) string {
	p := locationPath(location)
	base := path.Base(p)
	if ext := path.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	if base == "theme" || base == "index" {
		if parent := path.Base(path.Dir(p)); parent != "." && parent != "/" {
			base = parent
		}
	}

	id := SanitizeFilename(base)
	if id == "" {
		id = fmt.Sprintf("theme-%s", randomIDSuffix(randomIDSuffixLength))
	}
	return id
}

func locationPath(location string) string {
	raw := strings.TrimPrefix(strings.TrimSpace(location), "git+")
	if _, inner, found := strings.Cut(raw, "#"); found {
		p, _, _ := strings.Cut(inner, "@")
		return p
	}
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" && u.Path != "" {
		return u.Path
	}
	return strings.ReplaceAll(raw, "\\", "/")
}

// ValidateThemeID ensures id matches the allowed pattern.
func ValidateThemeID(id string) error {
	if id == "" {
		return fmt.Errorf("theme ID cannot be empty")
	}
	if len(id) > themeIDMaxLength {
		return fmt.Errorf("theme ID %q is too long: maximum length is %d characters", id, themeIDMaxLength)
	}
	if !themeIDPattern.MatchString(id) {
		return fmt.Errorf("invalid theme ID %q: must match %s", id, themeIDPattern.String())
	}
	return nil
}

// SanitizeFilename normalizes a name into an identifier-friendly form.
func SanitizeFilename(name string) string {
	sanitized := nonAlphanumericExpr.ReplaceAllString(strings.ToLower(name), "-")
	sanitized = strings.Trim(sanitized, "-")
	if len(sanitized) > themeIDMaxLength {
		sanitized = strings.Trim(sanitized[:themeIDMaxLength], "-")
	}
	return sanitized
}

func randomIDSuffix(length int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	if length <= 0 {
		return ""
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return randomIDSuffixFallback
	}
	for i := range buf {
		buf[i] = alphabet[int(buf[i])%len(alphabet)]
	}
	return string(buf)
}
