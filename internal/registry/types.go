package registry

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Entry is a registered theme location.
type Entry struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	Description  string    `json:"description,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}

// Status is the last known health of a registered theme.
type Status string

const (
	StatusUnknown     Status = "unknown"
	StatusValid       Status = "valid"
	StatusInvalid     Status = "invalid"
	StatusUnreachable Status = "unreachable"
)

// Icon returns the Unicode icon for the status.
func (s Status) Icon() string {
	switch s {
	case StatusValid:
		return "🟢"
	case StatusInvalid:
		return "🔴"
	case StatusUnreachable:
		return "🟡"
	default:
		return "⚪"
	}
}

// IconFallback returns an ASCII icon for terminals without Unicode.
func (s Status) IconFallback() string {
	switch s {
	case StatusValid:
		return "[OK]"
	case StatusInvalid:
		return "[XX]"
	case StatusUnreachable:
		return "[!!]"
	default:
		return "[??]"
	}
}

// Color returns the lipgloss color for the status.
func (s Status) Color() lipgloss.Color {
	switch s {
	case StatusValid:
		return lipgloss.Color("42")
	case StatusInvalid:
		return lipgloss.Color("196")
	case StatusUnreachable:
		return lipgloss.Color("226")
	default:
		return lipgloss.Color("250")
	}
}

func (s Status) String() string {
	return string(s)
}

// File is the on-disk registry format.
type File struct {
	Version string  `json:"version"`
	Themes  []Entry `json:"themes"`
}

// CachedStatus is the outcome of the last refresh of a theme.
type CachedStatus struct {
	Status     Status    `json:"status"`
	CheckedAt  time.Time `json:"checked_at"`
	Summary    string    `json:"summary"`
	Components int       `json:"components"`
	Tokens     int       `json:"tokens"`
	Revision   string    `json:"revision,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// StatusCacheFile is the on-disk status cache format.
type StatusCacheFile struct {
	Version  string                  `json:"version"`
	Statuses map[string]CachedStatus `json:"statuses"`
}
