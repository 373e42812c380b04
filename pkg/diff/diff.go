// Package diff compares rendered theme output: whole stylesheets as unified
// diffs and flattened key/value maps as per-key changes.
package diff

import (
	"bytes"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Unified returns a unified diff of before and after, or "" when they are
// equal. Output longer than 10,000 lines is truncated with a marker.
func Unified(before, after []byte, beforeLabel, afterLabel string) string {
	if bytes.Equal(before, after) {
		return ""
	}

	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: beforeLabel,
		ToFile:   afterLabel,
		Context:  3,
	}
	result, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return ""
	}

	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		return strings.Join(lines[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n"
	}
	return result
}

// Kind classifies a Change.
type Kind string

const (
	Added   Kind = "added"
	Removed Kind = "removed"
	Changed Kind = "changed"
)

// Change is one differing key between two flattened maps.
type Change struct {
	Key  string
	Kind Kind
	Old  string
	New  string
}

// Compare lists the keys whose values differ, sorted by key.
func Compare(before, after map[string]string) []Change {
	keys := make(map[string]struct{}, len(before)+len(after))
	for k := range before {
		keys[k] = struct{}{}
	}
	for k := range after {
		keys[k] = struct{}{}
	}

	sorted := make([]string, 0, len(keys))
	for k := range keys {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)

	var changes []Change
	for _, k := range sorted {
		old, hadOld := before[k]
		cur, hasNew := after[k]
		switch {
		case hadOld && !hasNew:
			changes = append(changes, Change{Key: k, Kind: Removed, Old: old})
		case !hadOld && hasNew:
			changes = append(changes, Change{Key: k, Kind: Added, New: cur})
		case old != cur:
			changes = append(changes, Change{Key: k, Kind: Changed, Old: old, New: cur})
		}
	}
	return changes
}

// Inline marks character-level edits between old and new as [-del-]{+ins+}.
func Inline(old, new string) string {
	if old == new {
		return old
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(old, new, false))

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			b.WriteString(d.Text)
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-")
			b.WriteString(d.Text)
			b.WriteString("-]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("{+")
			b.WriteString(d.Text)
			b.WriteString("+}")
		}
	}
	return b.String()
}
