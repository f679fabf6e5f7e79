package model

import "strings"

// ScanResult is the classification of a single directory's immediate
// files against an ExtensionSet. It is computed fresh per directory and
// never persisted.
type ScanResult struct {
	// FileCount is the number of immediate files that matched the set.
	FileCount int

	// Extensions holds the distinct matching extensions, lowercased
	// and sorted.
	Extensions []string
}

// HasAudio reports whether at least one immediate file matched.
func (r ScanResult) HasAudio() bool { return r.FileCount > 0 }

// TypeCount returns the number of distinct matching extensions.
func (r ScanResult) TypeCount() int { return len(r.Extensions) }

// MixedDir is one row of the mixed-formats report: a directory whose
// immediate audio files span multiple formats.
//
// Field order is stable and matches the CSV export:
// path, type count, file types, file count.
type MixedDir struct {
	Path       string
	TypeCount  int
	Extensions []string
	FileCount  int
}

// JoinedExtensions renders the extension list for display and export,
// e.g. ".flac, .mp3".
func (d MixedDir) JoinedExtensions() string {
	return strings.Join(d.Extensions, ", ")
}
