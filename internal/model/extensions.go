package model

import (
	"path/filepath"
	"sort"
	"strings"
)

// DefaultMusicPatterns is the default audio pattern list for the
// empty-albums tool. Patterns may be overridden per run.
var DefaultMusicPatterns = []string{"*.mp3", "*.wav", "*.flac", "*.aac", "*.ogg", "*.m4a"}

// MixedFormatExtensions is the extension set used by the mixed-formats
// tool. It is intentionally not user-configurable.
var MixedFormatExtensions = []string{
	".mp3", ".wav", ".flac", ".m4a", ".aac", ".ogg", ".wma", ".opus", ".aiff", ".ape",
}

// DefaultAlbumDepth is the number of path segments below the library
// root that identifies an album folder (Artist/AlbumType/Album).
const DefaultAlbumDepth = 3

// DefaultMinTypes is the minimum number of distinct audio extensions
// for a directory to count as mixed-format.
const DefaultMinTypes = 2

// ExtensionSet is an immutable set of normalized audio file extensions.
//
// Membership is tested against a file's extension, lowercased and
// dot-prefixed. This deliberately avoids filesystem glob semantics:
// "*.mp3", ".mp3" and "mp3" all describe the same set member.
//
// Example:
//
//	set := model.NewExtensionSet("*.mp3", ".FLAC")
//	set.Contains("track.MP3")  // true
//	set.Contains("cover.jpg")  // false
type ExtensionSet map[string]struct{}

// NewExtensionSet builds an ExtensionSet from extension patterns.
// Unrecognizable patterns (empty, bare "*" or ".") are dropped.
func NewExtensionSet(patterns ...string) ExtensionSet {
	set := make(ExtensionSet, len(patterns))
	for _, p := range patterns {
		if ext := normalizeExtension(p); ext != "" {
			set[ext] = struct{}{}
		}
	}
	return set
}

// normalizeExtension reduces a pattern like "*.MP3" to ".mp3".
func normalizeExtension(pattern string) string {
	ext := strings.ToLower(strings.TrimSpace(pattern))
	ext = strings.TrimPrefix(ext, "*")
	if ext == "" || ext == "." {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// Contains reports whether the file name's extension is in the set.
// Matching is case-insensitive; files without an extension never match.
func (s ExtensionSet) Contains(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	_, ok := s[ext]
	return ok
}

// Extensions returns the members of the set in sorted order.
func (s ExtensionSet) Extensions() []string {
	exts := make([]string, 0, len(s))
	for ext := range s {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Len returns the number of extensions in the set.
func (s ExtensionSet) Len() int { return len(s) }
