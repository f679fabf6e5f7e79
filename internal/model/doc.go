// Package model defines the core data structures shared by the
// musicaudit tools.
//
// # ExtensionSet
//
// ExtensionSet is a normalized, case-insensitive set of audio file
// extensions. It is built once per run and never mutated:
//
//	set := model.NewExtensionSet(model.DefaultMusicPatterns...)
//	set.Contains("track.MP3") // true
//
// # ScanResult
//
// ScanResult is what the classifier reports for one directory: how many
// immediate files matched the set and which distinct extensions were
// seen.
//
// # MixedDir
//
// MixedDir is a single row of the mixed-formats report, fed to the
// console table and the CSV export with a stable field order.
package model
