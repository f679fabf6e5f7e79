// Package config handles the optional JSON settings file shared by the
// musicaudit tools.
//
//	settings := config.DefaultSettings()
//
//	settings, err := config.Load("/home/user/.config/musicaudit.json")
//	// missing file -> defaults, malformed file -> error
//
// Flags always win over the file; the file only replaces the built-in
// defaults.
package config
