package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"musicaudit/internal/model"
)

// Settings holds the configurable defaults shared by both audit tools.
// Every value can still be overridden per run with flags.
type Settings struct {
	// MusicRoot is the default library root for the empty-albums tool.
	MusicRoot string `json:"music_root"`

	// MusicExtensions are the audio patterns the empty-albums tool
	// matches against (e.g. "*.mp3").
	MusicExtensions []string `json:"music_extensions"`

	// AlbumDepth is how many segments below the root an album folder
	// sits (Artist/AlbumType/Album = 3).
	AlbumDepth int `json:"album_depth"`

	// MinFormatTypes is the mixed-formats reporting threshold.
	MinFormatTypes int `json:"min_format_types"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		MusicRoot:       filepath.Join(homeDir, "Music"),
		MusicExtensions: append([]string(nil), model.DefaultMusicPatterns...),
		AlbumDepth:      model.DefaultAlbumDepth,
		MinFormatTypes:  model.DefaultMinTypes,
	}
}

// Load reads settings from a JSON file. A missing file is not an
// error; it yields the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file, creating parent directories as
// needed.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
