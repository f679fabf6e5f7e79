package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.MusicRoot == "" {
		t.Error("MusicRoot should have a default")
	}
	if s.AlbumDepth != 3 {
		t.Errorf("AlbumDepth = %d, want 3", s.AlbumDepth)
	}
	if s.MinFormatTypes != 2 {
		t.Errorf("MinFormatTypes = %d, want 2", s.MinFormatTypes)
	}
	if len(s.MusicExtensions) == 0 {
		t.Error("MusicExtensions should have defaults")
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.AlbumDepth != DefaultSettings().AlbumDepth {
		t.Error("missing file should yield defaults")
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed settings should be an error")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")

	s := DefaultSettings()
	s.MusicRoot = "/srv/music"
	s.AlbumDepth = 4
	if err := s.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.MusicRoot != "/srv/music" {
		t.Errorf("MusicRoot = %q, want /srv/music", loaded.MusicRoot)
	}
	if loaded.AlbumDepth != 4 {
		t.Errorf("AlbumDepth = %d, want 4", loaded.AlbumDepth)
	}
}
