package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"musicaudit/internal/model"
)

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	rows := []model.MixedDir{
		{Path: "/music/mixed", TypeCount: 2, Extensions: []string{".flac", ".mp3"}, FileCount: 3},
	}

	require.NoError(t, writeReport(path, rows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Directory,TypeCount,FileTypes,FileCount")
	assert.Contains(t, string(data), "/music/mixed")
}

func TestWriteReport_CreateError(t *testing.T) {
	// The target path is an existing directory, so os.Create fails and
	// no success is reported.
	err := writeReport(t.TempDir(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating report")
}
