package scan

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"musicaudit/internal/model"
)

// buildTree creates the given directories and placeholder files
// (both slash-separated relative paths) under a fresh temp root.
func buildTree(t *testing.T, dirs []string, files []string) string {
	t.Helper()
	root := t.TempDir()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.FromSlash(d)), 0755))
	}
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}
	return root
}

func TestWalkDirs_MissingRoot(t *testing.T) {
	err := WalkDirs(filepath.Join(t.TempDir(), "nope"), func(Entry) error { return nil })
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRootNotFound))
	assert.Contains(t, err.Error(), "nope")
}

func TestWalkDirs_RootIsFile(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	err := WalkDirs(file, func(Entry) error { return nil })
	assert.True(t, errors.Is(err, ErrRootNotFound))
}

func TestWalkDirs_YieldsDirsWithDepth(t *testing.T) {
	root := buildTree(t,
		[]string{"ArtistA/Studio/AlbumX", "ArtistB"},
		[]string{"ArtistA/Studio/AlbumX/track.mp3"},
	)

	depths := map[string]int{}
	err := WalkDirs(root, func(e Entry) error {
		depths[filepath.ToSlash(e.Rel)] = e.Depth
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]int{
		"ArtistA":               1,
		"ArtistA/Studio":        2,
		"ArtistA/Studio/AlbumX": 3,
		"ArtistB":               1,
	}, depths, "root and files must not be yielded")
}

func TestWalkDirs_RelativeRootYieldsAbsolutePaths(t *testing.T) {
	root := buildTree(t, []string{"Artist/Studio/Album"}, nil)
	t.Chdir(filepath.Dir(root))

	var paths []string
	err := WalkDirs(filepath.Base(root), func(e Entry) error {
		paths = append(paths, e.Path)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, paths, 3)
	for _, p := range paths {
		assert.True(t, filepath.IsAbs(p), "yielded path %q should be absolute", p)
	}
}

func TestWalkDirs_CallbackErrorAborts(t *testing.T) {
	root := buildTree(t, []string{"a", "b", "c"}, nil)

	sentinel := errors.New("stop")
	calls := 0
	err := WalkDirs(root, func(Entry) error {
		calls++
		return sentinel
	})
	assert.True(t, errors.Is(err, sentinel))
	assert.Equal(t, 1, calls)
}

func TestClassify(t *testing.T) {
	root := buildTree(t,
		[]string{"album/nested"},
		[]string{
			"album/a.mp3",
			"album/b.MP3",
			"album/c.flac",
			"album/cover.jpg",
			"album/nested/deep.mp3", // immediate files only
		},
	)

	set := model.NewExtensionSet(model.DefaultMusicPatterns...)
	res := Classify(filepath.Join(root, "album"), set)

	assert.Equal(t, 3, res.FileCount)
	assert.Equal(t, []string{".flac", ".mp3"}, res.Extensions)
	assert.True(t, res.HasAudio())
	assert.Equal(t, 2, res.TypeCount())
}

func TestClassify_NoMatches(t *testing.T) {
	root := buildTree(t, []string{"album"}, []string{"album/cover.jpg", "album/notes.txt"})

	res := Classify(filepath.Join(root, "album"), model.NewExtensionSet(model.DefaultMusicPatterns...))
	assert.False(t, res.HasAudio())
	assert.Zero(t, res.FileCount)
	assert.Empty(t, res.Extensions)
}

func TestClassify_MissingDirYieldsEmptyResult(t *testing.T) {
	res := Classify(filepath.Join(t.TempDir(), "gone"), model.NewExtensionSet("*.mp3"))
	assert.False(t, res.HasAudio())
	assert.Zero(t, res.TypeCount())
}
