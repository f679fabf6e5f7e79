package audit

import (
	"musicaudit/internal/model"
	"musicaudit/internal/scan"
)

// EmptyAlbumFinder locates album-level directories that contain no
// audio files.
//
// A directory qualifies when it sits exactly Depth path segments below
// Root (the Artist/AlbumType/Album taxonomy at the default depth of 3)
// and none of its immediate files match Extensions. Directories at any
// other depth are ignored regardless of content.
type EmptyAlbumFinder struct {
	Root       string
	Extensions model.ExtensionSet

	// Depth is the album level below Root; zero means
	// model.DefaultAlbumDepth.
	Depth int
}

// Find walks the library and calls fn with the path of each empty
// album, in enumeration order. Each qualifying directory is reported
// exactly once.
//
// The only error returned is scan.ErrRootNotFound; unreadable
// directories classify as empty of audio and unreadable subtrees are
// skipped by the walk.
func (f *EmptyAlbumFinder) Find(fn func(path string)) error {
	depth := f.Depth
	if depth <= 0 {
		depth = model.DefaultAlbumDepth
	}

	return scan.WalkDirs(f.Root, func(e scan.Entry) error {
		if e.Depth != depth {
			return nil
		}
		if scan.Classify(e.Path, f.Extensions).HasAudio() {
			return nil
		}
		fn(e.Path)
		return nil
	})
}
