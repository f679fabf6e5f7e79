// Package scan walks a music library and classifies directories by
// their immediate audio files.
//
// # Enumeration
//
// WalkDirs yields every directory strictly below the root along with
// its depth relative to the root:
//
//	err := scan.WalkDirs("/music", func(e scan.Entry) error {
//	    fmt.Println(e.Rel, e.Depth)
//	    return nil
//	})
//
// A missing root is the only fatal condition (ErrRootNotFound);
// unreadable subdirectories are skipped.
//
// # Classification
//
// Classify inspects only a directory's immediate files and matches by
// extension. File contents are never read:
//
//	res := scan.Classify("/music/Artist/Studio/Album", set)
//	res.HasAudio()   // any matching file?
//	res.TypeCount()  // distinct matching extensions
package scan
