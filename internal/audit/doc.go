// Package audit implements the two library audit rules and the gated
// delete action.
//
// # Empty albums
//
// EmptyAlbumFinder reports directories exactly N segments below the
// root (default 3, the Artist/AlbumType/Album taxonomy) with no
// matching audio files:
//
//	finder := &audit.EmptyAlbumFinder{Root: root, Extensions: set}
//	err := finder.Find(func(path string) { fmt.Println(path) })
//
// # Mixed formats
//
// MixedFormatFinder reports any directory whose immediate audio files
// span at least MinTypes distinct extensions:
//
//	finder := &audit.MixedFormatFinder{Root: root, Extensions: set, MinTypes: 2}
//	rows, err := finder.Find()
//
// Both rules are pure predicates over a single directory's
// classification; directories are evaluated independently and in
// enumeration order.
//
// # Removal
//
// Remover performs the destructive path of the empty-albums tool.
// Deletions are gated twice: by the caller enabling them at all, and
// by an injected ConfirmFunc (or dry-run mode) per directory.
package audit
