package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"musicaudit/internal/model"
)

// ErrRootNotFound is returned when the scan root does not exist or is
// not a directory. It is the only fatal scan error; everything below
// the root degrades to a skip.
var ErrRootNotFound = errors.New("root directory not found")

// Entry is one directory yielded by WalkDirs.
type Entry struct {
	// Path is the directory's absolute path. The scan root is resolved
	// with filepath.Abs, so Path is absolute even for a relative root.
	Path string

	// Rel is the path relative to the scan root.
	Rel string

	// Depth is the number of path segments in Rel. The root itself is
	// never yielded, so Depth is always >= 1.
	Depth int
}

// WalkDirs calls fn for every directory strictly below root, in
// lexical walk order. Enumeration order carries no meaning for
// callers. Yielded paths are always absolute, regardless of how root
// was spelled.
//
// A missing or non-directory root returns ErrRootNotFound (wrapped
// with the path) before fn is ever called. Unreadable subdirectories
// are skipped silently: the directory itself is still yielded, but its
// subtree is not. An error returned by fn aborts the walk.
func WalkDirs(root string, fn func(Entry) error) error {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Per-directory read failure. The root was checked above,
			// so this is never fatal.
			return nil
		}
		if !d.IsDir() || path == root {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		depth := strings.Count(rel, string(filepath.Separator)) + 1
		return fn(Entry{Path: path, Rel: rel, Depth: depth})
	})
}

// Classify lists the immediate (non-recursive) files of dir and counts
// those whose extension is in set.
//
// An unreadable directory classifies as empty rather than failing;
// callers treat it as containing no audio files.
func Classify(dir string, set model.ExtensionSet) model.ScanResult {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return model.ScanResult{}
	}

	seen := make(map[string]struct{})
	var res model.ScanResult
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !set.Contains(name) {
			continue
		}
		res.FileCount++
		seen[strings.ToLower(filepath.Ext(name))] = struct{}{}
	}

	res.Extensions = make([]string, 0, len(seen))
	for ext := range seen {
		res.Extensions = append(res.Extensions, ext)
	}
	sort.Strings(res.Extensions)
	return res
}
