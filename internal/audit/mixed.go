package audit

import (
	"sort"

	"musicaudit/internal/model"
	"musicaudit/internal/scan"
)

// MixedFormatFinder locates directories whose immediate audio files
// span multiple formats. No depth filter applies: any directory below
// Root qualifies.
type MixedFormatFinder struct {
	Root       string
	Extensions model.ExtensionSet

	// MinTypes is the distinct-extension threshold; zero means
	// model.DefaultMinTypes.
	MinTypes int
}

// Find scans the library and returns one row per directory with at
// least MinTypes distinct audio extensions, sorted by type count
// descending and path ascending on ties.
func (f *MixedFormatFinder) Find() ([]model.MixedDir, error) {
	minTypes := f.MinTypes
	if minTypes <= 0 {
		minTypes = model.DefaultMinTypes
	}

	var rows []model.MixedDir
	err := scan.WalkDirs(f.Root, func(e scan.Entry) error {
		res := scan.Classify(e.Path, f.Extensions)
		if res.TypeCount() < minTypes {
			return nil
		}
		rows = append(rows, model.MixedDir{
			Path:       e.Path,
			TypeCount:  res.TypeCount(),
			Extensions: res.Extensions,
			FileCount:  res.FileCount,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].TypeCount != rows[j].TypeCount {
			return rows[i].TypeCount > rows[j].TypeCount
		}
		return rows[i].Path < rows[j].Path
	})
	return rows, nil
}
