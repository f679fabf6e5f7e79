package report

import (
	"encoding/csv"
	"io"
	"path/filepath"
	"strconv"
	"time"

	"musicaudit/internal/model"
)

// csvHeader is the stable column order of the exported report.
var csvHeader = []string{"Directory", "TypeCount", "FileTypes", "FileCount"}

// WriteCSV writes one row per mixed-format directory, preceded by the
// header, in the order given.
func WriteCSV(w io.Writer, rows []model.MixedDir) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, d := range rows {
		record := []string{
			d.Path,
			strconv.Itoa(d.TypeCount),
			d.JoinedExtensions(),
			strconv.Itoa(d.FileCount),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportPath returns the timestamped report path inside dir, e.g.
// dir/AudioDirectories_20240131_154500.csv.
func ExportPath(dir string, now time.Time) string {
	return filepath.Join(dir, "AudioDirectories_"+now.Format("20060102_150405")+".csv")
}
