// Package report renders the mixed-formats audit results.
//
// RenderTable produces the console table, WriteCSV the exportable
// report with a stable column order, and ExportPath the timestamped
// default file name:
//
//	fmt.Println(report.RenderTable(rows))
//
//	path := report.ExportPath(scanDir, time.Now())
//	f, _ := os.Create(path)
//	defer f.Close()
//	err := report.WriteCSV(f, rows)
package report
