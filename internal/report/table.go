package report

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"musicaudit/internal/model"
)

// Styles for the report table.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500")).
			Padding(0, 1)

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))
)

// RenderTable renders the mixed-formats report as a bordered table.
// Rows are printed in the order given; the finder already sorts them
// by type count.
func RenderTable(rows []model.MixedDir) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("DIRECTORY", "TYPES", "FILE TYPES", "FILES").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 1 {
				return countStyle
			}
			return cellStyle
		})

	for _, d := range rows {
		t.Row(d.Path, strconv.Itoa(d.TypeCount), d.JoinedExtensions(), strconv.Itoa(d.FileCount))
	}

	return t.Render()
}
