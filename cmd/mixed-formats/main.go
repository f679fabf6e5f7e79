package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"musicaudit/internal/audit"
	"musicaudit/internal/config"
	"musicaudit/internal/model"
	"musicaudit/internal/prompt"
	"musicaudit/internal/report"
)

var (
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1A3"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D"))
)

func main() {
	defaults := config.DefaultSettings()

	cmd := &cli.Command{
		Name:  "mixed-formats",
		Usage: "find folders that mix different audio file formats",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "path",
				Usage: "directory to scan",
				Value: ".",
			},
			&cli.IntFlag{
				Name:  "min-types",
				Usage: "minimum number of distinct audio formats to report",
				Value: defaults.MinFormatTypes,
			},
			&cli.BoolFlag{
				Name:  "export",
				Usage: "write the CSV report without prompting",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a musicaudit settings file",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	settings := config.DefaultSettings()
	if path := cmd.String("config"); path != "" {
		var err error
		settings, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	minTypes := settings.MinFormatTypes
	if cmd.IsSet("min-types") {
		minTypes = cmd.Int("min-types")
	}
	dir := cmd.String("path")

	finder := &audit.MixedFormatFinder{
		Root:       dir,
		Extensions: model.NewExtensionSet(model.MixedFormatExtensions...),
		MinTypes:   minTypes,
	}

	rows, err := finder.Find()
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		fmt.Println(dimStyle.Render(fmt.Sprintf("No directories with %d or more audio formats found.", minTypes)))
		return nil
	}

	fmt.Println(report.RenderTable(rows))
	fmt.Fprintln(os.Stderr, summaryStyle.Render(fmt.Sprintf("%d mixed-format directories found.", len(rows))))

	exportPath := report.ExportPath(dir, time.Now())
	if !cmd.Bool("export") {
		ok, err := prompt.Confirm("Export the report to CSV?")
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		name, ok, err := prompt.Input("Report file", exportPath)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		exportPath = name
	}

	if err := writeReport(exportPath, rows); err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, summaryStyle.Render("Report written to "+exportPath))
	return nil
}

// writeReport writes the CSV report to path. Close is checked
// explicitly: a flush that only fails at close must not count as a
// successful export.
func writeReport(path string, rows []model.MixedDir) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}

	if err := report.WriteCSV(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("writing report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
