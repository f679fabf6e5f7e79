package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"musicaudit/internal/audit"
	"musicaudit/internal/config"
	"musicaudit/internal/model"
	"musicaudit/internal/prompt"
)

var (
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1A3"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D"))
)

func main() {
	defaults := config.DefaultSettings()

	cmd := &cli.Command{
		Name:  "empty-albums",
		Usage: "find album folders that contain no audio files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "root",
				Usage: "music library root (Artist/AlbumType/Album layout)",
				Value: defaults.MusicRoot,
			},
			&cli.StringSliceFlag{
				Name:  "ext",
				Usage: "audio file pattern, repeatable (e.g. --ext '*.mp3')",
				Value: defaults.MusicExtensions,
			},
			&cli.IntFlag{
				Name:  "depth",
				Usage: "album folder depth below the root",
				Value: model.DefaultAlbumDepth,
			},
			&cli.BoolFlag{
				Name:  "delete",
				Usage: "delete empty album folders (asks per folder)",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "with --delete, only show what would be removed",
			},
			&cli.BoolFlag{
				Name:  "yes",
				Usage: "with --delete, skip the confirmation prompts",
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

	// Flags override the settings file, which overrides the defaults.
	root := settings.MusicRoot
	if cmd.IsSet("root") {
		root = cmd.String("root")
	}
	patterns := settings.MusicExtensions
	if cmd.IsSet("ext") {
		patterns = cmd.StringSlice("ext")
	}
	depth := settings.AlbumDepth
	if cmd.IsSet("depth") {
		depth = cmd.Int("depth")
	}

	finder := &audit.EmptyAlbumFinder{
		Root:       root,
		Extensions: model.NewExtensionSet(patterns...),
		Depth:      depth,
	}

	var remover *audit.Remover
	if cmd.Bool("delete") {
		remover = &audit.Remover{
			DryRun:   cmd.Bool("dry-run"),
			Out:      os.Stdout,
			Warnings: os.Stderr,
		}
		if !cmd.Bool("yes") {
			remover.Confirm = func(action, target string) (bool, error) {
				return prompt.Confirm(fmt.Sprintf("%s %s?", action, target))
			}
		}
	}

	found := 0
	var actionErr error
	err := finder.Find(func(path string) {
		found++
		fmt.Println(path)
		if remover != nil && actionErr == nil {
			actionErr = remover.Remove(path)
		}
	})
	if err != nil {
		return err
	}
	if actionErr != nil {
		return actionErr
	}

	if found == 0 {
		fmt.Fprintln(os.Stderr, dimStyle.Render("No empty album folders found."))
	} else {
		fmt.Fprintln(os.Stderr, summaryStyle.Render(fmt.Sprintf("%d empty album folder(s) found.", found)))
	}
	return nil
}
