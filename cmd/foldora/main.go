// Package main provides the CLI entry point for foldora.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/ayoub-aberbach/foldora/pkg/adapters/logger"
	"github.com/ayoub-aberbach/foldora/pkg/adapters/osfilesystem"
	"github.com/ayoub-aberbach/foldora/pkg/adapters/prompt"
	"github.com/ayoub-aberbach/foldora/pkg/config"
	"github.com/ayoub-aberbach/foldora/pkg/foldora"
	"github.com/ayoub-aberbach/foldora/pkg/ports"
)

var version = "dev"

func main() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, l10n.F("Warning: .env not loaded: %s", err))
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals. Traversals stop at the next entry.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := newCLI().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, l10n.F("Error: %s", err))
		os.Exit(1)
	}
}

// runner holds the App built from the global flags.
type runner struct {
	app *foldora.App
}

func newCLI() *cli.App {
	r := &runner{}

	return &cli.App{
		Name:    "foldora",
		Usage:   l10n.T("File & directory manager for everyday housekeeping"),
		Version: version,
		Description: l10n.T("foldora lists, creates, purges and prints files and directories, " +
			"and replaces spaces with underscores in their names."),
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Usage:    l10n.T("YAML configuration file"),
				EnvVars:  []string{"FOLDORA_CONFIG"},
				Category: l10n.T("Configuration"),
			},
			&cli.StringFlag{
				Name:     "log-level",
				Value:    "warn",
				Usage:    l10n.T("Log level (debug, info, warn, error)"),
				EnvVars:  []string{"FOLDORA_LOG_LEVEL"},
				Category: l10n.T("Logging"),
			},
			&cli.BoolFlag{
				Name:     "quiet",
				Aliases:  []string{"q"},
				Usage:    l10n.T("Suppress all log output"),
				EnvVars:  []string{"FOLDORA_QUIET"},
				Category: l10n.T("Logging"),
			},
			&cli.StringFlag{
				Name:     "color",
				Value:    config.ColorAuto,
				Usage:    l10n.T("Colorize output (auto, always, never)"),
				EnvVars:  []string{"FOLDORA_COLOR"},
				Category: l10n.T("Logging"),
			},
		},
		Before: r.setup,
		Commands: []*cli.Command{
			{
				Name:      "list",
				Aliases:   []string{"l"},
				Usage:     l10n.T("List all files and directories of a given path"),
				ArgsUsage: "[PATH...]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "long",
						Aliases: []string{"l"},
						Usage:   l10n.T("Show sizes and modification times"),
					},
				},
				Action: func(c *cli.Context) error {
					return r.app.List(c.Context, c.Args().Slice(), c.Bool("long"))
				},
			},
			{
				Name:      "dirs",
				Aliases:   []string{"d"},
				Usage:     l10n.T("Create directories and sub-directories"),
				ArgsUsage: "PATH...",
				Action: func(c *cli.Context) error {
					return r.app.Dirs(c.Context, c.Args().Slice())
				},
			},
			{
				Name:        "files",
				Aliases:     []string{"f"},
				Usage:       l10n.T("Create files in the current (or a given) path"),
				Description: l10n.T("WARNING: existing files with the same name are truncated to zero length."),
				ArgsUsage:   "NAME...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "path",
						Aliases: []string{"p"},
						Usage:   l10n.T("Custom path where the file(s) will be saved"),
					},
				},
				Action: func(c *cli.Context) error {
					return r.app.Files(c.Context, c.Args().Slice(), c.String("path"))
				},
			},
			{
				Name:      "purge",
				Aliases:   []string{"p"},
				Usage:     l10n.T("Purge files and folders"),
				ArgsUsage: "PATH...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "report",
						Usage: l10n.T("Write a Markdown summary to this file"),
					},
				},
				Action: func(c *cli.Context) error {
					return r.app.Purge(c.Context, c.Args().Slice(), c.String("report"))
				},
			},
			{
				Name:      "content",
				Aliases:   []string{"c"},
				Usage:     l10n.T("Show the content of one or more files"),
				ArgsUsage: "FILE...",
				Action: func(c *cli.Context) error {
					return r.app.Content(c.Context, c.Args().Slice())
				},
			},
			{
				Name:      "normalize",
				Aliases:   []string{"b"},
				Usage:     l10n.T("Fill blanks in file and folder names"),
				ArgsUsage: "[PATH]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "recursive",
						Aliases: []string{"r"},
						Usage:   l10n.T("Descend into subdirectories without asking"),
					},
					&cli.StringFlag{
						Name:  "report",
						Usage: l10n.T("Write a Markdown summary to this file"),
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() > 1 {
						return errors.New(l10n.T("normalize takes at most one path"))
					}
					return r.app.Normalize(c.Context, c.Args().First(), c.Bool("recursive"), c.String("report"))
				},
			},
		},
	}
}

// setup resolves the configuration and builds the App. Flags and their
// FOLDORA_* variables override the configuration file.
func (r *runner) setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("quiet") {
		cfg.Quiet = c.Bool("quiet")
	}
	if c.IsSet("color") {
		cfg.Color = c.String("color")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Create logger
	var log ports.Logger
	if cfg.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsoleWriter(cfg.Level(), os.Stdout, os.Stderr, cfg.UseColor(logger.IsTerminal(os.Stderr)))
	}

	// Create adapters
	fsys := osfilesystem.New(
		osfilesystem.WithDirPerm(cfg.DirMode()),
		osfilesystem.WithFilePerm(cfg.FileMode()),
	)
	confirmer := prompt.New(os.Stdin, os.Stdout)

	r.app = foldora.New(fsys, log, confirmer,
		foldora.WithColor(cfg.UseColor(logger.IsTerminal(os.Stdout))),
		foldora.WithVersion(version),
	)
	return nil
}
