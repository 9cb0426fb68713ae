// Package foldora provides the high-level API behind each foldora
// command: boundary validation, confirmation, rendering and reports.
package foldora

import (
	"io"
	"os"

	"github.com/ideamans/go-l10n"

	"github.com/ayoub-aberbach/foldora/pkg/model"
	"github.com/ayoub-aberbach/foldora/pkg/ops/list"
	"github.com/ayoub-aberbach/foldora/pkg/ops/mkdirs"
	"github.com/ayoub-aberbach/foldora/pkg/ops/normalize"
	"github.com/ayoub-aberbach/foldora/pkg/ops/purge"
	"github.com/ayoub-aberbach/foldora/pkg/ops/touch"
	"github.com/ayoub-aberbach/foldora/pkg/ops/view"
	"github.com/ayoub-aberbach/foldora/pkg/pipeline"
	"github.com/ayoub-aberbach/foldora/pkg/ports"
	"github.com/ayoub-aberbach/foldora/pkg/summarizer"
)

// Questions asked before destructive or mode-dependent work.
const (
	PurgeQuestion     = "Proceed with deleting the files/folders ?"
	NormalizeQuestion = "Activate Sub Filling"
)

// App runs foldora commands against a FileSystem.
type App struct {
	fs        ports.FileSystem
	log       ports.Logger
	confirmer ports.Confirmer
	out       io.Writer
	palette   palette
	version   string

	lister     pipeline.Stage[list.Input, list.Result]
	dirs       pipeline.Stage[mkdirs.Input, model.TraversalResult]
	files      pipeline.Stage[touch.Input, model.TraversalResult]
	purger     pipeline.Stage[purge.Input, model.TraversalResult]
	viewer     pipeline.Stage[view.Input, view.Result]
	normalizer pipeline.Stage[normalize.Input, model.TraversalResult]
}

// Option configures an App.
type Option func(*App)

// WithOutput sets where command output is written. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.out = w
	}
}

// WithColor enables ANSI colors in command output.
func WithColor(enabled bool) Option {
	return func(a *App) {
		a.palette = palette(enabled)
	}
}

// WithVersion sets the version shown in reports.
func WithVersion(version string) Option {
	return func(a *App) {
		a.version = version
	}
}

// WithPurger replaces the stage that deletes paths.
func WithPurger(stage pipeline.Stage[purge.Input, model.TraversalResult]) Option {
	return func(a *App) {
		a.purger = stage
	}
}

// WithNormalizer replaces the stage that renames entries.
func WithNormalizer(stage pipeline.Stage[normalize.Input, model.TraversalResult]) Option {
	return func(a *App) {
		a.normalizer = stage
	}
}

// New creates a new App with the default operation stages.
func New(fs ports.FileSystem, log ports.Logger, confirmer ports.Confirmer, opts ...Option) *App {
	a := &App{
		fs:        fs,
		log:       log,
		confirmer: confirmer,
		out:       os.Stdout,

		lister:     list.New(fs, log),
		dirs:       mkdirs.New(fs, log),
		files:      touch.New(fs, log),
		purger:     purge.New(fs, log),
		viewer:     view.New(log),
		normalizer: normalize.New(fs, log),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// report writes a Markdown summary of a command when path is set.
func (a *App) report(path string, summary *summarizer.Summary) error {
	if path == "" {
		return nil
	}
	formatter := summarizer.NewMarkdownFormatter(
		summarizer.WithTranslator(l10n.T),
		summarizer.WithVersion(a.version),
	)
	if err := summarizer.NewWriter(formatter, a.fs).Write(path, summary); err != nil {
		return err
	}
	a.log.Info("Report written to %s", path)
	return nil
}
