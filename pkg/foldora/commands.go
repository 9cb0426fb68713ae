package foldora

import (
	"context"
	"errors"
	"fmt"

	"github.com/ideamans/go-l10n"

	"github.com/ayoub-aberbach/foldora/pkg/model"
	"github.com/ayoub-aberbach/foldora/pkg/ops"
	"github.com/ayoub-aberbach/foldora/pkg/ops/list"
	"github.com/ayoub-aberbach/foldora/pkg/ops/mkdirs"
	"github.com/ayoub-aberbach/foldora/pkg/ops/normalize"
	"github.com/ayoub-aberbach/foldora/pkg/ops/purge"
	"github.com/ayoub-aberbach/foldora/pkg/ops/touch"
	"github.com/ayoub-aberbach/foldora/pkg/ops/view"
	"github.com/ayoub-aberbach/foldora/pkg/summarizer"
)

// List prints the immediate children of each directory, or of the current
// directory when paths is empty. With long set, sizes and modification
// times are shown too.
func (a *App) List(ctx context.Context, paths []string, long bool) error {
	if _, err := ops.Validate(a.fs, ops.DirOnly, paths...); err != nil {
		return fmt.Errorf("list: %w", err)
	}

	result, err := a.lister.Execute(ctx, list.Input{Paths: paths})
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	a.renderListing(result, long)
	return nil
}

func (a *App) renderListing(result list.Result, long bool) {
	for _, listing := range result.Listings {
		a.println("")
		if result.Labeled {
			a.println(fmt.Sprintf("(%s):", listing.Path))
		}
		for _, e := range listing.Entries {
			a.println(a.entryLine(e, long))
		}
	}
}

// Dirs creates every directory with its parents.
func (a *App) Dirs(ctx context.Context, paths []string) error {
	result, err := a.dirs.Execute(ctx, mkdirs.Input{Paths: paths})
	if errors.Is(err, model.ErrNoInput) {
		a.println(l10n.T("No path was given."))
		return nil
	}
	if err != nil {
		return fmt.Errorf("dirs: %w", err)
	}

	a.println("")
	a.println(a.palette.green(l10n.F("-> (%d) directory(s) have been created.", result.Dirs)))
	a.failures(result)
	return nil
}

// Files creates empty files in dir, or in the current directory when dir
// is empty. Existing files are truncated.
func (a *App) Files(ctx context.Context, names []string, dir string) error {
	result, err := a.files.Execute(ctx, touch.Input{Names: names, Dir: dir})
	if errors.Is(err, model.ErrNoInput) {
		a.println("")
		a.println(l10n.T("No file path was given."))
		return nil
	}
	if err != nil {
		return fmt.Errorf("files: %w", err)
	}

	a.println("")
	a.println(a.palette.cyan(l10n.F("-> (%d) file(s) have been created.", result.Files)))
	a.failures(result)
	return nil
}

// Purge deletes files and directory trees after a single confirmation.
// A declined confirmation prints "Aborted." and is not an error. When
// reportPath is set a Markdown summary is written there.
func (a *App) Purge(ctx context.Context, paths []string, reportPath string) error {
	if len(paths) == 0 {
		a.println("")
		a.println(l10n.T("No path was given."))
		return nil
	}
	if _, err := ops.Validate(a.fs, ops.AnyKind, paths...); err != nil {
		return fmt.Errorf("purge: %w", err)
	}

	a.println("")
	ok, err := a.confirmer.Confirm(ctx, PurgeQuestion)
	if err != nil {
		return fmt.Errorf("purge: %w", err)
	}
	if !ok {
		a.println(l10n.T("Aborted."))
		return nil
	}
	a.println("")

	result, runErr := a.purger.Execute(ctx, purge.Input{Paths: paths})
	if result.Dirs > 0 {
		a.println(a.palette.green(l10n.F("-> (%d) directory(s) have been removed.", result.Dirs)))
	}
	if result.Files > 0 {
		a.println(a.palette.cyan(l10n.F("-> (%d) file(s) have been removed.", result.Files)))
	}
	a.failures(result)

	summary := summarizer.NewBuilder().
		WithCommand("purge", paths...).
		WithResult(result).
		Build()
	if err := a.report(reportPath, summary); err != nil {
		return fmt.Errorf("purge: %w", err)
	}

	if runErr != nil {
		return fmt.Errorf("purge: %w", runErr)
	}
	return nil
}

// Content prints the text of each file. All files are opened before any
// output and every handle is closed on return.
func (a *App) Content(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		a.println("")
		a.println(l10n.T("No file path was given."))
		return nil
	}
	if _, err := ops.Validate(a.fs, ops.FileOnly, paths...); err != nil {
		return fmt.Errorf("content: %w", err)
	}

	files := make([]view.File, 0, len(paths))
	for _, p := range paths {
		r, err := a.fs.Open(p)
		if err != nil {
			return fmt.Errorf("content: open %s: %w", p, err)
		}
		defer r.Close()
		files = append(files, view.File{Name: p, Reader: r})
	}

	result, err := a.viewer.Execute(ctx, view.Input{Files: files})
	if err != nil {
		return fmt.Errorf("content: %w", err)
	}

	a.println("")
	for i, section := range result.Sections {
		a.println(contentHeader(section.Name))
		a.println("")
		if section.Err != nil {
			a.println(a.palette.red(l10n.F("Cannot display %s: %s", section.Name, section.Err)))
		} else {
			a.println(section.Text)
		}
		a.println("")

		if i < len(result.Sections)-1 {
			a.println(separator)
			a.println("")
		}
	}
	return nil
}

// Normalize replaces spaces with underscores in the names under root.
// Unless recursive is set the user is asked whether to descend into
// subdirectories. The root's contents are listed afterwards.
func (a *App) Normalize(ctx context.Context, root string, recursive bool, reportPath string) error {
	if root == "" {
		root = list.CurrentDir
	}
	entries, err := ops.Validate(a.fs, ops.AnyKind, root)
	if err != nil {
		return fmt.Errorf("normalize: %w", err)
	}

	mode := normalize.TopLevel
	if recursive {
		mode = normalize.Recursive
	} else {
		ok, err := a.confirmer.Confirm(ctx, NormalizeQuestion)
		if err != nil {
			return fmt.Errorf("normalize: %w", err)
		}
		if ok {
			mode = normalize.Recursive
		}
	}

	result, runErr := a.normalizer.Execute(ctx, normalize.Input{Root: root, Mode: mode})
	a.failures(result)

	summary := summarizer.NewBuilder().
		WithCommand("normalize", root).
		WithSetting("Mode", mode.String()).
		WithResult(result).
		Build()
	if err := a.report(reportPath, summary); err != nil {
		return fmt.Errorf("normalize: %w", err)
	}
	if runErr != nil {
		return fmt.Errorf("normalize: %w", runErr)
	}

	if err := a.relist(ctx, root, entries[0].IsDir(), result); err != nil {
		return fmt.Errorf("normalize: %w", err)
	}
	a.println("")
	a.println("DONE")
	return nil
}

// relist shows the root after normalization. A file root is shown under
// its new name.
func (a *App) relist(ctx context.Context, root string, isDir bool, result model.TraversalResult) error {
	if isDir {
		listing, err := a.lister.Execute(ctx, list.Input{Paths: []string{root}})
		if err != nil {
			return err
		}
		a.renderListing(listing, false)
		return nil
	}

	path := root
	if len(result.Touched) > 0 {
		path = result.Touched[0]
	}
	e, err := a.fs.Lstat(path)
	if err != nil {
		return err
	}
	a.println("")
	a.println(a.entryLine(e, false))
	return nil
}
