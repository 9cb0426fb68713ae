// Package normalize replaces spaces with underscores in entry names.
package normalize

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/ayoub-aberbach/foldora/pkg/model"
	"github.com/ayoub-aberbach/foldora/pkg/pipeline"
	"github.com/ayoub-aberbach/foldora/pkg/ports"
)

// Mode selects how deep the normalization goes.
type Mode int

const (
	// TopLevel renames the immediate children of the root only.
	TopLevel Mode = iota
	// Recursive renames every entry of the subtree.
	Recursive
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	if m == Recursive {
		return "recursive"
	}
	return "top-level"
}

// Input names the root and the mode. An empty Root means ".". Trailing
// separators are ignored, so a link root is never resolved.
type Input struct {
	Root string
	Mode Mode
}

// Name returns name with every space replaced by an underscore.
func Name(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

// Normalizer renames entries in place.
type Normalizer struct {
	fs  ports.FileSystem
	log ports.Logger
}

// New creates a new Normalizer.
func New(fs ports.FileSystem, log ports.Logger) *Normalizer {
	return &Normalizer{
		fs:  fs,
		log: log.WithComponent("normalize"),
	}
}

// Execute normalizes the root. A directory root keeps its own name and has
// its children renamed; a file root is renamed itself. In recursive mode
// each directory's children are renamed before descending, so descent
// uses the new names. A rename onto an existing name is recorded as a
// collision and skipped. Result.Touched lists the new paths.
func (n *Normalizer) Execute(ctx context.Context, input Input) (model.TraversalResult, error) {
	root := filepath.Clean(input.Root)
	n.log.Debug("Normalizing %s (%s)", root, input.Mode)

	w := &walker{ctx: ctx, fs: n.fs, log: n.log, recursive: input.Mode == Recursive}

	entry, err := n.fs.Lstat(root)
	if err != nil {
		return w.result, errors.Wrapf(err, "normalize %s", root)
	}
	if entry.IsDir() {
		w.normalizeDir(root)
	} else {
		w.rename(entry)
	}
	return w.result, ctx.Err()
}

type walker struct {
	ctx       context.Context
	fs        ports.FileSystem
	log       ports.Logger
	recursive bool
	result    model.TraversalResult
}

func (w *walker) normalizeDir(dir string) {
	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		w.fail("readdir", dir, err)
		return
	}

	var subdirs []string
	for _, e := range entries {
		if w.stopped(e.Path()) {
			return
		}
		current := e.Path()
		if newPath, ok := w.rename(e); ok {
			current = newPath
		}
		// A directory that failed to rename is still descended under its
		// old name. Links are never descended.
		if w.recursive && e.IsDir() {
			subdirs = append(subdirs, current)
		}
	}

	for _, sub := range subdirs {
		if w.stopped(sub) {
			return
		}
		w.normalizeDir(sub)
	}
}

// rename renames e when its name contains a space. It returns the new
// path and whether a rename happened.
func (w *walker) rename(e model.DirectoryEntry) (string, bool) {
	normalized := Name(e.Name)
	if normalized == e.Name {
		return "", false
	}

	from := e.Path()
	to := filepath.Join(e.Parent, normalized)

	exists, err := w.fs.Exists(to)
	if err != nil {
		w.fail("rename", from, err)
		return "", false
	}
	if exists {
		w.fail("rename", from, errors.Wrapf(model.ErrCollision, "%s already exists", to))
		return "", false
	}
	if err := w.fs.Rename(from, to); err != nil {
		w.fail("rename", from, err)
		return "", false
	}

	if e.IsDir() {
		w.result.Dirs++
	} else {
		w.result.Files++
	}
	w.result.Record(to)
	w.log.Debug("Renamed %s -> %s", from, to)
	return to, true
}

func (w *walker) fail(op, path string, err error) {
	e := w.result.Fail(op, path, err)
	w.log.Warn("Failed to %s %s: %s", op, path, e.Err)
}

func (w *walker) stopped(at string) bool {
	if w.ctx.Err() != nil {
		w.log.Warn("Interrupted, stopping at %s", at)
		return true
	}
	return false
}

var _ pipeline.Stage[Input, model.TraversalResult] = (*Normalizer)(nil)
