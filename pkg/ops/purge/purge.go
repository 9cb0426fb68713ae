// Package purge deletes files and directory trees bottom-up.
package purge

import (
	"context"
	"path/filepath"

	"github.com/ayoub-aberbach/foldora/pkg/model"
	"github.com/ayoub-aberbach/foldora/pkg/pipeline"
	"github.com/ayoub-aberbach/foldora/pkg/ports"
)

// Input lists the paths to delete. Each must have been validated to exist
// and the deletion confirmed by the user before Execute is called.
type Input struct {
	Paths []string
}

// Purger deletes paths. Directories are removed post-order: within each
// directory the non-directory entries go first, then every subdirectory,
// then the directory itself. Symlinks are removed, never descended.
type Purger struct {
	fs  ports.FileSystem
	log ports.Logger
}

// New creates a new Purger.
func New(fs ports.FileSystem, log ports.Logger) *Purger {
	return &Purger{
		fs:  fs,
		log: log.WithComponent("purge"),
	}
}

// Execute deletes every path. Result.Dirs and Result.Files count the
// top-level arguments that were removed; Result.Touched lists every
// removed path in removal order. Per-entry failures are recorded and do
// not stop the batch. Only cancellation of ctx returns an error.
func (p *Purger) Execute(ctx context.Context, input Input) (model.TraversalResult, error) {
	w := &walker{ctx: ctx, fs: p.fs, log: p.log}
	p.log.Debug("Purging %d path(s)", len(input.Paths))

	for _, arg := range input.Paths {
		// "link/" must name the link, not its target.
		root := filepath.Clean(arg)
		if w.stopped(root) {
			break
		}

		entry, err := p.fs.Lstat(root)
		if err != nil {
			w.fail("lstat", root, err)
			continue
		}

		if entry.IsDir() {
			if w.removeTree(root) {
				w.result.Dirs++
			}
		} else if w.remove(root, fileSize(entry)) {
			w.result.Files++
		}
	}
	return w.result, ctx.Err()
}

type walker struct {
	ctx    context.Context
	fs     ports.FileSystem
	log    ports.Logger
	result model.TraversalResult
}

// removeTree empties dir and removes it. It reports whether dir is gone.
func (w *walker) removeTree(dir string) bool {
	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		w.fail("readdir", dir, err)
		return false
	}

	var subdirs []string
	for _, e := range entries {
		if w.stopped(e.Path()) {
			return false
		}
		switch e.Kind {
		case model.KindDir:
			subdirs = append(subdirs, e.Path())
		case model.KindSymlink:
			w.log.Debug("Not descending into link %s", e.Path())
			w.remove(e.Path(), 0)
		default:
			w.remove(e.Path(), fileSize(e))
		}
	}

	for _, sub := range subdirs {
		if w.stopped(sub) {
			return false
		}
		w.removeTree(sub)
	}

	// A failed child leaves dir non-empty; Remove records that too.
	return w.remove(dir, 0)
}

func (w *walker) remove(path string, size int64) bool {
	if err := w.fs.Remove(path); err != nil {
		w.fail("remove", path, err)
		return false
	}
	w.result.Bytes += size
	w.result.Record(path)
	w.log.Debug("Removed %s", path)
	return true
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

func fileSize(e model.DirectoryEntry) int64 {
	if e.Kind == model.KindFile {
		return e.Size
	}
	return 0
}

var _ pipeline.Stage[Input, model.TraversalResult] = (*Purger)(nil)
