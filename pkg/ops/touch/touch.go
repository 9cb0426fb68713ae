// Package touch creates empty files.
//
// Existing files are truncated: touching a file that has content
// discards that content without asking.
package touch

import (
	"context"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/ayoub-aberbach/foldora/pkg/model"
	"github.com/ayoub-aberbach/foldora/pkg/pipeline"
	"github.com/ayoub-aberbach/foldora/pkg/ports"
)

// Input names the files to create and an optional destination directory.
type Input struct {
	Names []string
	// Dir is created with its parents when it does not exist. Names are
	// joined under it.
	Dir string
}

// Creator creates empty files.
type Creator struct {
	fs  ports.FileSystem
	log ports.Logger
}

// New creates a new Creator.
func New(fs ports.FileSystem, log ports.Logger) *Creator {
	return &Creator{
		fs:  fs,
		log: log.WithComponent("files"),
	}
}

// Execute creates every named file. Result.Dirs is 1 when the destination
// directory had to be created. Without names nothing is touched, not even
// the destination directory.
func (c *Creator) Execute(ctx context.Context, input Input) (model.TraversalResult, error) {
	var result model.TraversalResult
	if len(input.Names) == 0 {
		return result, errors.Wrap(model.ErrNoInput, "files")
	}

	if input.Dir != "" {
		created, err := c.ensureDir(input.Dir)
		if err != nil {
			return result, errors.Wrapf(err, "create destination %s", input.Dir)
		}
		if created {
			result.Dirs++
			c.log.Debug("Created destination directory %s", input.Dir)
		}
	}

	for _, name := range input.Names {
		if err := ctx.Err(); err != nil {
			c.log.Warn("Interrupted, stopping at %s", name)
			return result, err
		}

		target := name
		if input.Dir != "" {
			target = filepath.Join(input.Dir, name)
		}

		if err := c.fs.Create(target); err != nil {
			e := result.Fail("create", target, err)
			c.log.Warn("Failed to %s %s: %s", e.Op, target, err)
			continue
		}

		result.Files++
		result.Record(target)
		c.log.Debug("Created file %s", target)
	}
	return result, nil
}

func (c *Creator) ensureDir(dir string) (bool, error) {
	exists, err := c.fs.Exists(dir)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	return true, c.fs.MkdirAll(dir)
}

var _ pipeline.Stage[Input, model.TraversalResult] = (*Creator)(nil)
