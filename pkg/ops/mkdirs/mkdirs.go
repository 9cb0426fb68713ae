// Package mkdirs creates directories together with their missing parents.
package mkdirs

import (
	"context"

	"github.com/pkg/errors"

	"github.com/ayoub-aberbach/foldora/pkg/model"
	"github.com/ayoub-aberbach/foldora/pkg/pipeline"
	"github.com/ayoub-aberbach/foldora/pkg/ports"
)

// Input lists the directories to create. They need not exist.
type Input struct {
	Paths []string
}

// Creator creates directories idempotently.
type Creator struct {
	fs  ports.FileSystem
	log ports.Logger
}

// New creates a new Creator.
func New(fs ports.FileSystem, log ports.Logger) *Creator {
	return &Creator{
		fs:  fs,
		log: log.WithComponent("dirs"),
	}
}

// Execute creates every path. An existing directory counts as processed.
// A failing path is recorded and the remaining paths are still created.
func (c *Creator) Execute(ctx context.Context, input Input) (model.TraversalResult, error) {
	var result model.TraversalResult
	if len(input.Paths) == 0 {
		return result, errors.Wrap(model.ErrNoInput, "dirs")
	}

	for _, p := range input.Paths {
		if err := ctx.Err(); err != nil {
			c.log.Warn("Interrupted, stopping at %s", p)
			return result, err
		}

		if err := c.fs.MkdirAll(p); err != nil {
			e := result.Fail("mkdir", p, err)
			c.log.Warn("Failed to %s %s: %s", e.Op, p, err)
			continue
		}

		result.Dirs++
		result.Record(p)
		c.log.Debug("Created directory %s", p)
	}
	return result, nil
}

var _ pipeline.Stage[Input, model.TraversalResult] = (*Creator)(nil)
