// Package list enumerates the immediate children of directories.
package list

import (
	"context"

	"github.com/pkg/errors"

	"github.com/ayoub-aberbach/foldora/pkg/model"
	"github.com/ayoub-aberbach/foldora/pkg/pipeline"
	"github.com/ayoub-aberbach/foldora/pkg/ports"
)

// CurrentDir is listed when no path is given.
const CurrentDir = "."

// Input lists the directories to enumerate. Each must exist.
type Input struct {
	Paths []string
}

// Listing holds the children of one directory in filesystem order.
type Listing struct {
	Path    string
	Entries []model.DirectoryEntry
}

// Result holds one Listing per requested path, in argument order.
type Result struct {
	Listings []Listing
	// Labeled is set when more than one path was requested, so each
	// listing must be preceded by its path.
	Labeled bool
}

// Lister enumerates directories. It never recurses.
type Lister struct {
	fs  ports.FileSystem
	log ports.Logger
}

// New creates a new Lister.
func New(fs ports.FileSystem, log ports.Logger) *Lister {
	return &Lister{
		fs:  fs,
		log: log.WithComponent("list"),
	}
}

// Execute lists every path. An unreadable directory aborts the listing
// since existence is a precondition checked by the caller.
func (l *Lister) Execute(ctx context.Context, input Input) (Result, error) {
	paths := input.Paths
	if len(paths) == 0 {
		paths = []string{CurrentDir}
	}

	result := Result{Labeled: len(paths) > 1}
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		l.log.Debug("Listing %s", p)
		entries, err := l.fs.ReadDir(p)
		if err != nil {
			return result, errors.Wrapf(err, "list %s", p)
		}
		l.log.Debug("%s: %d entries", p, len(entries))

		result.Listings = append(result.Listings, Listing{Path: p, Entries: entries})
	}
	return result, nil
}

var _ pipeline.Stage[Input, Result] = (*Lister)(nil)
