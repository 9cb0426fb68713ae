// Package ops holds the boundary checks shared by the housekeeping
// operations. Each operation lives in its own subpackage.
package ops

import (
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/ayoub-aberbach/foldora/pkg/model"
	"github.com/ayoub-aberbach/foldora/pkg/ports"
)

// Require describes the precondition a path argument must satisfy.
type Require int

const (
	// AnyKind only requires the path to exist. Links are not followed,
	// so a dangling link is valid.
	AnyKind Require = iota
	// DirOnly requires a directory or a link to one.
	DirOnly
	// FileOnly requires a regular file or a link to one.
	FileOnly
)

// Validate checks every path against req before any mutation happens.
// The first failing path is returned wrapped in model.ErrValidation.
func Validate(fsys ports.FileSystem, req Require, paths ...string) ([]model.DirectoryEntry, error) {
	entries := make([]model.DirectoryEntry, 0, len(paths))
	for _, p := range paths {
		var (
			e   model.DirectoryEntry
			err error
		)
		if req == AnyKind {
			e, err = fsys.Lstat(filepath.Clean(p))
		} else {
			e, err = fsys.Stat(p)
		}
		if err != nil {
			return nil, errors.Wrapf(model.ErrValidation, "%s does not exist", p)
		}

		switch {
		case req == DirOnly && e.Kind != model.KindDir:
			return nil, errors.Wrapf(model.ErrValidation, "%s is not a directory", p)
		case req == FileOnly && e.Kind != model.KindFile:
			return nil, errors.Wrapf(model.ErrValidation, "%s is not a file", p)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
