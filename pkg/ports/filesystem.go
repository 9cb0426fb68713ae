package ports

import (
	"io"

	"github.com/ayoub-aberbach/foldora/pkg/model"
)

// FileSystem abstracts the filesystem primitives the housekeeping
// operations are built on. Implementations never follow symbolic links
// when classifying entries.
type FileSystem interface {
	// ReadDir lists the immediate children of a directory in filesystem
	// order. Entries that vanish while being classified are skipped.
	ReadDir(path string) ([]model.DirectoryEntry, error)

	// Lstat describes a single path without following a final symlink.
	Lstat(path string) (model.DirectoryEntry, error)

	// Stat describes a single path, following symlinks.
	Stat(path string) (model.DirectoryEntry, error)

	// Open opens a file for reading. The caller must close it.
	Open(path string) (io.ReadCloser, error)

	// WriteFile writes data to a file, creating parent directories.
	WriteFile(path string, data []byte) error

	// Create creates an empty file, truncating an existing one.
	Create(path string) error

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// Exists checks if a file, directory or link exists.
	Exists(path string) (bool, error)

	// Remove deletes a file, link or empty directory.
	Remove(path string) error

	// Rename moves an entry within the same filesystem.
	Rename(oldPath, newPath string) error
}
