// Package osfilesystem provides a filesystem implementation using the os package.
package osfilesystem

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ayoub-aberbach/foldora/pkg/model"
	"github.com/ayoub-aberbach/foldora/pkg/ports"
)

const (
	// DefaultDirPerm is used for directories created by MkdirAll.
	DefaultDirPerm fs.FileMode = 0755
	// DefaultFilePerm is used for files created by Create and WriteFile.
	DefaultFilePerm fs.FileMode = 0644
)

// FileSystem implements ports.FileSystem using the os package.
type FileSystem struct {
	dirPerm  fs.FileMode
	filePerm fs.FileMode
}

// Option configures a FileSystem.
type Option func(*FileSystem)

// WithDirPerm sets the permission bits for new directories.
func WithDirPerm(perm fs.FileMode) Option {
	return func(f *FileSystem) {
		if perm != 0 {
			f.dirPerm = perm
		}
	}
}

// WithFilePerm sets the permission bits for new files.
func WithFilePerm(perm fs.FileMode) Option {
	return func(f *FileSystem) {
		if perm != 0 {
			f.filePerm = perm
		}
	}
}

// New creates a new FileSystem.
func New(opts ...Option) *FileSystem {
	f := &FileSystem{
		dirPerm:  DefaultDirPerm,
		filePerm: DefaultFilePerm,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ReadDir lists the immediate children of a directory, sorted by name.
func (f *FileSystem) ReadDir(path string) ([]model.DirectoryEntry, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	entries := make([]model.DirectoryEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		// Info is an lstat; an entry removed since ReadDir is skipped.
		info, err := de.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		entries = append(entries, toEntry(path, info))
	}
	return entries, nil
}

// Lstat describes path without following a final symlink. Trailing
// separators are dropped first, since "link/" resolves through the link.
func (f *FileSystem) Lstat(path string) (model.DirectoryEntry, error) {
	clean := filepath.Clean(path)
	info, err := os.Lstat(clean)
	if err != nil {
		return model.DirectoryEntry{}, err
	}
	return toEntry(filepath.Dir(clean), info), nil
}

// Stat describes path, following symlinks.
func (f *FileSystem) Stat(path string) (model.DirectoryEntry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return model.DirectoryEntry{}, err
	}
	e := toEntry(filepath.Dir(filepath.Clean(path)), info)
	e.Name = filepath.Base(path)
	return e, nil
}

// Open opens a file for reading.
func (f *FileSystem) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// WriteFile writes data to a file, creating it if necessary.
func (f *FileSystem) WriteFile(path string, data []byte) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, f.dirPerm); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, f.filePerm)
}

// Create creates an empty file, truncating any existing content.
func (f *FileSystem) Create(path string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.filePerm)
	if err != nil {
		return err
	}
	return file.Close()
}

// MkdirAll creates a directory and all parent directories.
func (f *FileSystem) MkdirAll(path string) error {
	return os.MkdirAll(path, f.dirPerm)
}

// Exists checks if a file, directory or link exists. Dangling links exist.
func (f *FileSystem) Exists(path string) (bool, error) {
	_, err := os.Lstat(filepath.Clean(path))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Remove deletes a file, link or empty directory.
func (f *FileSystem) Remove(path string) error {
	return os.Remove(path)
}

// Rename moves an entry. Unlike os.Rename it refuses to replace an
// existing target.
func (f *FileSystem) Rename(oldPath, newPath string) error {
	if _, err := os.Lstat(newPath); err == nil {
		return &os.LinkError{Op: "rename", Old: oldPath, New: newPath, Err: fs.ErrExist}
	}
	return os.Rename(oldPath, newPath)
}

func toEntry(parent string, info fs.FileInfo) model.DirectoryEntry {
	return model.DirectoryEntry{
		Name:    info.Name(),
		Parent:  parent,
		Kind:    model.KindFromMode(info.Mode()),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
}

// Ensure FileSystem implements ports.FileSystem
var _ ports.FileSystem = (*FileSystem)(nil)
