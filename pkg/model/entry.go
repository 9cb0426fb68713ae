// Package model defines the entities shared by the housekeeping operations.
package model

import (
	"io/fs"
	"path/filepath"
	"time"
)

// EntryKind classifies a filesystem node.
type EntryKind int

const (
	// KindFile is a regular file.
	KindFile EntryKind = iota
	// KindDir is a directory.
	KindDir
	// KindSymlink is a symbolic link. Links are never followed.
	KindSymlink
	// KindOther covers sockets, pipes and devices.
	KindOther
)

// String returns the string representation of the kind.
func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "directory"
	case KindSymlink:
		return "symlink"
	default:
		return "other"
	}
}

// KindFromMode classifies a mode as reported by Lstat.
func KindFromMode(mode fs.FileMode) EntryKind {
	switch {
	case mode&fs.ModeSymlink != 0:
		return KindSymlink
	case mode.IsDir():
		return KindDir
	case mode.IsRegular():
		return KindFile
	default:
		return KindOther
	}
}

// DirectoryEntry is a node discovered during a traversal.
type DirectoryEntry struct {
	Name    string
	Parent  string
	Kind    EntryKind
	Size    int64
	ModTime time.Time
}

// Path returns the parent joined with the entry name.
func (e DirectoryEntry) Path() string {
	return filepath.Join(e.Parent, e.Name)
}

// IsDir reports whether the entry is a real directory (not a link to one).
func (e DirectoryEntry) IsDir() bool {
	return e.Kind == KindDir
}
