package mocks

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ayoub-aberbach/foldora/pkg/model"
	"github.com/ayoub-aberbach/foldora/pkg/ports"
)

var errNotEmpty = errors.New("directory not empty")

type node struct {
	kind    model.EntryKind
	data    []byte
	target  string
	modTime time.Time
}

// FileSystem is an in-memory implementation of ports.FileSystem. It
// records every mutating call so tests can assert on operation order.
type FileSystem struct {
	mu       sync.RWMutex
	nodes    map[string]*node
	calls    []string
	failures map[string]error
	open     int

	// ReadDirFunc, when set, replaces ReadDir.
	ReadDirFunc func(path string) ([]model.DirectoryEntry, error)
}

// NewFileSystem creates a new mock FileSystem containing only "." and "/".
func NewFileSystem() *FileSystem {
	return &FileSystem{
		nodes: map[string]*node{
			".": {kind: model.KindDir},
			"/": {kind: model.KindDir},
		},
		failures: make(map[string]error),
	}
}

// AddFile adds a file and its missing parent directories.
func (m *FileSystem) AddFile(path string, data []byte) *FileSystem {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := filepath.Clean(path)
	m.addParents(p)
	m.nodes[p] = &node{kind: model.KindFile, data: data}
	return m
}

// AddDir adds a directory and its missing parents.
func (m *FileSystem) AddDir(path string) *FileSystem {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := filepath.Clean(path)
	m.addParents(p)
	m.nodes[p] = &node{kind: model.KindDir}
	return m
}

// AddSymlink adds a symbolic link to target. Stat follows it; nothing
// else does.
func (m *FileSystem) AddSymlink(path, target string) *FileSystem {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := filepath.Clean(path)
	m.addParents(p)
	m.nodes[p] = &node{kind: model.KindSymlink, target: filepath.Clean(target)}
	return m
}

// FailWith makes every call of op ("remove", "rename", "mkdir", "create",
// "open", "readdir", "lstat", "stat", "write") on path return err.
func (m *FileSystem) FailWith(op, path string, err error) *FileSystem {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[op+" "+filepath.Clean(path)] = err
	return m
}

func (m *FileSystem) ReadDir(path string) ([]model.DirectoryEntry, error) {
	if m.ReadDirFunc != nil {
		return m.ReadDirFunc(path)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	p := filepath.Clean(path)
	if err := m.failure("readdir", p); err != nil {
		return nil, err
	}
	n, ok := m.follow(p)
	if !ok {
		return nil, &fs.PathError{Op: "readdir", Path: path, Err: fs.ErrNotExist}
	}
	if n.kind != model.KindDir {
		return nil, &fs.PathError{Op: "readdir", Path: path, Err: errors.New("not a directory")}
	}
	dir := p
	if target := m.nodes[p].target; target != "" {
		dir = target
	}

	var entries []model.DirectoryEntry
	for _, child := range m.children(dir) {
		entries = append(entries, m.entry(child))
	}
	return entries, nil
}

func (m *FileSystem) Lstat(path string) (model.DirectoryEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p := filepath.Clean(path)
	if err := m.failure("lstat", p); err != nil {
		return model.DirectoryEntry{}, err
	}
	if _, ok := m.nodes[p]; !ok {
		return model.DirectoryEntry{}, &fs.PathError{Op: "lstat", Path: path, Err: fs.ErrNotExist}
	}
	return m.entry(p), nil
}

func (m *FileSystem) Stat(path string) (model.DirectoryEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p := filepath.Clean(path)
	if err := m.failure("stat", p); err != nil {
		return model.DirectoryEntry{}, err
	}
	n, ok := m.follow(p)
	if !ok {
		return model.DirectoryEntry{}, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}
	e := m.entry(p)
	e.Kind = n.kind
	e.Size = int64(len(n.data))
	return e, nil
}

func (m *FileSystem) Open(path string) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := filepath.Clean(path)
	if err := m.failure("open", p); err != nil {
		return nil, err
	}
	n, ok := m.follow(p)
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	if n.kind == model.KindDir {
		return nil, &fs.PathError{Op: "open", Path: path, Err: errors.New("is a directory")}
	}
	m.open++
	return &handle{Reader: bytes.NewReader(n.data), fs: m}, nil
}

func (m *FileSystem) WriteFile(path string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := filepath.Clean(path)
	if err := m.failure("write", p); err != nil {
		return err
	}
	m.addParents(p)
	m.nodes[p] = &node{kind: model.KindFile, data: data}
	m.calls = append(m.calls, "write "+p)
	return nil
}

func (m *FileSystem) Create(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := filepath.Clean(path)
	if err := m.failure("create", p); err != nil {
		return err
	}
	if parent, ok := m.nodes[filepath.Dir(p)]; !ok || parent.kind != model.KindDir {
		return &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	if n, ok := m.nodes[p]; ok && n.kind == model.KindDir {
		return &fs.PathError{Op: "open", Path: path, Err: errors.New("is a directory")}
	}
	m.nodes[p] = &node{kind: model.KindFile}
	m.calls = append(m.calls, "create "+p)
	return nil
}

func (m *FileSystem) MkdirAll(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := filepath.Clean(path)
	if err := m.failure("mkdir", p); err != nil {
		return err
	}
	for _, dir := range append(ancestors(p), p) {
		if n, ok := m.nodes[dir]; ok {
			if n.kind != model.KindDir {
				return &fs.PathError{Op: "mkdir", Path: dir, Err: errors.New("not a directory")}
			}
			continue
		}
		m.nodes[dir] = &node{kind: model.KindDir}
	}
	m.calls = append(m.calls, "mkdir "+p)
	return nil
}

func (m *FileSystem) Exists(path string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.nodes[filepath.Clean(path)]
	return ok, nil
}

func (m *FileSystem) Remove(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := filepath.Clean(path)
	if err := m.failure("remove", p); err != nil {
		return err
	}
	n, ok := m.nodes[p]
	if !ok {
		return &fs.PathError{Op: "remove", Path: path, Err: fs.ErrNotExist}
	}
	if n.kind == model.KindDir && len(m.children(p)) > 0 {
		return &fs.PathError{Op: "remove", Path: path, Err: errNotEmpty}
	}
	delete(m.nodes, p)
	m.calls = append(m.calls, "remove "+p)
	return nil
}

func (m *FileSystem) Rename(oldPath, newPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	oldP, newP := filepath.Clean(oldPath), filepath.Clean(newPath)
	if err := m.failure("rename", oldP); err != nil {
		return err
	}
	if _, ok := m.nodes[oldP]; !ok {
		return &fs.PathError{Op: "rename", Path: oldPath, Err: fs.ErrNotExist}
	}
	if _, ok := m.nodes[newP]; ok {
		return &fs.PathError{Op: "rename", Path: newPath, Err: fs.ErrExist}
	}
	if _, ok := m.nodes[filepath.Dir(newP)]; !ok {
		return &fs.PathError{Op: "rename", Path: newPath, Err: fs.ErrNotExist}
	}

	prefix := oldP + string(filepath.Separator)
	moved := make(map[string]*node)
	for p, n := range m.nodes {
		switch {
		case p == oldP:
			moved[newP] = n
		case strings.HasPrefix(p, prefix):
			moved[newP+string(filepath.Separator)+strings.TrimPrefix(p, prefix)] = n
		default:
			continue
		}
		delete(m.nodes, p)
	}
	for p, n := range moved {
		m.nodes[p] = n
	}
	m.calls = append(m.calls, "rename "+oldP+" "+newP)
	return nil
}

// Calls returns the mutating calls in order, e.g. "remove dirB/nested".
func (m *FileSystem) Calls() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.calls...)
}

// Paths returns every path in the tree except the roots, sorted.
func (m *FileSystem) Paths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var paths []string
	for p := range m.nodes {
		if p != "." && p != "/" {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths
}

// GetFile returns the contents of a file (for test verification).
func (m *FileSystem) GetFile(path string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n, ok := m.nodes[filepath.Clean(path)]
	if !ok || n.kind != model.KindFile {
		return nil, false
	}
	return n.data, true
}

// OpenHandles returns the number of handles opened and not yet closed.
func (m *FileSystem) OpenHandles() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.open
}

func (m *FileSystem) failure(op, p string) error {
	return m.failures[op+" "+p]
}

// follow resolves one level of symlink.
func (m *FileSystem) follow(p string) (*node, bool) {
	n, ok := m.nodes[p]
	if ok && n.kind == model.KindSymlink {
		n, ok = m.nodes[n.target]
	}
	return n, ok
}

func (m *FileSystem) addParents(p string) {
	for _, dir := range ancestors(p) {
		if _, ok := m.nodes[dir]; !ok {
			m.nodes[dir] = &node{kind: model.KindDir}
		}
	}
}

// children returns the direct children of p sorted by name.
func (m *FileSystem) children(p string) []string {
	var out []string
	for c := range m.nodes {
		if c != p && filepath.Dir(c) == p {
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out
}

func (m *FileSystem) entry(p string) model.DirectoryEntry {
	n := m.nodes[p]
	return model.DirectoryEntry{
		Name:    filepath.Base(p),
		Parent:  filepath.Dir(p),
		Kind:    n.kind,
		Size:    int64(len(n.data)),
		ModTime: n.modTime,
	}
}

// ancestors returns the parents of p from the outermost down, excluding
// "." and "/".
func ancestors(p string) []string {
	var out []string
	for dir := filepath.Dir(p); dir != "." && dir != "/"; dir = filepath.Dir(dir) {
		out = append([]string{dir}, out...)
	}
	return out
}

type handle struct {
	*bytes.Reader
	fs     *FileSystem
	closed bool
}

func (h *handle) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	h.fs.mu.Lock()
	h.fs.open--
	h.fs.mu.Unlock()
	return nil
}

var _ ports.FileSystem = (*FileSystem)(nil)
