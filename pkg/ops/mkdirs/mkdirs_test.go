package mkdirs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoub-aberbach/foldora/pkg/adapters/logger"
	"github.com/ayoub-aberbach/foldora/pkg/adapters/osfilesystem"
	"github.com/ayoub-aberbach/foldora/pkg/mocks"
	"github.com/ayoub-aberbach/foldora/pkg/model"
	"github.com/ayoub-aberbach/foldora/pkg/ports"
)

func TestCreator_CreatesParents(t *testing.T) {
	fsys := mocks.NewFileSystem()
	creator := New(fsys, logger.NewNoop())

	result, err := creator.Execute(context.Background(), Input{Paths: []string{"a/b/c", "d"}})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Dirs)
	assert.True(t, result.OK())
	assert.Equal(t, []string{"a", "a/b", "a/b/c", "d"}, fsys.Paths())
}

func TestCreator_NoInput(t *testing.T) {
	fsys := mocks.NewFileSystem()
	creator := New(fsys, logger.NewNoop())

	_, err := creator.Execute(context.Background(), Input{})
	assert.True(t, errors.Is(err, model.ErrNoInput))
	assert.Empty(t, fsys.Calls())
}

func TestCreator_ContinuesAfterFailure(t *testing.T) {
	fsys := mocks.NewFileSystem().FailWith("mkdir", "denied", fs.ErrPermission)
	log := mocks.NewLogger()
	creator := New(fsys, log)

	result, err := creator.Execute(context.Background(), Input{Paths: []string{"denied", "ok"}})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Dirs)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, model.ErrorPermission, result.Errors[0].Kind)
	assert.Equal(t, "denied", result.Errors[0].Path)
	assert.Equal(t, []string{"ok"}, fsys.Paths())
	assert.Len(t, log.Entries(ports.LevelWarn), 1, "expected one warning")
}

func TestCreator_IdempotentOnDisk(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "existing")
	require.NoError(t, os.Mkdir(target, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep.txt"), []byte("keep"), 0644))

	before, err := os.Stat(target)
	require.NoError(t, err)

	creator := New(osfilesystem.New(), logger.NewNoop())
	result, err := creator.Execute(context.Background(), Input{Paths: []string{target}})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Dirs)
	assert.True(t, result.OK())

	after, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, before.Mode(), after.Mode())
	assert.Equal(t, before.ModTime(), after.ModTime())

	data, err := os.ReadFile(filepath.Join(target, "keep.txt"))
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))
}
