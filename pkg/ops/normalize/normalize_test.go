package normalize

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoub-aberbach/foldora/pkg/adapters/logger"
	"github.com/ayoub-aberbach/foldora/pkg/adapters/osfilesystem"
	"github.com/ayoub-aberbach/foldora/pkg/mocks"
	"github.com/ayoub-aberbach/foldora/pkg/model"
)

func TestName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain.txt", "plain.txt"},
		{"a b", "a_b"},
		{"  lead and trail  ", "__lead_and_trail__"},
		{"tab\tstays", "tab\tstays"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Name(tt.in))
		})
	}
}

func scenario() *mocks.FileSystem {
	return mocks.NewFileSystem().AddFile("root/a b/c d.txt", nil)
}

func TestNormalizer_Recursive(t *testing.T) {
	fsys := scenario()
	n := New(fsys, logger.NewNoop())

	result, err := n.Execute(context.Background(), Input{Root: "root", Mode: Recursive})
	require.NoError(t, err)

	assert.Equal(t, []string{"root", "root/a_b", "root/a_b/c_d.txt"}, fsys.Paths())
	assert.Equal(t, 1, result.Dirs)
	assert.Equal(t, 1, result.Files)
	assert.Equal(t, []string{"root/a_b", "root/a_b/c_d.txt"}, result.Touched)
}

func TestNormalizer_TopLevel(t *testing.T) {
	fsys := scenario()
	n := New(fsys, logger.NewNoop())

	result, err := n.Execute(context.Background(), Input{Root: "root", Mode: TopLevel})
	require.NoError(t, err)

	assert.Equal(t, []string{"root", "root/a_b", "root/a_b/c d.txt"}, fsys.Paths())
	assert.Equal(t, 1, result.Dirs)
	assert.Equal(t, 0, result.Files)
}

func TestNormalizer_Fixpoint(t *testing.T) {
	fsys := mocks.NewFileSystem().
		AddFile("x y/p q/r s/t u.txt", nil).
		AddFile("x y/v w.md", nil).
		AddDir("x y/empty dir").
		AddFile("clean/name.txt", nil)
	n := New(fsys, logger.NewNoop())

	_, err := n.Execute(context.Background(), Input{Mode: Recursive})
	require.NoError(t, err)
	once := fsys.Paths()
	for _, p := range once {
		assert.NotContains(t, p, " ")
	}

	second, err := n.Execute(context.Background(), Input{Mode: Recursive})
	require.NoError(t, err)
	assert.Equal(t, once, fsys.Paths())
	assert.Empty(t, second.Touched)
	assert.True(t, second.OK())
}

func TestNormalizer_CollisionIsSkipped(t *testing.T) {
	fsys := mocks.NewFileSystem().
		AddFile("dir/a b.txt", []byte("spaced")).
		AddFile("dir/a_b.txt", []byte("existing")).
		AddFile("dir/c d/e f", nil).
		AddDir("dir/c_d")
	n := New(fsys, logger.NewNoop())

	result, err := n.Execute(context.Background(), Input{Root: "dir", Mode: Recursive})
	require.NoError(t, err)

	require.Len(t, result.Errors, 2)
	for _, e := range result.Errors {
		assert.Equal(t, model.ErrorCollision, e.Kind)
		assert.True(t, errors.Is(e, model.ErrCollision))
	}

	data, _ := fsys.GetFile("dir/a_b.txt")
	assert.Equal(t, "existing", string(data))
	data, _ = fsys.GetFile("dir/a b.txt")
	assert.Equal(t, "spaced", string(data))

	// "c d" kept its name but its children were still normalized.
	_, ok := fsys.GetFile("dir/c d/e_f")
	assert.True(t, ok)
}

func TestNormalizer_DoesNotDescendSymlinks(t *testing.T) {
	fsys := mocks.NewFileSystem().
		AddFile("elsewhere/keep me.txt", nil).
		AddSymlink("root/link dir", "elsewhere")
	n := New(fsys, logger.NewNoop())

	_, err := n.Execute(context.Background(), Input{Root: "root", Mode: Recursive})
	require.NoError(t, err)

	assert.Contains(t, fsys.Paths(), "root/link_dir")
	assert.Contains(t, fsys.Paths(), "elsewhere/keep me.txt")
}

func TestNormalizer_FileRoot(t *testing.T) {
	fsys := mocks.NewFileSystem().AddFile("docs/my file.txt", nil)
	n := New(fsys, logger.NewNoop())

	result, err := n.Execute(context.Background(), Input{Root: "docs/my file.txt"})
	require.NoError(t, err)

	assert.Equal(t, []string{"docs/my_file.txt"}, result.Touched)
	assert.Equal(t, 1, result.Files)
}

func TestNormalizer_MissingRoot(t *testing.T) {
	n := New(mocks.NewFileSystem(), logger.NewNoop())

	_, err := n.Execute(context.Background(), Input{Root: "nope"})
	assert.Error(t, err)
}

func TestNormalizer_OnDisk(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "a b"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "a b", "c d.txt"), []byte("x"), 0644))

	n := New(osfilesystem.New(), logger.NewNoop())
	result, err := n.Execute(context.Background(), Input{Root: tmpDir, Mode: Recursive})
	require.NoError(t, err)
	assert.True(t, result.OK())

	_, err = os.Stat(filepath.Join(tmpDir, "a_b", "c_d.txt"))
	require.NoError(t, err)

	var found []string
	filepath.Walk(tmpDir, func(path string, info os.FileInfo, err error) error {
		rel, _ := filepath.Rel(tmpDir, path)
		found = append(found, rel)
		return nil
	})
	for _, p := range found {
		assert.False(t, strings.Contains(p, " "), p)
	}
}

func TestNormalizer_TrailingSlashOnLinkRoot(t *testing.T) {
	tmpDir := t.TempDir()
	outside := filepath.Join(tmpDir, "outside")
	require.NoError(t, os.Mkdir(outside, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(outside, "keep me.txt"), nil, 0644))

	link := filepath.Join(tmpDir, "my link")
	if err := os.Symlink(outside, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	n := New(osfilesystem.New(), logger.NewNoop())
	result, err := n.Execute(context.Background(), Input{
		Root: link + string(filepath.Separator),
		Mode: Recursive,
	})
	require.NoError(t, err)
	assert.True(t, result.OK(), "errors: %v", result.Err())
	assert.Equal(t, []string{filepath.Join(tmpDir, "my_link")}, result.Touched)

	info, err := os.Lstat(filepath.Join(tmpDir, "my_link"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	_, err = os.Stat(filepath.Join(outside, "keep me.txt"))
	assert.NoError(t, err, "target contents must not be renamed")
}
