package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoub-aberbach/foldora/pkg/mocks"
	"github.com/ayoub-aberbach/foldora/pkg/model"
)

func TestValidate(t *testing.T) {
	fsys := mocks.NewFileSystem().
		AddDir("dir").
		AddFile("file.txt", []byte("x")).
		AddSymlink("dirlink", "dir").
		AddSymlink("dangling", "missing")

	tests := []struct {
		name    string
		req     Require
		path    string
		wantErr string
	}{
		{"any accepts dir", AnyKind, "dir", ""},
		{"any accepts dangling link", AnyKind, "dangling", ""},
		{"any rejects missing", AnyKind, "missing", "missing does not exist"},
		{"dir accepts link to dir", DirOnly, "dirlink", ""},
		{"dir rejects file", DirOnly, "file.txt", "file.txt is not a directory"},
		{"dir rejects dangling link", DirOnly, "dangling", "dangling does not exist"},
		{"file accepts file", FileOnly, "file.txt", ""},
		{"file rejects dir", FileOnly, "dir", "dir is not a file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := Validate(fsys, tt.req, tt.path)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Len(t, entries, 1)
				return
			}
			assert.ErrorIs(t, err, model.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_StopsAtFirstFailure(t *testing.T) {
	fsys := mocks.NewFileSystem().AddFile("a", nil)

	entries, err := Validate(fsys, AnyKind, "a", "b", "c")

	assert.Nil(t, entries)
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Contains(t, err.Error(), "b does not exist")
}

func TestValidate_NoPaths(t *testing.T) {
	entries, err := Validate(mocks.NewFileSystem(), DirOnly)

	require.NoError(t, err)
	assert.Empty(t, entries)
}
