package view

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoub-aberbach/foldora/pkg/adapters/logger"
	"github.com/ayoub-aberbach/foldora/pkg/model"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestViewer_TrimsTrailingWhitespace(t *testing.T) {
	viewer := New(logger.NewNoop())

	result, err := viewer.Execute(context.Background(), Input{Files: []File{
		{Name: "a.txt", Reader: strings.NewReader("  hello\nworld \n\n\t")},
	}})
	require.NoError(t, err)

	require.Len(t, result.Sections, 1)
	assert.Equal(t, "a.txt", result.Sections[0].Name)
	assert.Equal(t, "  hello\nworld", result.Sections[0].Text)
	assert.NoError(t, result.Sections[0].Err)
}

func TestViewer_NoFiles(t *testing.T) {
	viewer := New(logger.NewNoop())

	result, err := viewer.Execute(context.Background(), Input{})
	assert.True(t, errors.Is(err, model.ErrNoInput))
	assert.Empty(t, result.Sections)
}

func TestViewer_FailuresDoNotStopLaterFiles(t *testing.T) {
	tests := []struct {
		name    string
		reader  io.Reader
		wantErr error
	}{
		{"invalid utf-8", strings.NewReader("\xff\xfe\x00binary"), ErrDecode},
		{"read error", failingReader{}, io.ErrUnexpectedEOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viewer := New(logger.NewNoop())

			result, err := viewer.Execute(context.Background(), Input{Files: []File{
				{Name: "bad", Reader: tt.reader},
				{Name: "good", Reader: strings.NewReader("fine\n")},
			}})
			require.NoError(t, err)

			require.Len(t, result.Sections, 2)
			assert.ErrorIs(t, result.Sections[0].Err, tt.wantErr)
			assert.Empty(t, result.Sections[0].Text)
			assert.NoError(t, result.Sections[1].Err)
			assert.Equal(t, "fine", result.Sections[1].Text)
		})
	}
}

func TestViewer_EmptyFile(t *testing.T) {
	viewer := New(logger.NewNoop())

	result, err := viewer.Execute(context.Background(), Input{Files: []File{
		{Name: "empty", Reader: strings.NewReader("")},
	}})
	require.NoError(t, err)
	assert.Equal(t, "", result.Sections[0].Text)
	assert.NoError(t, result.Sections[0].Err)
}
