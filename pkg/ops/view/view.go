// Package view reads the text content of already opened files.
package view

import (
	"context"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/ayoub-aberbach/foldora/pkg/model"
	"github.com/ayoub-aberbach/foldora/pkg/pipeline"
	"github.com/ayoub-aberbach/foldora/pkg/ports"
)

// ErrDecode is returned for content that is not valid UTF-8 text.
var ErrDecode = errors.New("content is not valid UTF-8 text")

// File is a named handle opened for reading. The caller owns the handle
// and closes it.
type File struct {
	Name   string
	Reader io.Reader
}

// Input lists the files to display, in display order.
type Input struct {
	Files []File
}

// Section is the rendered content of one file.
type Section struct {
	Name string
	// Text holds the content with trailing whitespace trimmed.
	Text string
	// Err is set when the file could not be read or decoded. Later
	// sections are still produced.
	Err error
}

// Result holds one Section per file.
type Result struct {
	Sections []Section
}

// Viewer reads files sequentially.
type Viewer struct {
	log ports.Logger
}

// New creates a new Viewer.
func New(log ports.Logger) *Viewer {
	return &Viewer{log: log.WithComponent("content")}
}

// Execute reads every file. A read or decode failure only affects the
// file's own section.
func (v *Viewer) Execute(ctx context.Context, input Input) (Result, error) {
	var result Result
	if len(input.Files) == 0 {
		return result, errors.Wrap(model.ErrNoInput, "content")
	}

	for _, f := range input.Files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		v.log.Debug("Reading %s", f.Name)
		section := Section{Name: f.Name}

		data, err := io.ReadAll(f.Reader)
		switch {
		case err != nil:
			section.Err = errors.Wrapf(err, "read %s", f.Name)
		case !utf8.Valid(data):
			section.Err = errors.Wrapf(ErrDecode, "%s", f.Name)
		default:
			section.Text = strings.TrimRightFunc(string(data), unicode.IsSpace)
		}
		if section.Err != nil {
			v.log.Warn("Failed to %s %s: %s", "read", f.Name, section.Err)
		}

		result.Sections = append(result.Sections, section)
	}
	return result, nil
}

var _ pipeline.Stage[Input, Result] = (*Viewer)(nil)
