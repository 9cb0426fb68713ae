// Package prompt provides a terminal implementation of ports.Confirmer.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ideamans/go-l10n"
	"github.com/mattn/go-isatty"

	"github.com/ayoub-aberbach/foldora/pkg/ports"
)

// Terminal asks questions on an output stream and reads the answer from
// an input stream. Without an interactive input every answer is no.
type Terminal struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// New creates a Terminal reading from in. Interactivity is detected with
// isatty, so piped or redirected input always declines.
func New(in *os.File, out io.Writer) *Terminal {
	fd := in.Fd()
	return NewReader(in, out, isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
}

// NewReader creates a Terminal over an arbitrary reader.
func NewReader(in io.Reader, out io.Writer, interactive bool) *Terminal {
	return &Terminal{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
}

// Confirm prints the question followed by a [y/N] hint and reads one line.
// Only "y" and "yes" (any case) confirm.
func (t *Terminal) Confirm(ctx context.Context, question string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if !t.interactive {
		return false, nil
	}

	fmt.Fprintf(t.out, "%s [y/N]: ", l10n.T(question))

	line, err := t.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	if errors.Is(err, io.EOF) && line == "" {
		fmt.Fprintln(t.out)
		return false, nil
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

var _ ports.Confirmer = (*Terminal)(nil)
