package foldora

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/ideamans/go-l10n"

	"github.com/ayoub-aberbach/foldora/pkg/model"
)

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
)

const (
	headerFill = "........................."
	separator  = "========================="
)

// palette colors output when enabled.
type palette bool

func (p palette) paint(color, s string) string {
	if !p {
		return s
	}
	return color + s + colorReset
}

func (p palette) green(s string) string { return p.paint(colorGreen, s) }
func (p palette) cyan(s string) string  { return p.paint(colorCyan, s) }
func (p palette) red(s string) string   { return p.paint(colorRed, s) }

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

// entryLine renders one listed entry. Directories are bracketed.
func (a *App) entryLine(e model.DirectoryEntry, long bool) string {
	var line string
	switch e.Kind {
	case model.KindDir:
		line = a.palette.green(fmt.Sprintf("   DIR - [%s]", e.Name))
	case model.KindFile:
		line = a.palette.cyan(fmt.Sprintf("   FILE - %s", e.Name))
	case model.KindSymlink:
		line = fmt.Sprintf("   LINK - %s", e.Name)
	default:
		line = fmt.Sprintf("   OTHER - %s", e.Name)
	}
	if !long {
		return line
	}

	size := "-"
	if e.Kind == model.KindFile {
		size = humanize.Bytes(uint64(e.Size))
	}
	modified := "-"
	if !e.ModTime.IsZero() {
		modified = humanize.Time(e.ModTime)
	}
	return fmt.Sprintf("%s  %s  %s", line, size, modified)
}

// failures prints how many entries of a batch failed, then one line per
// failure. They stay visible on stdout when logging is quiet.
func (a *App) failures(r model.TraversalResult) {
	err := r.Err()
	if err == nil {
		return
	}
	a.println(a.palette.red(l10n.F("-> (%d) error(s) occurred.", len(r.Errors))))
	for _, line := range strings.Split(err.Error(), "\n") {
		a.println(a.palette.red("   ! " + line))
	}
}

func contentHeader(name string) string {
	return "-> " + name + headerFill
}
