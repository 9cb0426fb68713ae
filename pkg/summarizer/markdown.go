package summarizer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
)

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the function used to translate headings and labels.
func WithTranslator(translate func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = translate
	}
}

// WithVersion adds a "Generated by foldora <version>" footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements the Formatter interface.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s: %s\n\n", t("Operation Summary"), s.Command)
	fmt.Fprintf(&b, "%s: %s\n\n", t("Generated"), s.GeneratedAt.Format("2006-01-02 15:04:05"))

	// Targets
	fmt.Fprintf(&b, "## %s\n\n", t("Targets"))
	if len(s.Targets) == 0 {
		fmt.Fprintf(&b, "- `.`\n")
	}
	for _, target := range s.Targets {
		fmt.Fprintf(&b, "- `%s`\n", target)
	}
	b.WriteString("\n")

	// Settings
	if len(s.Settings) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", t("Settings"))
		fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
		keys := make([]string, 0, len(s.Settings))
		for k := range s.Settings {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "| %s | %s |\n", t(k), s.Settings[k])
		}
		b.WriteString("\n")
	}

	// Results
	r := s.Result
	fmt.Fprintf(&b, "## %s\n\n", t("Results"))
	fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	fmt.Fprintf(&b, "| %s | %d |\n", t("Directories"), r.Dirs)
	fmt.Fprintf(&b, "| %s | %d |\n", t("Files"), r.Files)
	if r.Bytes > 0 {
		fmt.Fprintf(&b, "| %s | %s |\n", t("Size"), formatBytes(r.Bytes))
	}
	fmt.Fprintf(&b, "| %s | %d |\n", t("Entries"), len(r.Touched))
	fmt.Fprintf(&b, "| %s | %d |\n\n", t("Errors"), len(r.Errors))

	if len(r.Touched) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", t("Entries"))
		for _, p := range r.Touched {
			fmt.Fprintf(&b, "1. `%s`\n", p)
		}
		b.WriteString("\n")
	}

	if len(r.Errors) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", t("Errors"))
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n|---|---|---|---|\n", t("Path"), t("Operation"), t("Kind"), t("Cause"))
		for _, e := range r.Errors {
			fmt.Fprintf(&b, "| `%s` | %s | %s | %s |\n", e.Path, e.Op, t(e.Kind.String()), escapePipes(e.Err.Error()))
		}
		b.WriteString("\n")
	}

	if f.version != "" {
		fmt.Fprintf(&b, "---\n\n%s foldora %s\n", t("Generated by"), f.version)
	}

	return b.String()
}

// formatBytes renders a byte count with IEC units (KiB, MiB, ...).
func formatBytes(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
