// Package summarizer produces reports of completed housekeeping operations.
package summarizer

import (
	"time"

	"github.com/ayoub-aberbach/foldora/pkg/model"
)

// Summary describes one command run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time
	Command     string

	// Arguments as given on the command line
	Targets []string

	// Settings such as the normalization mode
	Settings map[string]string

	// Outcome
	Result model.TraversalResult
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
		Settings:    make(map[string]string),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithCommand sets the command name and its targets.
func (b *Builder) WithCommand(name string, targets ...string) *Builder {
	b.summary.Command = name
	b.summary.Targets = targets
	return b
}

// WithSetting records a setting shown in the report.
func (b *Builder) WithSetting(key, value string) *Builder {
	b.summary.Settings[key] = value
	return b
}

// WithResult sets the outcome.
func (b *Builder) WithResult(result model.TraversalResult) *Builder {
	b.summary.Result = result
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
