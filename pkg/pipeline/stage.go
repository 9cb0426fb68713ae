// Package pipeline provides the contract shared by foldora's operations.
package pipeline

import (
	"context"
)

// Stage is a single housekeeping operation: it takes an input describing
// the paths to act on and produces a result describing what it did.
type Stage[In, Out any] interface {
	// Execute runs the operation with the given input and returns the output.
	Execute(ctx context.Context, input In) (Out, error)
}

// StageFunc is a function adapter for Stage interface.
type StageFunc[In, Out any] func(ctx context.Context, input In) (Out, error)

// Execute implements Stage interface.
func (f StageFunc[In, Out]) Execute(ctx context.Context, input In) (Out, error) {
	return f(ctx, input)
}
