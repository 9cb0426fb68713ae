package ports

import "context"

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	// Confirm blocks until the user answers. Implementations must answer
	// false when no interactive input is available.
	Confirm(ctx context.Context, question string) (bool, error)
}

// ConfirmFunc is a function adapter for the Confirmer interface.
type ConfirmFunc func(ctx context.Context, question string) (bool, error)

// Confirm implements the Confirmer interface.
func (f ConfirmFunc) Confirm(ctx context.Context, question string) (bool, error) {
	return f(ctx, question)
}
