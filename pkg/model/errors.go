package model

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors for each error kind. EntryError unwraps to the one
// matching its kind, so errors.Is(err, ErrCollision) works on recorded
// entry errors.
var (
	ErrValidation = errors.New("validation failed")
	ErrPermission = errors.New("permission denied")
	ErrRace       = errors.New("entry vanished")
	ErrCollision  = errors.New("name collision")
	ErrNoInput    = errors.New("no input given")
)

// ErrorKind classifies a failure.
type ErrorKind int

const (
	ErrorOther ErrorKind = iota
	ErrorValidation
	ErrorPermission
	ErrorRace
	ErrorCollision
	ErrorNoInput
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrorValidation:
		return "validation"
	case ErrorPermission:
		return "permission"
	case ErrorRace:
		return "race"
	case ErrorCollision:
		return "collision"
	case ErrorNoInput:
		return "no-input"
	default:
		return "other"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case ErrorValidation:
		return ErrValidation
	case ErrorPermission:
		return ErrPermission
	case ErrorRace:
		return ErrRace
	case ErrorCollision:
		return ErrCollision
	case ErrorNoInput:
		return ErrNoInput
	default:
		return nil
	}
}

// Classify maps an error to its kind. Sentinels take precedence over
// the underlying OS error.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorOther
	case errors.Is(err, ErrValidation):
		return ErrorValidation
	case errors.Is(err, ErrNoInput):
		return ErrorNoInput
	case errors.Is(err, ErrCollision), errors.Is(err, fs.ErrExist):
		return ErrorCollision
	case errors.Is(err, ErrPermission), errors.Is(err, fs.ErrPermission):
		return ErrorPermission
	case errors.Is(err, ErrRace), errors.Is(err, fs.ErrNotExist):
		return ErrorRace
	default:
		return ErrorOther
	}
}

// EntryError records a failure on a single entry of a batch.
type EntryError struct {
	Op   string
	Path string
	Kind ErrorKind
	Err  error
}

// NewEntryError classifies err and wraps it with the operation and path.
func NewEntryError(op, path string, err error) EntryError {
	return EntryError{Op: op, Path: path, Kind: Classify(err), Err: err}
}

func (e EntryError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes both the kind sentinel and the cause.
func (e EntryError) Unwrap() []error {
	if s := e.Kind.sentinel(); s != nil {
		return []error{s, e.Err}
	}
	return []error{e.Err}
}
