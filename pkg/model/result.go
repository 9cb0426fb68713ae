package model

import "errors"

// TraversalResult is the aggregate outcome of a batch operation.
type TraversalResult struct {
	// Dirs and Files count the directories and files affected.
	Dirs  int
	Files int
	// Bytes is the total size of the regular files affected, when known.
	Bytes int64
	// Touched lists the paths acted on, in order.
	Touched []string
	// Errors holds the per-entry failures. None of them aborted the batch.
	Errors []EntryError
}

// Record appends a successfully processed path.
func (r *TraversalResult) Record(path string) {
	r.Touched = append(r.Touched, path)
}

// Fail records a per-entry failure.
func (r *TraversalResult) Fail(op, path string, err error) EntryError {
	e := NewEntryError(op, path, err)
	r.Errors = append(r.Errors, e)
	return e
}

// OK reports whether no per-entry failure was recorded.
func (r TraversalResult) OK() bool {
	return len(r.Errors) == 0
}

// Err joins the recorded failures, or returns nil.
func (r TraversalResult) Err() error {
	if r.OK() {
		return nil
	}
	errs := make([]error, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}
