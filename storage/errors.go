package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a mutation targets an identity that does
	// not exist.
	ErrNotFound = errors.New("not found")
	// ErrBackend matches every *BackendError.
	ErrBackend = errors.New("storage backend failure")
)

// BackendError reports that the storage medium rejected an operation.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

func (e *BackendError) Is(target error) bool { return target == ErrBackend }

func backendFailure(op string, err error) error {
	return &BackendError{Op: op, Err: err}
}

func notFound(entity string, id int) error {
	return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
}
