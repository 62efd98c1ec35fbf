package core

import (
	"errors"
	"fmt"
)

// Failure kinds returned by a Store. Match them with errors.Is.
var (
	ErrInitFailed  = errors.New("storage init failed")
	ErrClockError  = errors.New("system clock unavailable")
	ErrWriteFailed = errors.New("storage write failed")
	ErrQueryFailed = errors.New("storage query failed")
)

// ErrReadOnly is wrapped inside a WriteFailed error when the store was opened read-only.
var ErrReadOnly = errors.New("store is in read-only mode")

// StorageError is the typed failure every Store operation returns.
// Kind is one of the Err* sentinels above; Err is the underlying cause.
type StorageError struct {
	Kind error
	Op   string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *StorageError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewStorageError builds a StorageError. A nil cause is allowed.
func NewStorageError(kind error, op string, err error) *StorageError {
	return &StorageError{Kind: kind, Op: op, Err: err}
}

// Wrap returns err unchanged if it already is a StorageError, otherwise wraps it with kind.
func Wrap(kind error, op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return NewStorageError(kind, op, err)
}
