package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers both a missing trash record and one owned by another
	// user, so callers cannot probe for records they do not own.
	ErrNotFound  = errors.New("trash record not found")
	ErrForbidden = errors.New("forbidden")

	ErrUnsupportedItemType     = errors.New("unsupported item type")
	ErrUnderlyingEntityMissing = errors.New("underlying entity missing")

	ErrInvalidPeriod   = errors.New("invalid auto delete period")
	ErrInvalidItemType = errors.New("invalid item type")

	ErrPersistence = errors.New("persistence failure")
)

type persistenceError struct {
	op  string
	err error
}

func (e *persistenceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrPersistence, e.op, e.err)
}

func (e *persistenceError) Unwrap() []error {
	return []error{ErrPersistence, e.err}
}

// PersistenceFailure wraps a storage error so it matches both ErrPersistence
// and the original cause under errors.Is.
func PersistenceFailure(op string, err error) error {
	if err == nil {
		return nil
	}
	var pe *persistenceError
	if errors.As(err, &pe) {
		return err
	}
	return &persistenceError{op: op, err: err}
}

// IsPersistence reports whether err came from the storage layer.
func IsPersistence(err error) bool {
	return errors.Is(err, ErrPersistence)
}
