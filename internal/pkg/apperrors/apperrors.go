package apperrors

import (
	cr "github.com/cockroachdb/errors"
)

// Sentinel errors separating caller mistakes from storage failures.
// Callers classify with errors.Is via the helpers below.
var (
	// ErrValidation marks rejected input: empty package selection,
	// discount percent out of range, unresolvable image.
	ErrValidation = cr.New("validation failed")

	// ErrNotFound marks a missing promotion or package id.
	ErrNotFound = cr.New("record not found")

	// ErrStorage marks a failed transaction or constraint violation.
	// The enclosing transaction has been rolled back as a whole.
	ErrStorage = cr.New("storage failure")
)

// Validation wraps msg as a validation error.
func Validation(msg string) error {
	return cr.Mark(cr.New(msg), ErrValidation)
}

// Validationf formats a validation error.
func Validationf(format string, args ...interface{}) error {
	return cr.Mark(cr.Newf(format, args...), ErrValidation)
}

// NotFound wraps msg as a not-found error.
func NotFound(msg string) error {
	return cr.Mark(cr.New(msg), ErrNotFound)
}

// NotFoundf formats a not-found error.
func NotFoundf(format string, args ...interface{}) error {
	return cr.Mark(cr.Newf(format, args...), ErrNotFound)
}

// Storage marks err as a storage failure, keeping the cause chain.
func Storage(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Mark(cr.Wrap(err, msg), ErrStorage)
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	return cr.Is(err, ErrValidation)
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return cr.Is(err, ErrNotFound)
}

// IsStorage reports whether err is a storage failure.
func IsStorage(err error) bool {
	return cr.Is(err, ErrStorage)
}
