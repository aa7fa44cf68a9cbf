package services

import (
	"errors"
	"fmt"

	"github.com/jinu2024/TrainBookingSystem/database"
)

var (
	// ErrValidation marks a rejected request: bad format, out of range or duplicate value
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a reference to something that does not exist
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a request that would violate a state transition
	ErrConflict = errors.New("conflict")
	// ErrUnauthorized covers bad credentials, inactive accounts and invalid sessions
	ErrUnauthorized = errors.New("unauthorized")
)

// referenceError is a lookup failure. It matches both ErrNotFound and
// ErrValidation because an unknown id is a rejected request too.
type referenceError struct {
	msg string
}

func (e *referenceError) Error() string { return e.msg }

func (e *referenceError) Is(target error) bool {
	return target == ErrNotFound || target == ErrValidation
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func conflict(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

func missing(format string, args ...any) error {
	return &referenceError{msg: fmt.Sprintf(format, args...) + " not found"}
}

var errInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrUnauthorized)

// lookup translates a store miss into a reference error and passes
// anything else through untouched.
func lookup(err error, format string, args ...any) error {
	if errors.Is(err, database.ErrNotFound) {
		return missing(format, args...)
	}
	return err
}
