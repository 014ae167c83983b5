package question

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks malformed or missing caller input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound marks an unknown question or category id.
	ErrNotFound = errors.New("not found")
	// ErrUnprocessable marks a well-formed request the store cannot accept.
	ErrUnprocessable = errors.New("unprocessable")
	// ErrStore marks a failed read or write against the record store.
	ErrStore = errors.New("record store failure")
)

// ValidationError names the offending field. Kind is ErrInvalidInput or
// ErrUnprocessable and is what errors.Is matches against.
type ValidationError struct {
	Field  string
	Reason string
	Kind   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	if e.Kind == nil {
		return ErrInvalidInput
	}
	return e.Kind
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason, Kind: ErrInvalidInput}
}

func unprocessable(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason, Kind: ErrUnprocessable}
}

// storeErr classifies err as a store failure unless the store already
// classified it.
func storeErr(op string, err error) error {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrUnprocessable) || errors.Is(err, ErrInvalidInput) {
		return err
	}
	return fmt.Errorf("%s: %w", op, errors.Join(ErrStore, err))
}
