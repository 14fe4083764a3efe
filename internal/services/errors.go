// Package services contains the account business logic: registration,
// login, listing and administrative status changes.
//
// Sentinel errors below represent the outcomes handlers translate into
// HTTP statuses. They should be wrapped with fmt.Errorf("...: %w", err)
// when context is added, and checked with errors.Is.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so a login failure never reveals whether the email is
	// registered.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountBlocked indicates a blocked account presented correct
	// credentials.
	ErrAccountBlocked = errors.New("account blocked")

	// ErrEmailTaken indicates a registration attempt with an email that
	// is already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrNotFound indicates the referenced account does not exist.
	ErrNotFound = errors.New("user not found")
)

// ValidationError reports malformed, client-correctable input with the
// offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
