package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for outcome classification.
var (
	// ErrAccessDenied matches every AccessDeniedError via errors.Is.
	ErrAccessDenied = errors.New("access denied")

	// ErrCredentialMissing matches every MissingCredentialError via errors.Is.
	ErrCredentialMissing = errors.New("credential missing")
)

// SetupErrorMessage is the fixed message carried by the CallError raised when
// a decorator is used without a validator. It is deliberately developer-facing
// so broken wiring does not read like a failed login.
const SetupErrorMessage = "You need a validator function to use authentication"

// CallError is a protocol-level error carrying an HTTP-style status code.
// Validators may return one to short-circuit classification: a CallError is
// re-raised unchanged instead of being normalized to an AccessDeniedError.
type CallError struct {
	// Code is an HTTP-style status code.
	Code int

	// Message is the response message.
	Message string
}

// NewCallError creates a CallError with the given status code and message.
func NewCallError(code int, message string) *CallError {
	return &CallError{Code: code, Message: message}
}

// NewSetupError creates the CallError raised when no validator is configured.
func NewSetupError() *CallError {
	return NewCallError(403, SetupErrorMessage)
}

// Error returns a string representation of the error.
func (e *CallError) Error() string {
	return fmt.Sprintf("call error %d: %s", e.Code, e.Message)
}

// AccessDeniedError is the classified authentication failure: credentials
// were missing, malformed, or rejected by the validator. It carries the realm
// of the decorator that raised it so error handlers can emit a matching
// challenge.
type AccessDeniedError struct {
	// Realm identifies the authentication scheme, e.g. "basic" or "Bearer".
	Realm string

	// Message explains why access was denied.
	Message string

	cause error
}

// Error returns a string representation of the error.
func (e *AccessDeniedError) Error() string {
	if e.Realm == "" {
		return fmt.Sprintf("access denied: %s", e.Message)
	}
	return fmt.Sprintf("access denied (realm %q): %s", e.Realm, e.Message)
}

// Is allows the error to support equality to ErrAccessDenied.
func (e *AccessDeniedError) Is(target error) bool {
	return target == ErrAccessDenied
}

// Unwrap exposes the underlying validator or extraction error, if any.
func (e *AccessDeniedError) Unwrap() error {
	return e.cause
}

// MissingCredentialError reports a required credential field that was empty
// or absent. Extraction raises it strictly before the validator is invoked;
// the orchestrator converts it into an AccessDeniedError.
type MissingCredentialError struct {
	// Field names the missing credential, e.g. "username" or "access_token".
	Field string
}

// Error returns a string representation of the error.
func (e *MissingCredentialError) Error() string {
	return e.Field + " is required"
}

// Is allows the error to support equality to ErrCredentialMissing.
func (e *MissingCredentialError) Is(target error) bool {
	return target == ErrCredentialMissing
}
