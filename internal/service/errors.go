package service

import "errors"

// Auth failures. Login deliberately returns the same error for an unknown
// username and a wrong password.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidOldPassword = errors.New("invalid old password")
	ErrInvalidToken       = errors.New("token is missing or invalid")
)

// ValidationError reports a missing, empty or malformed field. The message
// is safe to surface to the client.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func newValidationError(msg string) *ValidationError {
	return &ValidationError{Msg: msg}
}

// ConflictError reports a uniqueness violation.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

func newConflictError(msg string) *ConflictError {
	return &ConflictError{Msg: msg}
}

// NotFoundError reports a referenced document that does not exist.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

func newNotFoundError(msg string) *NotFoundError {
	return &NotFoundError{Msg: msg}
}
