// Package common defines shared sentinel errors and small helpers used across
// the credential, storage and CLI layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound    = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("invalid credentials")
	ErrPersistence    = errors.New("persistence error")

	// Input errors.
	ErrInvalidInput = errors.New("invalid input")

	// Password policy errors.
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrWeakPassword     = errors.New("password too weak")
	ErrPasswordTooLong  = errors.New("password too long")
	ErrPasswordReuse    = errors.New("new password must be different from the current password")
	ErrPasswordMismatch = errors.New("new password and confirmation do not match")
)
