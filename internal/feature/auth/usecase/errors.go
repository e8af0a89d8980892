// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"errors"

	"github.com/Fibidy-Developer/fibidy-blog-app/internal/feature/auth/domain"
)

var (
	// ErrValidation is returned for malformed input such as an empty reset
	// token or a too-short password. It is surfaced to the caller with a
	// field-level message and is never treated as a server fault.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials is returned when sign-in fails.
	// The message is deliberately generic to prevent account enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	// It is the store's sentinel re-exported so transport-side consumers do
	// not import the persistence error register directly.
	ErrUserNotFound = domain.ErrUserNotFound

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrTokenInvalidOrExpired is returned when a reset token is unknown,
	// already consumed, or past its expiry. It is distinct from
	// ErrInvalidCredentials: the precondition was not met.
	ErrTokenInvalidOrExpired = errors.New("invalid or expired reset token")
)
