// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It carries the local credential and, when a password reset is in
// flight, the outstanding reset token pair.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Name is the user's display name.
	Name string `gorm:"size:255;not null"`

	// Avatar is an optional reference to the user's avatar image.
	Avatar string `gorm:"size:512"`

	// Password is the bcrypt hash of the user's password.
	// It is nil for identities created through an external identity
	// provider; such users cannot sign in with a local password.
	Password *string `gorm:"size:255"`

	// ResetToken is the outstanding password-reset token, if any.
	// At most one token is active per user; issuing a new one
	// overwrites the previous value.
	ResetToken *string `gorm:"index;size:64"`

	// ResetTokenExpiry is the absolute expiry of ResetToken.
	// A token is valid only while this is strictly in the future.
	ResetTokenExpiry *time.Time

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// HasLocalPassword returns true if the user owns a local credential.
func (u *User) HasLocalPassword() bool {
	return u.Password != nil && *u.Password != ""
}

// HasValidResetToken returns true if a reset token is present and its
// expiry is strictly in the future.
func (u *User) HasValidResetToken(now time.Time) bool {
	return u.ResetToken != nil && u.ResetTokenExpiry != nil && u.ResetTokenExpiry.After(now)
}
