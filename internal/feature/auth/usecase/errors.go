// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by username,
	// email, or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when registering with a username that
	// already exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrEmailTaken is returned when registering with an email address that
	// is already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrPasswordMismatch is returned when the password and its confirmation
	// do not match.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrPasswordTooLong is returned when the password exceeds bcrypt's
	// 72-byte input limit. Rejected up front, never silently truncated.
	ErrPasswordTooLong = errors.New("password must be 72 bytes or fewer")

	// ErrInvalidCredentials is returned for any failed login. Unknown
	// identifiers and wrong passwords are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("incorrect username, email, or password")
)
