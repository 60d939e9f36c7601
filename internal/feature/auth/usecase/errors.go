package usecase

import "errors"

// Sentinel errors for authentication operations.
// Adapters map driver-level failures to these values so that upper layers
// can branch on them with errors.Is.
var (
	// ErrEmailAlreadyExists indicates that a user with the given email is already registered.
	ErrEmailAlreadyExists = errors.New("user with this email already exists")

	// ErrUsernameAlreadyExists indicates that a user with the given username is already registered.
	ErrUsernameAlreadyExists = errors.New("user with this username already exists")

	// ErrUserNotFound indicates that no user matched the given criteria.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials indicates a failed login attempt.
	// It deliberately covers both "unknown email" and "wrong password" so that
	// responses cannot be used to enumerate registered users.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
