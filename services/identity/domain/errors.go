package domain

import "errors"

// Sentinel errors for the identity domain. Use errors.Is() to check these.
var (
	// ErrAccountNotFound indicates no account matches the requested key.
	ErrAccountNotFound = errors.New("account not found")

	// ErrUsernameTaken indicates the username is already registered.
	ErrUsernameTaken = errors.New("username is already taken")

	// ErrInvalidCredentials indicates a failed username/password check.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrAdminLimitReached indicates the cap on admin registrations is hit.
	ErrAdminLimitReached = errors.New("admin registration limit reached")

	// ErrInvalidRole indicates an unrecognized account role.
	ErrInvalidRole = errors.New("invalid role")
)
