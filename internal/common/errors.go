// Package common defines shared sentinel errors used across repository,
// session, and service layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Registration uniqueness errors. Email is always checked before
	// username, so a request violating both reports the email conflict.
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")

	// Auth errors. Covers both an unknown identifier and a wrong
	// password; callers are not told which.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Service-level validation errors (malformed username/email/password).
	ErrValidation = errors.New("validation error")

	// Session errors.
	ErrNoSession = errors.New("no active session")
)
