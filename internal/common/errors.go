// Package common defines shared sentinel errors and small helpers used
// across the task tracker's layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Raised when an authenticated account has no matching profile document.
	ErrUserInfoMissing = errors.New("user information does not exist")

	// Raised before any network call when an operation requires a session.
	ErrNotSignedIn = errors.New("not signed in")

	// Registration input validation.
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrWeakPassword     = errors.New("password must be at least 8 characters and contain upper case, lower case and a digit")
	ErrPasswordMismatch = errors.New("passwords do not match")
)
