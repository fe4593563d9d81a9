package service

import "errors"

var (
	// ErrValidation is returned for missing or malformed input.
	ErrValidation = errors.New("validation failed")
	// ErrUsernameTaken is returned when registering a username that already exists.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidCredentials is returned for an unknown user and for a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrNotFound is returned when the referenced short URL does not exist.
	ErrNotFound = errors.New("short URL not found")
	// ErrForbidden is returned when the caller neither owns the short URL nor is an admin.
	ErrForbidden = errors.New("access denied")
	// ErrMaxRetriesExceeded is returned when every generated short code collided with an existing one.
	ErrMaxRetriesExceeded = errors.New("maximum retries exceeded for generating short code")
)
