package domain

import "errors"

// Sentinel errors for the auth and catalog flows. The messages double as
// the client-facing error bodies, so they are written for end users.
var (
	// ErrEmailTaken is returned when a signup reuses an existing email.
	ErrEmailTaken = errors.New("User already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// A single message avoids user-enumeration leakage.
	ErrInvalidCredentials = errors.New("Invalid credentials")

	// ErrUserNotFound is returned when a valid token references an
	// account that no longer exists.
	ErrUserNotFound = errors.New("User not found")

	// ErrInvalidVideoID is returned for a malformed video id.
	ErrInvalidVideoID = errors.New("Invalid video ID")

	// ErrVideoNotFound is returned for an absent or inactive video.
	ErrVideoNotFound = errors.New("Video not found")
)
