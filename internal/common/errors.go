// Package common defines the sentinel errors shared across client and
// server layers of zkpauth. Callers should use errors.Is to match them.
package common

import "errors"

var (
	// Validation errors (malformed byte lengths or out-of-range values).
	ErrValidation = errors.New("validation error")

	// Lookup errors.
	ErrUserNotFound      = errors.New("user not found")
	ErrChallengeNotFound = errors.New("challenge not found")
	ErrSessionNotFound   = errors.New("session not found")

	// State conflicts.
	ErrAlreadyRegistered = errors.New("user already registered")

	// Verification-path errors. The registration record can disappear
	// between challenge issuance and verification (expiry, operator
	// removal); the proof equation failing is a separate condition.
	ErrRegistrationMissing  = errors.New("registration record missing")
	ErrAuthenticationFailed = errors.New("authentication failed")

	// Session token errors.
	ErrInvalidToken = errors.New("invalid token")

	// Generic internal failure surfaced to transports.
	ErrInternal = errors.New("internal error")
)
