package client

import "errors"

var (
	ErrUnavailable          = errors.New("server unavailable")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrUserNotFound         = errors.New("user not found")
	ErrAlreadyRegistered    = errors.New("user already registered")
	ErrInvalidInput         = errors.New("invalid input")
)
