package domain

import "errors"

// Sentinel errors for the auth flows. Delivery maps each one to its
// HTTP status code and response message.
var (
	ErrMissingFields   = errors.New("email, username, and password are required")
	ErrEmailExists     = errors.New("email already exists")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidPassword = errors.New("invalid password")
	ErrMissingToken    = errors.New("refresh token is missing")
	ErrInvalidToken    = errors.New("invalid token")
)
