package service

import "errors"

// Sentinel errors the handlers map onto HTTP status codes.
var (
	ErrNotFound      = errors.New("not found")
	ErrEmailRequired = errors.New("email is required")
	ErrEmailTaken    = errors.New("email already in use")
	ErrUnauthorized  = errors.New("unknown user")
	ErrForbidden     = errors.New("admin only")
)
