// Package common defines shared constants and sentinel errors used across
// client and server layers of gophauth. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound         = errors.New("not found")
	ErrDuplicateUsername  = errors.New("duplicate username")
	ErrDuplicateToken     = errors.New("duplicate session token")
	ErrStorageUnavailable = errors.New("storage unavailable")

	// Service-level errors.
	ErrValidation         = errors.New("validation error")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("no session found")
	ErrorUnauthorized     = errors.New("unauthorized")
	ErrorInternal         = errors.New("internal error")
)
