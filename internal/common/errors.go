// Package common defines sentinel errors shared by the server, the API client
// and the CLI. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Credential errors.
	ErrDuplicateEmail     = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Content errors.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrStorage marks any unexpected persistence failure. The original cause
	// is wrapped alongside it.
	ErrStorage = errors.New("storage error")

	// ErrStartupConfig is returned when required configuration is absent or
	// malformed. The process must not start serving.
	ErrStartupConfig = errors.New("startup config error")

	// Token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
