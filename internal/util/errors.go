package util

import "errors"

var (
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNoValidStandards   = errors.New("no valid standards provided")
	ErrTextNotFound       = errors.New("generated text not found")
	ErrPermissionDenied   = errors.New("permission denied")
)
