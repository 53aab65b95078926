package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTripNotFound       = errors.New("trip not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrAIUnavailable      = errors.New("ai generation failed")
	ErrExportFailed       = errors.New("export failed")
	ErrDatabaseError      = errors.New("database error")
)
