package domain

import "errors"

// Sentinel errors for the core operations. Services wrap these with
// fmt.Errorf("...: %w", ...) and the transport layer maps them to
// status codes with errors.Is.
var (
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInvalidState        = errors.New("invalid state")
	ErrValidation          = errors.New("validation failed")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrUnauthorized        = errors.New("unauthorized")
)
