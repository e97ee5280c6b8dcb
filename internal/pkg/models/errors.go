package models

import "errors"

// Sentinel errors shared across services. Wrap them with fmt.Errorf("...: %w", err).
var (
	ErrValidation     = errors.New("validation failed")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
	ErrProvider       = errors.New("provider error")
	ErrLocked         = errors.New("resource is locked")
	ErrInvalidWebhook = errors.New("invalid webhook signature")
)
