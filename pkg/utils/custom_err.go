package utils

import "errors"

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidResetToken   = errors.New("invalid or expired reset token")
	ErrInvalidInput        = errors.New("invalid input")
	ErrPlantNotFound       = errors.New("plant not found")
	ErrJournalPlantMissing = errors.New("journal entry references a missing plant")
	ErrFlowFailed          = errors.New("ai flow call failed")
	ErrFlowOutputInvalid   = errors.New("ai flow returned a non-conforming response")
	ErrDatabaseError       = errors.New("database error")
)
