package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrMultipleMatches   = errors.New("multiple ledger rows match")
	ErrSignatureMismatch = errors.New("signature mismatch")
	ErrMisconfigured     = errors.New("required secret not configured")
	ErrLedgerDisabled    = errors.New("ledger not configured")
	ErrLedgerUnavailable = errors.New("ledger unavailable")
	ErrInvalidAmount     = errors.New("invalid amount")
)

// ValidationError reports request fields that are missing or malformed.
// It is always a client fault, never a server fault.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s", strings.Join(e.Fields, ", "))
}

// NewValidationError builds ValidationError for the given fields.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}
