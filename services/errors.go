package services

import (
	"errors"
	"fmt"
)

// Sentinel errors for quotation validation and composition. Callers match
// them with errors.Is to pick the right HTTP status.
var (
	ErrInvalidDate   = errors.New("invalid quotation date")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrComposition   = errors.New("quotation composition failed")
)

// ExportError wraps a failure from a document generator (PDF or Excel).
// The handler reports it as a server error; the wrapped cause stays
// available for logging.
type ExportError struct {
	Cause error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export failed: %v", e.Cause)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}
