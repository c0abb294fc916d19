// Package error defines domain-specific errors for the Goal Planner application.
package error

import "errors"

// Planner domain errors.
var (
	// ErrInvalidReferenceDate is returned when a reference date cannot be parsed.
	ErrInvalidReferenceDate = errors.New("invalid reference date")

	// ErrInvalidPlannerDocument is returned when an imported planner document is unusable.
	ErrInvalidPlannerDocument = errors.New("invalid planner document")

	// ErrSnapshotUnavailable is returned when the snapshot store cannot be reached.
	ErrSnapshotUnavailable = errors.New("snapshot store unavailable")
)

// PlannerErrorCode defines error codes for planner errors.
// Format: PLN-XXYYYY where XX is category and YYYY is specific error.
type PlannerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReferenceDate   PlannerErrorCode = "PLN-010001"
	ErrCodeInvalidPlannerDocument PlannerErrorCode = "PLN-010002"

	// Storage errors (02XXXX)
	ErrCodeSnapshotUnavailable PlannerErrorCode = "PLN-020001"
)

// PlannerError represents a planner error with code and message.
type PlannerError struct {
	Code    PlannerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PlannerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PlannerError) Unwrap() error {
	return e.Err
}

// NewPlannerError creates a new PlannerError with the given code and message.
func NewPlannerError(code PlannerErrorCode, message string, err error) *PlannerError {
	return &PlannerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
