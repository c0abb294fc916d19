// Package error defines domain-specific errors for the Goal Planner application.
package error

import "errors"

// Allocation domain errors.
var (
	// ErrInvalidHorizon is returned when a horizon is not SHORT, MEDIUM or LONG.
	ErrInvalidHorizon = errors.New("invalid horizon")

	// ErrInvalidAllocationPercentage is returned when an allocation percentage is outside 0-100.
	ErrInvalidAllocationPercentage = errors.New("invalid allocation percentage")

	// ErrInvalidInvestmentName is returned when an investment choice has no name.
	ErrInvalidInvestmentName = errors.New("invalid investment name")

	// ErrPresetNotFound is returned when an allocation preset does not exist.
	ErrPresetNotFound = errors.New("allocation preset not found")
)

// AllocationErrorCode defines error codes for allocation errors.
// Format: ALC-XXYYYY where XX is category and YYYY is specific error.
type AllocationErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidHorizon              AllocationErrorCode = "ALC-010001"
	ErrCodeInvalidAllocationPercentage AllocationErrorCode = "ALC-010002"
	ErrCodeInvalidInvestmentName       AllocationErrorCode = "ALC-010003"
	ErrCodeMissingAllocationFields     AllocationErrorCode = "ALC-010004"

	// Preset errors (02XXXX)
	ErrCodePresetNotFound AllocationErrorCode = "ALC-020001"
)

// AllocationError represents an allocation error with code and message.
type AllocationError struct {
	Code    AllocationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AllocationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AllocationError) Unwrap() error {
	return e.Err
}

// NewAllocationError creates a new AllocationError with the given code and message.
func NewAllocationError(code AllocationErrorCode, message string, err error) *AllocationError {
	return &AllocationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
