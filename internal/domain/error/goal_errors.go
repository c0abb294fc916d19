// Package error defines domain-specific errors for the Goal Planner application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidTargetAmount is returned when the target amount is negative.
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrInvalidGoalName is returned when the goal name is empty.
	ErrInvalidGoalName = errors.New("invalid goal name")

	// ErrInvalidGoalKind is returned when the goal kind is not ONE_TIME or RECURRING.
	ErrInvalidGoalKind = errors.New("invalid goal kind")

	// ErrInvalidGoalDates is returned when a one-time goal has missing dates or
	// a target date before its start date.
	ErrInvalidGoalDates = errors.New("invalid goal dates")

	// ErrUnauthorizedGoalAccess is returned when user is not authorized to access a goal.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound           GoalErrorCode = "GOL-010001"
	ErrCodeInvalidTargetAmount    GoalErrorCode = "GOL-010003"
	ErrCodeUnauthorizedGoalAccess GoalErrorCode = "GOL-010006"
	ErrCodeInvalidGoalKind        GoalErrorCode = "GOL-010007"
	ErrCodeMissingGoalFields      GoalErrorCode = "GOL-010008"
	ErrCodeInvalidGoalDates       GoalErrorCode = "GOL-010009"
	ErrCodeInvalidGoalName        GoalErrorCode = "GOL-010010"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
