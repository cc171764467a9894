// Package error defines domain-specific errors for FINDASH.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidTargetAmount is returned when the goal target amount is not positive.
	ErrInvalidTargetAmount = errors.New("target amount must be greater than zero")

	// ErrInvalidCurrentAmount is returned when the goal current amount is negative.
	ErrInvalidCurrentAmount = errors.New("current amount must not be negative")

	// ErrMissingGoalName is returned when the goal name is empty.
	ErrMissingGoalName = errors.New("goal name is required")
)

// GoalErrorCode defines error codes for goal errors.
type GoalErrorCode string

const (
	ErrCodeGoalNotFound         GoalErrorCode = "GOAL-010001"
	ErrCodeInvalidTargetAmount  GoalErrorCode = "GOAL-010002"
	ErrCodeInvalidCurrentAmount GoalErrorCode = "GOAL-010003"
	ErrCodeMissingGoalName      GoalErrorCode = "GOAL-010004"
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
