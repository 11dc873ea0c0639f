package booking

import (
	"errors"
	"fmt"
)

// Error codes for the three recoverable failure classes of the booking
// workflow. None of these is fatal; handlers translate them into responses
// with a retry affordance.
const (
	CodeValidation   = "validationError"
	CodeConflict     = "conflictError"
	CodeCollaborator = "collaboratorError"
	CodeState        = "stateError"
)

type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &FlowError{Code: CodeValidation, Message: msg}
}

func NewConflictError(msg string) error {
	return &FlowError{Code: CodeConflict, Message: msg}
}

func NewCollaboratorError(msg string, cause error) error {
	if cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, cause)
	}
	return &FlowError{Code: CodeCollaborator, Message: msg}
}

func NewStateError(msg string) error {
	return &FlowError{Code: CodeState, Message: msg}
}

// ErrorCode extracts the workflow error code, or "" for foreign errors.
func ErrorCode(err error) string {
	var fe *FlowError
	if errors.As(err, &fe) {
		return fe.Code
	}
	return ""
}

func IsConflict(err error) bool { return ErrorCode(err) == CodeConflict }
