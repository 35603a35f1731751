package booking

import (
	"errors"
	"fmt"
)

// Error codes for booking domain failures. Each maps to exactly one
// HTTP status in the handler layer.
const (
	CodeServiceUnavailable = "ServiceUnavailable"
	CodePastDateTime       = "PastDateTime"
	CodeSlotConflict       = "SlotConflict"
	CodeInvalidStatus      = "InvalidStatus"
	CodeIllegalTransition  = "IllegalTransition"
	CodeForbidden          = "Forbidden"
	CodeNotFound           = "NotFound"
)

// Error is a booking domain failure with a machine-readable code.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, message string) error {
	return &Error{Code: code, Message: message}
}

// CodeOf returns the domain error code carried by err, or "" when err
// is not a booking domain error.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsCode reports whether err is a booking domain error with the given code.
func IsCode(err error, code string) bool {
	return CodeOf(err) == code
}
