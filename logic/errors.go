package logic

import (
	"errors"
)

type StatusCode int

const (
	StatusInvalidArgument StatusCode = iota
)

// MaxQuantity caps the quantity of a single line item.
const MaxQuantity = 9999

// Error message constants for cart domain.
const (
	ErrMsgQuantityPositive   = "Quantity must be positive"
	ErrMsgQuantityTooLarge   = "Quantity must not exceed 9999"
	ErrMsgMenuItemIDRequired = "Menu item ID is required"
	ErrMsgMenuItemNotFound   = "Menu item not found"
)

func (s StatusCode) String() string {
	switch s {
	case StatusInvalidArgument:
		return "INVALID_ARGUMENT"
	default:
		return "UNKNOWN"
	}
}

// CommandError is returned when a cart operation is rejected.
type CommandError struct {
	Code    StatusCode
	Message string
}

func (e *CommandError) Error() string {
	return e.Message
}

func NewInvalidArgument(message string) *CommandError {
	return &CommandError{Code: StatusInvalidArgument, Message: message}
}

// CodeOf extracts the status code from err, reporting false when err is not
// a CommandError.
func CodeOf(err error) (StatusCode, bool) {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code, true
	}
	return 0, false
}

// IsInvalidArgument reports whether err is an INVALID_ARGUMENT rejection.
func IsInvalidArgument(err error) bool {
	code, ok := CodeOf(err)
	return ok && code == StatusInvalidArgument
}
