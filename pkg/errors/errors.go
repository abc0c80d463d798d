package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidState    = errors.New("payment is not in a valid state for this operation")
	ErrConflict        = errors.New("payment state changed concurrently")
	ErrNotFound        = errors.New("resource not found")
	ErrUnauthorized    = errors.New("request is not authenticated")
	ErrTransport       = errors.New("transport error")
	ErrEmptySession    = errors.New("refusing to replace a populated session with an empty one")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeInvalidArgument = "INVALID_ARGUMENT"
	ErrCodeInvalidState    = "INVALID_STATE"
	ErrCodeConflict        = "CONFLICT"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeUnauthorized    = "UNAUTHORIZED"
	ErrCodeTransportError  = "TRANSPORT_ERROR"
	ErrCodeBackendError    = "BACKEND_ERROR"
)

// Wrap common errors with business context
func WrapInvalidArgument(message string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidArgument,
		message,
		ErrInvalidArgument,
	)
}

func WrapInvalidState(operation, status string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidState,
		fmt.Sprintf("Cannot %s a payment with status %s", operation, status),
		ErrInvalidState,
	)
}

func WrapConflict(paymentID string) *BusinessError {
	return NewBusinessError(
		ErrCodeConflict,
		fmt.Sprintf("Payment %s was modified concurrently", paymentID),
		ErrConflict,
	)
}

func WrapNotFound(resource, id string) *BusinessError {
	return NewBusinessError(
		ErrCodeNotFound,
		fmt.Sprintf("%s with ID %s not found", resource, id),
		ErrNotFound,
	)
}

func WrapUnauthorized() *BusinessError {
	return NewBusinessError(
		ErrCodeUnauthorized,
		"Session is missing or no longer valid",
		ErrUnauthorized,
	)
}

func WrapTransportError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeTransportError,
		"request to backend failed",
		err,
	)
}
