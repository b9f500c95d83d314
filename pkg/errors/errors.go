/*
Package errors defines the application-level error model: stable error
codes the API layer maps to HTTP statuses. Domain errors are translated
here so that transport concerns never leak into the domain layer.
*/
package errors

import (
	"errors"
	"fmt"

	"videorental/domain/shared"
)

// ErrorCode is a stable, client-visible error code.
type ErrorCode string

const (
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeBadRequest   ErrorCode = "BAD_REQUEST"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeValidation   ErrorCode = "VALIDATION_ERROR"
	CodeDuplicate    ErrorCode = "DUPLICATE"
	CodeIllegalState ErrorCode = "ILLEGAL_STATE"
)

// AppError carries a code, a user-visible message and the wrapped cause.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func BadRequest(message string) *AppError { return New(CodeBadRequest, message) }

func NotFound(message string) *AppError { return New(CodeNotFound, message) }

func Internal(message string) *AppError { return New(CodeInternal, message) }

func Validation(message string) *AppError { return New(CodeValidation, message) }

// FromDomainError translates a domain error into an AppError by its
// sentinel. Unknown errors become internal errors; their message is
// logged but never sent to the client.
func FromDomainError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, shared.ErrInvalidInput):
		return Wrap(err, CodeValidation, err.Error())
	case errors.Is(err, shared.ErrDuplicate):
		return Wrap(err, CodeDuplicate, err.Error())
	case errors.Is(err, shared.ErrNotFound):
		return Wrap(err, CodeNotFound, err.Error())
	case errors.Is(err, shared.ErrIllegalState):
		return Wrap(err, CodeIllegalState, err.Error())
	default:
		return Wrap(err, CodeInternal, "internal server error")
	}
}
