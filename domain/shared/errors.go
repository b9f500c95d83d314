package shared

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Sentinel errors for errors.Is checks. They carry no context on their
// own; DomainError wraps them with entity, field and message.
var (
	// ErrNotFound marks an unresolved identifier reference.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate marks a uniqueness violation (email, national id).
	ErrDuplicate = errors.New("duplicate")

	// ErrInvalidInput marks a malformed, missing or out-of-range field.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIllegalState marks an invalid lifecycle transition.
	ErrIllegalState = errors.New("illegal state")
)

// DomainError is a structured error carrying business context and the
// stack of its creation point. The stack is captured eagerly but
// formatted lazily, only when a log line asks for it.
type DomainError struct {
	// Err is the underlying sentinel, for errors.Is.
	Err error

	// Entity names the aggregate the error belongs to ("customer", "film", "rental").
	Entity string

	// Field optionally names the offending field on validation errors.
	Field string

	// Message is the human-readable description.
	Message string

	stack []uintptr
}

func (e *DomainError) Error() string { return e.Message }

func (e *DomainError) Unwrap() error { return e.Err }

// Stack formats the captured frames. Only called when logging.
func (e *DomainError) Stack() []string { return FormatStack(e.stack) }

// CaptureStack records the current call stack. skip is usually 3:
// Callers, CaptureStack and the constructor itself.
func CaptureStack(skip int) []uintptr {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	return pcs[:n]
}

// FormatStack renders frames as "file:line func", dropping runtime
// internals and capping at 10 frames.
func FormatStack(stack []uintptr) []string {
	if len(stack) == 0 {
		return nil
	}
	frames := runtime.CallersFrames(stack)
	var result []string
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "runtime/") {
			result = append(result, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		}
		if !more || len(result) > 10 {
			break
		}
	}
	return result
}

// NewDomainError builds a DomainError around an arbitrary sentinel.
// Subdomain packages use it for their own error constructors.
func NewDomainError(sentinel error, entity, field, message string) error {
	return &DomainError{
		Err:     sentinel,
		Entity:  entity,
		Field:   field,
		Message: message,
		stack:   CaptureStack(3),
	}
}

// NewNotFoundError builds a "not found" error for the given entity.
func NewNotFoundError(entity string) error {
	return &DomainError{
		Err:     ErrNotFound,
		Entity:  entity,
		Message: entity + " not found",
		stack:   CaptureStack(3),
	}
}

// NewDuplicateError builds a uniqueness-violation error.
func NewDuplicateError(entity, field, message string) error {
	return &DomainError{
		Err:     ErrDuplicate,
		Entity:  entity,
		Field:   field,
		Message: message,
		stack:   CaptureStack(3),
	}
}

// NewValidationError builds a field-validation error.
func NewValidationError(entity, field, reason string) error {
	return &DomainError{
		Err:     ErrInvalidInput,
		Entity:  entity,
		Field:   field,
		Message: reason,
		stack:   CaptureStack(3),
	}
}

// NewIllegalStateError builds an invalid-transition error.
func NewIllegalStateError(entity, reason string) error {
	return &DomainError{
		Err:     ErrIllegalState,
		Entity:  entity,
		Message: reason,
		stack:   CaptureStack(3),
	}
}

// Stacker is implemented by errors that carry their creation stack.
// The API layer uses it to log the point of failure.
type Stacker interface {
	Stack() []string
}
