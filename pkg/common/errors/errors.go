package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the callkit library

var (
	// ErrInvalidArgument indicates that a wrap operation received an argument
	// it cannot work with, such as a nil or non-callable action.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidConfiguration indicates invalid configuration parameters
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrPanicked indicates that a wrapped action panicked while running
	// outside of its caller's goroutine.
	ErrPanicked = errors.New("action panicked")
)

// ValidationError describes a rejected constructor argument or configuration
// field. It always matches ErrInvalidConfiguration with errors.Is, and also
// matches Kind when one is set.
type ValidationError struct {
	Module string
	Field  string
	Value  interface{}
	Reason string
	Hint   string

	// Kind is an optional, more specific sentinel such as ErrInvalidArgument.
	Kind error
}

// NewValidationError creates a ValidationError for the given module and field.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// NewArgumentError creates a ValidationError that also matches ErrInvalidArgument.
func NewArgumentError(module, field string, value interface{}, reason string) *ValidationError {
	err := NewValidationError(module, field, value, reason)
	err.Kind = ErrInvalidArgument
	return err
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap returns the sentinel errors this ValidationError matches.
func (e *ValidationError) Unwrap() []error {
	if e.Kind != nil {
		return []error{e.Kind, ErrInvalidConfiguration}
	}
	return []error{ErrInvalidConfiguration}
}

// WithHint attaches a remediation hint and returns the same instance.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

// OperationError records a failure of a named operation inside a module.
type OperationError struct {
	Module    string
	Operation string
	Cause     error
	Context   string
}

// NewOperationError creates an OperationError wrapping cause.
func NewOperationError(module, operation string, cause error) *OperationError {
	return &OperationError{
		Module:    module,
		Operation: operation,
		Cause:     cause,
	}
}

func (e *OperationError) Error() string {
	msg := fmt.Sprintf("%s.%s failed: %v", e.Module, e.Operation, e.Cause)
	if e.Context != "" {
		msg += " (" + e.Context + ")"
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *OperationError) Unwrap() error {
	return e.Cause
}

// WithContext attaches additional context and returns the same instance.
func (e *OperationError) WithContext(context string) *OperationError {
	e.Context = context
	return e
}

// IsValidationError reports whether err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// IsInvalidArgument reports whether err signals a rejected wrap-time argument.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// PanicError converts a recovered panic value into an OperationError.
func PanicError(module, operation string, recovered interface{}) *OperationError {
	cause, ok := recovered.(error)
	if ok {
		cause = fmt.Errorf("%w: %w", ErrPanicked, cause)
	} else {
		cause = fmt.Errorf("%w: %v", ErrPanicked, recovered)
	}
	return NewOperationError(module, operation, cause)
}
