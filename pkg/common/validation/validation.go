package validation

import (
	"time"

	ckerrors "github.com/vnykmshr/callkit/pkg/common/errors"
	"github.com/vnykmshr/callkit/pkg/typecheck"
)

// ValidateCallable validates that value is a function that can be wrapped.
// Returns a ValidationError matching ErrInvalidArgument otherwise.
func ValidateCallable(module, field string, value interface{}) error {
	if typecheck.Classify(value) == "null" {
		return ckerrors.NewArgumentError(module, field, nil, "cannot be nil").
			WithHint("provide a function to wrap")
	}
	if !typecheck.IsCallable(value) {
		return ckerrors.NewArgumentError(module, field, typecheck.Classify(value), "expected a function").
			WithHint("pass a func value; host objects with NodeType or Item are rejected")
	}
	return nil
}

// ValidateNonNegativeDuration validates that a duration is not negative.
// Returns a ValidationError if it is.
func ValidateNonNegativeDuration(module, field string, value time.Duration) error {
	if value < 0 {
		return ckerrors.NewValidationError(module, field, value, "cannot be negative").
			WithHint("use 0 for the default or a positive duration")
	}
	return nil
}
