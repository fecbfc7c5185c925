package validation

import (
	"testing"
	"time"

	"github.com/vnykmshr/callkit/pkg/common/errors"
)

type domNode func()

func (domNode) NodeType() int { return 1 }

func TestValidateCallable(t *testing.T) {
	tests := []struct {
		name      string
		value     interface{}
		wantError bool
	}{
		{"func", func() {}, false},
		{"func with args", func(string, int) {}, false},
		{"nil", nil, true},
		{"typed nil func", (func(int))(nil), true},
		{"string", "handler", true},
		{"struct", struct{}{}, true},
		{"host node", domNode(func() {}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCallable("test", "action", tt.value)

			if tt.wantError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.IsValidationError(err) {
					t.Errorf("expected ValidationError, got %T", err)
				}
				if !errors.IsInvalidArgument(err) {
					t.Error("expected error to match ErrInvalidArgument")
				}
			} else if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateNonNegativeDuration(t *testing.T) {
	tests := []struct {
		name      string
		value     time.Duration
		wantError bool
	}{
		{"zero", 0, false},
		{"positive", 300 * time.Millisecond, false},
		{"negative", -time.Nanosecond, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNonNegativeDuration("test", "wait", tt.value)

			if tt.wantError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.IsValidationError(err) {
					t.Errorf("expected ValidationError, got %T", err)
				}
				if errors.IsInvalidArgument(err) {
					t.Error("a bad duration is a configuration error, not an argument error")
				}
			} else if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidationErrorDetails(t *testing.T) {
	err := ValidateCallable("debounce", "action", 42)

	valErr, ok := err.(*errors.ValidationError)
	if !ok {
		t.Fatalf("could not cast %T to ValidationError", err)
	}
	if valErr.Module != "debounce" {
		t.Errorf("Module = %q, want %q", valErr.Module, "debounce")
	}
	if valErr.Field != "action" {
		t.Errorf("Field = %q, want %q", valErr.Field, "action")
	}
	if valErr.Value != "number" {
		t.Errorf("Value = %v, want %q", valErr.Value, "number")
	}
	if valErr.Reason != "expected a function" {
		t.Errorf("Reason = %q, want %q", valErr.Reason, "expected a function")
	}
}
