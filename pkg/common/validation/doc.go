// Package validation provides common validation utilities for constructor
// arguments across the callkit library.
//
// The validators return *errors.ValidationError values so that callers get
// consistent messages and can match failures with errors.Is against
// errors.ErrInvalidConfiguration or errors.ErrInvalidArgument.
package validation
