// Package search provides generic state-space search engines.
package search

import "errors"

// ErrInvalidLimit indicates a negative depth limit or expansion budget was
// passed at the API boundary. Limits are validated before any expansion
// happens; they are never silently coerced.
var ErrInvalidLimit = errors.New("search limit must be non-negative")

// ErrNegativeCost indicates a Problem returned a successor with a negative
// step cost. Negative-cost actions are outside the engines' contract.
var ErrNegativeCost = errors.New("successor step cost must be non-negative")

// SearchError represents a structured error from an engine operation.
type SearchError struct {
	// Message is the human-readable error description.
	Message string

	// Code is a machine-readable error code for programmatic handling.
	Code string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *SearchError) Error() string {
	if e.Code != "" {
		return e.Code + ": " + e.Message
	}
	return e.Message
}

// Unwrap returns the underlying cause error for error wrapping support.
func (e *SearchError) Unwrap() error {
	return e.Cause
}
