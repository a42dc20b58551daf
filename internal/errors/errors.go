// Package errors provides error types with actionable suggestions for
// manifest. Errors carry a kind for errors.Is matching plus the context a
// user needs to fix the problem.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
	// ErrData indicates the passenger dataset could not be parsed or is incomplete.
	ErrData = errors.New("data error")
	// ErrNetwork indicates a network-related error.
	ErrNetwork = errors.New("network error")
	// ErrValidation indicates invalid filter criteria or user input.
	ErrValidation = errors.New("validation error")
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = errors.New("not found")
)

// ManifestError is the base error type for manifest errors.
// It wraps an underlying error and provides additional context.
type ManifestError struct {
	// Kind is the category of error (e.g., ErrData, ErrConfig).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., source, column).
	Details map[string]string
}

// Error implements the error interface.
func (e *ManifestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *ManifestError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether the error's kind matches the target.
func (e *ManifestError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a formatted error message with details and suggestion.
// Details are listed in key order.
func (e *ManifestError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, e.Details[k]))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n💡 Suggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *ManifestError) WithDetails(key, value string) *ManifestError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *ManifestError) WithCause(cause error) *ManifestError {
	e.Cause = cause
	return e
}

// New creates a new ManifestError with the given kind and message.
func New(kind error, message string) *ManifestError {
	return &ManifestError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *ManifestError {
	return &ManifestError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// WithSuggestion creates a new error with a suggestion.
func WithSuggestion(kind error, message, suggestion string) *ManifestError {
	return &ManifestError{
		Kind:       kind,
		Message:    message,
		Suggestion: suggestion,
	}
}

// As returns the ManifestError in err's chain, if any.
func As(err error) (*ManifestError, bool) {
	var me *ManifestError
	if errors.As(err, &me) {
		return me, true
	}
	return nil, false
}

// IsUserError returns true if the error is due to user input or configuration.
func IsUserError(err error) bool {
	me, ok := As(err)
	if !ok {
		return false
	}
	return errors.Is(me.Kind, ErrConfig) || errors.Is(me.Kind, ErrValidation)
}
