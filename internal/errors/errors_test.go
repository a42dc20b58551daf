package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestManifestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ManifestError
		expected string
	}{
		{
			name:     "simple message",
			err:      New(ErrData, "bad dataset"),
			expected: "bad dataset",
		},
		{
			name: "with cause",
			err: &ManifestError{
				Kind:    ErrConfig,
				Message: "config error",
				Cause:   errors.New("parse error"),
			},
			expected: "config error: parse error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestManifestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(cause, ErrNetwork, "wrapped error")

	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}

	// Without cause, should return Kind
	errNoWrap := New(ErrData, "no cause")
	if !errors.Is(errors.Unwrap(errNoWrap), ErrData) {
		t.Errorf("Unwrap() should return Kind when no cause")
	}
}

func TestManifestError_Is(t *testing.T) {
	err := New(ErrValidation, "bad range")

	if !errors.Is(err, ErrValidation) {
		t.Error("errors.Is should return true for matching Kind")
	}
	if errors.Is(err, ErrConfig) {
		t.Error("errors.Is should return false for non-matching Kind")
	}

	wrapped := fmt.Errorf("summary: %w", err)
	if !errors.Is(wrapped, ErrValidation) {
		t.Error("errors.Is should see through fmt wrapping")
	}
}

func TestManifestError_Format(t *testing.T) {
	err := &ManifestError{
		Kind:       ErrData,
		Message:    "dataset is broken",
		Suggestion: "Use --source builtin",
		Details: map[string]string{
			"source": "titanic.csv",
			"column": "Age",
		},
	}

	formatted := err.Format()

	if !strings.Contains(formatted, "Error: dataset is broken") {
		t.Error("Format() should contain error message")
	}
	if !strings.Contains(formatted, "💡 Suggestion: Use --source builtin") {
		t.Error("Format() should contain suggestion")
	}
	if !strings.Contains(formatted, "  column: Age\n  source: titanic.csv\n") {
		t.Errorf("Format() should list details in key order, got %q", formatted)
	}
}

func TestManifestError_WithDetails(t *testing.T) {
	err := New(ErrConfig, "config error")
	err.WithDetails("file", "config.yaml").WithDetails("line", "42")

	if err.Details["file"] != "config.yaml" {
		t.Error("WithDetails should set key")
	}
	if err.Details["line"] != "42" {
		t.Error("WithDetails should allow chaining")
	}
}

func TestManifestError_WithCause(t *testing.T) {
	cause := errors.New("root cause")
	err := New(ErrData, "data error").WithCause(cause)

	if !errors.Is(err, cause) {
		t.Error("WithCause should set cause")
	}
}

func TestWithSuggestion(t *testing.T) {
	err := WithSuggestion(ErrNotFound, "missing", "Create it")

	if err.Suggestion != "Create it" {
		t.Error("WithSuggestion should set Suggestion")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("WithSuggestion should set Kind")
	}
}

func TestAs(t *testing.T) {
	err := fmt.Errorf("load: %w", MissingColumn("x.csv", "Age"))

	me, ok := As(err)
	if !ok {
		t.Fatal("As should find the ManifestError in the chain")
	}
	if me.Details["column"] != "Age" {
		t.Errorf("Unexpected details %v", me.Details)
	}

	if _, ok := As(errors.New("plain")); ok {
		t.Error("As should not match plain errors")
	}
}

func TestIsUserError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{ConfigInvalid("charts.width", "must be positive", nil), true},
		{InvalidCriteria("age_min", "min above max"), true},
		{DataUnavailable("http://x", nil), false},
		{errors.New("plain"), false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := IsUserError(tt.err); got != tt.want {
			t.Errorf("IsUserError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
