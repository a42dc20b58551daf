package errors

import (
	"fmt"
	"time"
)

// Dataset and network error constructors.

// DataUnavailable creates an error when the dataset cannot be fetched and no
// cached copy exists.
func DataUnavailable(source string, cause error) *ManifestError {
	return &ManifestError{
		Kind:    ErrNetwork,
		Message: "dataset unavailable",
		Cause:   cause,
		Details: map[string]string{"source": source},
		Suggestion: `Check your network connection, or use a local copy:

  manifest --source ./titanic.csv
  manifest --source builtin

If you're behind a proxy:
  export HTTP_PROXY=http://proxy:port
  export HTTPS_PROXY=http://proxy:port`,
	}
}

// FetchTimeout creates an error when downloading the dataset exceeds the limit.
func FetchTimeout(source string, limit time.Duration) *ManifestError {
	return &ManifestError{
		Kind:    ErrNetwork,
		Message: fmt.Sprintf("dataset download timed out after %v", limit.Round(time.Millisecond)),
		Details: map[string]string{
			"source": source,
			"limit":  limit.String(),
		},
		Suggestion: `Raise the timeout in .manifest/config.yaml:
  data:
    timeout: 60s`,
	}
}

// SourceNotFound creates an error for a local dataset path that does not exist.
func SourceNotFound(path string) *ManifestError {
	return &ManifestError{
		Kind:       ErrNotFound,
		Message:    fmt.Sprintf("dataset file not found: %s", path),
		Details:    map[string]string{"path": path},
		Suggestion: "Pass an existing CSV with --source, or use --source builtin for the bundled sample.",
	}
}

// MissingColumn creates an error when the CSV lacks a required column.
func MissingColumn(source, column string) *ManifestError {
	return &ManifestError{
		Kind:    ErrData,
		Message: fmt.Sprintf("dataset is missing required column %q", column),
		Details: map[string]string{
			"source": source,
			"column": column,
		},
		Suggestion: "The CSV header must include Sex, Pclass, Age, Survived, Fare and Name.",
	}
}

// MalformedData creates an error when the CSV cannot be parsed.
func MalformedData(source string, cause error) *ManifestError {
	return &ManifestError{
		Kind:       ErrData,
		Message:    "failed to parse dataset",
		Cause:      cause,
		Details:    map[string]string{"source": source},
		Suggestion: "Make sure the file is comma separated with a header row.",
	}
}

// IsRetryable returns true if the error is likely transient and retrying may succeed.
func IsRetryable(err error) bool {
	me, ok := As(err)
	return ok && me.Kind == ErrNetwork
}
