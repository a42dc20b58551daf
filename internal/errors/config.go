package errors

import (
	"fmt"
	"strings"
)

// Configuration-related error constructors.

// ConfigParseError creates an error for YAML parsing failures.
func ConfigParseError(configPath string, parseErr error) *ManifestError {
	return &ManifestError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("failed to parse configuration: %s", configPath),
		Cause:   parseErr,
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Check your config.yaml for syntax errors:
  1. Ensure proper YAML indentation (use spaces, not tabs)
  2. Check for missing colons or quotes

Regenerate a default file with:
  manifest init --force`,
	}
}

// ConfigInvalid creates an error for invalid configuration values.
func ConfigInvalid(field, message string, validOptions []string) *ManifestError {
	suggestion := fmt.Sprintf("Fix the %q field in .manifest/config.yaml", field)
	if len(validOptions) > 0 {
		suggestion += fmt.Sprintf("\n  Valid options: %s", strings.Join(validOptions, ", "))
	}

	return &ManifestError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("invalid configuration: %s", message),
		Details: map[string]string{
			"field": field,
		},
		Suggestion: suggestion,
	}
}

// ConfigExists creates an error when init would overwrite an existing file.
func ConfigExists(configPath string) *ManifestError {
	return &ManifestError{
		Kind:       ErrConfig,
		Message:    fmt.Sprintf("configuration already exists: %s", configPath),
		Details:    map[string]string{"path": configPath},
		Suggestion: "Use 'manifest init --force' to overwrite it.",
	}
}

// InvalidCriteria creates an error for filter criteria outside the allowed domain.
func InvalidCriteria(field, message string) *ManifestError {
	return &ManifestError{
		Kind:    ErrValidation,
		Message: fmt.Sprintf("invalid filter: %s", message),
		Details: map[string]string{
			"field": field,
		},
		Suggestion: `Ages must satisfy 0 <= min <= max <= 80.
  Example: manifest summary --age-min 18 --age-max 40`,
	}
}
