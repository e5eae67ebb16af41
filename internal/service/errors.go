package service

import (
	"errors"
	"fmt"

	"portfolio-api/internal/jsonutil"
	"portfolio-api/internal/validation"
)

var (
	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when a requested resource is not found.
	ErrNotFound = errors.New("not found")
	// ErrExternalService is returned when an external service call fails.
	ErrExternalService = errors.New("external service error")
	// ErrNotConfigured is returned when an integration is missing its credentials.
	ErrNotConfigured = errors.New("not configured")
)

// ValidationError represents a validation error with a field name.
// Issues carries every failed rule when more than one field is invalid.
type ValidationError struct {
	Field   string
	Message string
	Issues  []validation.Issue
}

// NewValidationError builds a ValidationError from validation issues.
// Field and Message describe the first issue.
func NewValidationError(issues []validation.Issue) *ValidationError {
	verr := &ValidationError{Issues: issues}
	if len(issues) > 0 {
		verr.Field = issues[0].Field
		verr.Message = issues[0].Message
	}
	return verr
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// UpstreamError is returned when an external API answers with a non-success status.
// Details holds the answer body, parsed as JSON when possible.
type UpstreamError struct {
	StatusCode int
	Details    jsonutil.Lenient
	Err        error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %v", e.StatusCode, e.Err)
}

func (e *UpstreamError) Unwrap() []error {
	return []error{ErrExternalService, e.Err}
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
