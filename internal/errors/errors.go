package errors

import (
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// ErrorTypeUnknown represents an unclassified error
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeValidation represents field/flag validation errors
	ErrorTypeValidation
	// ErrorTypeNotFound represents a missing entity after a completed fetch
	ErrorTypeNotFound
	// ErrorTypeMutation represents a create/update/delete rejected by the API
	ErrorTypeMutation
	// ErrorTypeNetwork represents network connectivity errors
	ErrorTypeNetwork
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig
	// ErrorTypeRuntime represents general runtime errors
	ErrorTypeRuntime
)

// CLIError wraps errors with type information and context for better UX
type CLIError struct {
	Type    ErrorType
	Err     error
	Context string // Additional context or help text for the user
}

// Error implements the error interface
func (e *CLIError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%v\n%s", e.Err, e.Context)
	}
	return e.Err.Error()
}

// Unwrap implements error unwrapping for Go 1.13+ error chains
func (e *CLIError) Unwrap() error {
	return e.Err
}

// ValidationError creates a validation error (shows usage hints)
func ValidationError(err error, context string) *CLIError {
	return &CLIError{
		Type:    ErrorTypeValidation,
		Err:     err,
		Context: context,
	}
}

// NotFoundError creates a not-found error for a missing entity
func NotFoundError(err error) *CLIError {
	return &CLIError{
		Type: ErrorTypeNotFound,
		Err:  err,
	}
}

// NotFoundErrorWithContext creates a not-found error with context
func NotFoundErrorWithContext(err error, context string) *CLIError {
	return &CLIError{
		Type:    ErrorTypeNotFound,
		Err:     err,
		Context: context,
	}
}

// MutationError creates an error for a rejected create/update/delete
func MutationError(err error) *CLIError {
	return &CLIError{
		Type: ErrorTypeMutation,
		Err:  err,
	}
}

// MutationErrorWithContext creates a mutation error with context
func MutationErrorWithContext(err error, context string) *CLIError {
	return &CLIError{
		Type:    ErrorTypeMutation,
		Err:     err,
		Context: context,
	}
}

// NetworkError creates a network error
func NetworkError(err error) *CLIError {
	return &CLIError{
		Type: ErrorTypeNetwork,
		Err:  err,
	}
}

// ConfigError creates a configuration error
func ConfigError(err error) *CLIError {
	return &CLIError{
		Type: ErrorTypeConfig,
		Err:  err,
	}
}

// RuntimeError creates a runtime error
func RuntimeError(err error) *CLIError {
	return &CLIError{
		Type: ErrorTypeRuntime,
		Err:  err,
	}
}

// RuntimeErrorWithContext creates a runtime error with context
func RuntimeErrorWithContext(err error, context string) *CLIError {
	return &CLIError{
		Type:    ErrorTypeRuntime,
		Err:     err,
		Context: context,
	}
}
