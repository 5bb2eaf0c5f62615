package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var errPrefix = color.New(color.FgRed, color.Bold).SprintFunc()

// FormatError formats a CLIError for display to the user
// Returns a user-friendly error message with context
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder

	switch err.Type {
	case ErrorTypeValidation:
		sb.WriteString(errPrefix("✗ Validation Error: "))
	case ErrorTypeNotFound:
		sb.WriteString(errPrefix("✗ Not Found: "))
	case ErrorTypeMutation:
		sb.WriteString(errPrefix("✗ API Error: "))
	case ErrorTypeNetwork:
		sb.WriteString(errPrefix("✗ Network Error: "))
	case ErrorTypeConfig:
		sb.WriteString(errPrefix("✗ Configuration Error: "))
	default:
		sb.WriteString(errPrefix("✗ Error: "))
	}

	sb.WriteString(err.Err.Error())

	if err.Context != "" {
		sb.WriteString("\n\n")
		sb.WriteString(err.Context)
	}

	return sb.String()
}

// FormatSimple formats an error without type prefix
// Useful for wrapping non-CLIError types
func FormatSimple(err error) string {
	if err == nil {
		return ""
	}

	if cliErr, ok := err.(*CLIError); ok {
		return FormatError(cliErr)
	}

	return fmt.Sprintf("%s%v", errPrefix("✗ Error: "), err)
}
