package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Auth errors (AUTH-001 to AUTH-099)
	ErrCodeAuthNotLoggedIn    ErrorCode = "AUTH-001"
	ErrCodeAuthLoginFailed    ErrorCode = "AUTH-002"
	ErrCodeAuthSessionExpired ErrorCode = "AUTH-003"
	ErrCodeAuthOwnerOnly      ErrorCode = "AUTH-004"

	// API errors (API-001 to API-099)
	ErrCodeAPIRequestFailed ErrorCode = "API-001"
	ErrCodeAPIUnreachable   ErrorCode = "API-002"
	ErrCodeAPIBadResponse   ErrorCode = "API-003"

	// Config errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigInvalid  ErrorCode = "CONFIG-001"
	ErrCodeConfigReadFail ErrorCode = "CONFIG-002"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileNotFound    ErrorCode = "IO-001"
	ErrCodeFileReadFailed  ErrorCode = "IO-002"
	ErrCodeFileWriteFailed ErrorCode = "IO-003"
)

// KampeerError represents an enhanced error with code and suggestions
type KampeerError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *KampeerError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *KampeerError) Unwrap() error {
	return e.Cause
}

// New creates a new KampeerError
func New(code ErrorCode, message string) *KampeerError {
	return &KampeerError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new KampeerError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *KampeerError {
	return &KampeerError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *KampeerError) WithSuggestion(suggestion string) *KampeerError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *KampeerError) WithSuggestions(suggestions ...string) *KampeerError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// Common error constructors for frequently used errors

// NewNotLoggedInError creates an error for commands that need a session
func NewNotLoggedInError() *KampeerError {
	return New(ErrCodeAuthNotLoggedIn, "not logged in").
		WithSuggestion("Run 'kampeer auth login' to authenticate").
		WithSuggestion("Run 'kampeer auth register' to create an account")
}

// NewSessionExpiredError creates an error for a backend-rejected credential
func NewSessionExpiredError() *KampeerError {
	return New(ErrCodeAuthSessionExpired, "your session has expired").
		WithSuggestion("Run 'kampeer auth login' to log in again")
}

// NewOwnerOnlyError creates an error for owner-gated commands
func NewOwnerOnlyError() *KampeerError {
	return New(ErrCodeAuthOwnerOnly, "this command requires an OWNER account").
		WithSuggestion("Register an owner account with 'kampeer auth register --role OWNER'")
}

// NewAPIUnreachableError creates an error for transport-level failures
func NewAPIUnreachableError(baseURL string, cause error) *KampeerError {
	return Wrap(ErrCodeAPIUnreachable, fmt.Sprintf("could not reach the API at %s", baseURL), cause).
		WithSuggestion("Check that the backend is running").
		WithSuggestion("Set KAMPEER_API_URL if the API is not on the default address")
}
