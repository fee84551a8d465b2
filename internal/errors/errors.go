package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// API errors (API-001 to API-099): failures reported by the backend
	ErrCodeAPIValidation ErrorCode = "API-001"
	ErrCodeAPIDecode     ErrorCode = "API-002"

	// Network errors (NET-001 to NET-099): no response from the backend
	ErrCodeTransport ErrorCode = "NET-001"

	// Auth errors (AUTH-001 to AUTH-099)
	ErrCodeAuthNotLoggedIn ErrorCode = "AUTH-001"
	ErrCodeAuthTokenStale  ErrorCode = "AUTH-002"
	ErrCodeAuthLoginFailed ErrorCode = "AUTH-003"

	// Storage errors (STORE-001 to STORE-099)
	ErrCodeStoreRead  ErrorCode = "STORE-001"
	ErrCodeStoreWrite ErrorCode = "STORE-002"

	// Config errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigRead    ErrorCode = "CONFIG-001"
	ErrCodeConfigInvalid ErrorCode = "CONFIG-002"

	// Catalog errors (CATALOG-001 to CATALOG-099)
	ErrCodeEventNotFound  ErrorCode = "CATALOG-001"
	ErrCodeCatalogInvalid ErrorCode = "CATALOG-002"
)

// Error is an error with a stable code, optional remediation suggestions,
// and an optional cause. All errors surfaced by this module are of this
// kind; callers branch on Code rather than on message text.
type Error struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *Error) Error() string {
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
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new Error wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *Error) WithSuggestion(suggestion string) *Error {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *Error) WithSuggestions(suggestions ...string) *Error {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// Code returns the code carried by err, or the empty code when err is not
// (and does not wrap) an *Error.
func Code(err error) ErrorCode {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return ""
}

// IsValidation reports whether err is a backend validation/authorization
// failure carrying a detail message.
func IsValidation(err error) bool {
	return Code(err) == ErrCodeAPIValidation
}

// IsDecode reports whether err is a malformed or undecodable backend
// response.
func IsDecode(err error) bool {
	return Code(err) == ErrCodeAPIDecode
}

// IsTransport reports whether err is a transport-level failure with no
// response from the backend at all.
func IsTransport(err error) bool {
	return Code(err) == ErrCodeTransport
}

// Constructors for the error shapes the API gateway client normalizes into.

// NewValidationError creates an error from a backend {detail} body.
func NewValidationError(detail string) *Error {
	return New(ErrCodeAPIValidation, detail)
}

// NewDecodeError creates an error for a non-success response whose body
// could not be parsed; it carries the raw HTTP status.
func NewDecodeError(status int) *Error {
	return New(ErrCodeAPIDecode, fmt.Sprintf("request failed with HTTP status %d", status)).
		WithSuggestion("The server answered with a non-JSON error body").
		WithSuggestion("Check the server logs for the failing endpoint")
}

// NewTransportError creates an error for a request that got no response
// at all (connection refused, DNS failure, unreachable host).
func NewTransportError(cause error) *Error {
	return Wrap(ErrCodeTransport, "cannot connect to the server", cause).
		WithSuggestion("Make sure the backend server is running and reachable").
		WithSuggestion("Check that the API base URL is correct (--api-url or EVENTCAL_API_URL)").
		WithSuggestion("Verify your network connection")
}

// NewNotLoggedInError creates an error for operations that need an
// authenticated session.
func NewNotLoggedInError() *Error {
	return New(ErrCodeAuthNotLoggedIn, "not logged in").
		WithSuggestion("Run 'eventcal login' to authenticate")
}

// NewLoginFailedError creates an error for credentials the backend
// rejected. It wraps the backend rejection so the detail stays visible.
func NewLoginFailedError(cause error) *Error {
	return Wrap(ErrCodeAuthLoginFailed, "login failed", cause).
		WithSuggestion("Check your username and password")
}

// NewEventNotFoundError creates an error for an unknown event identifier.
func NewEventNotFoundError(id string) *Error {
	return New(ErrCodeEventNotFound, fmt.Sprintf("event not found: %s", id)).
		WithSuggestion("Run 'eventcal events list' to see known event ids")
}
