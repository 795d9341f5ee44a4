// Package apperror defines the application error kinds and their mapping to
// HTTP status codes. Services return these values; handlers translate them at
// the response boundary so internal detail never reaches the client.
package apperror

import (
	"fmt"
	"net/http"
)

// Kind categorizes an application error.
type Kind int

const (
	// Unknown is for unspecified errors.
	Unknown Kind = iota
	// Auth represents an authentication failure (missing or bad credentials).
	Auth
	// Forbidden represents an authorization failure (authenticated, not permitted).
	Forbidden
	// NotFound represents a missing resource.
	NotFound
	// Validation represents one or more violated input rules.
	Validation
	// Internal represents an unexpected infrastructure failure.
	Internal
)

// Error is the application error type. Message is for server-side logs;
// Messages carries the ordered, client-visible rule violations for Validation
// errors. Err optionally wraps an underlying cause.
type Error struct {
	Kind     Kind
	Message  string
	Messages []string
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is / errors.As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode maps the error kind to an HTTP status code.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case Auth:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Validation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the client-visible message for the error kind. It is
// intentionally generic for everything except validation: the response must
// not reveal which part of a credential was wrong or any internal detail.
func (e *Error) PublicMessage() string {
	switch e.Kind {
	case Auth:
		return "Access Denied"
	case Forbidden:
		return "Forbidden"
	case NotFound:
		return "Not Found"
	default:
		return "Internal Server Error"
	}
}

func New(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// NewAuth creates an authentication error.
func NewAuth(message string) *Error {
	return &Error{Kind: Auth, Message: message}
}

// NewForbidden creates an authorization error.
func NewForbidden(message string) *Error {
	return &Error{Kind: Forbidden, Message: message}
}

// NewNotFound creates a missing-resource error.
func NewNotFound(message string) *Error {
	return &Error{Kind: NotFound, Message: message}
}

// NewValidation creates a validation error from an ordered list of
// human-readable rule violations.
func NewValidation(messages []string) *Error {
	return &Error{Kind: Validation, Message: "validation failed", Messages: messages}
}

// NewInternal creates an internal error wrapping its cause.
func NewInternal(message string, err error) *Error {
	return &Error{Kind: Internal, Message: message, Err: err}
}
