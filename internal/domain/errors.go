package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a domain error for transport mapping.
type ErrorKind string

const (
	KindConfig     ErrorKind = "config"
	KindUpstream   ErrorKind = "upstream"
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
)

// Error is the domain error type carried across layers. For upstream
// failures it preserves the raw status code and body for diagnostics;
// neither is meant to be shown to end users.
type Error struct {
	Kind    ErrorKind
	Message string

	// UpstreamStatus and UpstreamBody are set only for KindUpstream.
	UpstreamStatus int
	UpstreamBody   string
}

func (e *Error) Error() string {
	if e.Kind == KindUpstream && e.UpstreamStatus != 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Kind, e.Message, e.UpstreamStatus)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewConfigError creates an error for missing or invalid configuration.
func NewConfigError(message string) *Error {
	return &Error{Kind: KindConfig, Message: message}
}

// NewUpstreamError creates an error for a failed upstream PMS call,
// preserving the upstream status code and raw response body.
func NewUpstreamError(message string, status int, body string) *Error {
	return &Error{
		Kind:           KindUpstream,
		Message:        message,
		UpstreamStatus: status,
		UpstreamBody:   body,
	}
}

// NewValidationError creates an error for an invalid caller request.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewNotFoundError creates an error for a missing resource.
func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// KindOf returns the kind of err, or an empty kind if err is not a
// domain error.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsConfigError reports whether err is a configuration error.
func IsConfigError(err error) bool {
	return KindOf(err) == KindConfig
}

// IsUpstreamError reports whether err is an upstream error.
func IsUpstreamError(err error) bool {
	return KindOf(err) == KindUpstream
}
