// Package errors provides standardized error handling for the quotation engine.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeConversationNotFound ErrorCode = "CONVERSATION_NOT_FOUND"
	ErrCodeMalformedCatalog     ErrorCode = "MALFORMED_CATALOG"
	ErrCodeUpstreamUnavailable  ErrorCode = "UPSTREAM_UNAVAILABLE"
	ErrCodeImageDecodeFailed    ErrorCode = "IMAGE_DECODE_FAILED"
	ErrCodeNotificationFailed   ErrorCode = "NOTIFICATION_SEND_FAILED"
	ErrCodeInvalidRequest       ErrorCode = "INVALID_REQUEST"
)

// ErrNotFound is the sentinel for unknown conversation lookups; compare with
// errors.Is.
var ErrNotFound = errors.New("conversation not found")

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	wrapped   error
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.wrapped
}

// NewConversationNotFoundError creates a non-retryable lookup error. It wraps
// ErrNotFound so transports can map it to a 404.
func NewConversationNotFoundError(conversationID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeConversationNotFound,
		Message:   "Conversation not found",
		Details:   fmt.Sprintf("conversationId: %s", conversationID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		wrapped:   ErrNotFound,
	}
}

// NewMalformedCatalogError creates a non-retryable catalog entry error.
// Malformed entries are tolerated by the loader; this error only reports them.
func NewMalformedCatalogError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMalformedCatalog,
		Message:   "Catalog entry missing expected fields",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUpstreamUnavailableError creates a retryable error for a failed
// text- or image-generation call.
func NewUpstreamUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeUpstreamUnavailable,
		Message:   "Generation service unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		wrapped:   err,
	}
}

// NewImageDecodeFailedError creates a non-retryable image processing error.
func NewImageDecodeFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeImageDecodeFailed,
		Message:   "Unable to decode uploaded image",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		wrapped:   err,
	}
}

// NewNotificationFailedError creates a retryable notification error.
func NewNotificationFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationFailed,
		Message:   "Failed to send quotation notification",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		wrapped:   err,
	}
}

// NewInvalidRequestError creates a non-retryable request validation error.
func NewInvalidRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequest,
		Message:   "Invalid request",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
