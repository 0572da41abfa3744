// Package errors provides standardized error handling for the quote API.
package errors

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidation      ErrorCode = "VALIDATION_ERROR"
	ErrCodeInternal        ErrorCode = "INTERNAL_ERROR"
	ErrCodeExternalService ErrorCode = "EXTERNAL_SERVICE_ERROR"
	ErrCodeTimeout         ErrorCode = "TIMEOUT_ERROR"
	ErrCodeNotFound        ErrorCode = "RESOURCE_NOT_FOUND"

	ErrCodePricingConfigInvalid   ErrorCode = "PRICING_CONFIG_INVALID"
	ErrCodeSessionNotFound        ErrorCode = "SESSION_NOT_FOUND"
	ErrCodeSessionStoreFailed     ErrorCode = "SESSION_STORE_FAILED"
	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewValidationError creates a non-retryable request validation error.
func NewValidationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidation,
		Message:   "Request validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError creates a non-retryable internal error with sanitized details.
func NewInternalError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Internal server error",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewExternalServiceError creates a retryable external service error.
func NewExternalServiceError(service string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeExternalService,
		Message:   fmt.Sprintf("External service '%s' error", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewTimeoutError creates a retryable timeout error.
func NewTimeoutError(service string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeTimeout,
		Message:   fmt.Sprintf("Service '%s' timeout", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewResourceNotFoundError creates a non-retryable not found error.
func NewResourceNotFoundError(resource, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotFound,
		Message:   fmt.Sprintf("Resource not found: %s", resource),
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPricingConfigInvalidError creates a non-retryable pricing configuration error.
func NewPricingConfigInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodePricingConfigInvalid,
		Message:   "Pricing configuration is invalid",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionNotFoundError creates a non-retryable session lookup error.
func NewSessionNotFoundError(sessionID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionNotFound,
		Message:   "Wizard session not found",
		Details:   fmt.Sprintf("sessionId: %s", sessionID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionStoreFailedError creates a retryable session persistence error.
func NewSessionStoreFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionStoreFailed,
		Message:   "Wizard session store error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotificationSendFailedError creates a retryable notification send error.
func NewNotificationSendFailedError(notificationType string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "Notification delivery failed",
		Details:   fmt.Sprintf("type: %s, error: %s", notificationType, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. HTTP Mapping
// ==========================

// HTTPStatus returns the HTTP status code used when the error reaches the API boundary.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeValidation:
		return http.StatusBadRequest
	case ErrCodeNotFound, ErrCodeSessionNotFound:
		return http.StatusNotFound
	case ErrCodeExternalService, ErrCodeNotificationSendFailed:
		return http.StatusBadGateway
	case ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// ==========================
// 4. Utility Functions
// ==========================

// IsRetryable checks if an error is a retryable StandardError.
func IsRetryable(err error) bool {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr.Retryable
	}
	return false
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "VALIDATION") || strings.Contains(codeStr, "INVALID"):
		return "VALIDATION"
	case strings.Contains(codeStr, "SESSION"):
		return "SESSION"
	case strings.Contains(codeStr, "NOTIFICATION"):
		return "NOTIFICATION"
	case strings.Contains(codeStr, "EXTERNAL") || strings.Contains(codeStr, "TIMEOUT"):
		return "EXTERNAL"
	default:
		return "OTHER"
	}
}
