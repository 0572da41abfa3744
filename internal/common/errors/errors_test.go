package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================================================================
// Constructors
// ==========================================================================

func TestConstructors(t *testing.T) {
	tests := []struct {
		name      string
		err       *StandardError
		wantCode  ErrorCode
		retryable bool
	}{
		{"validation", NewValidationError("field x"), ErrCodeValidation, false},
		{"internal", NewInternalError("boom"), ErrCodeInternal, false},
		{"external", NewExternalServiceError("notion", errors.New("down")), ErrCodeExternalService, true},
		{"timeout", NewTimeoutError("redis", errors.New("deadline")), ErrCodeTimeout, true},
		{"not found", NewResourceNotFoundError("question", "id=x"), ErrCodeNotFound, false},
		{"pricing config", NewPricingConfigInvalidError("bad range"), ErrCodePricingConfigInvalid, false},
		{"session not found", NewSessionNotFoundError("abc"), ErrCodeSessionNotFound, false},
		{"session store", NewSessionStoreFailedError(errors.New("conn reset")), ErrCodeSessionStoreFailed, true},
		{"notification", NewNotificationSendFailedError("email", errors.New("throttled")), ErrCodeNotificationSendFailed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotNil(t, tt.err)
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.retryable, tt.err.Retryable)
			assert.False(t, tt.err.Timestamp.IsZero())
			assert.Contains(t, tt.err.Error(), string(tt.wantCode))
		})
	}
}

func TestSessionNotFoundError_IncludesID(t *testing.T) {
	err := NewSessionNotFoundError("session-42")
	assert.Contains(t, err.Details, "session-42")
}

// ==========================================================================
// HTTP mapping
// ==========================================================================

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeSessionNotFound, http.StatusNotFound},
		{ErrCodeExternalService, http.StatusBadGateway},
		{ErrCodeNotificationSendFailed, http.StatusBadGateway},
		{ErrCodeTimeout, http.StatusGatewayTimeout},
		{ErrCodeInternal, http.StatusInternalServerError},
		{ErrCodePricingConfigInvalid, http.StatusInternalServerError},
		{ErrCodeSessionStoreFailed, http.StatusInternalServerError},
		{ErrorCode("SOMETHING_NEW"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.code))
		})
	}
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeValidation))
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodePricingConfigInvalid))
	assert.Equal(t, "SESSION", GetErrorCategory(ErrCodeSessionNotFound))
	assert.Equal(t, "NOTIFICATION", GetErrorCategory(ErrCodeNotificationSendFailed))
	assert.Equal(t, "EXTERNAL", GetErrorCategory(ErrCodeTimeout))
	assert.Equal(t, "OTHER", GetErrorCategory(ErrCodeInternal))
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(NewExternalServiceError("notion", errors.New("down"))))
	assert.False(t, IsRetryable(NewValidationError("x")))
	assert.False(t, IsRetryable(errors.New("plain error")))
}
