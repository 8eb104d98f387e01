package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_MapsCodeToStatus(t *testing.T) {
	cases := map[ErrorCode]int{
		ErrCodeNotFound:      http.StatusNotFound,
		ErrCodeValidation:    http.StatusBadRequest,
		ErrCodeBadRequest:    http.StatusBadRequest,
		ErrCodeConflict:      http.StatusConflict,
		ErrCodeUnauthorized:  http.StatusUnauthorized,
		ErrCodeForbidden:     http.StatusForbidden,
		ErrCodeDatabaseError: http.StatusInternalServerError,
		ErrCodeInternal:      http.StatusInternalServerError,
	}
	for code, status := range cases {
		assert.Equal(t, status, New(code, "x").HTTPStatus, code)
	}
}

func TestWrap_KeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Database(cause, "failed to save interests")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, "failed to save interests", err.Message)
}

func TestPredicates_SeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("usecase: %w", ErrBookingNotFound)

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsValidation(wrapped))
	assert.True(t, IsValidation(ErrUserIDRequired))
	assert.True(t, IsConflict(ErrProfileExists))
	assert.False(t, IsNotFound(errors.New("plain")))
}
