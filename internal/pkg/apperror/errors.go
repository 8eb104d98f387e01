package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"
	ErrCodeUnauthorized  ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden     ErrorCode = "FORBIDDEN"
	ErrCodeBadRequest    ErrorCode = "BAD_REQUEST"
	ErrCodeConflict      ErrorCode = "CONFLICT"
	ErrCodeInternal      ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeDatabaseError ErrorCode = "DATABASE_ERROR"
)

// AppError несёт код, текст для клиента и HTTP статус.
// Cause никогда не отдаётся клиенту, только логируется.
type AppError struct {
	Code       ErrorCode
	Message    string
	HTTPStatus int
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Cause:      err,
	}
}

func Validation(message string) *AppError {
	return New(ErrCodeValidation, message)
}

func NotFound(message string) *AppError {
	return New(ErrCodeNotFound, message)
}

func Database(err error, message string) *AppError {
	return Wrap(err, ErrCodeDatabaseError, message)
}

func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeBadRequest, ErrCodeValidation:
		return http.StatusBadRequest
	case ErrCodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func codeOf(err error) (ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}

func IsNotFound(err error) bool {
	code, ok := codeOf(err)
	return ok && code == ErrCodeNotFound
}

func IsValidation(err error) bool {
	code, ok := codeOf(err)
	return ok && code == ErrCodeValidation
}

func IsConflict(err error) bool {
	code, ok := codeOf(err)
	return ok && code == ErrCodeConflict
}

// Тексты совпадают с публичным API, клиенты сравнивают их дословно.
var (
	ErrBookingNotFound       = NotFound("Booking not found")
	ErrContractNotFound      = NotFound("Contract not found")
	ErrUserNotFound          = NotFound("User not found")
	ErrProfileNotFound       = NotFound("Creative profile not found")
	ErrProductNotFound       = NotFound("Product not found")
	ErrOrderNotFound         = NotFound("Order not found")
	ErrUserIDRequired        = New(ErrCodeValidation, "User ID required")
	ErrSubcategoryIDsInvalid = New(ErrCodeValidation, "subcategory_ids must be a list of integers")
	ErrInvalidCredentials    = New(ErrCodeBadRequest, "Invalid credentials")
	ErrProfileExists         = New(ErrCodeConflict, "Profile already exists")
	ErrUsernameTaken         = New(ErrCodeConflict, "Username already taken")
	ErrNotParticipant        = New(ErrCodeForbidden, "Only booking participants can send messages")
)
