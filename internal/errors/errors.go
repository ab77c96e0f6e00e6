package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// User-visible messages are in the site's display language (Hebrew) and kept
// short and non-technical. Internal detail travels on the wrapped error and
// is logged, never echoed to the client.
var (
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("שם משתמש או סיסמה שגויים")
	// ErrMissingToken is returned when the Authorization header is absent or malformed.
	ErrMissingToken = errors.New("אנא התחבר כמנהל")
	// ErrInvalidToken is returned when the bearer token fails signature checks.
	ErrInvalidToken = errors.New("טוקן לא תקין")
	// ErrExpiredToken is returned when the bearer token has passed its expiry.
	ErrExpiredToken = errors.New("פג תוקף החיבור, אנא התחבר מחדש")
	// ErrUserNotFound is returned when the token references a deleted account.
	ErrUserNotFound = errors.New("משתמש לא נמצא")
	// ErrInsufficientRole is returned when the account lacks the admin role.
	ErrInsufficientRole = errors.New("אין הרשאות מנהל")
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("הרשומה לא נמצאה")
	// ErrMissingDateRange is returned when a provider query lacks date bounds.
	ErrMissingDateRange = errors.New("חסרים תאריכים")
	// ErrMissingCoordinates is returned when a zmanim lookup lacks coordinates.
	ErrMissingCoordinates = errors.New("חסרות קואורדינטות")
	// ErrDayAlreadyPurchased is returned when a memorial day was already bought.
	ErrDayAlreadyPurchased = errors.New("תאריך זה כבר נרכש")
)

// ValidationError aggregates every violated field-level rule so the client
// can show all of them at once.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// NewValidationError creates a ValidationError from one or more messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// GatewayError wraps a failure from a third-party provider (payment gateway,
// calendar service). The provider's original message is preserved for logs.
type GatewayError struct {
	Provider string
	Err      error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// NewGatewayError wraps err as a provider failure.
func NewGatewayError(provider string, err error) *GatewayError {
	return &GatewayError{Provider: provider, Err: err}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Code    string   `json:"code"`
	Details []string `json:"details,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Details    []string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error:   e.Message,
		Code:    e.Code,
		Details: e.Details,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		httpErr := NewHTTPError(http.StatusBadRequest, "נתונים לא תקינים", "VALIDATION_ERROR")
		httpErr.Details = validationErr.Messages
		return httpErr
	}

	var gatewayErr *GatewayError
	if errors.As(err, &gatewayErr) {
		return NewHTTPError(http.StatusBadGateway, "אירעה שגיאה בתקשורת עם שירות חיצוני", "GATEWAY_ERROR")
	}

	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrMissingToken):
		return NewHTTPError(http.StatusUnauthorized, ErrMissingToken.Error(), "MISSING_TOKEN")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidToken.Error(), "INVALID_TOKEN")
	case errors.Is(err, ErrExpiredToken):
		return NewHTTPError(http.StatusUnauthorized, ErrExpiredToken.Error(), "EXPIRED_TOKEN")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusUnauthorized, ErrUserNotFound.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrInsufficientRole):
		return NewHTTPError(http.StatusForbidden, ErrInsufficientRole.Error(), "INSUFFICIENT_ROLE")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, ErrNotFound.Error(), "NOT_FOUND")
	case errors.Is(err, ErrMissingDateRange):
		return NewHTTPError(http.StatusBadRequest, ErrMissingDateRange.Error(), "MISSING_DATE_RANGE")
	case errors.Is(err, ErrMissingCoordinates):
		return NewHTTPError(http.StatusBadRequest, ErrMissingCoordinates.Error(), "MISSING_COORDINATES")
	case errors.Is(err, ErrDayAlreadyPurchased):
		return NewHTTPError(http.StatusBadRequest, ErrDayAlreadyPurchased.Error(), "DAY_ALREADY_PURCHASED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "אירעה שגיאה, אנא נסה שוב מאוחר יותר", "STORE_ERROR")
	}
}
