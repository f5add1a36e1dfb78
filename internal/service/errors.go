package service

import "fmt"

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Fields  map[string]string
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeValidation         = "validation_error"
	ErrCodeNotFound           = "not_found"
	ErrCodeConflict           = "conflict"
	ErrCodeInvalidCredentials = "invalid_credentials"
	ErrCodeInvalidDiscount    = "invalid_discount"
	ErrCodeMissingQuery       = "missing_query"
	ErrCodeMissingBounds      = "missing_bounds"
	ErrCodeNotNumeric         = "not_numeric"
	ErrCodeInvalidRange       = "invalid_range"
	ErrCodePasswordMismatch   = "password_mismatch"
	ErrCodeWeakPassword       = "weak_password"
	ErrCodeWrongOldPassword   = "wrong_old_password"
	ErrCodeUnknownEmail       = "unknown_email"
	ErrCodeInvalidCode        = "invalid_code"
	ErrCodeDeliveryFailed     = "delivery_failed"
	ErrCodeInternalError      = "internal_error"
)
