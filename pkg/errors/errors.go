package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Loader parse errors
	ErrUnknownLoader        ErrorCode = "UNKNOWN_LOADER"
	ErrMissingLoaderVersion ErrorCode = "MISSING_LOADER_VERSION"

	// Host resolution errors
	ErrInvalidHostRoot    ErrorCode = "INVALID_HOST_ROOT"
	ErrHostConfigNotFound ErrorCode = "HOST_CONFIG_NOT_FOUND"
	ErrHostPathUnset      ErrorCode = "HOST_PATH_UNSET"

	// Link errors
	ErrAlreadyLinked          ErrorCode = "ALREADY_LINKED"
	ErrNotLinked              ErrorCode = "NOT_LINKED"
	ErrCatalogInstanceMissing ErrorCode = "CATALOG_INSTANCE_MISSING"
	ErrIO                     ErrorCode = "IO"

	// Configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"
	ErrConfigSave ErrorCode = "CONFIG_SAVE"

	// Lookup errors
	ErrInstanceNotFound ErrorCode = "INSTANCE_NOT_FOUND"
)

// PacklinkError represents a structured error with code and details
type PacklinkError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PacklinkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PacklinkError) Unwrap() error {
	return e.Wrapped
}

// Is matches any PacklinkError carrying the same code
func (e *PacklinkError) Is(target error) bool {
	var targetErr *PacklinkError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PacklinkError with the given code and message
func New(code ErrorCode, message string) *PacklinkError {
	return &PacklinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PacklinkError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PacklinkError {
	return &PacklinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PacklinkError
func Wrap(err error, code ErrorCode, message string) *PacklinkError {
	if err == nil {
		return nil
	}
	return &PacklinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PacklinkError {
	if err == nil {
		return nil
	}
	return &PacklinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PacklinkError) WithDetail(key string, value interface{}) *PacklinkError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var plErr *PacklinkError
	if errors.As(err, &plErr) {
		return plErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PacklinkError
func GetErrorCode(err error) ErrorCode {
	var plErr *PacklinkError
	if errors.As(err, &plErr) {
		return plErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PacklinkError
func GetErrorDetails(err error) map[string]interface{} {
	var plErr *PacklinkError
	if errors.As(err, &plErr) {
		return plErr.Details
	}
	return nil
}
