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
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Walk errors
	ErrDirRead ErrorCode = "DIR_READ"

	// Copy errors
	ErrDirCreate  ErrorCode = "DIR_CREATE"
	ErrFileCopy   ErrorCode = "FILE_COPY"
	ErrFileExists ErrorCode = "FILE_EXISTS"
)

// FilterError represents a structured error with code and details
type FilterError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FilterError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FilterError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FilterError) Is(target error) bool {
	var targetErr *FilterError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FilterError with the given code and message
func New(code ErrorCode, message string) *FilterError {
	return &FilterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FilterError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FilterError {
	return &FilterError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FilterError
func Wrap(err error, code ErrorCode, message string) *FilterError {
	if err == nil {
		return nil
	}
	return &FilterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FilterError {
	if err == nil {
		return nil
	}
	return &FilterError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FilterError) WithDetail(key string, value interface{}) *FilterError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var filterErr *FilterError
	if errors.As(err, &filterErr) {
		return filterErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FilterError
func GetErrorCode(err error) ErrorCode {
	var filterErr *FilterError
	if errors.As(err, &filterErr) {
		return filterErr.Code
	}
	return ErrUnknown
}
