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

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrFileRemove   ErrorCode = "FILE_REMOVE"
	ErrFileReplace  ErrorCode = "FILE_REPLACE"

	// Resolution errors
	ErrPromptFailed ErrorCode = "PROMPT_FAILED"
	ErrMergeFailed  ErrorCode = "MERGE_FAILED"
	ErrDiffFailed   ErrorCode = "DIFF_FAILED"

	// Session errors
	ErrSessionFatal ErrorCode = "SESSION_FATAL"
)

// ConfmendError represents a structured error with code and details
type ConfmendError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ConfmendError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ConfmendError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ConfmendError) Is(target error) bool {
	var targetErr *ConfmendError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ConfmendError with the given code and message
func New(code ErrorCode, message string) *ConfmendError {
	return &ConfmendError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ConfmendError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ConfmendError {
	return &ConfmendError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ConfmendError
func Wrap(err error, code ErrorCode, message string) *ConfmendError {
	if err == nil {
		return nil
	}
	return &ConfmendError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ConfmendError {
	if err == nil {
		return nil
	}
	return &ConfmendError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ConfmendError) WithDetail(key string, value interface{}) *ConfmendError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var cerr *ConfmendError
	if errors.As(err, &cerr) {
		return cerr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not
// a ConfmendError
func GetErrorCode(err error) ErrorCode {
	var cerr *ConfmendError
	if errors.As(err, &cerr) {
		return cerr.Code
	}
	return ErrUnknown
}
