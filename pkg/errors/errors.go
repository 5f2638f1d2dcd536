// Package errors provides structured error handling for the application
// with user-displayable messages and retry hints for the UI layer
package errors

import (
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"
)

// ErrorCode represents an error code
type ErrorCode string

// Error codes for the failure scenarios the assistant surfaces to the user
const (
	// Input and lookup errors
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeNotFound         ErrorCode = "NOT_FOUND"

	// Generation pipeline errors
	CodeConfiguration   ErrorCode = "CONFIGURATION_ERROR"
	CodeTransport       ErrorCode = "TRANSPORT_ERROR"
	CodeGenerationParse ErrorCode = "GENERATION_PARSE_ERROR"

	// Local failures
	CodeStorage  ErrorCode = "STORAGE_ERROR"
	CodeInternal ErrorCode = "INTERNAL_ERROR"
)

// AppError represents an application error with structured information.
// Message is safe to display to the user; Details and Metadata carry the
// diagnostic payload. Retryable tells the UI whether offering a retry
// button makes sense.
type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    string                 `json:"details,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	Retryable  bool                   `json:"retryable"`
	Cause      error                  `json:"-"`
	StackTrace string                 `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// StatusCode returns the appropriate HTTP status code
func (e *AppError) StatusCode() int {
	switch e.Code {
	case CodeValidationFailed:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConfiguration:
		return http.StatusServiceUnavailable
	case CodeTransport, CodeGenerationParse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// WithMetadata adds metadata to the error
func (e *AppError) WithMetadata(key string, value interface{}) *AppError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// WithCause adds a cause error
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message, details string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Details:    details,
		StackTrace: getStackTrace(),
	}
}

// Predefined error constructors for common scenarios

// NewValidationError creates a validation error
func NewValidationError(details string) *AppError {
	return NewAppError(CodeValidationFailed, "Validation failed", details)
}

// NewNotFoundError creates a not found error. Removal operations treat it
// as a signal for a no-op rather than a failure.
func NewNotFoundError(resource string) *AppError {
	message := "Resource not found"
	if resource != "" {
		message = fmt.Sprintf("%s not found", strings.Title(resource))
	}
	return NewAppError(CodeNotFound, message, "")
}

// NewConfigurationError creates a configuration error. It is raised before
// any network call is attempted and is not retryable until the user fixes
// the settings.
func NewConfigurationError(details string) *AppError {
	return NewAppError(
		CodeConfiguration,
		"Recipe generation is not configured. Add your API key in settings.",
		details,
	)
}

// NewMissingCredentialError reports an absent API key for a provider
func NewMissingCredentialError(provider string) *AppError {
	return NewConfigurationError(
		fmt.Sprintf("no API key configured for %s", provider),
	).WithMetadata("provider", provider)
}

// NewTransportError creates a transport error for network failures and
// non-success upstream responses
func NewTransportError(details string, cause error) *AppError {
	err := NewAppError(
		CodeTransport,
		"Could not reach the recipe service. Check your connection and try again.",
		details,
	).WithCause(cause)
	err.Retryable = true
	return err
}

// NewUpstreamStatusError creates a transport error for a non-2xx response
func NewUpstreamStatusError(status int, body string) *AppError {
	return NewTransportError(
		fmt.Sprintf("upstream returned status %d", status), nil,
	).WithMetadata("status", status).WithMetadata("body", body)
}

// NewGenerationParseError creates a parse error for responses that carried
// no usable JSON payload. Regenerating may succeed, so it is retryable.
func NewGenerationParseError(details string, cause error) *AppError {
	err := NewAppError(
		CodeGenerationParse,
		"The generated answer could not be read. Please try again.",
		details,
	).WithCause(cause)
	err.Retryable = true
	return err
}

// NewStorageError creates a storage error
func NewStorageError(operation string, cause error) *AppError {
	return NewAppError(
		CodeStorage,
		"Saving your data failed",
		fmt.Sprintf("failed to %s", operation),
	).WithCause(cause)
}

// NewInternalError creates an internal error
func NewInternalError(message string) *AppError {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return NewAppError(CodeInternal, message, "")
}

// Utility functions

// Wrap wraps an error as an internal error if it's not already an AppError
func Wrap(err error, message string) *AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := err.(*AppError); ok {
		return appErr
	}

	return NewInternalError(message).WithCause(err)
}

// Is checks if an error is of a specific error code
func Is(err error, code ErrorCode) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}

// IsNotFound reports whether an error is the benign not-found case
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsRetryable reports whether the UI should offer a retry for this error
func IsRetryable(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Retryable
	}
	return false
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return CodeInternal
}

// getStackTrace captures the current stack trace
func getStackTrace() string {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var builder strings.Builder
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "pkg/errors") {
			builder.WriteString(fmt.Sprintf("%s:%d %s\n", frame.File, frame.Line, frame.Function))
		}
		if !more {
			break
		}
	}

	return builder.String()
}

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Value   interface{} `json:"value"`
	Tag     string      `json:"tag"`
	Message string      `json:"message"`
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}

	if len(v) == 1 {
		return v[0].Message
	}

	var messages []string
	for _, err := range v {
		messages = append(messages, err.Message)
	}

	return strings.Join(messages, "; ")
}

// NewValidationErrors creates validation errors from validator errors
func NewValidationErrors(errors []ValidationError) *AppError {
	validationErrs := ValidationErrors(errors)

	return NewAppError(
		CodeValidationFailed,
		"Validation failed",
		validationErrs.Error(),
	).WithMetadata("validation_errors", validationErrs)
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails represents the error details in API responses
type ErrorDetails struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Retryable bool                   `json:"retryable"`
	RequestID string                 `json:"request_id,omitempty"`
	Timestamp string                 `json:"timestamp"`
}

// ToErrorResponse converts an AppError to an API error response
func ToErrorResponse(err *AppError, requestID string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetails{
			Code:      err.Code,
			Message:   err.Message,
			Details:   err.Details,
			Metadata:  err.Metadata,
			Retryable: err.Retryable,
			RequestID: requestID,
			Timestamp: fmt.Sprintf("%d", time.Now().Unix()),
		},
	}
}
