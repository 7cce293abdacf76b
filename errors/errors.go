// Package errors provides unified error handling for authzkit.
// It implements structured error types with error codes and HTTP status
// mapping. The evaluation error codes mirror the failure taxonomy of the
// permission evaluator: every one of them resolves to a deny decision at the
// check boundary and is distinguishable only through the advisory reason.
package errors

import (
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// --- Common Error Constructors ---

// InvalidRef creates a new AppError for a malformed type:id reference.
func InvalidRef(ref string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidRef, Message: fmt.Sprintf("malformed object reference %q, expected type:id", ref),
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"ref": ref},
	}
}

// NotFound creates a new AppError for an entity that was not found.
func NotFound(objectType, id string) *AppError {
	return &AppError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("no %s entity with id %q", objectType, id),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"type": objectType, "id": id},
	}
}

// UnknownPermission creates a new AppError for an unregistered
// (permission, object type) pair.
func UnknownPermission(permission, objectType string) *AppError {
	return &AppError{
		Code: ErrCodeUnknownPermission, Message: fmt.Sprintf("no rules registered for permission %q on type %q", permission, objectType),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"permission": permission, "type": objectType},
	}
}

// RecursionLimit creates a new AppError for a hit recursion cap.
func RecursionLimit(depth int) *AppError {
	return &AppError{
		Code: ErrCodeRecursionLimit, Message: fmt.Sprintf("recursion limit exceeded at depth %d", depth),
		HTTPStatus: http.StatusInternalServerError,
		Details:    map[string]any{"depth": depth},
	}
}

// Unauthorized creates a new AppError for an unauthorized request.
func Unauthorized(message string) *AppError {
	if message == "" {
		message = "Authentication required."
	}
	return &AppError{
		Code: ErrCodeUnauthorized, Message: message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Forbidden creates a new AppError for a forbidden request.
func Forbidden(message string) *AppError {
	if message == "" {
		message = "You do not have permission to perform this action."
	}
	return &AppError{
		Code: ErrCodeForbidden, Message: message,
		HTTPStatus: http.StatusForbidden,
	}
}

// Validation creates a new AppError for invalid input.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// Internal creates a new AppError wrapping an unexpected error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An internal error occurred.",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}
