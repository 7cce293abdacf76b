package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Evaluation errors. All of these fold into a deny decision at the check
// boundary; they surface as errors only from the loader and HTTP layers.
const (
	// ErrCodeInvalidRef indicates a malformed type:id object reference.
	ErrCodeInvalidRef ErrorCode = "INVALID_REF"
	// ErrCodeNotFound indicates a referenced entity does not exist.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeUnknownPermission indicates no rule list is registered for a
	// (permission, object type) pair.
	ErrCodeUnknownPermission ErrorCode = "UNKNOWN_PERMISSION"
	// ErrCodeRecursionLimit indicates the defensive recursion cap was hit.
	ErrCodeRecursionLimit ErrorCode = "RECURSION_LIMIT"
)

// Authentication/Authorization errors
const (
	// ErrCodeUnauthorized indicates the request is unauthorized.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeForbidden indicates the request is forbidden.
	ErrCodeForbidden ErrorCode = "FORBIDDEN"
	// ErrCodeInvalidToken indicates the authentication token is invalid.
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
