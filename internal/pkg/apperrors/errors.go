package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrCourseNotFound  = errors.New("course not found")
	ErrTagTypeNotFound = errors.New("tag type not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Store errors. StoreUnavailable covers any failed count or item fetch;
	// a request never returns a partial envelope. SchemaMismatch means the
	// tag or offering schema does not match what the query layer expects and
	// must not be reported as an empty result.
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrSchemaMismatch   = errors.New("schema mismatch")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewStoreError wraps a failed store round-trip.
func NewStoreError(message string) error {
	return &CustomError{
		Err:     ErrStoreUnavailable,
		Message: message,
	}
}

// NewSchemaError wraps a schema-level failure.
func NewSchemaError(message string) error {
	return &CustomError{
		Err:     ErrSchemaMismatch,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}
