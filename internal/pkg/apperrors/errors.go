package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
	// ErrInvalidReference is returned when a write points at a parent row that does not exist
	ErrInvalidReference = errors.New("referenced record does not exist")
	ErrConflict         = errors.New("conflict")
)

// Entity not-found errors. Each wraps ErrResourceNotFound so the HTTP layer can map
// them to 404 without knowing every entity.
var (
	ErrStudentNotFound = NewResourceNotFoundError("student not found")
	ErrTeacherNotFound = NewResourceNotFoundError("teacher not found")
	ErrCourseNotFound  = NewResourceNotFoundError("course not found")
	ErrPaymentNotFound = NewResourceNotFoundError("payment not found")
)

// Report errors
var (
	ErrUnknownReport     = NewResourceNotFoundError("unknown report")
	ErrUnsupportedFormat = NewBadRequestError("unsupported export format")
	// ErrReportUnavailable is returned by exports when the data store could not be read
	ErrReportUnavailable = errors.New("report data unavailable")
)

// Import errors
var (
	ErrInvalidSpreadsheet = NewBadRequestError("file is not a readable xlsx workbook")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
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

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
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
