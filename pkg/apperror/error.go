package apperror

import "net/http"

// AppError is the error type every usecase returns. It carries the HTTP
// status, a stable machine-readable error code and a human-readable
// message, so the delivery layer can render the API error envelope
// without inspecting module internals.
type AppError struct {
	Status    int         `json:"statusCode"`
	ErrorCode string      `json:"errorCode"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
	Err       error       `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetails returns a copy carrying extra context for the response body.
func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// WithMessage returns a copy with a more specific message, keeping the
// code and status. Used for per-field variants of a catalog entry.
func (e *AppError) WithMessage(message string) *AppError {
	clone := *e
	clone.Message = message
	return &clone
}

func New(status int, errorCode, message string, err error) *AppError {
	return &AppError{
		Status:    status,
		ErrorCode: errorCode,
		Message:   message,
		Err:       err,
	}
}

func BadRequest(errorCode, message string) *AppError {
	return New(http.StatusBadRequest, errorCode, message, nil)
}

func Forbidden(errorCode, message string) *AppError {
	return New(http.StatusForbidden, errorCode, message, nil)
}

func NotFound(errorCode, message string) *AppError {
	return New(http.StatusNotFound, errorCode, message, nil)
}

func Conflict(errorCode, message string) *AppError {
	return New(http.StatusConflict, errorCode, message, nil)
}

// Database wraps an unclassified persistence failure with the module's
// database error code.
func Database(errorCode string, err error) *AppError {
	return New(http.StatusInternalServerError, errorCode, "Error en la base de datos", err)
}

func Internal(errorCode, message string, err error) *AppError {
	return New(http.StatusInternalServerError, errorCode, message, err)
}
