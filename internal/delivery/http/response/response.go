package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kodeksa-backend/pkg/apperror"
)

// ErrorBody is the JSON error envelope every failed request renders.
type ErrorBody struct {
	StatusCode int         `json:"statusCode"`
	Timestamp  string      `json:"timestamp"`
	Path       string      `json:"path"`
	Method     string      `json:"method"`
	ErrorCode  string      `json:"errorCode"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
}

// OK sends a 200 with the payload as-is.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 with the payload as-is.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends a 204.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// AppError renders a classified error with the request context filled in.
func AppError(c *gin.Context, appErr *apperror.AppError) {
	c.JSON(appErr.Status, ErrorBody{
		StatusCode: appErr.Status,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Path:       c.Request.URL.Path,
		Method:     c.Request.Method,
		ErrorCode:  appErr.ErrorCode,
		Message:    appErr.Message,
		Details:    appErr.Details,
	})
}

// Error renders an ad-hoc error for paths that never produce an AppError,
// such as the rate limiter and malformed-body rejections.
func Error(c *gin.Context, status int, errorCode, message string, details interface{}) {
	c.JSON(status, ErrorBody{
		StatusCode: status,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Path:       c.Request.URL.Path,
		Method:     c.Request.Method,
		ErrorCode:  errorCode,
		Message:    message,
		Details:    details,
	})
}
