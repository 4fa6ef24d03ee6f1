package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kodeksa-backend/internal/delivery/http/response"
	"kodeksa-backend/pkg/apperror"
	"kodeksa-backend/pkg/logger"
)

// ErrorHandler is the terminal error middleware. Handlers push errors
// with c.Error; classified AppErrors render their own envelope,
// anything else becomes a generic 500 without leaking internals.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Status >= http.StatusInternalServerError {
				logger.Log.Error("request failed",
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"errorCode", appErr.ErrorCode,
					"error", appErr.Err,
				)
			}
			response.AppError(c, appErr)
			return
		}

		logger.Log.Error("unhandled error",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR",
			"Ha ocurrido un error inesperado. Por favor, inténtalo de nuevo más tarde", nil)
	}
}
