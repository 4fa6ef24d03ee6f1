package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kodeksa-backend/internal/domain"
	"kodeksa-backend/pkg/apperror"
)

// queryInt parses an int query parameter, falling back on absence or
// garbage.
func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// queryBool returns nil when the parameter is absent so filters can
// distinguish "not set" from false.
func queryBool(c *gin.Context, name string) *bool {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

func listOptions(c *gin.Context) domain.ListOptions {
	return domain.ListOptions{
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 10),
	}
}

// bindError converts a gin binding failure into the standard envelope.
func bindError(c *gin.Context, err error) {
	appErr := apperror.New(http.StatusBadRequest, "VALIDATION_ERROR",
		"El cuerpo de la solicitud no es válido", err).WithDetails(err.Error())
	c.Error(appErr)
}
