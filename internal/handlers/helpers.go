package handlers

import (
	"errors"
	"net/http"

	"workouthelper/internal/service"

	"github.com/gin-gonic/gin"
)

// bindJSONOrBadRequest binds the request body into dst and writes a 400 on
// failure. Returns false if the request was already handled.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.Request.URL.Path, "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondServiceError maps service-layer errors to HTTP statuses.
// Validation and conflict failures carry their constraint message; unknown
// failures are logged and answered with a generic 500.
func (h *Handler) respondServiceError(c *gin.Context, err error, logKey string) {
	var (
		validationErr *service.ValidationError
		conflictErr   *service.ConflictError
		notFoundErr   *service.NotFoundError
	)
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Msg})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": conflictErr.Msg})
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidOldPassword),
		errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Msg})
	default:
		if h.log != nil {
			h.log.Errorw(logKey, "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
