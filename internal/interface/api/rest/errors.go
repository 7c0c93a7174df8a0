package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-registration-api/internal/application/services"
	domain "user-registration-api/internal/domain/user"
)

// statusFromError is the single boundary translation from error kind to
// HTTP status. Anything unclassified is an internal failure and its
// message never reaches the client.
func statusFromError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return http.StatusConflict, err.Error()
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func respondError(c *gin.Context, logger *zap.Logger, op string, err error) {
	status, msg := statusFromError(err)
	if status == http.StatusInternalServerError {
		logger.Error(op+" error", zap.Error(err))
	}
	c.JSON(status, gin.H{"error": msg})
}
