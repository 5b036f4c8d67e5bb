package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskflow/internal/service"
)

const (
	msgUnauthorized       = "Unauthorized"
	msgInvalidCredentials = "Invalid credentials"
	msgForbidden          = "Forbidden"
	msgTaskNotFound       = "Task not found"
	msgTitleRequired      = "Title is required"
	msgInvalidStatus      = "Invalid status"
	msgInvalidTaskID      = "Invalid task id"
	msgInvalidRequest     = "Invalid request"
	msgEmailTaken         = "Email already registered"
	msgPasswordTooLong    = "Password must be at most 72 bytes"
	msgInternal           = "Internal server error"
)

// respondError traduce errores de servicio a status + mensaje estable.
// Lo que no es un error conocido se loguea y sale como 500 generico.
func respondError(c *gin.Context, logger *zap.Logger, op string, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": msgUnauthorized})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": msgInvalidCredentials})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": msgForbidden})
	case errors.Is(err, service.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": msgTaskNotFound})
	case errors.Is(err, service.ErrInvalidTitle):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgTitleRequired})
	case errors.Is(err, service.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidStatus})
	case errors.Is(err, service.ErrInvalidSignup):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidRequest})
	case errors.Is(err, service.ErrPasswordTooLong):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgPasswordTooLong})
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": msgEmailTaken})
	default:
		logger.Error(op+" failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
	}
}
