package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskflow/internal/domain"
	"taskflow/internal/service"
)

const authIdentityKey = "auth_identity"

// AuthMiddleware lee la cookie de sesion, la resuelve con el guard y guarda la identidad en el contexto.
func AuthMiddleware(logger *zap.Logger, guard *service.AuthGuard) gin.HandlerFunc {
	return func(c *gin.Context) {
		if guard == nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "auth not configured"})
			return
		}

		// Cookie ausente y token invalido terminan igual.
		token, _ := c.Cookie(SessionCookieName)
		identity, err := guard.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msgUnauthorized})
				return
			}
			logger.Error("resolve session failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
			return
		}

		c.Set(authIdentityKey, identity)
		c.Next()
	}
}

// GetIdentity obtiene la identidad autenticada desde el contexto.
func GetIdentity(c *gin.Context) (domain.Identity, bool) {
	val, ok := c.Get(authIdentityKey)
	if !ok {
		return domain.Identity{}, false
	}
	identity, ok := val.(domain.Identity)
	return identity, ok
}
