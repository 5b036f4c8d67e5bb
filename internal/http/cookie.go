package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow/internal/service"
)

// SessionCookieName es el nombre fijo de la cookie de sesion.
const SessionCookieName = "token"

func setSessionCookie(c *gin.Context, token string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(service.SessionTTL.Seconds()), "/", "", secure, true)
}

func clearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)
}
