package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskflow/internal/service"
)

// UserHandler mantiene dependencias para endpoints de autenticacion.
type UserHandler struct {
	logger       *zap.Logger
	userServ     *service.UserService
	jwtServ      *service.JWTService
	secureCookie bool
}

// NewUserHandler crea una instancia de UserHandler. secureCookie se activa en produccion.
func NewUserHandler(logger *zap.Logger, userServ *service.UserService, jwtServ *service.JWTService, secureCookie bool) *UserHandler {
	return &UserHandler{
		logger:       logger,
		userServ:     userServ,
		jwtServ:      jwtServ,
		secureCookie: secureCookie,
	}
}

// Signup maneja POST /api/auth/signup.
func (h *UserHandler) Signup(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid signup request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidRequest})
		return
	}

	user, err := h.userServ.Signup(c.Request.Context(), service.SignupInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, h.logger, "signup", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "user": user.Identity()})
}

// Login maneja POST /api/auth/login.
func (h *UserHandler) Login(c *gin.Context) {
	// Campos vacios no son 400: caen en el mismo "invalid credentials" que el resto.
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidRequest})
		return
	}

	user, err := h.userServ.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, "login", err)
		return
	}

	token, err := h.jwtServ.Issue(user)
	if err != nil {
		respondError(c, h.logger, "jwt issue", err)
		return
	}

	setSessionCookie(c, token, h.secureCookie)
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "user": user.Identity()})
}

// Logout maneja POST /api/auth/logout. Solo borra la cookie; el token no se revoca.
func (h *UserHandler) Logout(c *gin.Context) {
	clearSessionCookie(c, h.secureCookie)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// Me maneja GET /api/auth/me.
func (h *UserHandler) Me(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": msgUnauthorized})
		return
	}
	c.JSON(http.StatusOK, identity)
}
