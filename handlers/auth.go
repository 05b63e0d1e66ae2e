package handlers

import (
	"net/http"

	"hotelier/services/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes staff authentication endpoints.
type AuthHandler struct {
	Svc    auth.AuthService
	Logger *zap.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc auth.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		FullName string `json:"fullName" binding:"required"`
		Password string `json:"password" binding:"required,min=8"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Svc.Register(input.Email, input.FullName, input.Password, input.Role)
	if err != nil {
		h.Logger.Warn("registration failed", zap.String("email", input.Email), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Svc.Authenticate(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /api/auth/logout. Requires an authenticated session.
func (h *AuthHandler) Logout(c *gin.Context) {
	staffID, exists := c.Get("staffID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	if err := h.Svc.RevokeToken(staffID.(string)); err != nil {
		h.Logger.Error("logout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}
