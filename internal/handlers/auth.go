package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/datazhang-hub/portfolio/internal/middleware"
	"github.com/datazhang-hub/portfolio/pkg/config"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login checks the shared admin password and issues the session cookie
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	adminPassword := config.AppConfig.Admin.Password
	if adminPassword == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "admin password is not configured"})
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(adminPassword)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid password"})
		return
	}

	if err := middleware.SetSession(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout clears the session cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSession(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
