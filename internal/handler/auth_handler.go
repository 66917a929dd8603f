package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hemangkrish7/news-dashboard/internal/auth"
)

type AuthHandler struct {
	verifier *auth.Verifier
	secret   []byte
}

func NewAuthHandler(verifier *auth.Verifier, secret []byte) *AuthHandler {
	return &AuthHandler{verifier: verifier, secret: secret}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, ok := h.verifier.Verify(req.Email, req.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := auth.IssueToken(h.secret, user)
	if err != nil {
		slog.Error("error issuing token", "error", err, "email", user.Email)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User:  UserResponse{Name: user.Name, Email: user.Email, IsAdmin: user.IsAdmin},
	})
}
