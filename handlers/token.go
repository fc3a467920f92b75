package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/R3Claimers/InsiderJobs/auth"
	"github.com/R3Claimers/InsiderJobs/models"
)

// TokenHandler renews session tokens for companies and job seekers alike
type TokenHandler struct {
	jwtService *auth.JWTService
}

// NewTokenHandler creates a new token handler
func NewTokenHandler(jwtService *auth.JWTService) *TokenHandler {
	return &TokenHandler{jwtService: jwtService}
}

// Refresh exchanges a valid session token for one with a new expiry
// @Summary Refresh session token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.TokenResponse "New token"
// @Failure 401 {object} models.MessageResponse "Invalid or expired token"
// @Router /auth/refresh [post]
func (h *TokenHandler) Refresh(c *gin.Context) {
	tokenString := auth.TokenFromRequest(c)
	if tokenString == "" {
		fail(c, http.StatusUnauthorized, "Not authorized, Login Again")
		return
	}

	token, err := h.jwtService.RefreshToken(tokenString)
	if err != nil {
		fail(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{Success: true, Token: token})
}
