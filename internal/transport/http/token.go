package http

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-agents/pkg/auth"
)

type tokenRequest struct {
	Client string `json:"client" binding:"required"`
	Secret string `json:"secret" binding:"required"`
}

// IssueToken exchanges API client credentials for a short lived access
// token carrying the simulate scope.
func (h *Handler) IssueToken(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	req.Client = strings.TrimSpace(req.Client)
	hash, ok := h.Config.APIClients[req.Client]
	if !ok || !auth.CheckSecretHash(req.Secret, hash) {
		log.Printf("[AUTH] Invalid credentials for client %q", req.Client)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid client credentials"})
		return
	}

	token, err := auth.GenerateAccessToken(h.Config.JWTSecret, req.Client, []string{auth.ScopeSimulate}, h.Config.TokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresIn": int(h.Config.TokenTTL.Seconds()),
	})
}
