package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-agents/internal/service/bot"
)

type engineResponse struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
}

// ListEngines returns every engine kind the move and simulate endpoints accept.
func (h *Handler) ListEngines(c *gin.Context) {
	kinds := bot.Kinds()
	response := make([]engineResponse, 0, len(kinds))
	for _, kind := range kinds {
		response = append(response, engineResponse{Kind: kind, Name: bot.EngineNames[kind]})
	}
	c.JSON(http.StatusOK, response)
}
