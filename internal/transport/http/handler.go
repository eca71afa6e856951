package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-agents/internal/config"
)

// Publisher receives analytics events. *analytics.Analytics satisfies it,
// including its nil value.
type Publisher interface {
	Emit(ctx context.Context, event, key string, payload map[string]any) error
}

type Handler struct {
	Config    *config.Config
	Analytics Publisher
}

func NewHandler(cfg *config.Config, publisher Publisher) *Handler {
	return &Handler{Config: cfg, Analytics: publisher}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
