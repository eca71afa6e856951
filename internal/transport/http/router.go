package http

import (
	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-agents/internal/transport/http/middleware"
	"github.com/iamasit07/connect4-agents/pkg/auth"
)

// RegisterRoutes mounts the REST API on router. Simulation batches are
// the only protected route since they are the only costly one.
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	api := router.Group("/api")
	api.GET("/engines", h.ListEngines)
	api.POST("/move", h.Move)
	api.POST("/token", h.IssueToken)

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(h.Config.JWTSecret, auth.ScopeSimulate))
	protected.POST("/simulate", h.Simulate)

	router.GET("/health", h.Health)
}
