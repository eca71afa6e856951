package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-agents/internal/analytics"
	"github.com/iamasit07/connect4-agents/internal/service/bot"
	"github.com/iamasit07/connect4-agents/internal/service/simulation"
	"github.com/iamasit07/connect4-agents/internal/transport/http/middleware"
)

type simulateRequest struct {
	First   string `json:"first" binding:"required"`
	Second  string `json:"second" binding:"required"`
	Games   int    `json:"games"`
	Seed    *int64 `json:"seed"`
	Workers int    `json:"workers"`
}

// Simulate runs a batch synchronously and answers with its summary. The
// finished batch is also published to analytics.
func (h *Handler) Simulate(c *gin.Context) {
	var req simulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	cfg := simulation.Config{
		First:   req.First,
		Second:  req.Second,
		Games:   req.Games,
		Seed:    h.Config.SimSeed,
		Workers: req.Workers,
		Columns: h.Config.BoardCols,
		Rows:    h.Config.BoardRows,
	}
	if cfg.Games == 0 {
		cfg.Games = h.Config.SimGames
	}
	if cfg.Workers == 0 {
		cfg.Workers = h.Config.SimWorkers
	}
	if req.Seed != nil {
		cfg.Seed = *req.Seed
	}
	if cfg.Games > h.Config.SimMaxGames {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Too many games requested"})
		return
	}

	summary, err := simulation.Run(c.Request.Context(), cfg)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, simulation.ErrInvalidConfig) || errors.Is(err, bot.ErrUnknownEngine) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	event := summary.Event()
	event["client"] = middleware.ClientFromContext(c)
	// the batch already succeeded; a broker outage only costs the event
	_ = h.Analytics.Emit(context.WithoutCancel(c.Request.Context()), analytics.EventSimulationCompleted, summary.BatchID, event)

	c.JSON(http.StatusOK, summary)
}
