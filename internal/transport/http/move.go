package http

import (
	"errors"
	"log"
	"math/rand"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-agents/internal/domain"
	"github.com/iamasit07/connect4-agents/internal/service/bot"
)

type moveRequest struct {
	Engine string  `json:"engine" binding:"required"`
	Board  [][]int `json:"board" binding:"required"`
	Color  string  `json:"color" binding:"required"`
	Seed   *int64  `json:"seed"`
}

type moveResponse struct {
	Engine string   `json:"engine"`
	Column int      `json:"column"`
	Row    int      `json:"row"`
	Rule   bot.Rule `json:"rule"`
}

// Move asks an engine for its next column on the posted board. The board
// is row-major with row 0 at the top, using 0 for empty, 1 and 2 for the
// two colors. Nothing is stored between requests.
func (h *Handler) Move(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	me, err := domain.ParseColor(req.Color)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grid := make([][]domain.Color, len(req.Board))
	for r, row := range req.Board {
		grid[r] = make([]domain.Color, len(row))
		for col, v := range row {
			grid[r][col] = domain.Color(v)
		}
	}
	board, err := domain.NewBoardFromGrid(grid)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var rng *rand.Rand
	if req.Seed != nil {
		rng = rand.New(rand.NewSource(*req.Seed))
	}
	engine, err := bot.NewEngine(req.Engine, rng)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	decision, err := engine.Decide(board, me, me.Opponent())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrNoLegalMove) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	row := board.LowestEmptyRow(decision.Column)
	log.Printf("[MOVE] %s as %s -> column %d (%s)", engine.Name(), me, decision.Column, decision.Rule)
	c.JSON(http.StatusOK, moveResponse{
		Engine: engine.Name(),
		Column: decision.Column,
		Row:    row,
		Rule:   decision.Rule,
	})
}
