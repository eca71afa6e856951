package websocket

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect4-agents/internal/analytics"
	"github.com/iamasit07/connect4-agents/internal/config"
	"github.com/iamasit07/connect4-agents/internal/service/bot"
	"github.com/iamasit07/connect4-agents/internal/service/simulation"
	"github.com/iamasit07/connect4-agents/pkg/uid"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

type Publisher interface {
	Emit(ctx context.Context, event, key string, payload map[string]any) error
}

// Handler streams a single engine-vs-engine game to a spectator, one
// frame per move.
type Handler struct {
	ConnManager *ConnectionManager
	Analytics   Publisher
	Columns     int
	Rows        int
	Delay       time.Duration
	Upgrader    websocket.Upgrader
}

func NewHandler(cm *ConnectionManager, cfg *config.Config, publisher Publisher) *Handler {
	return &Handler{
		ConnManager: cm,
		Analytics:   publisher,
		Columns:     cfg.BoardCols,
		Rows:        cfg.BoardRows,
		Delay:       cfg.WatchDelay,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWatch validates the query, upgrades the connection and plays the
// game. Query: first, second (engine kinds), optional seed.
func (h *Handler) HandleWatch(c *gin.Context) {
	cfg := simulation.Config{
		First:   c.DefaultQuery("first", bot.KindLookahead),
		Second:  c.DefaultQuery("second", bot.KindAdjacency),
		Seed:    time.Now().UnixNano(),
		Columns: h.Columns,
		Rows:    h.Rows,
	}
	if s := c.Query("seed"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "seed must be an integer"})
			return
		}
		cfg.Seed = seed
	}
	first, second, rng, err := simulation.SeededGame(cfg, 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	gameID := uid.GenerateGameID()
	h.ConnManager.AddConnection(gameID, conn)
	defer h.ConnManager.RemoveConnection(gameID)

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	go h.readPump(conn, cancel)
	go h.pingPump(ctx, conn)

	log.Printf("[WS] Watch %s: %s vs %s, seed %d", gameID, cfg.First, cfg.Second, cfg.Seed)
	h.ConnManager.SendMessage(gameID, ServerMessage{
		Type:    MessageGameStart,
		GameID:  gameID,
		First:   first.Name(),
		Second:  second.Name(),
		Seed:    cfg.Seed,
		Columns: cfg.Columns,
		Rows:    cfg.Rows,
	})

	result := simulation.PlayGame(cfg.Columns, cfg.Rows, first, second, rng, func(turn simulation.Turn) {
		if ctx.Err() != nil {
			return
		}
		if err := h.ConnManager.SendMessage(gameID, ServerMessage{Type: MessageMove, GameID: gameID, Turn: &turn}); err != nil {
			cancel()
			return
		}
		h.wait(ctx)
	})

	if ctx.Err() != nil {
		log.Printf("[WS] Watch %s: spectator left", gameID)
		return
	}

	over := ServerMessage{
		Type:    MessageGameOver,
		GameID:  gameID,
		Outcome: result.Outcome.String(),
		Starter: result.Starter.String(),
		Moves:   result.Moves,
	}
	if result.Err != nil {
		over.Message = result.Err.Error()
	}
	h.ConnManager.SendMessage(gameID, over)
	h.ConnManager.Close(gameID, "game over")

	_ = h.Analytics.Emit(context.Background(), analytics.EventWatchFinished, gameID, map[string]any{
		"gameId":  gameID,
		"first":   cfg.First,
		"second":  cfg.Second,
		"seed":    cfg.Seed,
		"outcome": over.Outcome,
		"moves":   result.Moves,
	})
	log.Printf("[WS] Watch %s finished: %s after %d moves", gameID, over.Outcome, result.Moves)
}

func (h *Handler) wait(ctx context.Context) {
	if h.Delay <= 0 {
		return
	}
	t := time.NewTimer(h.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// readPump drains client frames so close and pong frames are processed,
// and cancels the game once the spectator goes away.
func (h *Handler) readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Spectator disconnected unexpectedly: %v", err)
			}
			return
		}
	}
}

func (h *Handler) pingPump(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
