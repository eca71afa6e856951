package websocket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect4-agents/internal/config"
	"github.com/iamasit07/connect4-agents/internal/domain"
	"github.com/iamasit07/connect4-agents/internal/service/simulation"
)

type fakePublisher struct {
	mu     sync.Mutex
	events []string
}

func (f *fakePublisher) Emit(_ context.Context, event, _ string, _ map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func newWatchServer(t *testing.T) (*httptest.Server, *ConnectionManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cm := NewConnectionManager()
	h := NewHandler(cm, &config.Config{BoardCols: 7, BoardRows: 6}, &fakePublisher{})
	r := gin.New()
	r.GET("/ws/watch", h.HandleWatch)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, cm
}

func wsURL(srv *httptest.Server, query string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/watch?" + query
}

// watch reads a whole stream and returns the move frames and the final frame.
func watch(t *testing.T, url string) ([]simulation.Turn, ServerMessage) {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	var start ServerMessage
	if err := conn.ReadJSON(&start); err != nil {
		t.Fatal(err)
	}
	if start.Type != MessageGameStart || start.Columns != 7 || start.Rows != 6 {
		t.Fatalf("first frame = %+v", start)
	}

	var turns []simulation.Turn
	for {
		var msg ServerMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("stream ended before game_over: %v", err)
		}
		switch msg.Type {
		case MessageMove:
			turns = append(turns, *msg.Turn)
		case MessageGameOver:
			return turns, msg
		default:
			t.Fatalf("unexpected frame %+v", msg)
		}
	}
}

func TestWatchStreamsWholeGame(t *testing.T) {
	srv, _ := newWatchServer(t)
	turns, over := watch(t, wsURL(srv, "first=lookahead&second=easy&seed=42"))

	if over.Moves != len(turns) || len(turns) == 0 {
		t.Fatalf("moves = %d, frames = %d", over.Moves, len(turns))
	}
	if over.Outcome == simulation.Errored.String() {
		t.Fatalf("game errored: %s", over.Message)
	}

	b := domain.NewBoard(7, 6)
	for i, turn := range turns {
		if turn.Number != i+1 {
			t.Errorf("turn %d numbered %d", i+1, turn.Number)
		}
		if i > 0 && turn.Color == turns[i-1].Color {
			t.Errorf("turn %d: %s moved twice", i+1, turn.Color)
		}
		row, err := b.DropDisk(turn.Column, turn.Color)
		if err != nil || row != turn.Row {
			t.Fatalf("turn %d: replay row %d err %v, frame row %d", i+1, row, err, turn.Row)
		}
	}
	if over.Starter != turns[0].Color.String() {
		t.Errorf("starter = %s, first mover = %s", over.Starter, turns[0].Color)
	}
}

func TestWatchIsReproducible(t *testing.T) {
	srv, _ := newWatchServer(t)
	url := wsURL(srv, "first=adjacency&second=lookahead&seed=9")

	a, overA := watch(t, url)
	b, overB := watch(t, url)
	if overA.Outcome != overB.Outcome || len(a) != len(b) {
		t.Fatalf("runs differ: %s/%d vs %s/%d", overA.Outcome, len(a), overB.Outcome, len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("turn %d differs: %+v vs %+v", i+1, a[i], b[i])
		}
	}
}

func TestWatchRejectsBadQuery(t *testing.T) {
	srv, cm := newWatchServer(t)
	for _, q := range []string{"first=nope", "seed=abc"} {
		_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, q), nil)
		if err == nil {
			t.Fatalf("%s: dial succeeded", q)
		}
		if resp == nil || resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: response %v", q, resp)
		}
	}
	if cm.Count() != 0 {
		t.Errorf("%d connections left open", cm.Count())
	}
}
