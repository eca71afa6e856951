package websocket

import "github.com/iamasit07/connect4-agents/internal/service/simulation"

const (
	MessageGameStart = "game_start"
	MessageMove      = "move"
	MessageGameOver  = "game_over"
	MessageError     = "error"
)

// ServerMessage is the single frame type of a watch stream; Type says
// which of the optional fields are set.
type ServerMessage struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
	GameID  string `json:"gameId,omitempty"`

	// game_start
	First   string `json:"first,omitempty"`
	Second  string `json:"second,omitempty"`
	Seed    int64  `json:"seed,omitempty"`
	Columns int    `json:"columns,omitempty"`
	Rows    int    `json:"rows,omitempty"`

	// move
	Turn *simulation.Turn `json:"turn,omitempty"`

	// game_over
	Outcome string `json:"outcome,omitempty"`
	Starter string `json:"starter,omitempty"`
	Moves   int    `json:"moves,omitempty"`
}
