package domain

// Color is the owner of a slot. Empty marks an unoccupied slot.
type Color int

const (
	Empty  Color = 0
	First  Color = 1
	Second Color = 2
)

// Opponent returns the other playing color. Empty has no opponent.
func (c Color) Opponent() Color {
	switch c {
	case First:
		return Second
	case Second:
		return First
	}
	return Empty
}

func (c Color) String() string {
	switch c {
	case First:
		return "first"
	case Second:
		return "second"
	}
	return "empty"
}

// ParseColor accepts the wire names used by the API.
func ParseColor(s string) (Color, error) {
	switch s {
	case "first", "1":
		return First, nil
	case "second", "2":
		return Second, nil
	}
	return Empty, ErrInvalidColor
}

const (
	DefaultColumns = 7
	DefaultRows    = 6
	ToWin          = 4
)

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove     Error = "invalid move"
	ErrColumnFull      Error = "column is full"
	ErrNoLegalMove     Error = "no legal move: board is full"
	ErrInvalidGeometry Error = "slot index out of bounds"
	ErrInvalidColor    Error = "invalid color"
	ErrBoardShape      Error = "board rows must be non-empty and equal length"

	// move validation failures
	ErrNoTokenPlaced  Error = "no token was placed"
	ErrMultipleTokens Error = "more than one token was placed"
	ErrWrongColor     Error = "token placed with the wrong color"
	ErrTokenChanged   Error = "an existing token was removed or recolored"
	ErrFloatingToken  Error = "token is not resting on the column below it"
)
