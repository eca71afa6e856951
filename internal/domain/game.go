package domain

// Game tracks one match between two colors on a single board.
type Game struct {
	Board         *Board
	CurrentPlayer Color
	Status        GameStatus
	Winner        Color
	MoveCount     int
}

func NewGame(cols, rows int, starter Color) *Game {
	return &Game{
		Board:         NewBoard(cols, rows),
		CurrentPlayer: starter,
		Status:        StatusActive,
		Winner:        Empty,
	}
}

func (g *Game) MakeMove(player Color, column int) (int, error) {
	if g.Status != StatusActive || player != g.CurrentPlayer {
		return -1, ErrInvalidMove
	}

	if !g.Board.IsValidMove(column) {
		return -1, ErrInvalidMove
	}

	row, err := g.Board.DropDisk(column, player)
	if err != nil {
		return -1, err
	}
	g.Settle(row, column)
	return row, nil
}

// Settle records a token that already landed at (row, column) for the
// current player: it updates the status and passes the turn.
func (g *Game) Settle(row, column int) {
	g.MoveCount++

	if CheckWin(g.Board, row, column, g.CurrentPlayer) {
		g.Status = StatusWon
		g.Winner = g.CurrentPlayer
		return
	}

	if g.Board.IsFull() {
		g.Status = StatusDraw
		return
	}

	g.CurrentPlayer = g.CurrentPlayer.Opponent()
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
