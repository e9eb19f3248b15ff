package domain

type Game struct {
	Board         Board
	CurrentPlayer PlayerID
	Status        GameStatus
	Winner        PlayerID
	MoveCount     int
	LastMove      *Move
}

func NewGame(rows, columns int) (*Game, error) {
	board, err := NewBoard(rows, columns)
	if err != nil {
		return nil, err
	}

	return &Game{
		Board:         board,
		CurrentPlayer: Player1,
		Status:        StatusActive,
		Winner:        Empty,
		MoveCount:     0,
	}, nil
}

// MakeMove drops a disk for the current player. The board is left untouched
// when the move is rejected.
func (g *Game) MakeMove(column int) (Move, error) {
	if g.IsFinished() {
		return Move{}, ErrGameOver
	}

	row, err := DropDisk(g.Board, column, g.CurrentPlayer)
	if err != nil {
		return Move{}, err
	}

	move := Move{Row: row, Column: column, Player: g.CurrentPlayer}
	g.LastMove = &move
	g.MoveCount++

	if CheckWin(g.Board, row, column, g.CurrentPlayer) {
		g.Status = StatusWon
		g.Winner = g.CurrentPlayer
		return move, nil
	}

	if IsBoardFull(g.Board) {
		g.Status = StatusDraw
		return move, nil
	}

	g.CurrentPlayer = g.CurrentPlayer.Opponent()

	return move, nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
