package domain

type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Token is the character drawn for the player's disks.
func (p PlayerID) Token() string {
	switch p {
	case Player1:
		return "X"
	case Player2:
		return "O"
	default:
		return " "
	}
}

func (p PlayerID) Opponent() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

const (
	DefaultRows    = 6
	DefaultColumns = 7
	ToWin          = 4
)

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// Move is the cell a disk landed in, only kept long enough to check the win
type Move struct {
	Row    int
	Column int
	Player PlayerID
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove       Error = "invalid move"
	ErrColumnFull        Error = "column is full"
	ErrOutOfRange        Error = "column out of range"
	ErrNotANumber        Error = "column is not a number"
	ErrInvalidDimensions Error = "board dimensions must be positive"
	ErrGameOver          Error = "game is already over"
)
