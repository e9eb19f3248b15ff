package domain

import "fmt"

// Board is indexed [row][column]; row 0 is the top and the last row is the bottom
type Board [][]PlayerID

func NewBoard(rows, columns int) (Board, error) {
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, columns)
	}

	board := make(Board, rows)
	for i := range board {
		board[i] = make([]PlayerID, columns)
	}
	return board, nil
}

func (b Board) Rows() int {
	return len(b)
}

func (b Board) Columns() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

func IsValidMove(board Board, column int) bool {
	return ValidateMove(board, column) == nil
}

// ValidateMove tells why a column can't take another disk, or nil if it can
func ValidateMove(board Board, column int) error {
	if column < 0 || column >= board.Columns() {
		return ErrOutOfRange
	}

	// disks stack from the bottom so the column is full once the top cell is taken
	if board[0][column] != Empty {
		return ErrColumnFull
	}

	return nil
}

func DropDisk(board Board, column int, player PlayerID) (int, error) {
	if err := ValidateMove(board, column); err != nil {
		return -1, fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}

	// shifting the disk from the bottom up till it
	// finds the first free cell
	for row := board.Rows() - 1; row >= 0; row-- {
		if board[row][column] == Empty {
			board[row][column] = player
			return row, nil
		}
	}

	return -1, fmt.Errorf("%w: %w", ErrInvalidMove, ErrColumnFull)
}

func IsBoardFull(board Board) bool {
	for c := 0; c < board.Columns(); c++ {
		if board[0][c] == Empty {
			return false
		}
	}

	return true
}

// this creates a deep copy of the board
func CopyBoard(board Board) Board {
	newBoard := make(Board, len(board))
	for i := range board {
		newBoard[i] = make([]PlayerID, len(board[i]))
		copy(newBoard[i], board[i])
	}
	return newBoard
}

func GetValidMoves(board Board) []int {
	validMoves := []int{}
	for col := 0; col < board.Columns(); col++ {
		if IsValidMove(board, col) {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}
