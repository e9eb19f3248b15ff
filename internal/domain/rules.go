package domain

// CheckWin reports whether the disk just dropped at (row, column) gave player
// ToWin in a row. Only lines through that cell are scanned, which is enough
// as long as it runs after every move.
func CheckWin(board Board, row, column int, player PlayerID) bool {
	rows, columns := board.Rows(), board.Columns()

	// Check vertical (through this column)
	count := 0
	for r := 0; r < rows; r++ {
		if board[r][column] == player {
			count++
			if count == ToWin {
				return true
			}
		} else {
			count = 0
		}
	}

	// Check horizontal (through this row)
	count = 0
	for c := 0; c < columns; c++ {
		if board[row][c] == player {
			count++
			if count == ToWin {
				return true
			}
		} else {
			count = 0
		}
	}

	// Check diagonal \ and then /, ToWin-1 cells either side is enough
	// to see every run that touches (row, column)
	if scanDiagonal(board, row, column, 1, player) {
		return true
	}
	return scanDiagonal(board, row, column, -1, player)
}

// scanDiagonal walks (row+d, column+d*colStep) for d in [-(ToWin-1), ToWin-1]
func scanDiagonal(board Board, row, column, colStep int, player PlayerID) bool {
	rows, columns := board.Rows(), board.Columns()

	count := 0
	for d := -(ToWin - 1); d <= ToWin-1; d++ {
		r, c := row+d, column+d*colStep
		if r >= 0 && r < rows && c >= 0 && c < columns && board[r][c] == player {
			count++
			if count == ToWin {
				return true
			}
		} else {
			count = 0
		}
	}

	return false
}
