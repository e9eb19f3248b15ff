package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckWin(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		row    int
		col    int
		player PlayerID
		want   bool
	}{
		{
			name: "vertical",
			rows: []string{
				".......",
				".......",
				"X......",
				"X......",
				"X......",
				"X......",
			},
			row: 2, col: 0, player: Player1, want: true,
		},
		{
			name: "horizontal on the bottom row",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				"XXXX...",
			},
			row: 5, col: 3, player: Player1, want: true,
		},
		{
			name: "horizontal with the last disk in the middle",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				"...OO..",
				"..XXXXO",
			},
			row: 5, col: 3, player: Player1, want: true,
		},
		{
			name: "diagonal down-right",
			rows: []string{
				".......",
				".......",
				"..O....",
				"..XO...",
				"..XXO..",
				"..XXXO.",
			},
			row: 5, col: 5, player: Player2, want: true,
		},
		{
			name: "diagonal down-right checked from the top end",
			rows: []string{
				".......",
				".......",
				"..O....",
				"..XO...",
				"..XXO..",
				"..XXXO.",
			},
			row: 2, col: 2, player: Player2, want: true,
		},
		{
			name: "diagonal up-right",
			rows: []string{
				".......",
				".......",
				"......X",
				".....XO",
				"....XOO",
				"...XOOX",
			},
			row: 3, col: 5, player: Player1, want: true,
		},
		{
			name: "longer than four still wins",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				"XXXXX..",
			},
			row: 5, col: 4, player: Player1, want: true,
		},
		{
			name: "first move of a round",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				"...X...",
			},
			row: 5, col: 3, player: Player1, want: false,
		},
		{
			name: "four of the other player",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				"OOOOX..",
			},
			row: 5, col: 4, player: Player1, want: false,
		},
		{
			name: "run broken by opponent",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				"XXOXX..",
			},
			row: 5, col: 4, player: Player1, want: false,
		},
		{
			name: "count does not carry from the column into the row",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				"X......",
				"XXO....",
			},
			row: 5, col: 0, player: Player1, want: false,
		},
		{
			name: "diagonal cut by the board edge",
			rows: []string{
				".......",
				".......",
				".......",
				"X......",
				"OX.....",
				"OOX....",
			},
			row: 5, col: 2, player: Player1, want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := boardFromRows(t, tt.rows...)
			assert.Equal(t, tt.want, CheckWin(board, tt.row, tt.col, tt.player))
		})
	}
}

func TestCheckWinThreeInARowNeverWins(t *testing.T) {
	lines := map[string][]string{
		"vertical": {
			".......",
			".......",
			".......",
			"...O...",
			"...O...",
			"...O...",
		},
		"horizontal": {
			".......",
			".......",
			".......",
			".......",
			".......",
			"OOO....",
		},
		"diagonal": {
			".......",
			".......",
			".......",
			"....O..",
			"...OX..",
			"..OXX..",
		},
	}

	for name, rows := range lines {
		t.Run(name, func(t *testing.T) {
			board := boardFromRows(t, rows...)
			for r := range board {
				for c := range board[r] {
					if board[r][c] == Player2 {
						assert.False(t, CheckWin(board, r, c, Player2), "cell %d,%d", r, c)
					}
				}
			}
		})
	}
}

func TestCheckWinIsIdempotent(t *testing.T) {
	board := boardFromRows(t,
		".......",
		".......",
		"X......",
		"X......",
		"X......",
		"X......",
	)
	before := CopyBoard(board)

	for i := 0; i < 3; i++ {
		assert.True(t, CheckWin(board, 2, 0, Player1))
		assert.False(t, CheckWin(board, 2, 0, Player2))
	}
	assert.Equal(t, before, board)
}

func TestCheckWinOnNarrowBoard(t *testing.T) {
	board := boardFromRows(t,
		"X",
		"X",
		"X",
		"X",
	)
	assert.True(t, CheckWin(board, 0, 0, Player1))

	board = boardFromRows(t, "OOO")
	assert.False(t, CheckWin(board, 0, 2, Player2))
}
