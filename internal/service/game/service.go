package game

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

const (
	MsgEnterNumber = "Invalid input. Please enter a number."
	MsgTryAgain    = "Invalid input. Please try again."
	MsgDraw        = "The board is full, it's a DRAW!!!"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_console.go github.com/iamasit07/4-in-a-row/console/internal/service/game Prompter,Renderer

type Prompter interface {
	ReadLine(prompt string) (string, error)
}

type Renderer interface {
	RenderBoard(board domain.Board) error
	Message(msg string) error
}

// RoundResult is what's left of a round once it's over
type RoundResult struct {
	RoundID string
	Winner  domain.PlayerID // Empty on a draw
	Draw    bool
	Moves   int
	Board   domain.Board
}

// PlayRound runs one game from an empty board until someone wins or the
// board fills up. Bad column input is re-asked forever; only I/O errors end
// the round early.
func (s *Service) PlayRound() (*RoundResult, error) {
	g, err := domain.NewGame(s.Rows, s.Columns)
	if err != nil {
		return nil, err
	}

	roundID := s.newRoundID()
	log.Printf("[ROUND] Started round %s on a %dx%d board", roundID, s.Rows, s.Columns)

	if err := s.Renderer.RenderBoard(g.Board); err != nil {
		return nil, fmt.Errorf("failed to render board: %w", err)
	}

	for !g.IsFinished() {
		player := g.CurrentPlayer

		column, err := s.readColumn(g.Board, player)
		if err != nil {
			return nil, err
		}

		move, err := g.MakeMove(column)
		if err != nil {
			// readColumn already validated, so this is a bug
			return nil, fmt.Errorf("failed to apply move: %w", err)
		}
		log.Printf("[ROUND] %s: player %d dropped into column %d, landed on row %d",
			roundID, move.Player, move.Column+1, move.Row)

		if err := s.Renderer.RenderBoard(g.Board); err != nil {
			return nil, fmt.Errorf("failed to render board: %w", err)
		}
	}

	result := &RoundResult{
		RoundID: roundID,
		Winner:  g.Winner,
		Draw:    g.Status == domain.StatusDraw,
		Moves:   g.MoveCount,
		Board:   g.Board,
	}

	if result.Draw {
		log.Printf("[ROUND] %s ended in a draw after %d moves", roundID, result.Moves)
		err = s.Renderer.Message(MsgDraw)
	} else {
		log.Printf("[ROUND] %s won by player %d after %d moves", roundID, result.Winner, result.Moves)
		err = s.Renderer.Message(fmt.Sprintf("Player %d WINS the game!!!", result.Winner))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to announce result: %w", err)
	}

	return result, nil
}

func (s *Service) readColumn(board domain.Board, player domain.PlayerID) (int, error) {
	prompt := fmt.Sprintf("Player %d, please input the column number: ", player)

	for {
		line, err := s.Prompter.ReadLine(prompt)
		if err != nil {
			return -1, err
		}

		column, err := ParseColumn(line, board)
		if err == nil {
			return column, nil
		}

		msg := MsgTryAgain
		if errors.Is(err, domain.ErrNotANumber) {
			msg = MsgEnterNumber
		}
		if err := s.Renderer.Message(msg); err != nil {
			return -1, fmt.Errorf("failed to write message: %w", err)
		}
	}
}

// ParseColumn turns a 1-indexed column typed by a player into a board index
// that can take a disk.
func ParseColumn(input string, board domain.Board) (int, error) {
	trimmed := strings.TrimSpace(input)

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		// a number too large for an int is still a number, just not a column
		if errors.Is(err, strconv.ErrRange) {
			return -1, fmt.Errorf("%w: %s", domain.ErrOutOfRange, trimmed)
		}
		return -1, fmt.Errorf("%w: %q", domain.ErrNotANumber, input)
	}

	column := n - 1
	if err := domain.ValidateMove(board, column); err != nil {
		return -1, fmt.Errorf("%w: %d", err, n)
	}

	return column, nil
}
