package session

import (
	"fmt"
	"log"
	"strings"

	"github.com/iamasit07/4-in-a-row/console/internal/service/game"
)

const (
	PromptPlayAgain = "Wanna play another round? (yes/no): "
	MsgYesOrNo      = "Invalid input. Please answer with 'yes' or 'no'."
)

type RoundPlayer interface {
	PlayRound() (*game.RoundResult, error)
}

// Service keeps starting rounds until the players say they're done
type Service struct {
	rounds   RoundPlayer
	prompter game.Prompter
	renderer game.Renderer
	played   int
}

func NewService(rounds RoundPlayer, prompter game.Prompter, renderer game.Renderer) *Service {
	return &Service{
		rounds:   rounds,
		prompter: prompter,
		renderer: renderer,
	}
}

// Run plays a round, then asks whether to go again. It returns nil once the
// answer is no; any error from the console ends the session.
func (s *Service) Run() error {
	for {
		result, err := s.rounds.PlayRound()
		if err != nil {
			return fmt.Errorf("round %d: %w", s.played+1, err)
		}
		s.played++
		log.Printf("[SESSION] Round %s finished (%d played)", result.RoundID, s.played)

		again, err := s.askPlayAgain()
		if err != nil {
			return err
		}
		if !again {
			log.Printf("[SESSION] Players stopped after %d rounds", s.played)
			return nil
		}
	}
}

// Rounds is the number of rounds played to the end so far
func (s *Service) Rounds() int {
	return s.played
}

func (s *Service) askPlayAgain() (bool, error) {
	for {
		answer, err := s.prompter.ReadLine(PromptPlayAgain)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "yes":
			return true, nil
		case "no":
			return false, nil
		}

		if err := s.renderer.Message(MsgYesOrNo); err != nil {
			return false, fmt.Errorf("failed to write message: %w", err)
		}
	}
}
