package game

import (
	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/pkg/uid"
)

// Service is the entry point for playing a round (facade)
type Service struct {
	Prompter Prompter
	Renderer Renderer
	Rows     int
	Columns  int

	newRoundID func() string
}

func NewService(prompter Prompter, renderer Renderer, rows, columns int) *Service {
	return &Service{
		Prompter:   prompter,
		Renderer:   renderer,
		Rows:       rows,
		Columns:    columns,
		newRoundID: uid.GenerateRoundID,
	}
}

// NewDefaultService plays on the standard 6x7 board
func NewDefaultService(prompter Prompter, renderer Renderer) *Service {
	return NewService(prompter, renderer, domain.DefaultRows, domain.DefaultColumns)
}
