package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/iamasit07/4-in-a-row/console/internal/config"
	"github.com/iamasit07/4-in-a-row/console/internal/service/game"
	"github.com/iamasit07/4-in-a-row/console/internal/service/session"
	"github.com/iamasit07/4-in-a-row/console/internal/transport/console"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect4",
		Short: "Two-player Connect 4 in the terminal",
		Long: `connect4 is a two-player Connect 4 game for a single console.

Players take turns typing a column number; the disk falls to the lowest free
cell and the first to line up four in a row, column or diagonal wins.

The board size can be changed with BOARD_ROWS and BOARD_COLUMNS
(environment or .env file).`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(config.LoadConfig(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// Run wires the console to the round and session services and plays until
// the players stop or the input runs out.
func Run(cfg *config.Config, in io.Reader, out io.Writer) error {
	if cfg.LogEnabled {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid board configuration: %w", err)
	}
	log.Printf("[CONFIG] Board %dx%d", cfg.BoardRows, cfg.BoardColumns)

	c := console.New(in, out)
	rounds := game.NewService(c, c, cfg.BoardRows, cfg.BoardColumns)
	sessionService := session.NewService(rounds, c, c)

	err := sessionService.Run()
	if errors.Is(err, console.ErrInputClosed) {
		log.Printf("[SESSION] Input closed after %d rounds", sessionService.Rounds())
		return nil
	}
	return err
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
