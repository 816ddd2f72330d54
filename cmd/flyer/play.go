package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-flyer/internal/platform/tui"
	"github.com/vovakirdan/neon-flyer/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the current terminal.

Controls:
  Space/Up/W/Enter/Click - Fly (also starts a round and dismisses game over)
  Tab                    - Session rounds
  ?                      - Toggle help
  Q/Ctrl+C               - Quit

Logs are discarded unless --log-file is given, so they never garble the
screen.

Examples:
  flyer play
  flyer play --theme mono
  flyer play --log-file flyer.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	s := loadSettings(io.Discard)
	defer s.Close()

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		s.runtime.ScreenW = w
		s.runtime.ScreenH = h
	}

	// Rounds live only as long as this process
	ledger, err := storage.OpenSession()
	if err != nil {
		s.logger.Warn("could not open session ledger", "error", err)
	}

	runErr := tui.Run(tui.Options{
		Config:  s.game,
		Runtime: s.runtime,
		Ledger:  ledger,
		Logger:  s.logger,
	})

	if ledger != nil {
		ledger.Close()
	}

	if runErr != nil {
		fatal(s, "game stopped", runErr)
	}
}
