package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-flyer/internal/platform/window"
)

var (
	flagWidth  int
	flagHeight int
	flagDebug  bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a resizable desktop window and play there.

Controls:
  Space/Up/W/Enter/Click/Tap - Fly
  Esc/Q                      - Quit

Examples:
  flyer window
  flyer window --width 1280 --height 720 --debug`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 960, "Initial window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", 540, "Initial window height in pixels")
	windowCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show TPS/FPS counters")
}

func runWindow(_ *cobra.Command, _ []string) {
	s := loadSettings(os.Stderr)
	defer s.Close()

	s.runtime.ScreenW = flagWidth
	s.runtime.ScreenH = flagHeight

	s.logger.Info("opening window", "width", flagWidth, "height", flagHeight, "fps", s.game.Loop.TargetFPS)
	if err := window.Run(window.Options{
		Config:  s.game,
		Runtime: s.runtime,
		Logger:  s.logger,
		Debug:   flagDebug,
	}); err != nil {
		fatal(s, "window closed with error", err)
	}
}
