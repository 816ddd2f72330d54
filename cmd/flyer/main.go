// flyer is an endless-runner arcade game: keep the flyer off the ground
// while a neon skyline scrolls past.
//
// Usage:
//
//	flyer play       - Play in the terminal
//	flyer window     - Play in a desktop window
//	flyer serve      - Start SSH server for remote play
//	flyer config     - Print the effective configuration
//	flyer themes     - List cosmetic variants
//
// Global flags:
//
//	--fps <rate>         - Target simulation rate (default: from config)
//	--seed <value>       - RNG seed for skyline heights
//	--config <path>      - Tuning config YAML
//	--theme <id>         - Cosmetic variant (default: neon)
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-flyer/internal/config"
	"github.com/vovakirdan/neon-flyer/internal/core"
	"github.com/vovakirdan/neon-flyer/internal/theme"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagTheme    string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flyer",
	Short: "Neon Flyer - an endless runner for terminals and desktops",
	Long: `Neon Flyer is a one-button endless runner. Tap to climb, let gravity
do the rest, and stay off the ground while the skyline scrolls past.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  config   - Print the effective configuration
  themes   - List cosmetic variants

Examples:
  flyer play
  flyer play --theme sunset --seed 42
  flyer window --fps 120
  flyer serve --ssh :2222
  flyer config --config ./my-flyer.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Target simulation rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to tuning config YAML")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", theme.DefaultID, "Cosmetic variant")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(themesCmd)
}

// settings is what every game command needs before starting.
type settings struct {
	game    config.Config
	source  string // Where the config came from
	runtime core.RuntimeConfig
	logger  *log.Logger
	closer  io.Closer // Log file, if any
}

func (s settings) Close() {
	if s.closer != nil {
		s.closer.Close()
	}
}

// loadSettings resolves logging, configuration and runtime flags.
// fallback receives log output when no --log-file is given.
// Any error here is fatal: the game loop never starts.
func loadSettings(fallback io.Writer) settings {
	var s settings

	out := fallback
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
			os.Exit(1)
		}
		out = f
		s.closer = f
	}
	s.logger = newLogger(out)

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fatal(s, "cannot load config", err)
	}
	s.logger.Debug("config loaded", "source", source)

	if rootCmd.PersistentFlags().Changed("fps") {
		cfg.Loop.TargetFPS = flagFPS
		if err := cfg.Validate(); err != nil {
			fatal(s, "invalid --fps", err)
		}
	}
	s.game = cfg
	s.source = source

	if !theme.Exists(flagTheme) {
		fatal(s, "unknown theme", fmt.Errorf("%q (run 'flyer themes')", flagTheme))
	}
	s.runtime = core.DefaultConfig()
	s.runtime.Seed = flagSeed
	s.runtime.Theme = flagTheme

	return s
}

func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flyer",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// fatal reports an initialization error on stderr and in the log, then exits.
func fatal(s settings, msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	s.logger.Error(msg, "error", err)
	s.Close()
	os.Exit(1)
}
