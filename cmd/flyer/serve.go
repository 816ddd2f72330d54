package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-flyer/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the flyer SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game and its own round list; nothing
is shared between sessions and nothing is kept after they end.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.flyer/host_key

Examples:
  flyer serve                           # Listen on :23235 with auto-generated key
  flyer serve --ssh :2222               # Listen on port 2222
  flyer serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	s := loadSettings(os.Stderr)
	defer s.Close()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Game = s.game
	cfg.Theme = s.runtime.Theme
	cfg.Seed = s.runtime.Seed

	server, err := tui.NewSSHServer(cfg, s.logger)
	if err != nil {
		fatal(s, "cannot create server", err)
	}

	fmt.Printf("Starting flyer SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fatal(s, "server error", err)
	}
}
