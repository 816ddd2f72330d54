package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-flyer/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

The output is a complete config file: save it, edit it and pass it back
with --config.

Search order:
  --config path -> ~/.flyer/flyer.yaml -> ./configs/flyer.yaml -> built-in defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	s := loadSettings(os.Stderr)
	defer s.Close()

	data, err := config.Marshal(s.game)
	if err != nil {
		fatal(s, "cannot encode config", err)
	}

	fmt.Printf("# source: %s\n", s.source)
	os.Stdout.Write(data)
}
