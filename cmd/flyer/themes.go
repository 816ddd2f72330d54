package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-flyer/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List cosmetic variants",
	Long:  `Shows every registered theme. Themes change colors and glyphs only.`,
	Args:  cobra.NoArgs,
	Run:   runThemes,
}

func runThemes(_ *cobra.Command, _ []string) {
	themes := theme.List()

	fmt.Println("Available themes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, t := range themes {
		if len(t.ID) > maxIDLen {
			maxIDLen = len(t.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, t := range themes {
		marker := ""
		if t.ID == theme.DefaultID {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %s%s\n", maxIDLen, t.ID, t.Title, marker)
	}

	fmt.Println()
	fmt.Println("Run 'flyer play --theme <id>' to use one.")
}
