package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/registry"
)

var frontendsCmd = &cobra.Command{
	Use:   "frontends",
	Short: "List all available frontends",
	Long:  `Shows a list of all frontends the game can be played on.`,
	Run:   runFrontends,
}

func runFrontends(_ *cobra.Command, _ []string) {
	frontends := registry.List()

	if len(frontends) == 0 {
		fmt.Println("No frontends available.")
		return
	}

	fmt.Println("Available frontends:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, f := range frontends {
		maxNameLen = max(maxNameLen, len(f.Name))
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Title")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----")

	for _, f := range frontends {
		fmt.Printf("  %-*s  %s\n", maxNameLen, f.Name, f.Title)
	}

	fmt.Println()
	fmt.Println("Run 'brickbreaker play <name>' to play on a frontend.")
}
