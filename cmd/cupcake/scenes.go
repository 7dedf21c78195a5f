package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-cupcake/internal/registry"
)

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "List all registered scenes",
	Long:  `Shows every scene registered with the runtime and whether it is a level.`,
	Args:  cobra.NoArgs,
	Run:   runScenes,
}

func runScenes(cmd *cobra.Command, args []string) {
	scenes := registry.List()

	if len(scenes) == 0 {
		fmt.Println("No scenes registered.")
		return
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, s := range scenes {
		if len(s.Name) > maxNameLen {
			maxNameLen = len(s.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Level")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----")

	for _, s := range scenes {
		level := "no"
		if s.Level {
			level = "yes"
		}
		fmt.Printf("  %-*s  %s\n", maxNameLen, s.Name, level)
	}
}
