// cupcake is a terminal platformer: catch the falling food before it drops
// past the ground.
//
// Usage:
//
//	cupcake play             - Play the game
//	cupcake sim              - Run the simulation headless and print a summary
//	cupcake scenes           - List registered scenes
//	cupcake config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>        - Path to a custom config YAML
//	--difficulty <preset>  - Difficulty preset: easy, normal, hard, fixed
//	--fps <rate>           - Override the tick rate
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--slow                 - One tick per second with slow food spawns
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-cupcake/internal/config"

	// Import worlds to register them
	_ "github.com/vovakirdan/tui-cupcake/internal/scene/worlds"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagSlow       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cupcake",
	Short: "Cupcake - catch falling food in your terminal",
	Long: `Cupcake is a small platformer played in the terminal. Walk and jump
along the ground row and catch the food before it falls past the floor.

Available commands:
  play     - Play the game
  sim      - Run the simulation headless
  scenes   - Show all registered scenes
  config   - Print the effective configuration

Examples:
  cupcake play
  cupcake play --difficulty hard --debug
  cupcake sim --ticks 5000 --seed 42
  cupcake config --config ./my-cupcake.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagSlow, "slow", false, "Slow mode: one tick per interval, slow food spawns")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scenesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration from the global flags.
func loadConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, config.ParsePreset(flagDifficulty))
	}
	if flagFPS > 0 {
		cfg.Tick.Rate = flagFPS
	}
	if flagSlow {
		cfg.Tick.SlowMode = true
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
