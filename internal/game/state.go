package game

import (
	"time"

	"github.com/vovakirdan/tui-cupcake/internal/config"
)

// State tracks the progress of one run.
type State struct {
	Score    int
	Lives    int
	GameOver bool
	Restart  bool
	Paused   bool

	// LastRunLost is set when the run was reset after a game over and
	// cleared when the next run starts.
	LastRunLost bool

	FoodSpawnInterval time.Duration
	LastFoodSpawn     time.Duration
}

// NewState returns the state of a fresh, paused run.
func NewState(cfg config.GameConfig) *State {
	return &State{
		Lives:             cfg.Player.Lives,
		Paused:            true,
		FoodSpawnInterval: cfg.FoodSpawnInterval(),
	}
}
