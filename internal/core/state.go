package core

// GameState is a read-only snapshot of the run, handed to the platform layer.
type GameState struct {
	Score    int    // Current score
	Lives    int    // Remaining lives
	GameOver bool   // Whether the last run has ended
	Paused   bool   // Whether the game is paused
	Scene    string // Name of the current scene
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
	Ran   bool // False when the tick body was skipped because the game is paused
}
