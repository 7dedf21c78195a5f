package config

import (
	_ "embed"
)

//go:embed defaults/cupcake.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		Window: WindowConfig{
			Width:  500,
			Height: 500,
		},
		Tick: TickConfig{
			Rate:           60,
			SlowMode:       false,
			SlowIntervalMs: 1000,
		},
		World: WorldConfig{
			GroundLevel:         400,
			WalkableGroundLevel: 350,
			InitialScene:        "Cupcake-World",
			SecondScene:         "Space-World",
			ProgressScore:       2,
		},
		Food: FoodConfig{
			SpawnPositions:      []float64{2, 52, 102, 152, 202, 252, 302, 352, 402, 452},
			SpawnY:              20,
			SpawnIntervalMs:     2000,
			SlowSpawnIntervalMs: 60000,
			Size:                44,
		},
		Player: PlayerConfig{
			StartX:         300,
			StartY:         300,
			Size:           50,
			Speed:          3,
			JumpHeight:     3,
			JumpDurationMs: 500,
			GravityWeight:  5,
			Lives:          3,
			RespawnOnFall:  true,
		},
		Keys: KeyConfig{
			MoveLeft:  []string{"a", "left"},
			MoveRight: []string{"d", "right"},
			Jump:      []string{" ", "w", "up"},
			Pause:     []string{"esc", "p"},
			Restart:   []string{"r"},
			Quit:      []string{"q", "ctrl+c"},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 30,
			},
			Scaling: ScalingConfig{
				WeightMultiplier: 1.0,
				SpawnReductionMs: 1000,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
