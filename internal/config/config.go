// Package config provides YAML-based game configuration loading and
// difficulty management for the cupcake runtime.
package config

import (
	"errors"
	"fmt"
	"time"
)

// GameConfig contains all configuration for a run. It is read-only once loaded.
type GameConfig struct {
	Window     WindowConfig     `yaml:"window"`
	Tick       TickConfig       `yaml:"tick"`
	World      WorldConfig      `yaml:"world"`
	Food       FoodConfig       `yaml:"food"`
	Player     PlayerConfig     `yaml:"player"`
	Keys       KeyConfig        `yaml:"keys"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Debug      bool             `yaml:"debug"`
}

// WindowConfig defines the world bounds in pixels.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TickConfig defines the tick cadence.
type TickConfig struct {
	Rate           int  `yaml:"rate"`             // Ticks per second
	SlowMode       bool `yaml:"slow_mode"`        // One tick per SlowIntervalMs, slow food spawns
	SlowIntervalMs int  `yaml:"slow_interval_ms"` // Tick interval in slow mode
}

// WorldConfig defines level layout and progression.
type WorldConfig struct {
	GroundLevel         float64 `yaml:"ground_level"`          // Y of the ground tiles
	WalkableGroundLevel float64 `yaml:"walkable_ground_level"` // Below this Y the player falls out of the world
	InitialScene        string  `yaml:"initial_scene"`
	SecondScene         string  `yaml:"second_scene"`
	ProgressScore       int     `yaml:"progress_score"` // Score above which the second scene loads
}

// FoodConfig defines food spawning.
type FoodConfig struct {
	SpawnPositions      []float64 `yaml:"spawn_positions"`
	SpawnY              float64   `yaml:"spawn_y"`
	SpawnIntervalMs     int       `yaml:"spawn_interval_ms"`
	SlowSpawnIntervalMs int       `yaml:"slow_spawn_interval_ms"`
	Size                float64   `yaml:"size"`
}

// PlayerConfig defines the player entity.
type PlayerConfig struct {
	StartX         float64 `yaml:"start_x"`
	StartY         float64 `yaml:"start_y"`
	Size           float64 `yaml:"size"`
	Speed          float64 `yaml:"speed"`       // Horizontal pixels per tick
	JumpHeight     float64 `yaml:"jump_height"` // Vertical pixels per tick while jumping
	JumpDurationMs int     `yaml:"jump_duration_ms"`
	GravityWeight  float64 `yaml:"gravity_weight"`
	Lives          int     `yaml:"lives"`
	RespawnOnFall  bool    `yaml:"respawn_on_fall"` // Recreate the player when it leaves the window
}

// KeyConfig binds terminal key names to actions.
type KeyConfig struct {
	MoveLeft  []string `yaml:"move_left"`
	MoveRight []string `yaml:"move_right"`
	Jump      []string `yaml:"jump"`
	Pause     []string `yaml:"pause"`
	Restart   []string `yaml:"restart"`
	Quit      []string `yaml:"quit"`
}

// TickInterval returns the nominal interval between ticks.
func (c GameConfig) TickInterval() time.Duration {
	if c.Tick.SlowMode {
		return time.Duration(c.Tick.SlowIntervalMs) * time.Millisecond
	}
	if c.Tick.Rate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.Tick.Rate)
}

// FoodSpawnInterval returns the base interval between food spawns.
func (c GameConfig) FoodSpawnInterval() time.Duration {
	if c.Tick.SlowMode {
		return time.Duration(c.Food.SlowSpawnIntervalMs) * time.Millisecond
	}
	return time.Duration(c.Food.SpawnIntervalMs) * time.Millisecond
}

// JumpDuration returns how long a jump lasts.
func (c GameConfig) JumpDuration() time.Duration {
	return time.Duration(c.Player.JumpDurationMs) * time.Millisecond
}

// Validate rejects configurations the runtime cannot work with.
func (c GameConfig) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Tick.Rate <= 0 && !c.Tick.SlowMode {
		errs = append(errs, fmt.Errorf("tick rate must be positive, got %d", c.Tick.Rate))
	}
	if c.Tick.SlowMode && c.Tick.SlowIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("slow interval must be positive, got %d", c.Tick.SlowIntervalMs))
	}
	if len(c.Food.SpawnPositions) == 0 {
		errs = append(errs, errors.New("at least one food spawn position is required"))
	}
	if c.Player.Lives <= 0 {
		errs = append(errs, fmt.Errorf("lives must be positive, got %d", c.Player.Lives))
	}
	if c.World.InitialScene == "" {
		errs = append(errs, errors.New("initial scene is required"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
