package game

import (
	"time"

	"github.com/vovakirdan/tui-cupcake/internal/core"
	"github.com/vovakirdan/tui-cupcake/internal/ecs"
)

// DebugInfo is a point-in-time summary of the world for the debug panel.
type DebugInfo struct {
	Entities      []string // Entity types in registry order
	Paused        bool
	SpawnInterval time.Duration
	RunTime       time.Duration
	Scene         string
	Score         int
	Lives         int
	Player        *PlayerDebug // Nil when no player is alive
}

// PlayerDebug describes the player entity.
type PlayerDebug struct {
	Position       core.Vector2
	Velocity       core.Vector2
	GravityEnabled bool
	State          ecs.MovementState
	Animation      string
	Collisions     int
}

// Debug collects the current debug info.
func (c *Context) Debug() DebugInfo {
	all := c.Entities.All()
	info := DebugInfo{
		Entities:      make([]string, 0, len(all)),
		Paused:        c.State.Paused,
		SpawnInterval: c.Difficulty.SpawnInterval(c.State.FoodSpawnInterval, c.State.Score, c.ticks),
		RunTime:       c.Clock.Elapsed(),
		Score:         c.State.Score,
		Lives:         c.State.Lives,
	}
	for _, e := range all {
		info.Entities = append(info.Entities, e.Type().String())
	}
	if c.Scene != nil {
		info.Scene = c.Scene.Name
	}

	if p, ok := c.Player(); ok {
		info.Player = &PlayerDebug{
			Position:       p.Graphics().Position,
			Velocity:       p.Movement().Velocity,
			GravityEnabled: p.Gravity().Enabled,
			State:          p.Player().State,
			Animation:      p.Animation().Active(),
			Collisions:     len(p.Collision().Colliding()),
		}
	}
	return info
}
