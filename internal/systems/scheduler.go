// Package systems contains the per-tick game logic and the scheduler that
// runs it in a fixed order.
package systems

import (
	"github.com/vovakirdan/tui-cupcake/internal/core"
	"github.com/vovakirdan/tui-cupcake/internal/game"
)

// System is one stage of a tick.
type System interface {
	Name() string
	Update(ctx *game.Context)
}

// Scheduler owns the game context and runs the systems in order.
type Scheduler struct {
	ctx     *game.Context
	systems []System
}

// NewScheduler creates a scheduler running the given systems in order.
func NewScheduler(ctx *game.Context, systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{ctx: ctx, systems: copied}
}

// DefaultSystems returns the game systems in tick order.
func DefaultSystems() []System {
	return []System{
		JumpTimer{},
		FoodSpawn{},
		Movement{},
		PlayerState{},
		TileBreaking{},
		Score{},
		Cleanup{},
		Level{},
	}
}

// NewGame creates a scheduler with the default systems.
func NewGame(ctx *game.Context) *Scheduler {
	return NewScheduler(ctx, DefaultSystems()...)
}

// Context returns the game context.
func (s *Scheduler) Context() *game.Context {
	return s.ctx
}

// Systems returns a copy of the scheduled systems.
func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}

// Step applies the input frame and runs one tick. The tick body is skipped
// while the game is paused; input is still processed so the run can be
// resumed.
func (s *Scheduler) Step(in core.InputFrame) core.StepResult {
	HandleInput(s.ctx, in)

	if s.ctx.State.Paused {
		return core.StepResult{State: s.ctx.Snapshot()}
	}

	s.ctx.BeginTick()
	for _, system := range s.systems {
		system.Update(s.ctx)
	}
	return core.StepResult{State: s.ctx.Snapshot(), Ran: true}
}
