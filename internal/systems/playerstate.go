package systems

import (
	"github.com/vovakirdan/tui-cupcake/internal/ecs"
	"github.com/vovakirdan/tui-cupcake/internal/game"
)

// walkCycle holds each walking frame for six ticks.
var walkCycle = [...]string{
	game.AnimWalk1, game.AnimWalk1, game.AnimWalk1, game.AnimWalk1, game.AnimWalk1, game.AnimWalk1,
	game.AnimWalk2, game.AnimWalk2, game.AnimWalk2, game.AnimWalk2, game.AnimWalk2, game.AnimWalk2,
	game.AnimWalk3, game.AnimWalk3, game.AnimWalk3, game.AnimWalk3, game.AnimWalk3, game.AnimWalk3,
}

// PlayerState derives the player's movement state from this tick's
// collisions and position.
type PlayerState struct{}

func (PlayerState) Name() string { return "player-state" }

func (PlayerState) Update(ctx *game.Context) {
	p, ok := ctx.Player()
	if !ok {
		return
	}
	control := p.Player()
	collision := p.Collision()
	onTile := collision.CollidesWithType(ecs.TypeTile)
	belowFloor := p.Graphics().Position.Y > ctx.Config.World.WalkableGroundLevel

	switch {
	case onTile && !control.IsGrounded() && !belowFloor && !control.IsJumping():
		control.SetGrounded()
		control.WalkFrame = 0
		if g := p.Gravity(); g.Enabled {
			g.Toggle()
			p.Movement().Velocity.Y = 0
		}
		ctx.Log.Debug("player grounded")
		activate(ctx, p, game.AnimDefault)
	case onTile && !belowFloor && p.Movement().Velocity.X != 0:
		activate(ctx, p, walkCycle[control.WalkFrame%len(walkCycle)])
		control.WalkFrame = (control.WalkFrame + 1) % len(walkCycle)
	case (!onTile && !control.IsJumping()) || belowFloor:
		if !control.IsFalling() {
			ctx.Log.Debug("player falling")
		}
		control.SetFalling()
		if g := p.Gravity(); !g.Enabled {
			g.Toggle()
		}
		activate(ctx, p, game.AnimHurt)
	case control.IsJumping():
		activate(ctx, p, game.AnimJump)
	}

	if belowFloor {
		collision.ResetCollisions()
		if !collision.Ignored() {
			ctx.Log.Debug("player below floor, collisions disabled")
		}
		collision.Disable()
	}
}

func activate(ctx *game.Context, e *ecs.Entity, name string) {
	if err := e.Animation().Activate(name); err != nil {
		ctx.Log.Error("animation", "entity", e, "err", err)
	}
}
