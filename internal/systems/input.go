package systems

import (
	"github.com/vovakirdan/tui-cupcake/internal/core"
	"github.com/vovakirdan/tui-cupcake/internal/ecs"
	"github.com/vovakirdan/tui-cupcake/internal/game"
)

// HandleInput applies player and game control actions. The first key press
// of a fresh run starts it; a release alone does not.
func HandleInput(ctx *game.Context, in core.InputFrame) {
	if in.Empty() {
		return
	}
	if pressed(in) && ctx.Fresh() {
		ctx.Log.Debug("fresh game run")
		ctx.Start()
	}

	if p, ok := ctx.Player(); ok {
		steer(ctx, p, in)
	}

	if in.Has(core.ActionPause) {
		ctx.TogglePause()
	}
	if in.Has(core.ActionRestart) {
		ctx.State.Restart = true
	}
}

// pressed reports whether the frame holds a real key press. Stop is
// synthesized by the platform when keys are released.
func pressed(in core.InputFrame) bool {
	for _, a := range []core.Action{core.ActionMoveLeft, core.ActionMoveRight, core.ActionJump, core.ActionPause, core.ActionRestart} {
		if in.Has(a) {
			return true
		}
	}
	return false
}

func steer(ctx *game.Context, p *ecs.Entity, in core.InputFrame) {
	mv := p.Movement()
	speed := ctx.Config.Player.Speed

	if in.Has(core.ActionStop) {
		mv.Velocity.X = 0
	}
	switch {
	case in.Has(core.ActionMoveLeft):
		mv.Velocity.X = -speed
	case in.Has(core.ActionMoveRight):
		mv.Velocity.X = speed
	}

	control := p.Player()
	if in.Has(core.ActionJump) && control.IsGrounded() {
		mv.Velocity.Y = control.JumpHeight
		control.StartJump(ctx.Config.JumpDuration())
		ctx.Log.Debug("player jumped", "height", control.JumpHeight)
	}
}

// JumpTimer ends jumps once their duration has run out.
type JumpTimer struct{}

func (JumpTimer) Name() string { return "jump-timer" }

func (JumpTimer) Update(ctx *game.Context) {
	p, ok := ctx.Player()
	if !ok {
		return
	}
	control := p.Player()
	if !control.IsJumping() {
		return
	}

	control.JumpRemaining -= ctx.FrameDelta()
	if control.JumpRemaining > 0 {
		return
	}
	if p.Collision().CollidesWithType(ecs.TypeTile) {
		control.SetGrounded()
		p.Movement().Velocity.Y = 0
	} else {
		control.SetFalling()
	}
	ctx.Log.Debug("jump ended", "state", control.State)
}
