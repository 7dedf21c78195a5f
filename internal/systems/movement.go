package systems

import (
	"github.com/vovakirdan/tui-cupcake/internal/core"
	"github.com/vovakirdan/tui-cupcake/internal/ecs"
	"github.com/vovakirdan/tui-cupcake/internal/game"
)

// Movement moves every entity with Graphics and Movement or Gravity.
// Entities with enabled collision are checked against all other colliding
// entities before the move is committed; a move that would clip into
// another collider is shrunk by repeated halving until it fits, or dropped.
type Movement struct{}

func (Movement) Name() string { return "movement" }

func (m Movement) Update(ctx *game.Context) {
	colliding := ctx.Entities.CollisionEnabled()
	for _, e := range colliding {
		e.Collision().ResetCollisions()
	}

	for _, e := range ctx.Entities.Filter(isMoving) {
		next := nextPosition(e)
		if e.CollisionEnabled() {
			m.checkForCollisions(ctx, e, next, colliding)
			continue
		}

		g := e.Graphics()
		if e.Has(ecs.KindCollision) {
			e.Collision().Collider.Translate(next.Sub(g.Position))
		}
		g.Position = next
	}
}

func isMoving(e *ecs.Entity) bool {
	return e.Has(ecs.KindGraphics) && (e.Has(ecs.KindMovement) || e.Has(ecs.KindGravity))
}

// nextPosition returns where the entity wants to be after this tick.
func nextPosition(e *ecs.Entity) core.Vector2 {
	pos := e.Graphics().Position

	switch {
	case e.Has(ecs.KindPlayer):
		return nextPlayerPosition(e)
	case e.Has(ecs.KindMovement, ecs.KindGravity):
		return core.Vec(pos.X+e.Movement().Velocity.X, pos.Y+e.Gravity().EffectiveWeight())
	case e.Has(ecs.KindMovement):
		return pos.Add(e.Movement().Velocity)
	case e.Has(ecs.KindGravity):
		// Without Movement gravity always applies.
		return core.Vec(pos.X, pos.Y+e.Gravity().Weight)
	}
	return pos
}

func nextPlayerPosition(e *ecs.Entity) core.Vector2 {
	pos := e.Graphics().Position
	control := e.Player()
	vx := e.Movement().Velocity.X

	switch control.State {
	case ecs.StateJumping:
		return core.Vec(pos.X+vx, pos.Y-control.JumpHeight)
	case ecs.StateFalling:
		return core.Vec(pos.X+vx, pos.Y+e.Gravity().EffectiveWeight())
	case ecs.StateGrounded:
		return core.Vec(pos.X+vx, pos.Y)
	}
	return pos
}

func (Movement) checkForCollisions(ctx *game.Context, e *ecs.Entity, next core.Vector2, others []*ecs.Entity) {
	g := e.Graphics()
	collider := e.Collision().Collider
	axis := core.AxisBoth
	if e.Has(ecs.KindPlayer) {
		axis = core.AxisVertical
	}

	translation := next.Sub(g.Position)
	collider.Translate(translation)
	points := collider.ValidationPoints()

	clipping := false
	for _, other := range others {
		if other.ID() == e.ID() {
			continue
		}
		oc := other.Collision().Collider

		switch {
		case anyPoint(points, func(p core.Vector2) bool { return oc.PointTouches(p, axis) }):
			ctx.Log.Debug("touching", "entity", e, "other", other)
			addCollision(e, other)
		case anyPoint(points, func(p core.Vector2) bool { return oc.PointInside(p, axis) }):
			ctx.Log.Debug("about to clip", "entity", e, "other", other)
			addCollision(e, other)
			clipping = true
		}
	}

	if !clipping {
		g.Position = next
		return
	}

	collider.Translate(translation.Inverse())
	for !translation.IsNormalized() {
		translation = translation.ScaleRounded(0.5)
		collider.Translate(translation)

		if isClear(e, collider.ValidationPoints(), others, axis) {
			g.Position = g.Position.Add(translation)
			ctx.Log.Debug("unstuck", "entity", e, "pos", g.Position)
			return
		}
		collider.Translate(translation.Inverse())
	}
	ctx.Log.Debug("blocked", "entity", e, "pos", g.Position)
}

// isClear reports whether no point lies inside any other collider.
func isClear(self *ecs.Entity, points []core.Vector2, others []*ecs.Entity, axis core.Axis) bool {
	for _, other := range others {
		if other.ID() == self.ID() {
			continue
		}
		oc := other.Collision().Collider
		if anyPoint(points, func(p core.Vector2) bool { return oc.PointInside(p, axis) }) {
			return false
		}
	}
	return true
}

func addCollision(a, b *ecs.Entity) {
	a.Collision().AddCollision(b)
	b.Collision().AddCollision(a)
}

func anyPoint(points []core.Vector2, pred func(core.Vector2) bool) bool {
	for _, p := range points {
		if pred(p) {
			return true
		}
	}
	return false
}
