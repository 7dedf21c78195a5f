package systems

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-cupcake/internal/core"
	"github.com/vovakirdan/tui-cupcake/internal/ecs"
	"github.com/vovakirdan/tui-cupcake/internal/game"
	"github.com/vovakirdan/tui-cupcake/internal/scene"
)

func TestPlayerFallsUntilGrounded(t *testing.T) {
	ctx, _ := newWorld(t)
	p := player(t, ctx)

	for tick := 1; tick <= 10; tick++ {
		require.True(t, p.Player().IsFalling(), "tick %d", tick)
		Movement{}.Update(ctx)
		PlayerState{}.Update(ctx)
		require.Equal(t, 300+5*float64(tick), p.Graphics().Position.Y, "tick %d", tick)
	}

	require.True(t, p.Player().IsGrounded())
	require.False(t, p.Gravity().Enabled)
	require.Zero(t, p.Movement().Velocity.Y)
	require.True(t, p.Collision().CollidesWithType(ecs.TypeTile))
	require.Equal(t, core.Vec(300, 350), p.Collision().Collider.Position())

	// Standing still keeps the player on the ground.
	Movement{}.Update(ctx)
	PlayerState{}.Update(ctx)
	require.Equal(t, 350.0, p.Graphics().Position.Y)
	require.True(t, p.Player().IsGrounded())
}

func TestSeparatedEntitiesDoNotCollide(t *testing.T) {
	f := food("cupcake", core.Vec(298, 20))
	tile := game.NewTile(core.Vec(300, 350), scene.TileMid)
	ctx := emptyWorld(t, f, tile)

	require.Equal(t, core.Vec(320, 42), f.Collision().Collider.Position())
	require.Equal(t, 22.0, f.Collision().Collider.Radius())

	Movement{}.Update(ctx)
	require.Empty(t, f.Collision().Colliding())
	require.Empty(t, tile.Collision().Colliding())
	require.Equal(t, core.Vec(298, 23), f.Graphics().Position)
}

func TestTouchRecordsBothSides(t *testing.T) {
	// Circle bottom at 377 falls 3 onto the tile top at 380.
	f := food("cupcake", core.Vec(300, 333))
	tile := game.NewTile(core.Vec(300, 380), scene.TileMid)
	ctx := emptyWorld(t, f, tile)

	Movement{}.Update(ctx)

	require.True(t, f.Collision().CollidesWith(tile))
	require.True(t, tile.Collision().CollidesWith(f))
	require.Equal(t, core.Vec(300, 336), f.Graphics().Position, "touching does not block")
}

func TestClippingMoveIsShrunk(t *testing.T) {
	// Falling 7 would put the circle bottom 4 pixels into the tile.
	f := food("star", core.Vec(300, 333))
	tile := game.NewTile(core.Vec(300, 380), scene.TileMid)
	ctx := emptyWorld(t, f, tile)

	Movement{}.Update(ctx)

	require.Equal(t, core.Vec(300, 335), f.Graphics().Position)
	require.Equal(t, core.Vec(322, 357), f.Collision().Collider.Position(), "collider follows graphics")
	require.True(t, f.Collision().CollidesWith(tile))
	require.True(t, tile.Collision().CollidesWith(f))
}

func TestBlockedMoveLeavesEntityInPlace(t *testing.T) {
	// The circle already rests on the tile; every shrunk step still clips.
	f := food("cupcake", core.Vec(300, 336))
	tile := game.NewTile(core.Vec(300, 380), scene.TileMid)
	ctx := emptyWorld(t, f, tile)

	Movement{}.Update(ctx)

	require.Equal(t, core.Vec(300, 336), f.Graphics().Position)
	require.Equal(t, core.Vec(322, 358), f.Collision().Collider.Position())
	require.True(t, f.Collision().CollidesWith(tile))
}

func TestCollisionListsResetEachTick(t *testing.T) {
	f := food("cupcake", core.Vec(300, 333))
	tile := game.NewTile(core.Vec(300, 380), scene.TileMid)
	ctx := emptyWorld(t, f, tile)

	Movement{}.Update(ctx)
	require.True(t, tile.Collision().CollidesWith(f))

	f.Graphics().Position = core.Vec(0, 0)
	f.Collision().Collider = core.CircleFromDimensions(core.Vec(0, 0), 44, 44)
	Movement{}.Update(ctx)
	require.Empty(t, tile.Collision().Colliding())
	require.Empty(t, f.Collision().Colliding())
}

func TestCandidatePositions(t *testing.T) {
	pos := core.Vec(10, 10)

	tests := []struct {
		name  string
		build func() *ecs.Entity
		want  core.Vector2
	}{
		{
			name: "movement and disabled gravity",
			build: func() *ecs.Entity {
				g := ecs.NewGravity(4)
				g.Toggle()
				return ecs.NewEntity(ecs.TypeGeneric).
					With(&ecs.Graphics{Position: pos}).
					With(&ecs.Movement{Velocity: core.Vec(2, 9)}).
					With(g)
			},
			want: core.Vec(12, 10),
		},
		{
			name: "movement only",
			build: func() *ecs.Entity {
				return ecs.NewEntity(ecs.TypeGeneric).
					With(&ecs.Graphics{Position: pos}).
					With(&ecs.Movement{Velocity: core.Vec(2, -3)})
			},
			want: core.Vec(12, 7),
		},
		{
			name: "gravity only ignores the enabled flag",
			build: func() *ecs.Entity {
				g := ecs.NewGravity(4)
				g.Toggle()
				return ecs.NewEntity(ecs.TypeGeneric).
					With(&ecs.Graphics{Position: pos}).
					With(g)
			},
			want: core.Vec(10, 14),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := tc.build()
			ctx := emptyWorld(t, e)

			Movement{}.Update(ctx)
			require.Equal(t, tc.want, e.Graphics().Position)
		})
	}
}

func TestPlayerCandidateByState(t *testing.T) {
	tests := []struct {
		name  string
		setup func(p *ecs.Entity)
		want  core.Vector2
	}{
		{"falling", func(p *ecs.Entity) {}, core.Vec(303, 305)},
		{"falling without gravity", func(p *ecs.Entity) { p.Gravity().Toggle() }, core.Vec(303, 300)},
		{"jumping", func(p *ecs.Entity) { p.Player().StartJump(0) }, core.Vec(303, 297)},
		{"grounded", func(p *ecs.Entity) { p.Player().SetGrounded() }, core.Vec(303, 300)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx, _ := newWorld(t)
			p := player(t, ctx)
			p.Movement().Velocity.X = 3
			tc.setup(p)

			Movement{}.Update(ctx)
			require.Equal(t, tc.want, p.Graphics().Position)
		})
	}
}

func TestIgnoredCollisionMovesFreely(t *testing.T) {
	f := food("cupcake", core.Vec(300, 336))
	f.Collision().Disable()
	tile := game.NewTile(core.Vec(300, 380), scene.TileMid)
	ctx := emptyWorld(t, f, tile)

	Movement{}.Update(ctx)

	require.Equal(t, core.Vec(300, 339), f.Graphics().Position)
	require.Equal(t, core.Vec(322, 361), f.Collision().Collider.Position())
	require.Empty(t, tile.Collision().Colliding())
}
