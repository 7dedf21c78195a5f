package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-cupcake/internal/config"
	"github.com/vovakirdan/tui-cupcake/internal/core"
	"github.com/vovakirdan/tui-cupcake/internal/ecs"
	"github.com/vovakirdan/tui-cupcake/internal/scene"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(config.DefaultConfig().Player)

	require.Equal(t, ecs.TypePlayer, p.Type())
	require.True(t, p.Has(ecs.KindGraphics, ecs.KindMovement, ecs.KindCollision, ecs.KindGravity, ecs.KindPlayer, ecs.KindAnimation))
	require.Equal(t, 50.0, p.Graphics().Width)
	require.True(t, p.Movement().Velocity.IsZero())
	require.Equal(t, 5.0, p.Gravity().Weight)
	require.True(t, p.Gravity().Enabled)
	require.Equal(t, 3.0, p.Player().JumpHeight)
	require.Equal(t, core.ShapeRect, p.Collision().Collider.Shape())
	require.Equal(t, "player_default", p.Animation().ActiveImageID())
	require.NoError(t, p.Animation().Activate(AnimWalk3))
}

func TestNewTile(t *testing.T) {
	tile := NewTile(core.Vec(450, 400), scene.TileRight)

	require.Equal(t, ecs.TypeTile, tile.Type())
	require.Equal(t, "tile_right", tile.Graphics().ImageID)
	require.False(t, tile.Has(ecs.KindMovement))
	require.False(t, tile.Has(ecs.KindGravity))
	w, h := tile.Collision().Collider.Size()
	require.Equal(t, 50.0, w)
	require.Equal(t, 20.0, h)
}

func TestFoodTypes(t *testing.T) {
	tests := []struct {
		name   string
		value  int
		weight float64
	}{
		{"cupcake", 1, 3},
		{"fruit", 3, 5},
		{"star", 10, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ft, ok := LookupFood(tc.name)
			require.True(t, ok)
			f := NewFood(ft, core.Vec(298, 20), 44)
			require.Equal(t, tc.value, f.Consumable().Value)
			require.Equal(t, tc.weight, f.Gravity().Weight)
			require.Equal(t, ecs.LayerFood, f.Collision().Layer)
			require.Equal(t, core.Vec(320, 42), f.Collision().Collider.Position())
			require.Equal(t, 22.0, f.Collision().Collider.Radius())
		})
	}
}
