package systems

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-cupcake/internal/config"
	"github.com/vovakirdan/tui-cupcake/internal/core"
	"github.com/vovakirdan/tui-cupcake/internal/ecs"
	"github.com/vovakirdan/tui-cupcake/internal/game"
	_ "github.com/vovakirdan/tui-cupcake/internal/scene/worlds"
)

func newWorld(t *testing.T) (*game.Context, *game.ManualTime) {
	t.Helper()
	mt := game.NewManualTime()
	ctx, err := game.NewContext(game.Options{Config: config.DefaultConfig(), Now: mt.Now, Seed: 42})
	require.NoError(t, err)
	return ctx, mt
}

// emptyWorld returns a context whose registry holds only the given entities.
func emptyWorld(t *testing.T, entities ...*ecs.Entity) *game.Context {
	t.Helper()
	ctx, _ := newWorld(t)
	ctx.Entities.Clear()
	for _, e := range entities {
		require.NoError(t, ctx.Entities.Add(e))
	}
	return ctx
}

func player(t *testing.T, ctx *game.Context) *ecs.Entity {
	t.Helper()
	p, ok := ctx.Player()
	require.True(t, ok, "player should be alive")
	return p
}

func food(name string, pos core.Vector2) *ecs.Entity {
	ft, _ := game.LookupFood(name)
	return game.NewFood(ft, pos, 44)
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}
