package systems

import (
	"github.com/vovakirdan/tui-cupcake/internal/core"
	"github.com/vovakirdan/tui-cupcake/internal/ecs"
	"github.com/vovakirdan/tui-cupcake/internal/game"
)

// defaultFood is spawned when the scene resolves none of its food images.
const defaultFood = "cupcake"

// FoodSpawn drops a new food item from a random spawn position whenever
// the spawn interval has passed.
type FoodSpawn struct{}

func (FoodSpawn) Name() string { return "food-spawn" }

func (FoodSpawn) Update(ctx *game.Context) {
	st := ctx.State
	elapsed := ctx.Clock.Elapsed()
	interval := ctx.Difficulty.SpawnInterval(st.FoodSpawnInterval, st.Score, ctx.Ticks())
	if elapsed <= st.LastFoodSpawn+interval {
		return
	}
	st.LastFoodSpawn = elapsed

	positions := ctx.Config.Food.SpawnPositions
	x := positions[ctx.Rand.Intn(len(positions))]
	if _, err := ctx.SpawnFood(pickFood(ctx), core.Vec(x, ctx.Config.Food.SpawnY)); err != nil {
		ctx.Log.Error("spawn food", "err", err)
	}
}

func pickFood(ctx *game.Context) string {
	var names []string
	for _, name := range ctx.Scene.Foods {
		if _, ok := game.LookupFood(name); ok && ctx.Scene.Assets.HasImage(name) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return defaultFood
	}
	return names[ctx.Rand.Intn(len(names))]
}

// TileBreaking removes tiles hit by food.
type TileBreaking struct{}

func (TileBreaking) Name() string { return "tile-breaking" }

func (TileBreaking) Update(ctx *game.Context) {
	for _, tile := range ctx.Entities.OfType(ecs.TypeTile) {
		if !tile.Has(ecs.KindCollision) {
			continue
		}
		if tile.Collision().CollidesWithType(ecs.TypeFood) {
			ctx.Entities.Remove(tile.ID())
			ctx.Log.Debug("tile broken", "tile", tile)
		}
	}
}

// Score eats every consumable touching the player.
type Score struct{}

func (Score) Name() string { return "score" }

func (Score) Update(ctx *game.Context) {
	p, ok := ctx.Player()
	if !ok {
		return
	}
	for _, other := range p.Collision().Colliding() {
		if !other.Has(ecs.KindConsumable) {
			continue
		}
		ctx.Emit("eat")
		ctx.State.Score += other.Consumable().Value
		ctx.Entities.Remove(other.ID())
		ctx.Log.Debug("food eaten", "score", ctx.State.Score)
	}
}

// Cleanup removes entities that left the window. Lost food costs a life.
type Cleanup struct{}

func (Cleanup) Name() string { return "cleanup" }

func (Cleanup) Update(ctx *game.Context) {
	height := float64(ctx.Config.Window.Height)

	for _, e := range ctx.Entities.With(ecs.KindGraphics) {
		if e.Graphics().Position.Y <= height {
			continue
		}
		ctx.Entities.Remove(e.ID())

		switch e.Type() {
		case ecs.TypeFood:
			ctx.State.Lives--
			ctx.Emit("drop")
			if ctx.State.Lives <= 0 {
				ctx.State.GameOver = true
			}
			ctx.Log.Debug("food lost", "lives", ctx.State.Lives)
		case ecs.TypePlayer:
			if !ctx.Config.Player.RespawnOnFall {
				continue
			}
			if err := ctx.ResetPlayer(); err != nil {
				ctx.Log.Error("respawn player", "err", err)
			}
		}
	}
}

// Level handles the end-of-tick flow: restart, game over, and progress to
// the next scene, checked in that order.
type Level struct{}

func (Level) Name() string { return "level" }

func (Level) Update(ctx *game.Context) {
	world := ctx.Config.World

	switch {
	case ctx.State.Restart:
		ctx.Log.Info("restarting game")
		if err := ctx.ResetRun(false); err != nil {
			ctx.Log.Error("restart", "err", err)
			return
		}
		ctx.Start()
	case ctx.State.GameOver:
		ctx.Log.Info("game over", "score", ctx.State.Score)
		if err := ctx.ResetRun(true); err != nil {
			ctx.Log.Error("reset after game over", "err", err)
		}
	case ctx.State.Score > world.ProgressScore && ctx.Scene.Name == world.InitialScene && world.SecondScene != "":
		ctx.Log.Info("level complete", "next", world.SecondScene)
		if err := ctx.LoadScene(world.SecondScene, false); err != nil {
			ctx.Log.Error("switch level", "err", err)
		}
	}
}
