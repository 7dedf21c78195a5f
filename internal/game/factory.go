package game

import (
	"fmt"

	"github.com/vovakirdan/tui-cupcake/internal/config"
	"github.com/vovakirdan/tui-cupcake/internal/core"
	"github.com/vovakirdan/tui-cupcake/internal/ecs"
	"github.com/vovakirdan/tui-cupcake/internal/scene"
)

// Player animation names.
const (
	AnimDefault = "default"
	AnimHurt    = "hurt"
	AnimJump    = "jump"
	AnimWalk1   = "walk_1"
	AnimWalk2   = "walk_2"
	AnimWalk3   = "walk_3"
)

const (
	tileWidth  = 50
	tileHeight = 20
)

// FoodType describes a kind of falling food.
type FoodType struct {
	Name   string // Also the image id
	Value  int    // Points when eaten
	Weight float64
}

var foodTypes = map[string]FoodType{
	"cupcake": {Name: "cupcake", Value: 1, Weight: 3},
	"fruit":   {Name: "fruit", Value: 3, Weight: 5},
	"star":    {Name: "star", Value: 10, Weight: 7},
}

// LookupFood returns the food type registered under name.
func LookupFood(name string) (FoodType, bool) {
	ft, ok := foodTypes[name]
	return ft, ok
}

// NewPlayer creates the player entity at its configured start position.
func NewPlayer(cfg config.PlayerConfig) *ecs.Entity {
	pos := core.Vec(cfg.StartX, cfg.StartY)
	sprites := make([]ecs.SpriteSet, 0, 6)
	for _, name := range []string{AnimDefault, AnimHurt, AnimJump, AnimWalk1, AnimWalk2, AnimWalk3} {
		sprites = append(sprites, ecs.SpriteSet{Name: name, ImageID: "player_" + name})
	}

	return ecs.NewEntity(ecs.TypePlayer).
		With(&ecs.Graphics{Position: pos, Width: cfg.Size, Height: cfg.Size, ImageID: "player"}).
		With(&ecs.Movement{}).
		With(ecs.NewCollision(core.NewRect(pos, cfg.Size, cfg.Size), ecs.LayerMain)).
		With(ecs.NewGravity(cfg.GravityWeight)).
		With(ecs.NewPlayerControlled(cfg.JumpHeight)).
		With(ecs.NewAnimatedSprite(sprites...))
}

// NewTile creates a ground tile with its top left corner at pos.
func NewTile(pos core.Vector2, variant scene.TileVariant) *ecs.Entity {
	return ecs.NewEntity(ecs.TypeTile).
		With(&ecs.Graphics{Position: pos, Width: tileWidth, Height: tileHeight, ImageID: "tile_" + string(variant)}).
		With(ecs.NewCollision(core.NewRect(pos, tileWidth, tileHeight), ecs.LayerMain))
}

// NewFood creates a food item of the given type and size at pos.
func NewFood(ft FoodType, pos core.Vector2, size float64) *ecs.Entity {
	return ecs.NewEntity(ecs.TypeFood).
		With(&ecs.Consumable{Value: ft.Value}).
		With(&ecs.Graphics{Position: pos, Width: size, Height: size, ImageID: ft.Name}).
		With(ecs.NewCollision(core.CircleFromDimensions(pos, size, size), ecs.LayerFood)).
		With(ecs.NewGravity(ft.Weight))
}

// SpawnFood adds a food item to the world. Its weight follows the
// current difficulty.
func (c *Context) SpawnFood(name string, pos core.Vector2) (*ecs.Entity, error) {
	ft, ok := LookupFood(name)
	if !ok {
		return nil, fmt.Errorf("unknown food type %q", name)
	}
	ft.Weight = c.Difficulty.FoodWeight(ft.Weight, c.State.Score, c.ticks)

	e := NewFood(ft, pos, c.Config.Food.Size)
	if err := c.Entities.Add(e); err != nil {
		return nil, err
	}
	c.Log.Debug("food spawned", "food", ft.Name, "pos", pos, "weight", ft.Weight)
	return e, nil
}
