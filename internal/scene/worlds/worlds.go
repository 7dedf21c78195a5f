// Package worlds registers the built-in scenes.
package worlds

import (
	"github.com/vovakirdan/tui-cupcake/internal/registry"
	"github.com/vovakirdan/tui-cupcake/internal/scene"
)

const (
	CupcakeWorld = "Cupcake-World"
	SpaceWorld   = "Space-World"
)

func init() {
	registry.Register(CupcakeWorld, NewCupcakeWorld)
	registry.Register(SpaceWorld, NewSpaceWorld)
}

// NewCupcakeWorld builds the first level: cupcakes falling on a row of tiles.
func NewCupcakeWorld() *scene.Scene {
	assets := scene.NewAssets().
		AddBackground("images/cupcake-world/background.png").
		AddSound("drop", "sounds/drop.mp3").
		AddSound("eat", "sounds/eat.mp3").
		AddImage("cupcake", "images/food/cupcake.png")
	addTiles(assets, "images/cupcake-world")
	addPlayer(assets)

	return &scene.Scene{
		Name:   CupcakeWorld,
		Level:  true,
		Font:   scene.FontDark,
		Assets: assets,
		Foods:  []string{"cupcake"},
		Layout: scene.GroundRow,
	}
}

// NewSpaceWorld builds the scene reached after enough points. It shares the
// ground row but adds stars to the food mix.
func NewSpaceWorld() *scene.Scene {
	assets := scene.NewAssets().
		AddBackground("images/space-world/background.png").
		AddSound("drop", "sounds/drop.mp3").
		AddSound("eat", "sounds/eat.mp3").
		AddImage("cupcake", "images/food/cupcake.png").
		AddImage("star", "images/food/star.png")
	addTiles(assets, "images/space-world")
	addPlayer(assets)

	return &scene.Scene{
		Name:   SpaceWorld,
		Level:  false,
		Font:   scene.FontLight,
		Assets: assets,
		Foods:  []string{"cupcake", "star"},
		Layout: scene.GroundRow,
	}
}

func addTiles(a *scene.Assets, dir string) {
	for _, v := range []scene.TileVariant{scene.TileLeft, scene.TileMid, scene.TileRight} {
		a.AddImage("tile_"+string(v), dir+"/tile_"+string(v)+".png")
	}
}

func addPlayer(a *scene.Assets) {
	for _, name := range []string{"default", "hurt", "jump", "walk_1", "walk_2", "walk_3"} {
		a.AddImage("player_"+name, "images/player/"+name+".png")
	}
}
