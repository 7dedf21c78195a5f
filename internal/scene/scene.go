// Package scene describes the screens of the game: the assets they declare,
// whether they are playable levels, and the entities they create on load.
package scene

import (
	"fmt"

	"github.com/vovakirdan/tui-cupcake/internal/config"
	"github.com/vovakirdan/tui-cupcake/internal/core"
)

// FontTone is the HUD text tone that stays readable on the scene background.
type FontTone int

const (
	FontDark FontTone = iota
	FontLight
)

// TileVariant selects the sprite of a ground tile.
type TileVariant string

const (
	TileLeft  TileVariant = "left"
	TileMid   TileVariant = "mid"
	TileRight TileVariant = "right"
)

// Spawner is what a scene layout needs to populate the world.
type Spawner interface {
	SpawnTile(pos core.Vector2, variant TileVariant) error
}

// LayoutFunc creates a scene's initial entities.
type LayoutFunc func(s Spawner, cfg config.GameConfig) error

// Scene is a screen of the game and the container for its assets.
type Scene struct {
	Name   string
	Level  bool     // Whether this is a playable game level
	Font   FontTone // HUD font tone
	Assets *Assets
	Foods  []string // Food types spawned while the scene is active
	Layout LayoutFunc
}

// Load resolves the scene assets and creates its entities.
func (s *Scene) Load(sp Spawner, cfg config.GameConfig) error {
	s.Assets.Load()
	if s.Layout == nil {
		return nil
	}
	if err := s.Layout(sp, cfg); err != nil {
		return fmt.Errorf("scene %s: layout: %w", s.Name, err)
	}
	return nil
}

// GroundRow lays out a row of ground tiles across the window at the
// configured ground level, with end caps on both sides.
func GroundRow(s Spawner, cfg config.GameConfig) error {
	const tileWidth = 50
	count := cfg.Window.Width / tileWidth
	for i := 0; i < count; i++ {
		variant := TileMid
		switch i {
		case 0:
			variant = TileLeft
		case count - 1:
			variant = TileRight
		}
		pos := core.Vec(float64(i*tileWidth), cfg.World.GroundLevel)
		if err := s.SpawnTile(pos, variant); err != nil {
			return err
		}
	}
	return nil
}
