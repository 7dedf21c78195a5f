package game

import (
	"github.com/vovakirdan/tui-cupcake/internal/core"
	"github.com/vovakirdan/tui-cupcake/internal/ecs"
	"github.com/vovakirdan/tui-cupcake/internal/registry"
	"github.com/vovakirdan/tui-cupcake/internal/scene"
)

// staged collects the entities of a scene layout before they enter the world.
type staged struct {
	entities []*ecs.Entity
}

func (s *staged) SpawnTile(pos core.Vector2, variant scene.TileVariant) error {
	s.entities = append(s.entities, NewTile(pos, variant))
	return nil
}

// LoadScene switches to the named scene. When both the current and the new
// scene are levels and resetPlayer is false, the player survives the switch
// and everything else is removed; otherwise the world is cleared and a new
// player is created. A failing layout leaves the current world untouched.
func (c *Context) LoadScene(name string, resetPlayer bool) error {
	next, err := registry.Create(name)
	if err != nil {
		c.Log.Error("scene not found", "scene", name, "err", err)
		return err
	}

	layout := &staged{}
	if err := next.Load(layout, c.Config); err != nil {
		c.Log.Error("scene layout failed", "scene", name, "err", err)
		return err
	}

	keep := !resetPlayer && c.Scene != nil && c.Scene.Level && next.Level && c.Entities.Contains(c.playerID)
	if keep {
		c.Entities.RemoveAllExcept(c.playerID)
	} else {
		c.Entities.Clear()
	}
	for _, e := range layout.entities {
		if err := c.Entities.Add(e); err != nil {
			return err
		}
	}
	c.Scene = next

	if !keep {
		if err := c.ResetPlayer(); err != nil {
			return err
		}
	}
	c.Log.Info("scene ready", "scene", name, "kept_player", keep, "entities", c.Entities.Len())
	return nil
}

// ResetPlayer destroys the current player, if any, and creates a new one.
func (c *Context) ResetPlayer() error {
	c.Entities.Remove(c.playerID)
	p := NewPlayer(c.Config.Player)
	if err := c.Entities.Add(p); err != nil {
		return err
	}
	c.playerID = p.ID()
	c.Log.Debug("player created", "id", p.ID())
	return nil
}

// ResetRun throws the current run away: fresh state, reset clock, and the
// initial scene with a new player. The new run waits paused for Start.
func (c *Context) ResetRun(lost bool) error {
	c.State = NewState(c.Config)
	c.State.LastRunLost = lost
	c.Clock.Reset()
	c.lastFrame = 0
	c.delta = 0
	return c.LoadScene(c.Config.World.InitialScene, true)
}
