package game

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-cupcake/internal/config"
	"github.com/vovakirdan/tui-cupcake/internal/core"
	"github.com/vovakirdan/tui-cupcake/internal/ecs"
	"github.com/vovakirdan/tui-cupcake/internal/registry"
	"github.com/vovakirdan/tui-cupcake/internal/scene"
	"github.com/vovakirdan/tui-cupcake/internal/scene/worlds"
)

const (
	bonusLevel  = "game-test-bonus"
	brokenLevel = "game-test-broken"
)

var errLayout = errors.New("layout failed")

func init() {
	registry.Register(bonusLevel, func() *scene.Scene {
		return &scene.Scene{
			Name:   bonusLevel,
			Level:  true,
			Assets: scene.NewAssets(),
			Layout: scene.GroundRow,
		}
	})
	registry.Register(brokenLevel, func() *scene.Scene {
		return &scene.Scene{
			Name:   brokenLevel,
			Level:  true,
			Assets: scene.NewAssets(),
			Layout: func(s scene.Spawner, cfg config.GameConfig) error {
				if err := scene.GroundRow(s, cfg); err != nil {
					return err
				}
				return errLayout
			},
		}
	})
}

func newTestContext(t *testing.T) (*Context, *ManualTime) {
	t.Helper()
	mt := NewManualTime()
	c, err := NewContext(Options{Config: config.DefaultConfig(), Now: mt.Now, Seed: 1})
	require.NoError(t, err)
	return c, mt
}

func TestNewContextLoadsInitialScene(t *testing.T) {
	c, _ := newTestContext(t)

	require.Equal(t, worlds.CupcakeWorld, c.Scene.Name)
	require.Len(t, c.Entities.OfType(ecs.TypeTile), 10)

	p, ok := c.Player()
	require.True(t, ok)
	require.Equal(t, core.Vec(300, 300), p.Graphics().Position)
	require.True(t, p.Player().IsFalling())

	require.True(t, c.State.Paused)
	require.True(t, c.Fresh())
	require.Equal(t, 3, c.State.Lives)
}

func TestNewContextUnknownScene(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.World.InitialScene = "nowhere"
	_, err := NewContext(Options{Config: cfg, Seed: 1})
	require.ErrorIs(t, err, registry.ErrUnknownScene)
}

func TestLoadSceneKeepsPlayerBetweenLevels(t *testing.T) {
	c, _ := newTestContext(t)
	id := c.PlayerID()
	_, err := c.SpawnFood("cupcake", core.Vec(2, 20))
	require.NoError(t, err)

	require.NoError(t, c.LoadScene(bonusLevel, false))
	require.Equal(t, id, c.PlayerID())
	require.True(t, c.Entities.Contains(id))
	require.Empty(t, c.Entities.OfType(ecs.TypeFood))
	require.Len(t, c.Entities.OfType(ecs.TypeTile), 10)
	require.Len(t, c.Entities.OfType(ecs.TypePlayer), 1)
}

func TestLoadSceneRecreatesPlayer(t *testing.T) {
	tests := []struct {
		name        string
		scene       string
		resetPlayer bool
	}{
		{"into non-level", worlds.SpaceWorld, false},
		{"reset requested", bonusLevel, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestContext(t)
			old := c.PlayerID()

			require.NoError(t, c.LoadScene(tc.scene, tc.resetPlayer))
			require.NotEqual(t, old, c.PlayerID())
			require.False(t, c.Entities.Contains(old))
			require.Len(t, c.Entities.OfType(ecs.TypePlayer), 1)
			require.Equal(t, tc.scene, c.Scene.Name)
		})
	}
}

func TestLoadSceneUnknownKeepsWorld(t *testing.T) {
	c, _ := newTestContext(t)
	before := c.Entities.Len()

	require.ErrorIs(t, c.LoadScene("nowhere", false), registry.ErrUnknownScene)
	require.Equal(t, worlds.CupcakeWorld, c.Scene.Name)
	require.Equal(t, before, c.Entities.Len())
}

func TestLoadSceneFailedLayoutKeepsWorld(t *testing.T) {
	c, _ := newTestContext(t)
	id := c.PlayerID()
	before := c.Entities.Len()

	require.ErrorIs(t, c.LoadScene(brokenLevel, false), errLayout)
	require.Equal(t, worlds.CupcakeWorld, c.Scene.Name)
	require.Equal(t, before, c.Entities.Len())
	require.True(t, c.Entities.Contains(id))
	require.Len(t, c.Entities.OfType(ecs.TypeTile), 10)
}

func TestBeginTickTracksFrameDelta(t *testing.T) {
	c, mt := newTestContext(t)
	c.Start()

	mt.Advance(16 * time.Millisecond)
	c.BeginTick()
	require.Equal(t, 16*time.Millisecond, c.FrameDelta())
	require.Equal(t, 1, c.Ticks())
	require.False(t, c.Fresh())

	mt.Advance(20 * time.Millisecond)
	c.BeginTick()
	require.Equal(t, 20*time.Millisecond, c.FrameDelta())
}

func TestPauseFreezesClock(t *testing.T) {
	c, mt := newTestContext(t)
	c.Start()
	mt.Advance(time.Second)
	c.BeginTick()

	c.TogglePause()
	require.True(t, c.State.Paused)
	mt.Advance(time.Minute)
	c.TogglePause()
	require.False(t, c.State.Paused)

	mt.Advance(time.Second)
	c.BeginTick()
	require.Equal(t, 2*time.Second, c.Clock.Elapsed())
}

func TestEmitOnlyResolvedSounds(t *testing.T) {
	c, _ := newTestContext(t)

	c.Emit("eat")
	c.Emit("explosion")
	require.Equal(t, []Cue{{Sound: "eat"}}, c.Cues())

	c.BeginTick()
	require.Empty(t, c.Cues())
}

func TestSpawnFood(t *testing.T) {
	c, _ := newTestContext(t)

	e, err := c.SpawnFood("star", core.Vec(52, 20))
	require.NoError(t, err)
	require.Equal(t, 10, e.Consumable().Value)
	require.Equal(t, 7.0, e.Gravity().Weight)
	require.Equal(t, "star", e.Graphics().ImageID)
	require.Equal(t, core.Vec(74, 42), e.Collision().Collider.Position())

	_, err = c.SpawnFood("pizza", core.Vec(52, 20))
	require.Error(t, err)
}

func TestResetRun(t *testing.T) {
	c, mt := newTestContext(t)
	c.Start()
	mt.Advance(time.Second)
	c.BeginTick()
	c.State.Score = 5
	c.State.GameOver = true
	old := c.PlayerID()

	require.NoError(t, c.ResetRun(true))
	require.Zero(t, c.State.Score)
	require.False(t, c.State.GameOver)
	require.True(t, c.State.LastRunLost)
	require.True(t, c.State.Paused)
	require.True(t, c.Fresh())
	require.NotEqual(t, old, c.PlayerID())
	require.True(t, c.Snapshot().GameOver)

	c.Start()
	require.False(t, c.Snapshot().GameOver)
}

func TestDebugInfo(t *testing.T) {
	c, _ := newTestContext(t)

	info := c.Debug()
	require.Len(t, info.Entities, 11)
	require.Equal(t, "Player", info.Entities[10])
	require.True(t, info.Paused)
	require.Equal(t, 2*time.Second, info.SpawnInterval)
	require.NotNil(t, info.Player)
	require.Equal(t, core.Vec(300, 300), info.Player.Position)
	require.Equal(t, ecs.StateFalling, info.Player.State)
	require.Equal(t, AnimDefault, info.Player.Animation)

	c.Entities.Remove(c.PlayerID())
	require.Nil(t, c.Debug().Player)
}
