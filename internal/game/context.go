// Package game holds the state shared by all systems during a run: the
// entity registry, run state, clock and the currently loaded scene.
package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-cupcake/internal/config"
	"github.com/vovakirdan/tui-cupcake/internal/core"
	"github.com/vovakirdan/tui-cupcake/internal/ecs"
	"github.com/vovakirdan/tui-cupcake/internal/scene"
)

// Cue is a sound the platform should play after a tick.
type Cue struct {
	Sound string
}

// Options configure a new Context.
type Options struct {
	Config config.GameConfig
	Logger *log.Logger      // Nil discards logs
	Now    func() time.Time // Nil uses time.Now
	Seed   int64            // 0 seeds from the current time
}

// Context is owned by the tick pipeline and passed to every system.
type Context struct {
	Config     config.GameConfig
	Entities   *ecs.Registry
	State      *State
	Clock      *Clock
	Scene      *scene.Scene
	Difficulty *config.DifficultyManager
	Rand       *rand.Rand
	Log        *log.Logger

	playerID  ecs.ID
	ticks     int
	lastFrame time.Duration
	delta     time.Duration
	cues      []Cue
}

// NewContext creates a context and loads the initial scene. The run starts
// paused; call Start to begin.
func NewContext(opts Options) (*Context, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	c := &Context{
		Config:     opts.Config,
		Entities:   ecs.NewRegistry(),
		State:      NewState(opts.Config),
		Clock:      NewClock(opts.Now),
		Difficulty: config.NewDifficultyManager(opts.Config.Difficulty),
		Rand:       rand.New(rand.NewSource(seed)),
		Log:        logger,
	}
	if err := c.LoadScene(opts.Config.World.InitialScene, true); err != nil {
		return nil, fmt.Errorf("initial scene: %w", err)
	}
	return c, nil
}

// PlayerID returns the id of the current player entity.
func (c *Context) PlayerID() ecs.ID {
	return c.playerID
}

// Player returns the player entity if it is alive.
func (c *Context) Player() (*ecs.Entity, bool) {
	return c.Entities.Get(c.playerID)
}

// Ticks returns the number of ticks run since the context was created.
func (c *Context) Ticks() int {
	return c.ticks
}

// FrameDelta returns the run time that passed during the last tick.
func (c *Context) FrameDelta() time.Duration {
	return c.delta
}

// BeginTick advances the clock and starts a new tick. Cues of the previous
// tick are dropped.
func (c *Context) BeginTick() {
	c.cues = c.cues[:0]
	c.Clock.Update()
	elapsed := c.Clock.Elapsed()
	c.delta = elapsed - c.lastFrame
	c.lastFrame = elapsed
	c.ticks++
}

// Emit queues a sound cue if the current scene resolves it.
func (c *Context) Emit(sound string) {
	if c.Scene == nil || !c.Scene.Assets.HasSound(sound) {
		return
	}
	c.cues = append(c.cues, Cue{Sound: sound})
}

// Cues returns the sound cues emitted during the last tick.
func (c *Context) Cues() []Cue {
	out := make([]Cue, len(c.cues))
	copy(out, c.cues)
	return out
}

// Fresh reports whether the run is waiting for its first key press.
func (c *Context) Fresh() bool {
	return !c.Clock.Started()
}

// Start unpauses the run and resumes the clock.
func (c *Context) Start() {
	c.State.Paused = false
	c.State.LastRunLost = false
	c.Clock.Resume()
	c.Log.Debug("run started")
}

// TogglePause pauses or resumes the run.
func (c *Context) TogglePause() {
	c.State.Paused = !c.State.Paused
	if c.State.Paused {
		c.Clock.Suspend()
	} else {
		c.Clock.Resume()
	}
	c.Log.Debug("pause toggled", "paused", c.State.Paused)
}

// Snapshot returns a read-only view of the run for the platform layer.
func (c *Context) Snapshot() core.GameState {
	s := core.GameState{
		Score:    c.State.Score,
		Lives:    c.State.Lives,
		GameOver: c.State.GameOver || c.State.LastRunLost,
		Paused:   c.State.Paused,
	}
	if c.Scene != nil {
		s.Scene = c.Scene.Name
	}
	return s
}
