package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte(`
player:
  speed: 6
food:
  spawn_positions: [10, 20]
`))
	require.NoError(t, err)

	require.Equal(t, 6.0, cfg.Player.Speed)
	require.Equal(t, []float64{10, 20}, cfg.Food.SpawnPositions)
	// Untouched keys keep defaults
	require.Equal(t, 3.0, cfg.Player.JumpHeight)
	require.Equal(t, 500, cfg.Window.Width)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("window: [1, 2"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"zero width", func(c *GameConfig) { c.Window.Width = 0 }},
		{"zero rate", func(c *GameConfig) { c.Tick.Rate = 0 }},
		{"slow mode without interval", func(c *GameConfig) { c.Tick.SlowMode = true; c.Tick.SlowIntervalMs = 0 }},
		{"no spawn positions", func(c *GameConfig) { c.Food.SpawnPositions = nil }},
		{"no lives", func(c *GameConfig) { c.Player.Lives = 0 }},
		{"no scene", func(c *GameConfig) { c.World.InitialScene = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestDurations(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, time.Second/60, cfg.TickInterval())
	require.Equal(t, 2*time.Second, cfg.FoodSpawnInterval())
	require.Equal(t, 500*time.Millisecond, cfg.JumpDuration())

	cfg.Tick.SlowMode = true
	require.Equal(t, time.Second, cfg.TickInterval())
	require.Equal(t, time.Minute, cfg.FoodSpawnInterval())
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  lives: 5\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Player.Lives)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("player:\n  lives: 0\n"), 0o600))
	_, err = Load(path)
	require.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	require.NoError(t, err)

	cfg, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}
