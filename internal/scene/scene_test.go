package scene

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-cupcake/internal/config"
	"github.com/vovakirdan/tui-cupcake/internal/core"
)

type recordingSpawner struct {
	tiles    []core.Vector2
	variants []TileVariant
	err      error
}

func (r *recordingSpawner) SpawnTile(pos core.Vector2, v TileVariant) error {
	if r.err != nil {
		return r.err
	}
	r.tiles = append(r.tiles, pos)
	r.variants = append(r.variants, v)
	return nil
}

func TestAssetsResolveAfterLoad(t *testing.T) {
	a := NewAssets().AddBackground("bg.png").AddImage("cupcake", "c.png").AddSound("eat", "eat.mp3")

	require.False(t, a.HasImage("cupcake"))
	require.False(t, a.HasSound("eat"))

	a.Load()
	require.True(t, a.Loaded())
	require.True(t, a.HasImage("cupcake"))
	require.True(t, a.HasImage(BackgroundID))
	require.True(t, a.HasSound("eat"))
	require.False(t, a.HasImage("star"))
	require.False(t, a.HasSound("drop"))

	require.Equal(t, []string{BackgroundID, "cupcake"}, a.ImageIDs())
	require.Equal(t, []string{"eat"}, a.SoundIDs())

	p, ok := a.ImagePath("cupcake")
	require.True(t, ok)
	require.Equal(t, "c.png", p)
}

func TestGroundRow(t *testing.T) {
	cfg := config.DefaultConfig()
	sp := &recordingSpawner{}

	require.NoError(t, GroundRow(sp, cfg))
	require.Len(t, sp.tiles, 10)
	for i, pos := range sp.tiles {
		require.Equal(t, core.Vec(float64(i*50), 400), pos)
	}
	require.Equal(t, TileLeft, sp.variants[0])
	require.Equal(t, TileMid, sp.variants[5])
	require.Equal(t, TileRight, sp.variants[9])
}

func TestLoadWrapsLayoutError(t *testing.T) {
	s := &Scene{Name: "broken", Assets: NewAssets(), Layout: GroundRow}
	boom := errors.New("boom")

	err := s.Load(&recordingSpawner{err: boom}, config.DefaultConfig())
	require.ErrorIs(t, err, boom)
	require.True(t, s.Assets.Loaded())
}
