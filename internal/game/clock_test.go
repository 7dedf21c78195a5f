package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClockStartsSuspended(t *testing.T) {
	mt := NewManualTime()
	c := NewClock(mt.Now)

	mt.Advance(time.Second)
	c.Update()
	require.False(t, c.Running())
	require.False(t, c.Started())
	require.Zero(t, c.Elapsed())
}

func TestClockExcludesSuspendedTime(t *testing.T) {
	mt := NewManualTime()
	c := NewClock(mt.Now)

	mt.Advance(3 * time.Second) // waiting for the first key press
	c.Resume()
	mt.Advance(time.Second)
	c.Update()
	require.Equal(t, time.Second, c.Elapsed())

	c.Suspend()
	require.True(t, c.Started())
	mt.Advance(10 * time.Second)
	c.Update()
	require.Equal(t, time.Second, c.Elapsed(), "frozen while suspended")

	c.Resume()
	mt.Advance(500 * time.Millisecond)
	c.Update()
	require.Equal(t, 1500*time.Millisecond, c.Elapsed())
}

func TestClockRepeatedCallsAreNoops(t *testing.T) {
	mt := NewManualTime()
	c := NewClock(mt.Now)

	c.Resume()
	mt.Advance(time.Second)
	c.Resume()
	c.Update()
	require.Equal(t, time.Second, c.Elapsed())

	c.Suspend()
	mt.Advance(time.Second)
	c.Suspend()
	c.Resume()
	c.Update()
	require.Equal(t, time.Second, c.Elapsed())
}

func TestClockReset(t *testing.T) {
	mt := NewManualTime()
	c := NewClock(mt.Now)
	c.Resume()
	mt.Advance(time.Second)
	c.Update()

	c.Reset()
	require.False(t, c.Running())
	require.False(t, c.Started())
	require.Zero(t, c.Elapsed())
}
