package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfmeter/internal/clock"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestStopwatch_MeasuresRunningTime(t *testing.T) {
	c := clock.NewManual(epoch)
	sw, started := clock.StartNew(c)
	assert.Equal(t, epoch, started)
	assert.True(t, sw.Running())

	c.Advance(150 * time.Millisecond)
	assert.Equal(t, 150*time.Millisecond, sw.Elapsed())

	elapsed, ok := sw.Stop()
	require.True(t, ok)
	assert.Equal(t, 150*time.Millisecond, elapsed)
	assert.False(t, sw.Running())
}

func TestStopwatch_StopIsIdempotent(t *testing.T) {
	c := clock.NewManual(epoch)
	sw, _ := clock.StartNew(c)
	c.Advance(time.Second)

	_, ok := sw.Stop()
	require.True(t, ok)

	c.Advance(time.Second)
	elapsed, ok := sw.Stop()
	assert.False(t, ok)
	assert.Equal(t, time.Second, elapsed)
	assert.Equal(t, time.Second, sw.Elapsed())
}

func TestStopwatch_PauseExcludesTime(t *testing.T) {
	c := clock.NewManual(epoch)
	sw, _ := clock.StartNew(c)

	c.Advance(10 * time.Millisecond)
	sw.Pause()
	c.Advance(500 * time.Millisecond)
	sw.Resume()
	c.Advance(5 * time.Millisecond)

	elapsed, _ := sw.Stop()
	assert.Equal(t, 15*time.Millisecond, elapsed)
}

func TestStopwatch_NestedPauses(t *testing.T) {
	c := clock.NewManual(epoch)
	sw, _ := clock.StartNew(c)

	sw.Pause()
	sw.Pause()
	c.Advance(time.Second)
	sw.Resume()
	assert.False(t, sw.Running(), "one pause is still outstanding")
	c.Advance(time.Second)
	sw.Resume()
	assert.True(t, sw.Running())
	c.Advance(3 * time.Millisecond)

	assert.Equal(t, 3*time.Millisecond, sw.Elapsed())
}

func TestStopwatch_ResumeAfterStopIsNoop(t *testing.T) {
	c := clock.NewManual(epoch)
	sw, _ := clock.StartNew(c)

	sw.Pause()
	c.Advance(time.Second)
	elapsed, ok := sw.Stop()
	require.True(t, ok)
	assert.Zero(t, elapsed)

	sw.Resume()
	c.Advance(time.Second)
	assert.False(t, sw.Running())
	assert.Zero(t, sw.Elapsed())
}

func TestStopwatch_NotStarted(t *testing.T) {
	sw := clock.NewStopwatch(nil)
	sw.Pause()
	sw.Resume()

	_, ok := sw.Stop()
	assert.False(t, ok)
	assert.Zero(t, sw.Elapsed())
}

func TestManual_SetAndAdvance(t *testing.T) {
	c := clock.NewManual(epoch)
	c.Advance(time.Minute)
	assert.Equal(t, epoch.Add(time.Minute), c.Now())

	later := epoch.Add(time.Hour)
	c.Set(later)
	assert.Equal(t, later, c.Now())
}
