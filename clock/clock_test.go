package clock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-midiwire/clock"
)

func TestQuarterCallback(t *testing.T) {
	var quarters []uint32
	c := clock.Clock{HandleQuarter: func(q uint32) { quarters = append(quarters, q) }}

	// Ticks are ignored until Start.
	c.Update(clock.Tick)
	assert.Empty(t, quarters)

	c.Update(clock.Start)
	for i := 0; i < 49; i++ {
		c.Update(clock.Tick)
	}

	// Quarter fires on ticks 0, 24 and 48.
	assert.Equal(t, []uint32{0, 1, 2}, quarters)
	assert.Equal(t, uint32(49), c.Tick())
}

func TestStartResetsContinuePreserves(t *testing.T) {
	c := clock.Clock{}

	c.Update(clock.Start)
	for i := 0; i < 30; i++ {
		c.Update(clock.Tick)
	}
	assert.Equal(t, uint32(30), c.Tick())

	c.Update(clock.Stop)
	c.Update(clock.Tick)
	assert.Equal(t, uint32(30), c.Tick())
	assert.False(t, c.Running())

	c.Update(clock.Continue)
	c.Update(clock.Tick)
	assert.Equal(t, uint32(31), c.Tick())

	c.Update(clock.Start)
	assert.Equal(t, uint32(0), c.Tick())
	assert.True(t, c.Running())
}

func TestBeatConversion(t *testing.T) {
	c := clock.Clock{}

	// Song Position: 1 beat = 6 clocks, 1 quarter = 24 clocks.
	c.SetBeat(8)
	assert.Equal(t, uint32(48), c.Tick())
	assert.Equal(t, uint32(8), c.Beat())
	assert.Equal(t, uint32(2), c.Quarter())
}

func TestReset(t *testing.T) {
	c := clock.Clock{}
	c.Update(clock.Start)
	c.Update(clock.Tick)
	c.Reset()
	assert.Equal(t, uint32(0), c.Tick())
	assert.False(t, c.Running())
}
