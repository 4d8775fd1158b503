// Package clock consumes MIDI real-time clock/sync events and tracks
// the song position. MIDI sends 24 clocks per quarter note; a Song
// Position beat is 6 clocks.
package clock

// Event is a real-time clock message.
type Event int

const (
	Tick Event = iota
	Start
	Continue
	Stop
)

// Clock tracks the running state and tick counter. HandleQuarter, if
// set, is called on every quarter-note boundary while running.
type Clock struct {
	HandleQuarter func(quarter uint32)

	run  bool
	tick uint32
}

func (c *Clock) Reset() {
	c.run = false
	c.tick = 0
}

func (c *Clock) Tick() uint32 {
	return c.tick
}

// SetBeat positions the clock; Song Position sets the number of beats.
func (c *Clock) SetBeat(beat uint32) {
	c.tick = beat * 6
}

func (c *Clock) Beat() uint32 {
	return c.tick / 6
}

func (c *Clock) Quarter() uint32 {
	return c.tick / 24
}

func (c *Clock) Update(event Event) {
	switch event {
	case Tick:
		// Sent at a rate of 24 per quarter note.
		if !c.run {
			break
		}

		if c.tick%24 == 0 && c.HandleQuarter != nil {
			c.HandleQuarter(c.tick / 24)
		}
		c.tick++

	case Start:
		c.run = true
		c.tick = 0

	case Continue:
		// A sequence continues from its current location upon receipt
		// of the next tick.
		c.run = true

	case Stop:
		c.run = false
	}
}

// Running reports whether the clock is started.
func (c *Clock) Running() bool {
	return c.run
}

func (e Event) String() string {
	switch e {
	case Tick:
		return "tick"
	case Start:
		return "start"
	case Continue:
		return "continue"
	case Stop:
		return "stop"
	}
	return "unknown"
}
