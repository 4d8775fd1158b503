package smf

import (
	"encoding/binary"

	"go-midiwire/packet"
)

// State of the loaded file / player.
type State int

const (
	StateEmpty State = iota
	StateLoaded
	StatePlay
	StateStop
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoaded:
		return "loaded"
	case StatePlay:
		return "play"
	case StateStop:
		return "stop"
	}
	return "unknown"
}

// MaxTracks is the static maximum number of tracks in a file.
const MaxTracks = 16

type playTrack struct {
	cursor int
	tick   float64
	event  Event
	end    bool
}

// Tracks is a loaded MIDI file and its playback state. The player does
// not own a wall clock; Run is handed the current time in
// microseconds.
type Tracks struct {
	// HandleStateChange notifies about Start, Stop / the end of
	// playback.
	HandleStateChange func(state State)

	// HandleSend sends the MIDI packets of a playing track.
	HandleSend func(track int, p *packet.Packet) bool

	state State
	data  []byte

	header struct {
		format   uint16
		nTracks  uint16
		division uint16
	}
	tracks [MaxTracks]Track

	play struct {
		// The duration of one MIDI tick.
		tickDurationUsec float64

		// The current tick while playing the file.
		tick float64

		// The last time the tick handler was called.
		lastUsec uint32

		tracks [MaxTracks]playTrack
	}

	loopUsec uint32
}

func (t *Tracks) setState(state State) {
	t.state = state
	if t.HandleStateChange != nil {
		t.HandleStateChange(state)
	}
}

// State returns the current player state.
func (t *Tracks) State() State {
	return t.state
}

// readSignature matches a 4 byte section / chunk header.
func (t *Tracks) readSignature(signature string, cursor *int) bool {
	if *cursor+4 > len(t.data) {
		return false
	}

	header := t.data[*cursor : *cursor+4]
	*cursor += 4
	return string(header) == signature
}

func (t *Tracks) readBE32(cursor *int) (uint32, bool) {
	if *cursor+4 > len(t.data) {
		return 0, false
	}

	v := binary.BigEndian.Uint32(t.data[*cursor:])
	*cursor += 4
	return v, true
}

func (t *Tracks) readBE16(cursor *int) (uint16, bool) {
	if *cursor+2 > len(t.data) {
		return 0, false
	}

	v := binary.BigEndian.Uint16(t.data[*cursor:])
	*cursor += 2
	return v, true
}

// Load parses the header and track chunks. A nil buffer unloads the
// file. On failure it returns false and the state stays Empty; no
// partial state leaks to playback.
func (t *Tracks) Load(data []byte) bool {
	if data == nil {
		if t.state != StateEmpty {
			t.setState(StateEmpty)
		}

		return false
	}

	t.state = StateEmpty
	t.data = data
	cursor := 0

	if !t.readSignature("MThd", &cursor) {
		return false
	}

	if length, ok := t.readBE32(&cursor); !ok || length != 6 {
		return false
	}

	// 0: Single multi-channel track
	// 1: One or more simultaneous tracks/outputs
	// 2: One or more sequentially independent single-track patterns
	//
	// Format 2 is not supported; independent tracks are preferred as
	// separate files.
	format, ok := t.readBE16(&cursor)
	if !ok || format > 1 {
		return false
	}
	t.header.format = format

	// The number of tracks in the file.
	nTracks, ok := t.readBE16(&cursor)
	if !ok || nTracks > MaxTracks {
		return false
	}
	t.header.nTracks = nTracks

	// The ticks per beat. Bit 15 selects the SMPTE format.
	division, ok := t.readBE16(&cursor)
	if !ok || division&0x8000 != 0 || division == 0 {
		return false
	}
	t.header.division = division

	for i := 0; i < int(t.header.nTracks); i++ {
		if !t.readSignature("MTrk", &cursor) {
			return false
		}

		length, ok := t.readBE32(&cursor)
		if !ok || length < 2 || cursor+int(length) > len(t.data) {
			return false
		}

		t.tracks[i].data = t.data[cursor : cursor+int(length)]
		cursor += int(length)
	}

	t.setState(StateLoaded)
	return true
}

// Format returns the file format, or -1 if nothing is loaded.
func (t *Tracks) Format() int {
	if t.state == StateEmpty {
		return -1
	}

	return int(t.header.format)
}

// TrackCount returns the number of tracks, or -1 if nothing is loaded.
func (t *Tracks) TrackCount() int {
	if t.state == StateEmpty {
		return -1
	}

	return int(t.header.nTracks)
}

// Division returns the ticks per quarter note, or -1 if nothing is
// loaded.
func (t *Tracks) Division() int {
	if t.state == StateEmpty {
		return -1
	}

	return int(t.header.division)
}

// Track returns the given track, or nil.
func (t *Tracks) Track(track int) *Track {
	if t.state == StateEmpty {
		return nil
	}

	if track < 0 || track >= int(t.header.nTracks) {
		return nil
	}

	return &t.tracks[track]
}

// Tag finds the first meta tag of the given type in track 0.
func (t *Tracks) Tag(meta MetaType) (string, bool) {
	if t.state == StateEmpty {
		return "", false
	}

	return t.tracks[0].Tag(meta)
}

// Play starts playback from the beginning. nowUsec is the current
// wall-clock microsecond reading.
func (t *Tracks) Play(nowUsec uint32) bool {
	if t.state == StateEmpty {
		return false
	}

	for i := range t.play.tracks {
		t.play.tracks[i] = playTrack{}
	}

	for i := 0; i < int(t.header.nTracks); i++ {
		t.tracks[i].resetRunning()
	}

	// The default tempo, if no tempo events are in track 0.
	t.setTempoBPM(120)

	t.play.tick = 0
	t.play.lastUsec = nowUsec

	t.setState(StatePlay)
	return true
}

// Stop halts playback.
func (t *Tracks) Stop() {
	if t.state != StatePlay {
		return
	}

	t.setState(StateStop)
}

// Run advances playback to nowUsec. It needs to be called from a few
// times a millisecond to every few milliseconds. The playback speed
// does not depend on the call frequency, it only affects the accuracy
// of the events timing.
func (t *Tracks) Run(nowUsec uint32) {
	if t.state != StatePlay {
		return
	}

	// The time since the last run; unsigned arithmetic handles the
	// wrap-around.
	passedUsec := nowUsec - t.play.lastUsec
	t.play.lastUsec = nowUsec

	// Add the number of ticks which have passed.
	t.play.tick += float64(passedUsec) / t.play.tickDurationUsec

	playing := false

	for i := 0; i < int(t.header.nTracks); i++ {
		pt := &t.play.tracks[i]
		if pt.end {
			continue
		}

		playing = true

		// Check if the current track has pending messages.
		if t.play.tick < pt.tick {
			continue
		}

		for {
			// Read a new event, or handle the previous / delayed event.
			if pt.event.Type == EventNone {
				if !t.tracks[i].ReadEvent(&pt.event, &pt.cursor) {
					pt.end = true
					break
				}

				if pt.event.Delta > 0 {
					// Delay the event.
					pt.tick += float64(pt.event.Delta)
					if t.play.tick < pt.tick {
						break
					}
				}
			}

			// Track 0 might change the global playback tempo.
			if i == 0 && pt.event.Type == EventMeta && pt.event.Meta == MetaTempo && len(pt.event.Data) == 3 {
				// 24 bit integer, the number of microseconds per beat.
				usec := uint32(pt.event.Data[0])<<16 | uint32(pt.event.Data[1])<<8 | uint32(pt.event.Data[2])
				t.setTempoUsec(float64(usec))
				pt.event.Type = EventNone
				continue
			}

			if pt.event.Type == EventMessage {
				var midi packet.Packet

				switch pt.event.Status {
				case packet.NoteOn,
					packet.NoteOff,
					packet.Aftertouch,
					packet.ControlChange,
					packet.PitchBend:
					midi.Set(pt.event.Status, pt.event.Channel, pt.event.Data[0], pt.event.Data[1])
					if t.HandleSend != nil {
						t.HandleSend(i, &midi)
					}

				case packet.ProgramChange,
					packet.AftertouchChannel:
					midi.Set(pt.event.Status, pt.event.Channel, pt.event.Data[0], 0)
					if t.HandleSend != nil {
						t.HandleSend(i, &midi)
					}
				}
			}

			pt.event.Type = EventNone
		}
	}

	if !playing {
		t.setState(StateStop)
	}
}

// Loop rate-limits Run to once a millisecond; used if Run is not
// called periodically from a timer.
func (t *Tracks) Loop(nowUsec uint32) {
	if nowUsec-t.loopUsec < 1000 {
		return
	}

	t.loopUsec = nowUsec

	t.Run(nowUsec)
}

func (t *Tracks) setTempoBPM(bpm float64) {
	t.setTempoUsec(60 * 1000 * 1000 / bpm)
}

func (t *Tracks) setTempoUsec(usec float64) {
	t.play.tickDurationUsec = usec / float64(t.header.division)
}
