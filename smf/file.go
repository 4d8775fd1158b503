// Package smf reads Standard MIDI Files, format 0 and 1, and plays
// their tracks under the tempo map of track 0. The file data stays in
// the caller's buffer; tracks and events reference into it.
package smf

import (
	"go-midiwire/packet"
)

// MetaType identifies a meta event in a track.
type MetaType uint8

const (
	MetaSequence      MetaType = 0x00
	MetaText          MetaType = 0x01
	MetaCopyright     MetaType = 0x02
	MetaTitle         MetaType = 0x03
	MetaInstrument    MetaType = 0x04
	MetaLyric         MetaType = 0x05
	MetaMarker        MetaType = 0x06
	MetaCuePoint      MetaType = 0x07
	MetaProgramName   MetaType = 0x08
	MetaDeviceName    MetaType = 0x09
	MetaChannel       MetaType = 0x20
	MetaPort          MetaType = 0x21
	MetaEndOfTrack    MetaType = 0x2f
	MetaTempo         MetaType = 0x51
	MetaSmpteOffset   MetaType = 0x54
	MetaTimeSignature MetaType = 0x58
	MetaKeySignature  MetaType = 0x59
	MetaSequencer     MetaType = 0x7f
)

// EventType classifies an event in a track.
type EventType int

const (
	EventNone EventType = iota
	EventMeta
	EventSysEx
	EventMessage
)

// Event is one event in a MIDI track.
type Event struct {
	// The delay in ticks until the event fires. A zero delta value
	// means that multiple events in the same stream fire at the same
	// time.
	Delta uint32

	Type      EventType
	Meta      MetaType
	SysExType byte

	Status  packet.Status
	Channel uint8

	Data []byte
}

// Track is one track chunk in a MIDI file; it contains the events.
type Track struct {
	data []byte

	// MIDI Running Status. Repeated channel messages of the same type
	// and channel might omit the leading status byte.
	running struct {
		status  packet.Status
		channel uint8
	}
}

// Data returns the raw event stream of the track.
func (t *Track) Data() []byte {
	return t.data
}

// resetRunning must be called whenever iteration restarts from the
// beginning of the track.
func (t *Track) resetRunning() {
	t.running.status = 0
	t.running.channel = 0
}

// readNumber reads a variable-length encoded number. Big Endian, 7 bit
// data / byte.
func (t *Track) readNumber(cursor *int) (uint32, bool) {
	var number uint32

	for {
		if *cursor >= len(t.data) {
			return 0, false
		}

		b := t.data[*cursor]
		*cursor++
		number |= uint32(b & 0x7f)
		if b < 0x80 {
			break
		}

		number <<= 7
	}

	return number, true
}

// ReadEvent iterates over the stream of events in a track. The cursor
// starts at zero; every call advances it past the returned event. It
// returns false at the end of the track.
func (t *Track) ReadEvent(e *Event, cursor *int) bool {
	if *cursor == 0 {
		t.resetRunning()
	}

	if *cursor >= len(t.data) {
		e.Type = EventNone
		return false
	}

	delta, ok := t.readNumber(cursor)
	if !ok {
		e.Type = EventNone
		return false
	}
	e.Delta = delta

	if *cursor >= len(t.data) {
		e.Type = EventNone
		return false
	}

	switch t.data[*cursor] {
	case 0xff:
		*cursor++
		if *cursor >= len(t.data) {
			e.Type = EventNone
			return false
		}

		e.Type = EventMeta
		e.Meta = MetaType(t.data[*cursor])
		*cursor++

		length, ok := t.readNumber(cursor)
		if !ok || *cursor+int(length) > len(t.data) {
			e.Type = EventNone
			return false
		}

		e.Data = t.data[*cursor : *cursor+int(length)]
		*cursor += int(length)

		if e.Meta == MetaEndOfTrack {
			e.Type = EventNone
			return false
		}
		return true

	case 0xf0, 0xf7:
		e.Type = EventSysEx
		e.SysExType = t.data[*cursor]
		*cursor++

		length, ok := t.readNumber(cursor)
		if !ok || *cursor+int(length) > len(t.data) {
			e.Type = EventNone
			return false
		}

		e.Data = t.data[*cursor : *cursor+int(length)]
		*cursor += int(length)
		return true

	default:
		e.Type = EventMessage
		if t.data[*cursor] >= 0x80 {
			b := t.data[*cursor]
			if packet.Status(b&0xf0) != packet.System {
				e.Status = packet.Status(b & 0xf0)
				e.Channel = b & 0x0f

			} else {
				e.Status = packet.Status(b)
				e.Channel = 0
			}

			*cursor++
			t.running.status = e.Status
			t.running.channel = e.Channel

		} else {
			e.Status = t.running.status
			e.Channel = t.running.channel
		}

		var length int
		switch e.Status {
		case packet.NoteOn,
			packet.NoteOff,
			packet.Aftertouch,
			packet.ControlChange,
			packet.PitchBend,
			packet.SystemSongPosition:
			length = 2

		case packet.ProgramChange,
			packet.AftertouchChannel,
			packet.SystemTimeCodeQuarterFrame,
			packet.SystemSongSelect:
			length = 1

		case packet.SystemTuneRequest,
			packet.SystemClock,
			packet.SystemStart,
			packet.SystemContinue,
			packet.SystemStop,
			packet.SystemActiveSensing,
			packet.SystemReset:
			length = 0

		default:
			// Data byte without a running status.
			e.Type = EventNone
			return false
		}

		if *cursor+length > len(t.data) {
			e.Type = EventNone
			return false
		}

		e.Data = t.data[*cursor : *cursor+length]
		*cursor += length
		return true
	}
}

// Tag finds the first meta event of the given type in the track and
// returns its text.
func (t *Track) Tag(meta MetaType) (string, bool) {
	cursor := 0

	for {
		var e Event
		if !t.ReadEvent(&e, &cursor) {
			return "", false
		}

		if e.Type != EventMeta {
			continue
		}

		if e.Meta != meta {
			continue
		}

		return string(e.Data), true
	}
}
