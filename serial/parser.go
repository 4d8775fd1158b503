// Package serial implements the MIDI 1.0 byte-stream protocol: a
// byte-at-a-time parser honoring running status and real-time
// interleaving, and a Transport over a UART at the standard
// 31250 baud, 8-N-1.
package serial

import "go-midiwire/packet"

type parserState int

const (
	stateIdle parserState = iota
	stateStatus
	stateData1
	stateData2
	stateSysEx
)

// Parser turns a raw MIDI byte stream into packets. Feed it one byte
// at a time; a complete message fills the caller's packet.
//
// Real-Time messages do not update the current Running Status. They
// are emitted immediately, even in the middle of another message.
type Parser struct {
	state   parserState
	status  packet.Status
	channel uint8
	data1   byte
}

// Reset drops any partially parsed message and the running status.
func (r *Parser) Reset() {
	r.state = stateIdle
}

// Feed consumes one wire byte. It returns true when a complete message
// has been written to p.
func (r *Parser) Feed(b byte, p *packet.Packet) bool {
	if b&0x80 != 0 {
		if packet.Status(b).IsRealTime() {
			p.SetSystem(packet.Status(b), 0, 0)
			return true
		}

		r.state = stateStatus
	}

	switch r.state {
	case stateIdle:
		return false

	case stateStatus:
		r.status = packet.StatusOf(b)
		if r.status < packet.System {
			r.channel = b & 0x0f
		} else {
			r.channel = 0
		}

		switch r.status {
		// Single byte message, the Real-Time messages are already handled.
		case packet.SystemTuneRequest:
			p.SetSystem(r.status, 0, 0)
			r.state = stateIdle
			return true

		// Wait for the next byte.
		case packet.ProgramChange,
			packet.AftertouchChannel,
			packet.SystemTimeCodeQuarterFrame,
			packet.SystemSongSelect,
			packet.NoteOn,
			packet.NoteOff,
			packet.Aftertouch,
			packet.ControlChange,
			packet.PitchBend,
			packet.SystemSongPosition:
			r.state = stateData1
			return false

		case packet.SystemExclusive:
			r.state = stateSysEx
			return false

		case packet.SystemExclusiveEnd:
			r.state = stateIdle
			return false
		}

		r.state = stateIdle
		return false

	case stateData1:
		switch r.status {
		// Two bytes message. Stay latched, a following data byte
		// reuses the running status.
		case packet.ProgramChange,
			packet.AftertouchChannel,
			packet.SystemTimeCodeQuarterFrame,
			packet.SystemSongSelect:
			p.Set(r.status, r.channel, b, 0)
			return true

		// Wait for the next byte.
		case packet.NoteOn,
			packet.NoteOff,
			packet.Aftertouch,
			packet.ControlChange,
			packet.PitchBend,
			packet.SystemSongPosition:
			r.data1 = b
			r.state = stateData2
			return false
		}
		return false

	case stateData2:
		p.Set(r.status, r.channel, r.data1, b)
		r.state = stateData1
		return true

	case stateSysEx:
		// System Exclusive is not assembled on the serial path. Discard
		// the bytes until the next status byte arrives.
		return false
	}

	return false
}
