// Package packet implements the USB-MIDI event packet. Every packet is
// 4 bytes long:
//
//  1. header (4 bits virtual cable number + 4 bits code index number)
//  2. status (7th bit set + 3 bits type + 4 bits channel/system number)
//  3. data byte 1 (7 bit)
//  4. data byte 2 (7 bit)
package packet

import "fmt"

// CodeIndex classifies the message framing in the packet header.
type CodeIndex uint8

const (
	CodeReserved             CodeIndex = 0
	CodeCable                CodeIndex = 1
	CodeSystemCommon2        CodeIndex = 2
	CodeSystemCommon3        CodeIndex = 3
	CodeSystemExclusiveStart CodeIndex = 4
	CodeSystemExclusiveEnd1  CodeIndex = 5
	CodeSystemExclusiveEnd2  CodeIndex = 6
	CodeSystemExclusiveEnd3  CodeIndex = 7
	CodeNoteOff              CodeIndex = 8
	CodeNoteOn               CodeIndex = 9
	CodeAftertouch           CodeIndex = 10
	CodeControlChange        CodeIndex = 11
	CodeProgramChange        CodeIndex = 12
	CodeAftertouchChannel    CodeIndex = 13
	CodePitchBend            CodeIndex = 14
	CodeSingleByte           CodeIndex = 15
)

// Status is the MIDI status byte, bit 7 is always set. Channel messages
// carry the channel in the low nibble, 'System' messages carry their
// message type there.
type Status uint8

const (
	NoteOff           Status = 0x80 | (0 << 4) // [note, velocity]
	NoteOn            Status = 0x80 | (1 << 4) // [note, velocity]
	Aftertouch        Status = 0x80 | (2 << 4) // [note, pressure]
	ControlChange     Status = 0x80 | (3 << 4) // [control function, value]
	ProgramChange     Status = 0x80 | (4 << 4) // [program]
	AftertouchChannel Status = 0x80 | (5 << 4) // [pressure]
	PitchBend         Status = 0x80 | (6 << 4) // [value LSB, value MSB]
	System            Status = 0x80 | (7 << 4)

	SystemExclusive            Status = System | 0 // [stream of 7-bit bytes terminated with 'ExclusiveEnd']
	SystemTimeCodeQuarterFrame Status = System | 1 // [4 bits of timecode fragment]
	SystemSongPosition         Status = System | 2 // [value LSB, value MSB]
	SystemSongSelect           Status = System | 3 // [song]
	SystemTuneRequest          Status = System | 6
	SystemExclusiveEnd         Status = System | 7
	SystemClock                Status = System | 8
	SystemStart                Status = System | 10
	SystemContinue             Status = System | 11
	SystemStop                 Status = System | 12
	SystemActiveSensing        Status = System | 14
	SystemReset                Status = System | 15
)

// StatusOf removes the channel number from a raw status byte. 'System'
// messages are returned verbatim, the low nibble is their message type.
func StatusOf(b byte) Status {
	if s := Status(b & 0xf0); s != System {
		return s
	}
	return Status(b)
}

// IsRealTime reports whether the status is a single-byte real-time
// message which may interleave with any other message on the wire.
func (s Status) IsRealTime() bool {
	switch s {
	case SystemClock, SystemStart, SystemContinue, SystemStop, SystemActiveSensing, SystemReset:
		return true
	}
	return false
}

// Packet is a single USB-MIDI event.
type Packet struct {
	data [4]byte
}

// Data exposes the raw 4 bytes of the packet, in wire order.
func (p *Packet) Data() []byte {
	return p.data[:]
}

// Cable returns the virtual cable/wire number. Port 1 == 0.
func (p *Packet) Cable() uint8 {
	return p.data[0] >> 4
}

func (p *Packet) SetCable(cable uint8) {
	p.data[0] &= 0x0f
	p.data[0] |= cable << 4
}

// CodeIndex returns the framing class in the packet header.
func (p *Packet) CodeIndex() CodeIndex {
	return CodeIndex(p.data[0] & 0x0f)
}

func (p *Packet) Channel() uint8 {
	return p.data[1] & 0x0f
}

func (p *Packet) SetChannel(channel uint8) {
	p.data[1] &= 0xf0
	p.data[1] |= channel
}

// Type returns the status with the channel number masked off; 'System'
// statuses are preserved in full.
func (p *Packet) Type() Status {
	return StatusOf(p.data[1])
}

func (p *Packet) Note() uint8 {
	return p.data[2]
}

func (p *Packet) NoteVelocity() uint8 {
	return p.data[3]
}

func (p *Packet) AftertouchNote() uint8 {
	return p.data[2]
}

func (p *Packet) Aftertouch() uint8 {
	return p.data[3]
}

func (p *Packet) Controller() uint8 {
	return p.data[2]
}

func (p *Packet) ControllerValue() uint8 {
	return p.data[3]
}

func (p *Packet) Program() uint8 {
	return p.data[2]
}

func (p *Packet) AftertouchChannelPressure() uint8 {
	return p.data[2]
}

// PitchBend decodes the 14 bit value, -8192..8191.
func (p *Packet) PitchBend() int16 {
	value := int16(p.data[3])<<7 | int16(p.data[2])
	return value - 8192
}

func (p *Packet) SongPosition() uint16 {
	return uint16(p.data[3])<<7 | uint16(p.data[2])
}

func (p *Packet) SongSelect() uint8 {
	return p.data[2]
}

// codeIndexOf returns the code index number a status is framed with, or
// CodeReserved if the status has no single-packet framing.
func codeIndexOf(status Status) CodeIndex {
	switch status {
	case NoteOff:
		return CodeNoteOff
	case NoteOn:
		return CodeNoteOn
	case Aftertouch:
		return CodeAftertouch
	case ControlChange:
		return CodeControlChange
	case ProgramChange:
		return CodeProgramChange
	case AftertouchChannel:
		return CodeAftertouchChannel
	case PitchBend:
		return CodePitchBend
	case SystemSongSelect, SystemTimeCodeQuarterFrame:
		return CodeSystemCommon2
	case SystemSongPosition:
		return CodeSystemCommon3
	case SystemTuneRequest, SystemClock, SystemStart, SystemContinue, SystemStop, SystemActiveSensing, SystemReset:
		return CodeSingleByte
	}
	return CodeReserved
}

// Set encodes a message into the packet, preserving the cable number.
// System statuses require channel 0; SystemExclusive has no
// single-packet encoding.
func (p *Packet) Set(status Status, channel uint8, data1, data2 byte) error {
	code := codeIndexOf(status)
	if code == CodeReserved {
		return fmt.Errorf("packet: status %#02x has no packet encoding", uint8(status))
	}

	if status >= System && channel != 0 {
		return fmt.Errorf("packet: system status %#02x with channel %d", uint8(status), channel)
	}

	p.data[0] &= 0xf0
	p.data[0] |= byte(code)
	p.data[1] = byte(status) | channel
	p.data[2] = data1
	p.data[3] = data2
	return nil
}

// SetFromBytes encodes a raw status byte and its data bytes, deriving
// the code index number from the status. The channel number stays
// embedded in the status byte.
func (p *Packet) SetFromBytes(status, data1, data2 byte) error {
	code := codeIndexOf(StatusOf(status))
	if code == CodeReserved {
		return fmt.Errorf("packet: status %#02x has no packet encoding", status)
	}

	p.data[0] &= 0xf0
	p.data[0] |= byte(code)
	p.data[1] = status
	p.data[2] = data1
	p.data[3] = data2
	return nil
}

// SetNote encodes a NoteOn. A velocity of 0 encodes a NoteOff with
// velocity 64.
func (p *Packet) SetNote(channel, note, velocity uint8) *Packet {
	if velocity == 0 {
		p.Set(NoteOff, channel, note, 64)
		return p
	}

	p.Set(NoteOn, channel, note, velocity)
	return p
}

func (p *Packet) SetNoteOff(channel, note, velocity uint8) *Packet {
	p.Set(NoteOff, channel, note, velocity)
	return p
}

func (p *Packet) SetAftertouch(channel, note, pressure uint8) *Packet {
	p.Set(Aftertouch, channel, note, pressure)
	return p
}

func (p *Packet) SetControlChange(channel, controller, value uint8) *Packet {
	p.Set(ControlChange, channel, controller, value)
	return p
}

func (p *Packet) SetAftertouchChannel(channel, pressure uint8) *Packet {
	p.Set(AftertouchChannel, channel, pressure, 0)
	return p
}

func (p *Packet) SetProgram(channel, value uint8) *Packet {
	p.Set(ProgramChange, channel, value, 0)
	return p
}

// SetPitchBend encodes a 14 bit value, -8192..8191. The center value 0
// encodes to (0x00, 0x40).
func (p *Packet) SetPitchBend(channel uint8, value int16) *Packet {
	bits := uint16(value + 8192)
	p.Set(PitchBend, channel, byte(bits&0x7f), byte((bits>>7)&0x7f))
	return p
}

// SetSystem encodes a system message. SystemExclusive streams have no
// single-packet encoding and are rejected.
func (p *Packet) SetSystem(status Status, data1, data2 byte) error {
	return p.Set(status, 0, data1, data2)
}
