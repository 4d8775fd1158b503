// Package port implements the transport-independent MIDI functional
// interface: message parsing/dispatching, system exclusive
// buffering/streaming, packet statistics.
package port

import (
	"go-midiwire/clock"
	"go-midiwire/packet"
	"go-midiwire/transport"
)

// Counter counts messages per kind for one direction.
type Counter struct {
	Packet            uint32
	Note              uint32
	NoteOff           uint32
	Aftertouch        uint32
	Control           uint32
	Program           uint32
	AftertouchChannel uint32
	Pitchbend         uint32
	System            struct {
		Clock struct {
			Tick uint32
		}
		Exclusive uint32
		Reset     uint32
	}
}

// Statistics holds the input and output counters of a port.
type Statistics struct {
	Input  Counter
	Output Counter
}

// Handler is the capability set a port dispatches into. Nil functions
// are skipped.
type Handler struct {
	Note              func(channel, note, velocity uint8)
	NoteOff           func(channel, note, velocity uint8)
	Aftertouch        func(channel, note, pressure uint8)
	ControlChange     func(channel, controller, value uint8)
	ProgramChange     func(channel, value uint8)
	AftertouchChannel func(channel, pressure uint8)
	PitchBend         func(channel uint8, value int16)
	SongPosition      func(beats uint16)
	SongSelect        func(number uint8)
	Clock             func(event clock.Event)
	SystemReset       func()

	// SystemExclusive receives a complete buffered message, starting
	// with 0xf0 and ending with 0xf7. Replies can be sent back to the
	// originating transport.
	SystemExclusive func(t transport.Transport, data []byte)

	// Packet receives all messages besides system exclusive, before
	// the typed callbacks.
	Packet func(p *packet.Packet)

	// Send transmits an outgoing packet. Returning false signals
	// backpressure.
	Send func(p *packet.Packet) bool
}

// PumpStatus is the result of one outbound SysEx pump step.
type PumpStatus int

const (
	PumpNone      PumpStatus = iota // nothing to do
	PumpRemaining                   // there are remaining packets
	PumpFailed                      // sending failed, retry later
)

// Port dispatches incoming packets to handlers and frames outgoing
// messages. All state is owned by a single logical context; callers
// must not enter Dispatch, Send, SendSystemExclusive or Pump
// concurrently on the same Port.
type Port struct {
	index   uint8
	handler Handler
	stats   Statistics

	sysexIn struct {
		buffer    []byte
		length    int
		appending bool
	}

	sysexOut struct {
		transport transport.Transport
		buffer    []byte
		length    int
		position  int
	}
}

// New creates a port with the given cable number. The system exclusive
// buffers are allocated once and carry a complete message each; longer
// streams are discarded.
func New(index uint8, sysexSize int, handler Handler) *Port {
	p := &Port{index: index, handler: handler}
	p.sysexIn.buffer = make([]byte, sysexSize)
	p.sysexOut.buffer = make([]byte, sysexSize)
	return p
}

// Index returns the cable number stamped on outgoing packets.
func (p *Port) Index() uint8 {
	return p.index
}

// Statistics returns a snapshot of the port counters.
func (p *Port) Statistics() Statistics {
	return p.stats
}

// Dispatch routes one incoming packet. During dispatch, replies can be
// sent back to the given transport.
func (p *Port) Dispatch(t transport.Transport, pkt *packet.Packet) {
	p.stats.Input.Packet++

	if !p.storeSystemExclusive(pkt) {
		return
	}

	if pkt.Type() != packet.SystemExclusive && p.handler.Packet != nil {
		p.handler.Packet(pkt)
	}

	switch pkt.Type() {
	case packet.NoteOn:
		p.stats.Input.Note++
		if p.handler.Note != nil {
			p.handler.Note(pkt.Channel(), pkt.Note(), pkt.NoteVelocity())
		}

	case packet.NoteOff:
		p.stats.Input.NoteOff++
		if p.handler.NoteOff != nil {
			p.handler.NoteOff(pkt.Channel(), pkt.Note(), pkt.NoteVelocity())
		}

	case packet.Aftertouch:
		p.stats.Input.Aftertouch++
		if p.handler.Aftertouch != nil {
			p.handler.Aftertouch(pkt.Channel(), pkt.AftertouchNote(), pkt.Aftertouch())
		}

	case packet.ControlChange:
		p.stats.Input.Control++
		if p.handler.ControlChange != nil {
			p.handler.ControlChange(pkt.Channel(), pkt.Controller(), pkt.ControllerValue())
		}

	case packet.ProgramChange:
		p.stats.Input.Program++
		if p.handler.ProgramChange != nil {
			p.handler.ProgramChange(pkt.Channel(), pkt.Program())
		}

	case packet.AftertouchChannel:
		p.stats.Input.AftertouchChannel++
		if p.handler.AftertouchChannel != nil {
			p.handler.AftertouchChannel(pkt.Channel(), pkt.AftertouchChannelPressure())
		}

	case packet.PitchBend:
		p.stats.Input.Pitchbend++
		if p.handler.PitchBend != nil {
			p.handler.PitchBend(pkt.Channel(), pkt.PitchBend())
		}

	case packet.SystemSongPosition:
		if p.handler.SongPosition != nil {
			p.handler.SongPosition(pkt.SongPosition())
		}

	case packet.SystemSongSelect:
		if p.handler.SongSelect != nil {
			p.handler.SongSelect(pkt.SongSelect())
		}

	case packet.SystemClock:
		p.stats.Input.System.Clock.Tick++
		if p.handler.Clock != nil {
			p.handler.Clock(clock.Tick)
		}

	case packet.SystemStart:
		if p.handler.Clock != nil {
			p.handler.Clock(clock.Start)
		}

	case packet.SystemContinue:
		if p.handler.Clock != nil {
			p.handler.Clock(clock.Continue)
		}

	case packet.SystemStop:
		if p.handler.Clock != nil {
			p.handler.Clock(clock.Stop)
		}

	case packet.SystemExclusive:
		p.stats.Input.System.Exclusive++
		if p.handler.SystemExclusive != nil {
			p.handler.SystemExclusive(t, p.sysexIn.buffer[:p.sysexIn.length])
		}

	case packet.SystemReset:
		p.stats.Input.System.Reset++
		if p.handler.SystemReset != nil {
			p.handler.SystemReset()
		}
	}
}

// Send stamps the port's cable number into the outgoing packet and
// updates the statistics. It refuses to interrupt a system exclusive
// transfer.
func (p *Port) Send(pkt *packet.Packet) bool {
	if p.sysexOut.length > 0 {
		return false
	}

	pkt.SetCable(p.index)
	if p.handler.Send == nil || !p.handler.Send(pkt) {
		return false
	}

	p.stats.Output.Packet++

	switch pkt.Type() {
	case packet.NoteOn:
		p.stats.Output.Note++

	case packet.NoteOff:
		p.stats.Output.NoteOff++

	case packet.Aftertouch:
		p.stats.Output.Aftertouch++

	case packet.ControlChange:
		p.stats.Output.Control++

	case packet.ProgramChange:
		p.stats.Output.Program++

	case packet.AftertouchChannel:
		p.stats.Output.AftertouchChannel++

	case packet.PitchBend:
		p.stats.Output.Pitchbend++

	case packet.SystemClock:
		p.stats.Output.System.Clock.Tick++

	case packet.SystemReset:
		p.stats.Output.System.Reset++
	}

	return true
}

// SystemExclusiveBuffer returns the raw buffer to copy an outgoing
// SysEx message into before calling SendSystemExclusive.
func (p *Port) SystemExclusiveBuffer() []byte {
	return p.sysexOut.buffer
}

// SendSystemExclusive chunks the prepared message into packets and
// sends as many as possible; the remaining packets are sent with Pump.
// The message must start with 0xf0 and end with 0xf7. If transport is
// nil, packets go through the handler's Send.
func (p *Port) SendSystemExclusive(t transport.Transport, length int) {
	if length < 2 || length > len(p.sysexOut.buffer) {
		return
	}

	if p.sysexOut.buffer[0] != byte(packet.SystemExclusive) {
		return
	}

	if p.sysexOut.buffer[length-1] != byte(packet.SystemExclusiveEnd) {
		return
	}

	p.sysexOut.transport = t
	p.sysexOut.length = length
	p.sysexOut.position = 0

	for p.Pump() == PumpRemaining {
	}
}

// ResetSystemExclusive aborts the inbound reassembly and the outbound
// transfer.
func (p *Port) ResetSystemExclusive() {
	p.sysexIn.length = 0
	p.sysexIn.appending = false
	p.sysexOut.transport = nil
	p.sysexOut.length = 0
	p.sysexOut.position = 0
}

// Pump sends the next packet of an outbound SysEx transfer. It never
// blocks; on backpressure the position is retained and the caller
// retries on a later tick.
func (p *Port) Pump() PumpStatus {
	if p.sysexOut.length == 0 {
		return PumpNone
	}

	var pkt packet.Packet
	data := pkt.Data()
	remain := p.sysexOut.length - p.sysexOut.position

	switch remain {
	case 1:
		data[0] = p.index<<4 | byte(packet.CodeSystemExclusiveEnd1)
		data[1] = p.sysexOut.buffer[p.sysexOut.position]
		data[2] = 0
		data[3] = 0

	case 2:
		data[0] = p.index<<4 | byte(packet.CodeSystemExclusiveEnd2)
		data[1] = p.sysexOut.buffer[p.sysexOut.position]
		data[2] = p.sysexOut.buffer[p.sysexOut.position+1]
		data[3] = 0

	case 3:
		data[0] = p.index<<4 | byte(packet.CodeSystemExclusiveEnd3)
		data[1] = p.sysexOut.buffer[p.sysexOut.position]
		data[2] = p.sysexOut.buffer[p.sysexOut.position+1]
		data[3] = p.sysexOut.buffer[p.sysexOut.position+2]

	default:
		data[0] = p.index<<4 | byte(packet.CodeSystemExclusiveStart)
		data[1] = p.sysexOut.buffer[p.sysexOut.position]
		data[2] = p.sysexOut.buffer[p.sysexOut.position+1]
		data[3] = p.sysexOut.buffer[p.sysexOut.position+2]
	}

	if p.sysexOut.transport == nil {
		if p.handler.Send == nil || !p.handler.Send(&pkt) {
			return PumpFailed
		}
	} else {
		if !p.sysexOut.transport.Send(&pkt) {
			return PumpFailed
		}
	}

	p.stats.Output.Packet++

	if remain > 3 {
		p.sysexOut.position += 3
		return PumpRemaining
	}

	p.sysexOut.transport = nil
	p.sysexOut.length = 0
	p.sysexOut.position = 0
	p.stats.Output.System.Exclusive++
	return PumpNone
}

func (p *Port) resetSysExIn() {
	p.sysexIn.length = 0
	p.sysexIn.appending = false
}

// storeSystemExclusive examines the packet framing. It returns true if
// the packet should be dispatched as a message; SysEx fragments are
// absorbed into the inbound buffer and return false until the stream
// completes. A completed stream rewrites the packet's status to
// SystemExclusive.
func (p *Port) storeSystemExclusive(pkt *packet.Packet) bool {
	size := len(p.sysexIn.buffer)
	data := pkt.Data()

	switch pkt.CodeIndex() {
	case packet.CodeSystemCommon2,
		packet.CodeSystemCommon3,
		packet.CodeNoteOff,
		packet.CodeNoteOn,
		packet.CodeAftertouch,
		packet.CodeControlChange,
		packet.CodeProgramChange,
		packet.CodeAftertouchChannel,
		packet.CodePitchBend:
		// Complete single packet message, discard any possible SysEx
		// stream.
		p.sysexIn.appending = false
		p.sysexIn.length = 0
		return true

	case packet.CodeSingleByte:
		// Single byte, like a system message.
		if !p.sysexIn.appending {
			p.resetSysExIn()
			return true
		}

		// Used in the middle of a SysEx packet stream to transport a
		// single byte instead of three.
		if p.sysexIn.length+1 > size {
			p.resetSysExIn()
			return false
		}

		p.sysexIn.buffer[p.sysexIn.length] = data[1]
		p.sysexIn.length++
		return false

	// Start of a new SysEx stream, or append data to the current one.
	case packet.CodeSystemExclusiveStart:
		// Not enough space to store the stream.
		if p.sysexIn.length+3 > size {
			p.resetSysExIn()
			return false
		}

		if !p.sysexIn.appending {
			p.sysexIn.length = 0

			// Must be the start of a SysEx.
			if data[1] != byte(packet.SystemExclusive) {
				return false
			}

			p.sysexIn.appending = true
		}

		p.sysexIn.buffer[p.sysexIn.length] = data[1]
		p.sysexIn.buffer[p.sysexIn.length+1] = data[2]
		p.sysexIn.buffer[p.sysexIn.length+2] = data[3]
		p.sysexIn.length += 3
		return false

	// End of SysEx stream with various lengths.
	case packet.CodeSystemExclusiveEnd1:
		// Invalid 'End' packet.
		if data[1] != byte(packet.SystemExclusiveEnd) {
			p.resetSysExIn()
			return false
		}

		// 'End' packet without previous data, discarding.
		if !p.sysexIn.appending {
			p.sysexIn.length = 0
			return false
		}

		// Not enough space to store the stream.
		if p.sysexIn.length+1 > size {
			p.resetSysExIn()
			return false
		}

		p.sysexIn.buffer[p.sysexIn.length] = data[1]
		p.sysexIn.length++

	case packet.CodeSystemExclusiveEnd2:
		// Invalid 'End' packet.
		if data[2] != byte(packet.SystemExclusiveEnd) {
			p.resetSysExIn()
			return false
		}

		// Not enough space to store the stream.
		if p.sysexIn.length+2 > size {
			p.resetSysExIn()
			return false
		}

		// Single 'End' packet.
		if !p.sysexIn.appending {
			p.sysexIn.length = 0

			// Must be an 'empty' SysEx.
			if data[1] != byte(packet.SystemExclusive) {
				return false
			}
		}

		p.sysexIn.buffer[p.sysexIn.length] = data[1]
		p.sysexIn.buffer[p.sysexIn.length+1] = data[2]
		p.sysexIn.length += 2

	case packet.CodeSystemExclusiveEnd3:
		// Invalid 'End' packet.
		if data[3] != byte(packet.SystemExclusiveEnd) {
			p.resetSysExIn()
			return false
		}

		// Not enough space to store the stream.
		if p.sysexIn.length+3 > size {
			p.resetSysExIn()
			return false
		}

		// Single 'End' packet.
		if !p.sysexIn.appending {
			p.sysexIn.length = 0

			// Must be a 'one byte' SysEx.
			if data[1] != byte(packet.SystemExclusive) {
				return false
			}
		}

		p.sysexIn.buffer[p.sysexIn.length] = data[1]
		p.sysexIn.buffer[p.sysexIn.length+1] = data[2]
		p.sysexIn.buffer[p.sysexIn.length+2] = data[3]
		p.sysexIn.length += 3

	default:
		p.resetSysExIn()
		return false
	}

	// Always return 'SystemExclusive' as the message type.
	p.sysexIn.appending = false
	data[1] = byte(packet.SystemExclusive)
	return true
}
