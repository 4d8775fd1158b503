package port_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-midiwire/clock"
	"go-midiwire/packet"
	"go-midiwire/port"
	"go-midiwire/transport"
)

// frame builds a raw 4-byte packet with the given code index number.
func frame(code packet.CodeIndex, b1, b2, b3 byte) *packet.Packet {
	var p packet.Packet
	data := p.Data()
	data[0] = byte(code)
	data[1] = b1
	data[2] = b2
	data[3] = b3
	return &p
}

type record struct {
	notes  [][3]uint8
	clocks []clock.Event
	sysex  [][]byte
	resets int
}

func recorder(r *record) port.Handler {
	return port.Handler{
		Note: func(channel, note, velocity uint8) {
			r.notes = append(r.notes, [3]uint8{channel, note, velocity})
		},
		Clock: func(event clock.Event) {
			r.clocks = append(r.clocks, event)
		},
		SystemExclusive: func(t transport.Transport, data []byte) {
			buf := make([]byte, len(data))
			copy(buf, data)
			r.sysex = append(r.sysex, buf)
		},
		SystemReset: func() {
			r.resets++
		},
	}
}

func TestDispatchNote(t *testing.T) {
	var r record
	p := port.New(0, 64, recorder(&r))

	var pkt packet.Packet
	pkt.SetNote(2, 60, 100)
	p.Dispatch(nil, &pkt)

	require.Len(t, r.notes, 1)
	assert.Equal(t, [3]uint8{2, 60, 100}, r.notes[0])

	stats := p.Statistics()
	assert.Equal(t, uint32(1), stats.Input.Packet)
	assert.Equal(t, uint32(1), stats.Input.Note)
}

func TestDispatchClockEvents(t *testing.T) {
	var r record
	p := port.New(0, 64, recorder(&r))

	for _, status := range []packet.Status{
		packet.SystemClock, packet.SystemStart, packet.SystemContinue, packet.SystemStop,
	} {
		var pkt packet.Packet
		require.NoError(t, pkt.SetSystem(status, 0, 0))
		p.Dispatch(nil, &pkt)
	}

	assert.Equal(t, []clock.Event{clock.Tick, clock.Start, clock.Continue, clock.Stop}, r.clocks)
	assert.Equal(t, uint32(1), p.Statistics().Input.System.Clock.Tick)
}

func TestSysExReassembly(t *testing.T) {
	var r record
	p := port.New(0, 64, recorder(&r))

	p.Dispatch(nil, frame(packet.CodeSystemExclusiveStart, 0xf0, 0x7e, 0x01))
	p.Dispatch(nil, frame(packet.CodeSystemExclusiveEnd2, 0x02, 0xf7, 0))

	require.Len(t, r.sysex, 1)
	assert.Equal(t, []byte{0xf0, 0x7e, 0x01, 0x02, 0xf7}, r.sysex[0])
	assert.Equal(t, uint32(1), p.Statistics().Input.System.Exclusive)
}

func TestSysExSingleBytePassthrough(t *testing.T) {
	var r record
	p := port.New(0, 64, recorder(&r))

	// A single-byte frame inside a SysEx stream is appended to the
	// buffer; no real-time callback fires.
	p.Dispatch(nil, frame(packet.CodeSystemExclusiveStart, 0xf0, 0x7e, 0x01))
	p.Dispatch(nil, frame(packet.CodeSingleByte, 0xf8, 0, 0))
	p.Dispatch(nil, frame(packet.CodeSystemExclusiveEnd2, 0x02, 0xf7, 0))

	assert.Empty(t, r.clocks)
	require.Len(t, r.sysex, 1)
	assert.Equal(t, []byte{0xf0, 0x7e, 0x01, 0xf8, 0x02, 0xf7}, r.sysex[0])
}

func TestSingleByteOutsideSysEx(t *testing.T) {
	var r record
	p := port.New(0, 64, recorder(&r))

	p.Dispatch(nil, frame(packet.CodeSingleByte, 0xf8, 0, 0))
	assert.Equal(t, []clock.Event{clock.Tick}, r.clocks)
}

func TestSysExPartitions(t *testing.T) {
	// Any partition into start frames plus a 1/2/3-byte end frame
	// reassembles to the original string.
	for tail := 1; tail <= 3; tail++ {
		msg := []byte{0xf0, 0x7e, 0x01, 0x02, 0x03, 0x04}
		for len(msg) < 6+tail-1 {
			msg = append(msg, byte(len(msg)))
		}
		msg = append(msg, 0xf7)
		body := msg[:len(msg)-tail]
		require.Equal(t, 0, len(body)%3)

		var r record
		p := port.New(0, 64, recorder(&r))

		for i := 0; i < len(body); i += 3 {
			p.Dispatch(nil, frame(packet.CodeSystemExclusiveStart, body[i], body[i+1], body[i+2]))
		}

		rest := msg[len(body):]
		switch tail {
		case 1:
			p.Dispatch(nil, frame(packet.CodeSystemExclusiveEnd1, rest[0], 0, 0))
		case 2:
			p.Dispatch(nil, frame(packet.CodeSystemExclusiveEnd2, rest[0], rest[1], 0))
		case 3:
			p.Dispatch(nil, frame(packet.CodeSystemExclusiveEnd3, rest[0], rest[1], rest[2]))
		}

		require.Len(t, r.sysex, 1, "tail %d", tail)
		assert.Equal(t, msg, r.sysex[0], "tail %d", tail)
	}
}

func TestSysExEmptyMessage(t *testing.T) {
	var r record
	p := port.New(0, 64, recorder(&r))

	// A standalone 'End' frame carrying the complete f0 f7 message.
	p.Dispatch(nil, frame(packet.CodeSystemExclusiveEnd2, 0xf0, 0xf7, 0))

	require.Len(t, r.sysex, 1)
	assert.Equal(t, []byte{0xf0, 0xf7}, r.sysex[0])
}

func TestSysExInvalidStart(t *testing.T) {
	var r record
	p := port.New(0, 64, recorder(&r))

	// A fresh stream must begin with 0xf0.
	p.Dispatch(nil, frame(packet.CodeSystemExclusiveStart, 0x7e, 0x01, 0x02))
	p.Dispatch(nil, frame(packet.CodeSystemExclusiveEnd1, 0xf7, 0, 0))

	assert.Empty(t, r.sysex)
}

func TestSysExInvalidEnd(t *testing.T) {
	var r record
	p := port.New(0, 64, recorder(&r))

	// The last byte of an 'End' frame must be 0xf7.
	p.Dispatch(nil, frame(packet.CodeSystemExclusiveStart, 0xf0, 0x7e, 0x01))
	p.Dispatch(nil, frame(packet.CodeSystemExclusiveEnd2, 0x02, 0x03, 0))

	assert.Empty(t, r.sysex)

	// The next stream starts fresh.
	p.Dispatch(nil, frame(packet.CodeSystemExclusiveStart, 0xf0, 0x01, 0x02))
	p.Dispatch(nil, frame(packet.CodeSystemExclusiveEnd1, 0xf7, 0, 0))
	require.Len(t, r.sysex, 1)
	assert.Equal(t, []byte{0xf0, 0x01, 0x02, 0xf7}, r.sysex[0])
}

func TestSysExInterruptedByChannelMessage(t *testing.T) {
	var r record
	p := port.New(0, 64, recorder(&r))

	p.Dispatch(nil, frame(packet.CodeSystemExclusiveStart, 0xf0, 0x7e, 0x01))

	var note packet.Packet
	note.SetNote(0, 60, 100)
	p.Dispatch(nil, &note)

	// The reassembly was dropped; the end frame has nothing to finish.
	p.Dispatch(nil, frame(packet.CodeSystemExclusiveEnd1, 0xf7, 0, 0))

	assert.Len(t, r.notes, 1)
	assert.Empty(t, r.sysex)
}

func TestSysExOverflow(t *testing.T) {
	var r record
	p := port.New(0, 4, recorder(&r))

	p.Dispatch(nil, frame(packet.CodeSystemExclusiveStart, 0xf0, 0x01, 0x02))

	// Appending three more would exceed the 4-byte capacity; the
	// whole stream is discarded.
	p.Dispatch(nil, frame(packet.CodeSystemExclusiveStart, 0x03, 0x04, 0x05))
	p.Dispatch(nil, frame(packet.CodeSystemExclusiveEnd1, 0xf7, 0, 0))

	assert.Empty(t, r.sysex)
}

func TestSend(t *testing.T) {
	pipe := transport.NewPipe(8)
	p := port.New(3, 64, port.Handler{Send: pipe.Send})

	var pkt packet.Packet
	pkt.SetNote(0, 60, 100)
	require.True(t, p.Send(&pkt))

	// The cable number is stamped on the way out.
	var got packet.Packet
	require.True(t, pipe.Receive(&got))
	assert.Equal(t, uint8(3), got.Cable())

	stats := p.Statistics()
	assert.Equal(t, uint32(1), stats.Output.Packet)
	assert.Equal(t, uint32(1), stats.Output.Note)
}

func TestSendBackpressure(t *testing.T) {
	pipe := transport.NewPipe(1)
	p := port.New(0, 64, port.Handler{Send: pipe.Send})

	var pkt packet.Packet
	pkt.SetNote(0, 60, 100)
	require.True(t, p.Send(&pkt))
	assert.False(t, p.Send(&pkt))
	assert.Equal(t, uint32(1), p.Statistics().Output.Packet)
}

func TestSendSystemExclusive(t *testing.T) {
	pipe := transport.NewPipe(16)
	p := port.New(1, 64, port.Handler{})

	msg := []byte{0xf0, 0x7e, 0x01, 0x02, 0x03, 0xf7}
	copy(p.SystemExclusiveBuffer(), msg)
	p.SendSystemExclusive(pipe, len(msg))

	var f packet.Packet
	require.True(t, pipe.Receive(&f))
	assert.Equal(t, packet.CodeSystemExclusiveStart, f.CodeIndex())
	assert.Equal(t, uint8(1), f.Cable())
	assert.Equal(t, []byte{0xf0, 0x7e, 0x01}, f.Data()[1:4])

	require.True(t, pipe.Receive(&f))
	assert.Equal(t, packet.CodeSystemExclusiveEnd3, f.CodeIndex())
	assert.Equal(t, []byte{0x02, 0x03, 0xf7}, f.Data()[1:4])

	assert.False(t, pipe.Receive(&f))
	assert.Equal(t, uint32(1), p.Statistics().Output.System.Exclusive)
}

func TestSendSystemExclusiveValidation(t *testing.T) {
	pipe := transport.NewPipe(16)
	p := port.New(0, 64, port.Handler{})

	// Missing f0 envelope.
	copy(p.SystemExclusiveBuffer(), []byte{0x7e, 0x01, 0xf7})
	p.SendSystemExclusive(pipe, 3)
	assert.Equal(t, 0, pipe.Pending())

	// Missing f7 terminator.
	copy(p.SystemExclusiveBuffer(), []byte{0xf0, 0x01, 0x02})
	p.SendSystemExclusive(pipe, 3)
	assert.Equal(t, 0, pipe.Pending())
}

func TestSendRefusedDuringSysEx(t *testing.T) {
	pipe := transport.NewPipe(1)
	p := port.New(0, 64, port.Handler{Send: pipe.Send})

	// The pipe holds one packet; the transfer stalls after the first
	// frame with the remainder retained.
	msg := []byte{0xf0, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0xf7}
	copy(p.SystemExclusiveBuffer(), msg)
	p.SendSystemExclusive(pipe, len(msg))

	var pkt packet.Packet
	pkt.SetNote(0, 60, 100)
	assert.False(t, p.Send(&pkt))

	// Drain one frame, pump the next.
	var f packet.Packet
	require.True(t, pipe.Receive(&f))
	assert.Equal(t, packet.CodeSystemExclusiveStart, f.CodeIndex())

	assert.Equal(t, port.PumpRemaining, p.Pump())
	require.True(t, pipe.Receive(&f))

	assert.Equal(t, port.PumpNone, p.Pump())
	require.True(t, pipe.Receive(&f))
	assert.Equal(t, packet.CodeSystemExclusiveEnd2, f.CodeIndex())
	assert.Equal(t, []byte{0x06, 0xf7}, f.Data()[1:3])

	// The transfer is complete, sends work again.
	assert.True(t, p.Send(&pkt))
}

func TestPumpBackpressure(t *testing.T) {
	pipe := transport.NewPipe(1)
	p := port.New(0, 64, port.Handler{})

	msg := []byte{0xf0, 0x01, 0x02, 0x03, 0xf7}
	copy(p.SystemExclusiveBuffer(), msg)
	p.SendSystemExclusive(pipe, len(msg))

	// The first frame filled the pipe; the pump fails until drained.
	assert.Equal(t, port.PumpFailed, p.Pump())

	var f packet.Packet
	require.True(t, pipe.Receive(&f))
	assert.Equal(t, port.PumpNone, p.Pump())
}

func TestResetSystemExclusive(t *testing.T) {
	pipe := transport.NewPipe(1)
	var r record
	h := recorder(&r)
	h.Send = pipe.Send
	p := port.New(0, 64, h)

	msg := []byte{0xf0, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0xf7}
	copy(p.SystemExclusiveBuffer(), msg)
	p.SendSystemExclusive(pipe, len(msg))

	p.Dispatch(nil, frame(packet.CodeSystemExclusiveStart, 0xf0, 0x7e, 0x01))

	p.ResetSystemExclusive()

	// Outbound transfer aborted, regular sends work again.
	assert.Equal(t, port.PumpNone, p.Pump())

	// Inbound stream aborted; the end frame has nothing to finish.
	p.Dispatch(nil, frame(packet.CodeSystemExclusiveEnd1, 0xf7, 0, 0))
	assert.Empty(t, r.sysex)
}

func TestCountersMonotonic(t *testing.T) {
	var r record
	pipe := transport.NewPipe(64)
	h := recorder(&r)
	h.Send = pipe.Send
	p := port.New(0, 64, h)

	prev := p.Statistics()
	var pkt packet.Packet

	ops := []func(){
		func() { pkt.SetNote(0, 60, 100); p.Dispatch(nil, &pkt) },
		func() { pkt.SetNote(0, 60, 0); p.Dispatch(nil, &pkt) },
		func() { pkt.SetControlChange(0, 1, 2); p.Dispatch(nil, &pkt) },
		func() { pkt.SetPitchBend(0, 100); p.Send(&pkt) },
		func() { pkt.SetSystem(packet.SystemReset, 0, 0); p.Dispatch(nil, &pkt) },
	}

	for _, op := range ops {
		op()
		stats := p.Statistics()
		assert.GreaterOrEqual(t, stats.Input.Packet, prev.Input.Packet)
		assert.GreaterOrEqual(t, stats.Input.Note, prev.Input.Note)
		assert.GreaterOrEqual(t, stats.Output.Packet, prev.Output.Packet)
		prev = stats
	}

	assert.Equal(t, uint32(1), prev.Input.NoteOff)
	assert.Equal(t, uint32(1), prev.Input.System.Reset)
	assert.Equal(t, 1, r.resets)
}
