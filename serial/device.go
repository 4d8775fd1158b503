package serial

import (
	"fmt"
	"time"

	"go.bug.st/serial"

	"go-midiwire/packet"
)

// MIDI DIN wire rate, 8-N-1.
const Baud = 31250

// Statistics counts complete messages moved over the wire.
type Statistics struct {
	Input  uint32
	Output uint32
}

// Device is a Transport over a UART. Incoming bytes run through the
// stream Parser, outgoing packets are trimmed to the 1, 2 or 3 wire
// bytes their status requires.
type Device struct {
	port       serial.Port
	parser     Parser
	buf        [64]byte
	pending    []byte
	Statistics Statistics
}

// Open opens the named serial device at the MIDI baud rate.
func Open(name string) (*Device, error) {
	mode := &serial.Mode{BaudRate: Baud}
	p, err := serial.Open(name, mode)
	if err != nil {
		return nil, fmt.Errorf("serial: open %q: %w", name, err)
	}

	// A short timeout keeps Receive from stalling the caller's loop.
	if err := p.SetReadTimeout(time.Millisecond); err != nil {
		p.Close()
		return nil, fmt.Errorf("serial: read timeout on %q: %w", name, err)
	}

	return &Device{port: p}, nil
}

// Close closes the underlying port.
func (d *Device) Close() error {
	return d.port.Close()
}

// Receive parses buffered wire bytes into the next complete message.
func (d *Device) Receive(p *packet.Packet) bool {
	for {
		for len(d.pending) > 0 {
			b := d.pending[0]
			d.pending = d.pending[1:]
			if d.parser.Feed(b, p) {
				d.Statistics.Input++
				return true
			}
		}

		n, err := d.port.Read(d.buf[:])
		if err != nil || n == 0 {
			return false
		}
		d.pending = d.buf[:n]
	}
}

// Send writes the packet's message bytes to the wire. System Exclusive
// is not forwarded on the serial path.
func (d *Device) Send(p *packet.Packet) bool {
	data := p.Data()

	switch p.Type() {
	case packet.NoteOn,
		packet.NoteOff,
		packet.Aftertouch,
		packet.ControlChange,
		packet.PitchBend,
		packet.SystemSongPosition:
		if !d.write(data[1:4]) {
			return false
		}

	case packet.ProgramChange,
		packet.AftertouchChannel,
		packet.SystemTimeCodeQuarterFrame,
		packet.SystemSongSelect:
		if !d.write(data[1:3]) {
			return false
		}

	case packet.SystemTuneRequest,
		packet.SystemClock,
		packet.SystemStart,
		packet.SystemContinue,
		packet.SystemStop,
		packet.SystemActiveSensing,
		packet.SystemReset:
		if !d.write(data[1:2]) {
			return false
		}

	default:
		return false
	}

	d.Statistics.Output++
	return true
}

func (d *Device) write(b []byte) bool {
	n, err := d.port.Write(b)
	return err == nil && n == len(b)
}
