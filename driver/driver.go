// Package driver bridges system MIDI ports, via
// gitlab.com/gomidi/midi/v2, to the packet Transport the core speaks.
package driver

import (
	"fmt"
	"strings"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver

	"go-midiwire/packet"
	"go-midiwire/serial"
)

// PortTransport adapts a system MIDI in/out port pair to the Transport
// interface. Incoming messages are reframed into 4-byte packets;
// outgoing packets are rendered back into raw MIDI messages.
type PortTransport struct {
	in       drivers.In
	out      drivers.Out
	send     func(msg gomidi.Message) error
	stopFunc func()

	packets chan packet.Packet
	parser  serial.Parser

	// Outgoing SysEx frames are collected until the end frame, then
	// sent as one message.
	sysexOut []byte
}

// Open wires up the given ports. Either may be nil for a
// receive-only or send-only transport.
func Open(in drivers.In, out drivers.Out) (*PortTransport, error) {
	t := &PortTransport{
		in:      in,
		out:     out,
		packets: make(chan packet.Packet, 64),
	}

	if out != nil {
		send, err := gomidi.SendTo(out)
		if err != nil {
			return nil, fmt.Errorf("open output: %w", err)
		}
		t.send = send
	}

	if in != nil {
		stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
			t.enqueue([]byte(msg))
		}, gomidi.UseSysEx())
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		t.stopFunc = stop
	}

	return t, nil
}

// Close stops listening. The ports themselves stay open; they belong
// to the driver.
func (t *PortTransport) Close() {
	if t.stopFunc != nil {
		t.stopFunc()
		t.stopFunc = nil
	}
}

// enqueue converts one raw MIDI message into packets.
func (t *PortTransport) enqueue(msg []byte) {
	if len(msg) == 0 {
		return
	}

	// A complete SysEx arrives as one message; cut it into packet
	// frames.
	if msg[0] == byte(packet.SystemExclusive) {
		t.enqueueSysEx(msg)
		return
	}

	var p packet.Packet
	for _, b := range msg {
		if t.parser.Feed(b, &p) {
			t.push(&p)
		}
	}
}

func (t *PortTransport) enqueueSysEx(msg []byte) {
	var p packet.Packet
	data := p.Data()

	for len(msg) > 3 {
		data[0] = byte(packet.CodeSystemExclusiveStart)
		data[1] = msg[0]
		data[2] = msg[1]
		data[3] = msg[2]
		t.push(&p)
		msg = msg[3:]
	}

	switch len(msg) {
	case 1:
		data[0] = byte(packet.CodeSystemExclusiveEnd1)
		data[1], data[2], data[3] = msg[0], 0, 0
	case 2:
		data[0] = byte(packet.CodeSystemExclusiveEnd2)
		data[1], data[2], data[3] = msg[0], msg[1], 0
	case 3:
		data[0] = byte(packet.CodeSystemExclusiveEnd3)
		data[1], data[2], data[3] = msg[0], msg[1], msg[2]
	}
	t.push(&p)
}

func (t *PortTransport) push(p *packet.Packet) {
	select {
	case t.packets <- *p:
	default:
		// Queue full, drop. The dispatcher is not keeping up.
	}
}

// Receive returns the next buffered packet.
func (t *PortTransport) Receive(p *packet.Packet) bool {
	select {
	case q := <-t.packets:
		*p = q
		return true
	default:
		return false
	}
}

// Send renders a packet into a raw MIDI message. SysEx frame packets
// are collected until their end frame.
func (t *PortTransport) Send(p *packet.Packet) bool {
	if t.send == nil {
		return false
	}

	data := p.Data()

	switch p.CodeIndex() {
	case packet.CodeSystemExclusiveStart:
		t.sysexOut = append(t.sysexOut, data[1], data[2], data[3])
		return true

	case packet.CodeSystemExclusiveEnd1:
		t.sysexOut = append(t.sysexOut, data[1])
		return t.flushSysEx()

	case packet.CodeSystemExclusiveEnd2:
		t.sysexOut = append(t.sysexOut, data[1], data[2])
		return t.flushSysEx()

	case packet.CodeSystemExclusiveEnd3:
		t.sysexOut = append(t.sysexOut, data[1], data[2], data[3])
		return t.flushSysEx()
	}

	switch p.Type() {
	case packet.NoteOn,
		packet.NoteOff,
		packet.Aftertouch,
		packet.ControlChange,
		packet.PitchBend,
		packet.SystemSongPosition:
		return t.send(gomidi.Message(data[1:4])) == nil

	case packet.ProgramChange,
		packet.AftertouchChannel,
		packet.SystemTimeCodeQuarterFrame,
		packet.SystemSongSelect:
		return t.send(gomidi.Message(data[1:3])) == nil

	case packet.SystemTuneRequest,
		packet.SystemClock,
		packet.SystemStart,
		packet.SystemContinue,
		packet.SystemStop,
		packet.SystemActiveSensing,
		packet.SystemReset:
		return t.send(gomidi.Message(data[1:2])) == nil
	}

	return false
}

func (t *PortTransport) flushSysEx() bool {
	msg := t.sysexOut
	t.sysexOut = nil
	return t.send(gomidi.Message(msg)) == nil
}

// FindIn returns the first input port whose name contains the given
// substring, case-insensitive.
func FindIn(name string) (drivers.In, error) {
	for _, in := range gomidi.GetInPorts() {
		if containsCI(in.String(), name) {
			return in, nil
		}
	}
	return nil, fmt.Errorf("driver: input %q not found", name)
}

// FindOut returns the first output port whose name contains the given
// substring, case-insensitive.
func FindOut(name string) (drivers.Out, error) {
	for _, out := range gomidi.GetOutPorts() {
		if containsCI(out.String(), name) {
			return out, nil
		}
	}
	return nil, fmt.Errorf("driver: output %q not found", name)
}

// InPortNames lists the system input port names.
func InPortNames() []string {
	var names []string
	for _, in := range gomidi.GetInPorts() {
		names = append(names, in.String())
	}
	return names
}

// OutPortNames lists the system output port names.
func OutPortNames() []string {
	var names []string
	for _, out := range gomidi.GetOutPorts() {
		names = append(names, out.String())
	}
	return names
}

func containsCI(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
