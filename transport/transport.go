// Package transport defines the packet transport the MIDI core speaks
// to. Concrete transports are USB device stacks, UART adapters, or the
// in-memory Pipe used for loopback wiring and tests.
package transport

import "go-midiwire/packet"

// Transport moves 4-byte MIDI packets. Both operations are
// non-blocking: Receive returns true if a packet was produced, Send
// returns false on backpressure or an unavailable device.
type Transport interface {
	Receive(p *packet.Packet) bool
	Send(p *packet.Packet) bool
}

// Pipe is an in-memory Transport. Packets sent into it are received
// back in order. The queue has a fixed capacity; Send reports
// backpressure when it is full.
type Pipe struct {
	queue chan packet.Packet
}

// NewPipe creates a loopback transport holding up to capacity packets.
func NewPipe(capacity int) *Pipe {
	return &Pipe{queue: make(chan packet.Packet, capacity)}
}

func (l *Pipe) Send(p *packet.Packet) bool {
	select {
	case l.queue <- *p:
		return true
	default:
		return false
	}
}

func (l *Pipe) Receive(p *packet.Packet) bool {
	select {
	case q := <-l.queue:
		*p = q
		return true
	default:
		return false
	}
}

// Pending returns the number of queued packets.
func (l *Pipe) Pending() int {
	return len(l.queue)
}
