package cc

import "go-midiwire/packet"

// Sender transmits a single packet; both port.Port and any Transport
// satisfy it.
type Sender interface {
	Send(p *packet.Packet) bool
}

type hrState uint8

const (
	hrInit hrState = iota
	hrLowResolution
	hrHighResolution
	hrWait
)

type hrController struct {
	state hrState
	msb   uint8
	value uint16
}

// HighResolution tracks high-resolution controllers, MSB + LSB, 14 bit
// values. The controllers 0-31 (MSB) have matching high-resolution
// parts with controllers 32-63 (LSB).
type HighResolution struct {
	first       uint8
	controllers []hrController
}

// NewHighResolution tracks size contiguous controllers starting at
// first, paired with their LSB counterparts at first+32.
func NewHighResolution(first uint8, size int) *HighResolution {
	return &HighResolution{
		first:       first,
		controllers: make([]hrController, size),
	}
}

func (h *HighResolution) Reset() {
	for i := range h.controllers {
		h.controllers[i] = hrController{}
	}
}

func (h *HighResolution) Value(controller uint8) uint16 {
	return h.controllers[controller-h.first].value
}

func (h *HighResolution) MSB(controller uint8) uint8 {
	return uint8(h.controllers[controller-h.first].value >> 7)
}

func (h *HighResolution) LSB(controller uint8) uint8 {
	return uint8(h.controllers[controller-h.first].value & 0x7f)
}

func (h *HighResolution) Fraction(controller uint8) float32 {
	return float32(h.controllers[controller-h.first].value) / 16383
}

// Set stores the high-resolution value and reports whether it changed.
func (h *HighResolution) Set(controller uint8, value uint16) bool {
	c := &h.controllers[controller-h.first]
	if value == c.value {
		return false
	}

	c.value = value
	return true
}

func (h *HighResolution) SetFraction(controller uint8, fraction float32) bool {
	return h.Set(controller, uint16(fraction*16383))
}

// SetByte applies one Control Change byte, MSB or LSB, and reports
// whether the resulting high-resolution value changed.
//
// MIDI specification:
//   - The order is MSB, LSB.
//   - An MSB resets the current LSB.
//   - The LSB can be updated without sending the same MSB again.
//
// This implementation:
//   - After a reset, setting a value of 0 will not cause an update.
//   - The very first MSB causes an update without waiting for a
//     possible LSB.
//   - If we have seen an LSB for the previous update, we defer the
//     update for the next MSB until the LSB arrives.
//   - If we see two MSBs without an LSB in-between, reset the waiting
//     for the LSB and send an update. Senders are not required to send
//     the unchanged MSB, but are expected to always send the LSB after
//     the MSB, if high-resolution controllers are used.
func (h *HighResolution) SetByte(controller, value uint8) bool {
	if controller < ControllerLSB {
		c := &h.controllers[controller-h.first]
		c.msb = value

		switch c.state {
		// Very first MSB.
		case hrInit:
			c.state = hrLowResolution

		// We have not seen a valid LSB for the last MSB.
		case hrLowResolution:

		// We've seen an LSB before, defer the update.
		case hrHighResolution:
			c.state = hrWait
			return false

		// Two MSBs in a row, reset the high-resolution mode.
		case hrWait:
			c.state = hrLowResolution
		}

		v := uint16(value) << 7
		if v == c.value {
			return false
		}

		c.value = v
		return true
	}

	c := &h.controllers[controller-h.first-ControllerLSB]

	// Ignore the LSB if we haven't seen an MSB.
	if c.state == hrInit {
		return false
	}

	c.state = hrHighResolution

	v := uint16(c.msb)<<7 | uint16(value)
	if v == c.value {
		return false
	}

	c.value = v
	return true
}

// SendHigh transmits the current value as an MSB, LSB Control Change
// pair.
func (h *HighResolution) SendHigh(s Sender, channel, controller uint8) bool {
	var pkt packet.Packet
	if !s.Send(pkt.SetControlChange(channel, controller, h.MSB(controller))) {
		return false
	}

	return s.Send(pkt.SetControlChange(channel, ControllerLSB+controller, h.LSB(controller)))
}
