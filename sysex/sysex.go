// Package sysex carries 8-bit data inside System Exclusive messages.
// Every byte of the MIDI stream holds only 7 bits of the payload
// bitstream; unpacking drops the high bit of each wire byte and
// re-concatenates the rest.
package sysex

import (
	"bytes"
	"io"

	"github.com/dgryski/go-bitstream"

	"go-midiwire/packet"
)

const (
	Start = byte(packet.SystemExclusive)
	End   = byte(packet.SystemExclusiveEnd)
)

// Pack encodes 8-bit binary data as bytes with 7 bits of data in the
// low bits and the high bit cleared, for transmission inside a SysEx
// message.
func Pack(payload []byte) []byte {
	buf := bytes.NewBuffer(nil)
	reader := bitstream.NewReader(bytes.NewReader(payload))
	writer := bitstream.NewWriter(buf)

	for {
		bits, err := reader.ReadBits(7)
		if err != nil && err != io.EOF {
			break
		}
		writer.WriteBits(bits, 8)
		if err == io.EOF {
			break
		}
	}

	return buf.Bytes()
}

// Unpack decodes a stream of 7-bit wire bytes back into 8-bit data.
// Trailing padding bits are discarded.
func Unpack(wire []byte) []byte {
	buf := bytes.NewBuffer(nil)
	reader := bitstream.NewReader(bytes.NewReader(wire))
	writer := bitstream.NewWriter(buf)

	i := 0
	for {
		bit, err := reader.ReadBit()
		if err != nil {
			break
		}

		// The first bit of every wire byte is padding.
		if i%8 != 0 {
			writer.WriteBit(bit)
		}
		i++
	}

	return buf.Bytes()
}

// Envelope wraps a packed payload into a complete SysEx message,
// 0xf0 ... 0xf7.
func Envelope(payload []byte) []byte {
	msg := make([]byte, 0, len(payload)+2)
	msg = append(msg, Start)
	msg = append(msg, payload...)
	msg = append(msg, End)
	return msg
}
