package packet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-midiwire/packet"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, packet.NoteOn, packet.StatusOf(0x92))
	assert.Equal(t, packet.NoteOff, packet.StatusOf(0x8f))
	assert.Equal(t, packet.ControlChange, packet.StatusOf(0xb0))

	// System messages carry their message type in the low nibble and
	// are returned verbatim.
	assert.Equal(t, packet.SystemClock, packet.StatusOf(0xf8))
	assert.Equal(t, packet.SystemExclusive, packet.StatusOf(0xf0))
	assert.Equal(t, packet.SystemSongPosition, packet.StatusOf(0xf2))
}

func TestChannelVoiceRoundTrip(t *testing.T) {
	statuses := []packet.Status{
		packet.NoteOff,
		packet.NoteOn,
		packet.Aftertouch,
		packet.ControlChange,
		packet.ProgramChange,
		packet.AftertouchChannel,
		packet.PitchBend,
	}

	for _, status := range statuses {
		for channel := uint8(0); channel < 16; channel++ {
			var p packet.Packet
			require.NoError(t, p.Set(status, channel, 0x12, 0x34))

			assert.Equal(t, status, p.Type())
			assert.Equal(t, channel, p.Channel())
			assert.Equal(t, byte(0x12), p.Data()[2])
			assert.Equal(t, byte(0x34), p.Data()[3])
		}
	}
}

func TestCodeIndexFraming(t *testing.T) {
	cases := []struct {
		status packet.Status
		code   packet.CodeIndex
	}{
		{packet.NoteOff, packet.CodeNoteOff},
		{packet.NoteOn, packet.CodeNoteOn},
		{packet.Aftertouch, packet.CodeAftertouch},
		{packet.ControlChange, packet.CodeControlChange},
		{packet.ProgramChange, packet.CodeProgramChange},
		{packet.AftertouchChannel, packet.CodeAftertouchChannel},
		{packet.PitchBend, packet.CodePitchBend},
		{packet.SystemSongSelect, packet.CodeSystemCommon2},
		{packet.SystemTimeCodeQuarterFrame, packet.CodeSystemCommon2},
		{packet.SystemSongPosition, packet.CodeSystemCommon3},
		{packet.SystemClock, packet.CodeSingleByte},
		{packet.SystemReset, packet.CodeSingleByte},
		{packet.SystemTuneRequest, packet.CodeSingleByte},
	}

	for _, c := range cases {
		var p packet.Packet
		require.NoError(t, p.Set(c.status, 0, 0, 0))
		assert.Equal(t, c.code, p.CodeIndex(), "status %#02x", uint8(c.status))
	}
}

func TestSetSystemWithChannelFails(t *testing.T) {
	var p packet.Packet
	assert.Error(t, p.Set(packet.SystemClock, 3, 0, 0))
	assert.Error(t, p.Set(packet.SystemExclusive, 0, 0, 0))
	assert.NoError(t, p.Set(packet.SystemClock, 0, 0, 0))
}

func TestSetPreservesCable(t *testing.T) {
	var p packet.Packet
	p.SetCable(7)
	require.NoError(t, p.Set(packet.NoteOn, 1, 60, 100))
	assert.Equal(t, uint8(7), p.Cable())
	assert.Equal(t, packet.CodeNoteOn, p.CodeIndex())
}

func TestSetNoteVelocityZero(t *testing.T) {
	var on, off packet.Packet
	on.SetNote(2, 60, 0)
	off.SetNoteOff(2, 60, 64)

	// NoteOn with velocity 0 encodes byte-identically to NoteOff with
	// velocity 64.
	assert.Equal(t, off.Data(), on.Data())
}

func TestPitchBendRoundTrip(t *testing.T) {
	for v := -8192; v <= 8191; v++ {
		var p packet.Packet
		p.SetPitchBend(3, int16(v))
		assert.Equal(t, int16(v), p.PitchBend())
	}
}

func TestPitchBendCenter(t *testing.T) {
	var p packet.Packet
	p.SetPitchBend(5, 0)

	data := p.Data()
	assert.Equal(t, byte(0xe5), data[1])
	assert.Equal(t, byte(0x00), data[2])
	assert.Equal(t, byte(0x40), data[3])
	assert.Equal(t, int16(0), p.PitchBend())
}

func TestSetFromBytes(t *testing.T) {
	var p packet.Packet
	require.NoError(t, p.SetFromBytes(0x92, 60, 127))
	assert.Equal(t, packet.NoteOn, p.Type())
	assert.Equal(t, uint8(2), p.Channel())
	assert.Equal(t, packet.CodeNoteOn, p.CodeIndex())

	require.NoError(t, p.SetFromBytes(0xf8, 0, 0))
	assert.Equal(t, packet.SystemClock, p.Type())
	assert.Equal(t, packet.CodeSingleByte, p.CodeIndex())
}

func TestSongPosition(t *testing.T) {
	var p packet.Packet
	require.NoError(t, p.SetSystem(packet.SystemSongPosition, 0x21, 0x43))
	assert.Equal(t, uint16(0x43<<7|0x21), p.SongPosition())
}

func TestAccessors(t *testing.T) {
	var p packet.Packet
	p.SetControlChange(4, 11, 99)
	assert.Equal(t, uint8(11), p.Controller())
	assert.Equal(t, uint8(99), p.ControllerValue())

	p.SetProgram(9, 40)
	assert.Equal(t, uint8(40), p.Program())

	p.SetAftertouchChannel(1, 77)
	assert.Equal(t, uint8(77), p.AftertouchChannelPressure())

	p.SetAftertouch(0, 61, 15)
	assert.Equal(t, uint8(61), p.AftertouchNote())
	assert.Equal(t, uint8(15), p.Aftertouch())
}

func TestIsRealTime(t *testing.T) {
	assert.True(t, packet.SystemClock.IsRealTime())
	assert.True(t, packet.SystemReset.IsRealTime())
	assert.True(t, packet.SystemActiveSensing.IsRealTime())
	assert.False(t, packet.SystemTuneRequest.IsRealTime())
	assert.False(t, packet.SystemExclusive.IsRealTime())
	assert.False(t, packet.NoteOn.IsRealTime())
}
