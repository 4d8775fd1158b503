// Package cc enumerates the Control Change controller numbers and
// Channel Mode Messages, and tracks high-resolution 14 bit controller
// values.
package cc

const (
	// MSB Controller Data.
	BankSelect       uint8 = 0
	ModulationWheel  uint8 = 1
	BreathController uint8 = 2
	Controller3      uint8 = 3
	FootController   uint8 = 4
	PortamentoTime   uint8 = 5
	DataEntry        uint8 = 6 // RPN, NRPN value.
	ChannelVolume    uint8 = 7
	Balance          uint8 = 8
	Controller9      uint8 = 9
	Pan              uint8 = 10
	Expression       uint8 = 11
	EffectControl1   uint8 = 12
	EffectControl2   uint8 = 13
	Controller14     uint8 = 14
	Controller15     uint8 = 15
	GeneralPurpose1  uint8 = 16
	GeneralPurpose2  uint8 = 17
	GeneralPurpose3  uint8 = 18
	GeneralPurpose4  uint8 = 19
	Controller20     uint8 = 20
	Controller21     uint8 = 21
	Controller22     uint8 = 22
	Controller23     uint8 = 23
	Controller24     uint8 = 24
	Controller25     uint8 = 25
	Controller26     uint8 = 26
	Controller27     uint8 = 27
	Controller28     uint8 = 28
	Controller29     uint8 = 29
	Controller30     uint8 = 30
	Controller31     uint8 = 31

	// LSB for controllers 0 to 31.
	ControllerLSB       uint8 = 32
	BankSelectLSB       uint8 = ControllerLSB + BankSelect
	ModulationWheelLSB  uint8 = ControllerLSB + ModulationWheel
	BreathControllerLSB uint8 = ControllerLSB + BreathController
	Controller3LSB      uint8 = ControllerLSB + Controller3
	FootControllerLSB   uint8 = ControllerLSB + FootController
	PortamentoTimeLSB   uint8 = ControllerLSB + PortamentoTime
	DataEntryLSB        uint8 = ControllerLSB + DataEntry
	ChannelVolumeLSB    uint8 = ControllerLSB + ChannelVolume
	BalanceLSB          uint8 = ControllerLSB + Balance
	Controller9LSB      uint8 = ControllerLSB + Controller9
	PanLSB              uint8 = ControllerLSB + Pan
	ExpressionLSB       uint8 = ControllerLSB + Expression
	EffectControl1LSB   uint8 = ControllerLSB + EffectControl1
	EffectControl2LSB   uint8 = ControllerLSB + EffectControl2
	Controller14LSB     uint8 = ControllerLSB + Controller14
	Controller15LSB     uint8 = ControllerLSB + Controller15
	GeneralPurpose1LSB  uint8 = ControllerLSB + GeneralPurpose1
	GeneralPurpose2LSB  uint8 = ControllerLSB + GeneralPurpose2
	GeneralPurpose3LSB  uint8 = ControllerLSB + GeneralPurpose3
	GeneralPurpose4LSB  uint8 = ControllerLSB + GeneralPurpose4
	Controller20LSB     uint8 = ControllerLSB + Controller20
	Controller21LSB     uint8 = ControllerLSB + Controller21
	Controller22LSB     uint8 = ControllerLSB + Controller22
	Controller23LSB     uint8 = ControllerLSB + Controller23
	Controller24LSB     uint8 = ControllerLSB + Controller24
	Controller25LSB     uint8 = ControllerLSB + Controller25
	Controller26LSB     uint8 = ControllerLSB + Controller26
	Controller27LSB     uint8 = ControllerLSB + Controller27
	Controller28LSB     uint8 = ControllerLSB + Controller28
	Controller29LSB     uint8 = ControllerLSB + Controller29
	Controller30LSB     uint8 = ControllerLSB + Controller30
	Controller31LSB     uint8 = ControllerLSB + Controller31

	// Single-byte Controllers.
	SustainPedal      uint8 = 64
	Portamento        uint8 = 65
	Sostenuto         uint8 = 66
	SoftPedal         uint8 = 67
	LegatoPedal       uint8 = 68
	Hold2             uint8 = 69
	SoundController1  uint8 = 70 // Sound Variation
	SoundController2  uint8 = 71 // Timber / Harmonic Intensity
	SoundController3  uint8 = 72 // Release Time
	SoundController4  uint8 = 73 // Attack Time
	SoundController5  uint8 = 74 // Brightness
	SoundController6  uint8 = 75 // Decay Time
	SoundController7  uint8 = 76 // Vibrato Rate
	SoundController8  uint8 = 77 // Vibrato Depth
	SoundController9  uint8 = 78 // Vibrato Delay
	SoundController10 uint8 = 79
	GeneralPurpose5   uint8 = 80 // Decay
	GeneralPurpose6   uint8 = 81 // High Pass Filter Frequency
	GeneralPurpose7   uint8 = 82
	GeneralPurpose8   uint8 = 83
	PortamentoControl uint8 = 84
	Controller85      uint8 = 85
	Controller86      uint8 = 86
	Controller87      uint8 = 87
	VelocityPrefix    uint8 = 88
	Controller89      uint8 = 89
	Controller90      uint8 = 90
	Effects1          uint8 = 91 // Reverb Send
	Effects2          uint8 = 92 // Tremolo Depth
	Effects3          uint8 = 93 // Chorus Send
	Effects4          uint8 = 94 // Celeste Depth
	Effects5          uint8 = 95 // Phaser Depth

	// Non-registered, Registered Parameter Numbers.
	DataIncrement uint8 = 96 // Step == 1, ignore the value (RP-018)
	DataDecrement uint8 = 97
	NRPNLSB       uint8 = 98 // Select NRPN
	NRPNMSB       uint8 = 99
	RPNLSB        uint8 = 100 // Select RPN
	RPNMSB        uint8 = 101

	Controller102 uint8 = 102
	Controller103 uint8 = 103
	Controller104 uint8 = 104
	Controller105 uint8 = 105
	Controller106 uint8 = 106
	Controller107 uint8 = 107
	Controller108 uint8 = 108
	Controller109 uint8 = 109
	Controller110 uint8 = 110
	Controller111 uint8 = 111
	Controller112 uint8 = 112
	Controller113 uint8 = 113
	Controller114 uint8 = 114
	Controller115 uint8 = 115
	Controller116 uint8 = 116
	Controller117 uint8 = 117
	Controller118 uint8 = 118
	Controller119 uint8 = 119

	// Channel Mode Messages.
	AllSoundOff         uint8 = 120
	ResetAllControllers uint8 = 121
	LocalControl        uint8 = 122
	AllNotesOff         uint8 = 123
	OmniModeOff         uint8 = 124
	OmniModeOn          uint8 = 125
	MonoModeOn          uint8 = 126
	PolyModeOn          uint8 = 127
)
