// Package gm enumerates the General MIDI program and percussion maps.
package gm

// MIDI Program Change numbers / instruments.
const (
	// Piano
	AcousticGrandPiano  uint8 = 0
	BrightAcousticPiano uint8 = 1
	ElectricGrandPiano  uint8 = 2
	HonkyTonkPiano      uint8 = 3
	ElectricPiano1      uint8 = 4
	ElectricPiano2      uint8 = 5
	Harpsichord         uint8 = 6
	Clavi               uint8 = 7

	// Chromatic Percussion
	Celesta      uint8 = 8
	Glockenspiel uint8 = 9
	MusicBox     uint8 = 10
	Vibraphone   uint8 = 11
	Marimba      uint8 = 12
	Xylophone    uint8 = 13
	TubularBells uint8 = 14
	Dulcimer     uint8 = 15

	// Organ
	DrawbarOrgan    uint8 = 16
	PercussiveOrgan uint8 = 17
	RockOrgan       uint8 = 18
	ChurchOrgan     uint8 = 19
	ReedOrgan       uint8 = 20
	Accordion       uint8 = 21
	Harmonica       uint8 = 22
	TangoAccordion  uint8 = 23

	// Guitar
	AcousticGuitarNylon  uint8 = 24
	AcousticGuitarSsteel uint8 = 25
	ElectricGuitarJazz   uint8 = 26
	ElectricGuitarClean  uint8 = 27
	ElectricGuitarMuted  uint8 = 28
	OverdrivenGuitar     uint8 = 29
	DistortionGuitar     uint8 = 30
	GuitarHarmonics      uint8 = 31

	// Bass
	AcousticBass       uint8 = 32
	ElectricBassFinger uint8 = 33
	ElectricBassPick   uint8 = 34
	FretlessBass       uint8 = 35
	SlapBass1          uint8 = 36
	SlapBass2          uint8 = 37
	SynthBass1         uint8 = 38
	SynthBass2         uint8 = 39

	// Strings
	Violin           uint8 = 40
	Viola            uint8 = 41
	Cello            uint8 = 42
	Contrabass       uint8 = 43
	TremoloStrings   uint8 = 44
	PizzicatoStrings uint8 = 45
	OrchestralHarp   uint8 = 46

	// Ensemble
	Timpani         uint8 = 47
	StringEnsemble1 uint8 = 48
	StringEnsemble2 uint8 = 49
	SynthStrings1   uint8 = 50
	SynthStrings2   uint8 = 51
	ChoirAahs       uint8 = 52
	VoiceOohs       uint8 = 53
	SynthVoice      uint8 = 54
	OrchestraHit    uint8 = 55

	// Brass
	Trumpet      uint8 = 56
	Trombone     uint8 = 57
	Tuba         uint8 = 58
	MutedTrumpet uint8 = 59
	FrenchHorn   uint8 = 60
	BrassSection uint8 = 61
	SynthBrass1  uint8 = 62
	SynthBrass2  uint8 = 63

	// Reed
	SopranoSax  uint8 = 64
	AltoSax     uint8 = 65
	TenorSax    uint8 = 66
	BaritoneSax uint8 = 67
	Oboe        uint8 = 68
	EnglishHorn uint8 = 69
	Bassoon     uint8 = 70
	Clarinet    uint8 = 71

	// Pipe
	Piccolo     uint8 = 72
	Flute       uint8 = 73
	Recorder    uint8 = 74
	PanFlute    uint8 = 75
	BlownBottle uint8 = 76
	Shakuhachi  uint8 = 77
	Whistle     uint8 = 78
	Ocarina     uint8 = 79

	// Synth Lead
	Lead1Square   uint8 = 80
	Lead2Sawtooth uint8 = 81
	Lead3Calliope uint8 = 82
	Lead4Chiff    uint8 = 83
	Lead5Charang  uint8 = 84
	Lead6Voice    uint8 = 85
	Lead7Ffifths  uint8 = 86
	Lead8Bass     uint8 = 87

	// Synth Pad
	Pad1NewAge    uint8 = 88
	Pad2Warm      uint8 = 89
	Pad3Polysynth uint8 = 90
	Pad4Choir     uint8 = 91
	Pad5Bowed     uint8 = 92
	Pad6Metallic  uint8 = 93
	Pad7Halo      uint8 = 94
	Pad8Sweep     uint8 = 95

	// Synth Effects
	FX1Rain       uint8 = 96
	FX2Soundtrack uint8 = 97
	FX3Crystal    uint8 = 98
	FX4Atmosphere uint8 = 99
	FX5Brightness uint8 = 100
	FX6Goblins    uint8 = 101
	FX7Echoes     uint8 = 102
	FX8SciFi      uint8 = 103

	// Ethnic Percussive
	Sitar    uint8 = 104
	Banjo    uint8 = 105
	Shamisen uint8 = 106
	Koto     uint8 = 107
	Kalimba  uint8 = 108
	BagPipe  uint8 = 109
	Fiddle   uint8 = 110
	Shanai   uint8 = 111

	// Percussive
	TinkleBell    uint8 = 112
	Agogo         uint8 = 113
	SteelDrums    uint8 = 114
	Woodblock     uint8 = 115
	TaikoDrum     uint8 = 116
	MelodicTom    uint8 = 117
	SynthDrum     uint8 = 118
	ReverseCymbal uint8 = 119

	// Sound Effects
	GuitarFretNoise uint8 = 120
	BreathNoise     uint8 = 121
	Seashore        uint8 = 122
	BirdTweet       uint8 = 123
	TelephoneRing   uint8 = 124
	Helicopter      uint8 = 125
	Applause        uint8 = 126
	Gunshot         uint8 = 127
)

// General MIDI percussion mapping. Traditionally on MIDI channel 10.
const (
	PercussionHighQ            uint8 = 27
	PercussionSlap             uint8 = 28
	PercussionScratchPush      uint8 = 29
	PercussionScratchPull      uint8 = 30
	PercussionSticks           uint8 = 31
	PercussionSquareClick      uint8 = 32
	PercussionMetronomeClick   uint8 = 33
	PercussionMetronomeBell    uint8 = 34
	PercussionAcousticBassDrum uint8 = 35
	PercussionBassDrum1        uint8 = 36
	PercussionSideStick        uint8 = 37
	PercussionAcousticSnare    uint8 = 38
	PercussionHandClap         uint8 = 39
	PercussionElectricSnare    uint8 = 40
	PercussionLowFloorTom      uint8 = 41
	PercussionClosedHiHat      uint8 = 42
	PercussionHighFloorTom     uint8 = 43
	PercussionPedalHiHat       uint8 = 44
	PercussionLowTom           uint8 = 45
	PercussionOpenHiHat        uint8 = 46
	PercussionLowMidTom        uint8 = 47
	PercussionHiMidTom         uint8 = 48
	PercussionCrashCymbal1     uint8 = 49
	PercussionHighTom          uint8 = 50
	PercussionRideCymbal1      uint8 = 51
	PercussionChineseCymbal    uint8 = 52
	PercussionRideBell         uint8 = 53
	PercussionTambourine       uint8 = 54
	PercussionSplashCymbal     uint8 = 55
	PercussionCowbell          uint8 = 56
	PercussionCrashCymbal2     uint8 = 57
	PercussionVibraslap        uint8 = 58
	PercussionRideCymbal2      uint8 = 59
	PercussionHiBongo          uint8 = 60
	PercussionLowBongo         uint8 = 61
	PercussionMuteHiConga      uint8 = 62
	PercussionOpenHiConga      uint8 = 63
	PercussionLowConga         uint8 = 64
	PercussionHighTimbale      uint8 = 65
	PercussionLowTimbale       uint8 = 66
	PercussionHighAgogo        uint8 = 67
	PercussionLowAgogo         uint8 = 68
	PercussionCabasa           uint8 = 69
	PercussionMaracas          uint8 = 70
	PercussionShortWhistle     uint8 = 71
	PercussionLongWhistle      uint8 = 72
	PercussionShortGuiro       uint8 = 73
	PercussionLongGuiro        uint8 = 74
	PercussionClaves           uint8 = 75
	PercussionHiWoodBlock      uint8 = 76
	PercussionLowWoodBlock     uint8 = 77
	PercussionMuteCuica        uint8 = 78
	PercussionOpenCuica        uint8 = 79
	PercussionMuteTriangle     uint8 = 80
	PercussionOpenTriangle     uint8 = 81
	PercussionShaker           uint8 = 82
	PercussionJingleBell       uint8 = 83
	PercussionBellTree         uint8 = 84
	PercussionCastanets        uint8 = 85
	PercussionMuteSurdo        uint8 = 86
	PercussionOpenSurdo        uint8 = 87
)
