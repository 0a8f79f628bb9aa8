package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 50 * time.Millisecond

	// AudioResampleQuality is passed to beep.ResampleRatio for the siren
	AudioResampleQuality = 4
)

// Chomp Sound
const (
	ChompSoundDuration = 70 * time.Millisecond
	ChompSoundAttack   = 5 * time.Millisecond
	ChompSoundRelease  = 30 * time.Millisecond
	ChompFreqLow       = 260.0
	ChompFreqHigh      = 520.0
)

// Energizer Sound
const (
	EnergizerSoundDuration = 250 * time.Millisecond
	EnergizerSoundAttack   = 5 * time.Millisecond
	EnergizerSoundRelease  = 120 * time.Millisecond
)

// Ghost Eaten Sound
const (
	GhostEatenSoundDuration = 300 * time.Millisecond
	GhostEatenSoundAttack   = 5 * time.Millisecond
	GhostEatenSoundRelease  = 60 * time.Millisecond
	GhostEatenFreqFrom      = 200.0
	GhostEatenFreqTo        = 1400.0
)

// Death Sound
const (
	DeathSoundDuration = 1200 * time.Millisecond
	DeathSoundAttack   = 10 * time.Millisecond
	DeathSoundRelease  = 300 * time.Millisecond
	DeathFreqFrom      = 900.0
	DeathFreqTo        = 120.0
)

// New Record Sound
const (
	RecordNoteDuration = 120 * time.Millisecond
	RecordNoteAttack   = 5 * time.Millisecond
	RecordNoteRelease  = 60 * time.Millisecond
)

// RecordNotes is the arpeggio played for a new best time (C6 E6 G6 C7)
var RecordNotes = []float64{1046.50, 1318.51, 1567.98, 2093.00}

// Siren
const (
	// SirenPeriod is one rise and fall of the background siren
	SirenPeriod   = 400 * time.Millisecond
	SirenFreqLow  = 420.0
	SirenFreqHigh = 720.0
	SirenVolume   = 0.25

	// SirenFrightenedRatio speeds the siren up while ghosts are frightened
	SirenFrightenedRatio = 1.2
)
