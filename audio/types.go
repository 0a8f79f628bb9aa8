package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundChomp      SoundType = iota // Dot eaten
	SoundEnergizer                   // Energizer eaten
	SoundGhostEaten                  // Frightened ghost caught
	SoundDeath                       // Player caught
	SoundNewRecord                   // New best time stored
	soundTypeCount
)

var soundNames = [...]string{
	SoundChomp:      "chomp",
	SoundEnergizer:  "energizer",
	SoundGhostEaten: "ghost_eaten",
	SoundDeath:      "death",
	SoundNewRecord:  "new_record",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ErrDisabled is returned by Initialize when audio is switched off in the config
var ErrDisabled = errors.New("audio disabled")
