package parameter

// SpeedTable is a cyclic per-tick movement budget
// 0 skips movement on the next update, n runs n quanta in the tick
type SpeedTable [16]int

// Phase is one entry of the chase/scatter schedule
type Phase struct {
	Chase bool
	Ticks int // -1 runs forever
}

// Rules holds the read-only tuning shared by every component of one game
// Built once by DefaultRules and passed by reference
type Rules struct {
	PlayerNormal     SpeedTable
	PlayerFrightened SpeedTable

	GhostNormal      SpeedTable
	GhostFrightened  SpeedTable
	GhostTunnel      SpeedTable
	GhostAggression1 SpeedTable
	GhostAggression2 SpeedTable
	GhostEaten       SpeedTable

	// Phases alternate scatter and chase; the last entry is terminal
	Phases []Phase

	// FrightenedTicks is the duration of frightened mode after an energizer
	FrightenedTicks int

	// EatenPauseTicks freezes the game after a ghost is eaten
	EatenPauseTicks int

	// Lives is the number of lives granted on reset
	Lives int

	// TicksPerDisplayUnit converts elapsed ticks to the displayed time
	TicksPerDisplayUnit int

	// DefaultBestTick is used when no record has been stored yet
	DefaultBestTick int
}

// DefaultRules returns the "level 4" arcade tuning
func DefaultRules() *Rules {
	return &Rules{
		PlayerNormal:     SpeedTable{1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, 1, 1},
		PlayerFrightened: SpeedTable{1, 1, 1, 1, 2, 1, 1, 1, 1, 2, 1, 1, 1, 1, 2, 1},

		GhostNormal:      SpeedTable{1, 1, 1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1},
		GhostFrightened:  SpeedTable{0, 1, 1, 0, 1, 1, 0, 1, 1, 0, 1, 1, 0, 1, 1, 1},
		GhostTunnel:      SpeedTable{0, 1, 1, 0, 1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 0, 1},
		GhostAggression1: SpeedTable{1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, 1, 1},
		GhostAggression2: SpeedTable{1, 1, 1, 1, 2, 1, 1, 1, 1, 2, 1, 1, 1, 1, 2, 1},
		GhostEaten:       SpeedTable{2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2},

		Phases: []Phase{
			{Chase: false, Ticks: 7 * 60},
			{Chase: true, Ticks: 20 * 60},
			{Chase: false, Ticks: 7 * 60},
			{Chase: true, Ticks: 20 * 60},
			{Chase: false, Ticks: 5 * 60},
			{Chase: true, Ticks: 1033 * 60},
			{Chase: false, Ticks: 1 * 60},
			{Chase: true, Ticks: -1},
		},

		FrightenedTicks:     6 * 60,
		EatenPauseTicks:     60,
		Lives:               3,
		TicksPerDisplayUnit: 50,
		DefaultBestTick:     9999 * 50,
	}
}
