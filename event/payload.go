package event

import "github.com/lixenwraith/mazechase/core"

// PelletPayload identifies the consumed pellet
type PelletPayload struct {
	Tile      core.Tile
	Remaining int // pellets left on the board after this one
}

// GhostPayload identifies the ghost involved in a collision
type GhostPayload struct {
	Ghost string
	Tile  core.Tile
}

// ModePayload carries both ends of a mode transition
type ModePayload struct {
	From string
	To   string
}

// RecordPayload carries the stored best completion tick
type RecordPayload struct {
	BestTick int
}
