package actor

import (
	"github.com/lixenwraith/mazechase/core"
	"github.com/lixenwraith/mazechase/maze"
)

// Arena is the view of the owning game that actors read and act on during a quantum
type Arena interface {
	Grid() *maze.Grid
	Player() *Player
	// Lead is the ghost whose tile anchors Bashful's reflection
	Lead() *Ghost

	PelletsEaten() int
	// Frozen reports a running eaten pause
	Frozen() bool
	// Frightened reports a running frightened timer
	Frightened() bool
	// Random draws from the deterministic source
	Random() int

	// Eat consumes the pellet at t, returning the player freeze it causes
	Eat(t core.Tile) int
}
