package actor

import (
	"github.com/lixenwraith/mazechase/core"
	"github.com/lixenwraith/mazechase/maze"
	"github.com/lixenwraith/mazechase/parameter"
)

// Mobile is the sub-tile movement bookkeeping shared by the player and the ghosts
// Offset runs in [0, TileSize) along Facing; reaching TileSize commits one tile step
type Mobile struct {
	Tile   core.Tile
	Offset int
	Facing core.Direction
	Tick   int

	cursor     int // speed table index
	repetition int // quanta consumed at the current cursor
}

// Position is the pixel position used for collision, tile origin plus offset along Facing
func (m *Mobile) Position() core.Point {
	v := m.Facing.Vector()
	return core.Point{
		X: m.Tile.X*parameter.TileSize + m.Offset*v.X,
		Y: m.Tile.Y*parameter.TileSize + m.Offset*v.Y,
	}
}

// Cursor returns the speed table index
func (m *Mobile) Cursor() int {
	return m.cursor
}

func (m *Mobile) resetMotion() {
	m.Facing = core.DirNone
	m.Offset = 0
	m.Tick = 0
	m.cursor = 0
	m.repetition = 0
}

// wrap teleports across the tunnel, leaving a small offset so the wrap is not re-triggered
func (m *Mobile) wrap() {
	if t, ok := maze.Wrap(m.Tile); ok {
		m.Tile = t
		m.Offset = parameter.TunnelWrapOffset
	}
}

func (m *Mobile) advanceCursor() {
	m.cursor = (m.cursor + 1) % len(parameter.SpeedTable{})
}

// budget consumes one repetition of the current table entry
// Returns false once the entry is exhausted for this tick, moving the cursor on
func (m *Mobile) budget(table *parameter.SpeedTable) bool {
	if m.repetition >= table[m.cursor] {
		m.repetition = 1
		m.advanceCursor()
		return false
	}
	m.repetition++
	return true
}
