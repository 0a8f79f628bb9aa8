package maze

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/mazechase/core"
	"github.com/lixenwraith/mazechase/parameter"
)

// Cell types
const (
	Wall    = false
	Passage = true
)

// ErrLayoutSize is returned when a layout string does not cover the whole board
var ErrLayoutSize = errors.New("layout does not match board size")

// Grid is the static passability oracle
// Read-only after construction; shared by every entity of a game
type Grid struct {
	open   [parameter.BoardHeight][parameter.BoardWidth]bool
	glyphs [parameter.BoardHeight][parameter.BoardWidth]byte
}

// NewGrid parses a layout where '.' is open ground
func NewGrid(layout string) (*Grid, error) {
	if len(layout) != parameter.BoardWidth*parameter.BoardHeight {
		return nil, fmt.Errorf("grid: %w: got %d cells", ErrLayoutSize, len(layout))
	}

	g := &Grid{}
	for y := 0; y < parameter.BoardHeight; y++ {
		row := rowOf(y)
		for x := 0; x < parameter.BoardWidth; x++ {
			c := layout[row*parameter.BoardWidth+x]
			g.glyphs[y][x] = c
			g.open[y][x] = c == '.'
		}
	}
	return g, nil
}

// MustGrid panics on a malformed layout; used for compiled-in boards
func MustGrid(layout string) *Grid {
	g, err := NewGrid(layout)
	if err != nil {
		panic(err)
	}
	return g
}

// rowOf converts a world Y (up is positive) to the layout row (top first)
func rowOf(y int) int {
	return parameter.BoardHeight - 1 - y
}

// IsOpen reports whether a tile is open ground
// Tiles beyond the tunnel mouth (rows around TunnelY) clamp to the edge column
func (g *Grid) IsOpen(t core.Tile) bool {
	x := t.X
	if t.Y >= parameter.TunnelY-1 && t.Y <= parameter.TunnelY+1 {
		if x <= 0 {
			x = 0
		} else if x >= parameter.BoardWidth-1 {
			x = parameter.BoardWidth - 1
		}
	}
	if x < 0 || x >= parameter.BoardWidth || t.Y < 0 || t.Y >= parameter.BoardHeight {
		return false
	}
	return g.open[t.Y][x]
}

// Glyph returns the layout character at a tile, ' ' outside the board
func (g *Grid) Glyph(t core.Tile) byte {
	if t.X < 0 || t.X >= parameter.BoardWidth || t.Y < 0 || t.Y >= parameter.BoardHeight {
		return ' '
	}
	return g.glyphs[t.Y][t.X]
}

// IsTunnel reports whether a tile lies in the slow section of the tunnel
func IsTunnel(t core.Tile) bool {
	return t.Y == parameter.TunnelY &&
		(t.X <= parameter.TunnelSlowColumns || t.X >= parameter.BoardWidth-parameter.TunnelSlowColumns)
}

// Wrap teleports a tile at either tunnel end to the opposite end
// Returns false when no wrap applies
func Wrap(t core.Tile) (core.Tile, bool) {
	if t.Y != parameter.TunnelY {
		return t, false
	}
	switch t.X {
	case parameter.TunnelWrapLeft:
		return core.Tile{X: parameter.TunnelWrapRight, Y: t.Y}, true
	case parameter.TunnelWrapRight:
		return core.Tile{X: parameter.TunnelWrapLeft, Y: t.Y}, true
	}
	return t, false
}
