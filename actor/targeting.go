package actor

import (
	"fmt"

	"github.com/lixenwraith/mazechase/core"
	"github.com/lixenwraith/mazechase/parameter"
)

// pokeyRangeSq is the squared tile distance beyond which Pokey gives up and scatters
const pokeyRangeSq = 64

// chaseTarget computes the identity-specific pursuit tile
func (g *Ghost) chaseTarget(a Arena) core.Tile {
	player := a.Player()

	switch g.profile.Identity {
	case Shadow:
		return player.Tile

	case Speedy:
		v := player.Facing.Vector()
		// Facing up also shifts the target left
		if player.Facing == core.DirUp {
			v.X = -1
		}
		return core.Tile{X: player.Tile.X + 4*v.X, Y: player.Tile.Y + 4*v.Y}

	case Bashful:
		center := player.Tile.Step(player.Facing, 2)
		lead := a.Lead().Tile
		return core.Tile{X: 2*center.X - lead.X, Y: 2*center.Y - lead.Y}

	case Pokey:
		if g.Tile.DistanceSq(player.Tile) > pokeyRangeSq {
			return g.profile.Corner
		}
		return player.Tile
	}
	return player.Tile
}

// activeTarget is the tile the ghost steers for at an intersection
func (g *Ghost) activeTarget() core.Tile {
	switch {
	case g.control == ControlHeadingHome:
		return parameter.HomeSeat
	case g.control == ControlChase, g.aggression[0], g.aggression[1]:
		return g.target
	}
	return g.profile.Corner
}

// candidates lists the non-reversing headings in tie-break order per current facing
var candidates = [...][]core.Direction{
	core.DirNone:  nil,
	core.DirRight: {core.DirUp, core.DirRight, core.DirDown},
	core.DirLeft:  {core.DirUp, core.DirLeft, core.DirDown},
	core.DirUp:    {core.DirUp, core.DirRight, core.DirLeft},
	core.DirDown:  {core.DirRight, core.DirLeft, core.DirDown},
}

// chooseDirection picks the heading out of the tile just entered
// Panics when no candidate is open; the maze has no dead ends
func (g *Ghost) chooseDirection(a Arena) core.Direction {
	grid := a.Grid()

	var legal [3]core.Direction
	n := 0
	for _, d := range candidates[g.Facing] {
		if grid.IsOpen(g.Tile.Step(d, 1)) {
			legal[n] = d
			n++
		}
	}
	if n == 0 {
		panic(fmt.Sprintf("actor: ghost %s has no open heading at %v facing %v", g.Name(), g.Tile, g.Facing))
	}

	if g.control == ControlRandom {
		return legal[a.Random()%n]
	}

	target := g.activeTarget()
	best := legal[0]
	bestDist := g.Tile.Step(best, 1).DistanceSq(target)
	for _, d := range legal[1:n] {
		if dist := g.Tile.Step(d, 1).DistanceSq(target); dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}
