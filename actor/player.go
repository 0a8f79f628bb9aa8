package actor

import (
	"math"

	"github.com/lixenwraith/mazechase/core"
	"github.com/lixenwraith/mazechase/parameter"
)

// Player start position
var (
	playerStart       = core.Tile{X: 13, Y: 9}
	playerStartOffset = parameter.TileSize / 2
)

// cornering is an early turn in progress; offset runs along the old heading
type cornering struct {
	dir    core.Direction
	offset int
	active bool
}

// Player is the user-controlled mobile
type Player struct {
	Mobile

	rules *parameter.Rules
	mode  SubMode

	desired  core.Direction
	velocity int
	corner   cornering
	freeze   int // post-eat stall

	deathScale float64
}

// NewPlayer creates a player at its start tile
func NewPlayer(rules *parameter.Rules) *Player {
	p := &Player{rules: rules}
	p.Reset()
	return p
}

// Reset restores the start position; the sub-mode falls back to fixed
func (p *Player) Reset() {
	p.resetMotion()
	p.Facing = core.DirRight
	p.Tile = playerStart
	p.Offset = playerStartOffset
	p.corner = cornering{}
	p.freeze = 0
	p.desired = core.DirNone
	p.velocity = parameter.MoveQuantum
	p.deathScale = 0
	p.mode = SubFixed
}

// SetMode applies a sub-mode pushed by the mode table
func (p *Player) SetMode(m SubMode) {
	switch m {
	case SubReset:
		p.Reset()
		return
	case SubDie:
		p.Tick = 0
	}
	p.mode = m
}

func (p *Player) Mode() SubMode { return p.mode }

// SetDesired fills the one-slot direction buffer
func (p *Player) SetDesired(d core.Direction) { p.desired = d }

func (p *Player) Velocity() int { return p.velocity }

func (p *Player) Cornering() bool { return p.corner.active }

func (p *Player) Freeze() int { return p.freeze }

// DeathScale is the shrink factor of the death animation
func (p *Player) DeathScale() float64 { return p.deathScale }

// DrawOffset is the pixel offset from the tile origin including a corner in progress
func (p *Player) DrawOffset() core.Point {
	off := p.Facing.Vector().Scale(p.Offset)
	if p.corner.active {
		off = off.Add(p.corner.dir.Vector().Scale(p.corner.offset))
	}
	return off
}

// Update runs a single movement quantum and reports whether another quantum is due this tick
func (p *Player) Update(a Arena) (repeat bool) {
	if p.mode == SubDie {
		p.deathScale = math.Sin(float64(p.Tick)/12) * 4
		p.Tick++
		return false
	}

	if p.freeze > 0 {
		p.freeze--
		return false
	}

	switch p.mode {
	case SubReset, SubHide, SubShow, SubFixed:
		return false
	}

	if p.desired != core.DirNone && !p.corner.active {
		p.turn(a)
	}
	p.desired = core.DirNone

	if p.corner.active {
		p.corner.offset += p.velocity
		if p.corner.offset >= parameter.TileSize {
			p.Tile = p.Tile.Step(p.corner.dir, 1)
			p.corner = cornering{}
			p.eat(a)
		}
	}

	repeat = true
	if p.mode == SubPlay {
		p.Offset += p.velocity
	}
	if p.Offset >= parameter.TileSize {
		p.Offset = 0
		p.Tile = p.Tile.Step(p.Facing, 1)
		p.eat(a)
		p.wrap()

		if !a.Grid().IsOpen(p.Tile.Step(p.Facing, 1)) {
			p.velocity = 0
			repeat = false
		}
	}

	table := &p.rules.PlayerNormal
	if a.Frightened() {
		table = &p.rules.PlayerFrightened
	}
	if !p.budget(table) {
		repeat = false
	}

	if p.velocity != 0 && !repeat && p.mode == SubPlay {
		p.Tick++
	}
	return repeat
}

// turn applies the buffered direction: reversal, boundary turn or cornering
func (p *Player) turn(a Arena) {
	d := p.desired
	grid := a.Grid()

	switch {
	case d == p.Facing.Opposite() && p.velocity != 0 && p.Offset != 0:
		p.Tile = p.Tile.Step(p.Facing, 1)
		p.Offset = parameter.TileSize - p.Offset
		p.Facing = d

	case p.Offset == 0:
		if grid.IsOpen(p.Tile.Step(d, 1)) {
			p.Facing = d
			p.velocity = parameter.MoveQuantum
		}

	case p.Offset >= parameter.CorneringThreshold && d != p.Facing && d != p.Facing.Opposite():
		diagonal := p.Tile.Step(p.Facing, 1).Step(d, 1)
		if grid.IsOpen(diagonal) {
			p.corner = cornering{dir: p.Facing, offset: p.Offset, active: true}
			p.Facing = d
			p.Offset = 0
			p.velocity = parameter.MoveQuantum
		}
	}
}

func (p *Player) eat(a Arena) {
	if f := a.Eat(p.Tile); f > 0 {
		p.freeze = f
	}
}
