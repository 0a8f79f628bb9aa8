package actor

import (
	"github.com/lixenwraith/mazechase/autopilot"
	"github.com/lixenwraith/mazechase/core"
	"github.com/lixenwraith/mazechase/maze"
	"github.com/lixenwraith/mazechase/parameter"
)

// Ghost is an adversary: a mobile with a control system, a visual and an identity-specific target
type Ghost struct {
	Mobile

	profile *Profile
	rules   *parameter.Rules
	mode    SubMode

	visual  Visual
	control Control
	pilot   *autopilot.Autopilot

	target     core.Tile // latest chase target
	aggression [2]bool
	leaveHome  bool

	move        bool // false skips the next movement
	turnPending bool // reversed on a tile boundary, heading not yet chosen
}

// NewGhost creates a ghost positioned per its profile
func NewGhost(profile Profile, rules *parameter.Rules) *Ghost {
	g := &Ghost{
		profile: &profile,
		rules:   rules,
	}
	g.Reset()
	return g
}

// Reset restores the profile start state and drops the leave-home release;
// aggression survives until ClearLatches
func (g *Ghost) Reset() {
	p := g.profile
	g.resetMotion()
	g.visual = VisualNone
	g.leaveHome = false
	g.Tile = p.Start
	g.Offset = p.StartOffset
	g.Facing = p.StartFacing
	g.control = p.StartControl
	g.cursor = p.StartCursor
	g.move = true
	g.turnPending = false

	g.pilot = nil
	if p.StartControl == ControlLeaving && p.Leave != nil {
		g.pilot = autopilot.New(p.Leave)
	}
}

// ClearLatches drops the aggression flags for a new game
func (g *Ghost) ClearLatches() {
	g.aggression = [2]bool{}
}

// SetMode applies a sub-mode pushed by the mode table
func (g *Ghost) SetMode(m SubMode) {
	switch m {
	case SubReset:
		g.Reset()
	case SubHide:
		g.visual = VisualNone
	case SubShow, SubPlay, SubFixed, SubFrozen:
		g.visual = VisualAlive
	}
	g.mode = m
}

func (g *Ghost) Mode() SubMode { return g.mode }

func (g *Ghost) Name() string { return g.profile.Identity.String() }

func (g *Ghost) Identity() Identity { return g.profile.Identity }

func (g *Ghost) Visual() Visual { return g.visual }

func (g *Ghost) Control() Control { return g.control }

// Target is the chase target computed on the last update
func (g *Ghost) Target() core.Tile { return g.target }

func (g *Ghost) Corner() core.Tile { return g.profile.Corner }

// Aggressive reports whether aggression level 1 or 2 is latched
func (g *Ghost) Aggressive(level int) bool {
	if level < 1 || level > len(g.aggression) {
		return false
	}
	return g.aggression[level-1]
}

// Released reports whether the leave-home release has been latched
func (g *Ghost) Released() bool { return g.leaveHome }

// DrawOffset is the pixel offset from the tile origin, scripted displacement while in the pen
func (g *Ghost) DrawOffset() core.Point {
	if g.pilot != nil {
		return g.pilot.Displacement()
	}
	return g.Facing.Vector().Scale(g.Offset)
}

// RequestControl asks for a control system change together with a visual
func (g *Ghost) RequestControl(c Control, v Visual) {
	switch c {
	case ControlRandom:
		if g.control == ControlChase || g.control == ControlScatter {
			g.control = c
			g.reverse()
		}
		if g.visual != VisualEaten {
			g.visual = v
		}

	case ControlChase, ControlScatter:
		if !g.control.Scripted() && g.visual != VisualEaten && g.visual != VisualFrightened {
			g.control = c
		}
		if g.visual != VisualEaten {
			g.visual = v
		}

	case ControlHeadingHome:
		if g.control == ControlRandom {
			g.control = c
			g.visual = v
		}

	case ControlRespawn:
		if g.control == ControlHeadingHome {
			g.pilot = autopilot.New(g.profile.Respawn)
			g.control = c
			g.visual = v
		}
	}
}

// reverse turns 180 degrees in place, mirroring the sub-tile offset
func (g *Ghost) reverse() {
	if g.Offset == 0 {
		g.Facing = g.Facing.Opposite()
		g.turnPending = true
		return
	}
	g.Tile = g.Tile.Step(g.Facing, 1)
	g.Offset = parameter.TileSize - g.Offset
	g.Facing = g.Facing.Opposite()
}

// Update runs a single movement quantum and reports whether another quantum is due this tick
func (g *Ghost) Update(a Arena) (repeat bool) {
	g.observe(a)

	if g.mode == SubPlay {
		g.steer(a)
		return g.pace(a)
	}
	if g.mode == SubFixed {
		g.Tick++
	}
	return false
}

// observe refreshes the chase target and the latches
func (g *Ghost) observe(a Arena) {
	g.target = g.chaseTarget(a)

	eaten := a.PelletsEaten()
	remaining := parameter.TotalPellets - eaten
	for i, threshold := range g.profile.Aggression {
		if threshold != NoAggression && remaining <= threshold {
			g.aggression[i] = true
		}
	}

	if r := g.profile.Release; r != nil && eaten > r.PelletsEaten && g.Tick > r.OwnTicks {
		g.leaveHome = true
	}
}

// steer runs one step of the control system
func (g *Ghost) steer(a Arena) {
	switch g.control {
	case ControlHeadingHome:
		if g.atDoor() {
			g.RequestControl(ControlRespawn, g.visual)
		} else {
			g.advance(a)
		}
	case ControlChase, ControlScatter, ControlRandom:
		g.advance(a)
	case ControlLeaving, ControlRespawn:
		g.fly(a)
	}
}

func (g *Ghost) atDoor() bool {
	return g.Tile == parameter.HomeDoor &&
		g.Offset == parameter.TileSize/2 &&
		(g.Facing == core.DirLeft || g.Facing == core.DirRight)
}

// fly delegates to the autopilot and hands control back once the script ends
func (g *Ghost) fly(a Arena) {
	if g.pilot == nil {
		return
	}

	if g.pilot.Active() {
		wait := a.Frozen() && g.visual != VisualEaten
		if g.pilot.Advance(g.leaveHome, wait) {
			g.visual = VisualAlive
		}
		g.Facing = g.pilot.Facing()
		return
	}

	g.pilot = nil
	g.Tile = parameter.HomeExit
	g.Offset = parameter.TileSize / 2
	g.Facing = core.DirLeft
	g.repetition = 0
	if g.visual == VisualFrightened {
		g.control = ControlRandom
	} else {
		g.control = ControlChase
	}
}

// advance moves one quantum along the maze and picks a heading at each new tile
func (g *Ghost) advance(a Arena) {
	if !g.move {
		return
	}

	if g.turnPending {
		g.turnPending = false
		g.wrap()
		g.Facing = g.chooseDirection(a)
		return
	}

	if !a.Frozen() || g.control == ControlHeadingHome {
		g.Offset += parameter.MoveQuantum
	}
	if g.Offset < parameter.TileSize {
		return
	}

	g.Offset = 0
	g.Tile = g.Tile.Step(g.Facing, 1)
	g.wrap()
	g.Facing = g.chooseDirection(a)
}

// pace consumes the speed budget; a zero entry parks the ghost for the next update
func (g *Ghost) pace(a Arena) bool {
	if !g.move {
		g.move = true
		g.advanceCursor()
	}

	table := g.speedTable()
	if table[g.cursor] == 0 {
		g.move = false
		if !a.Frozen() {
			g.Tick++
		}
		return false
	}

	if !g.budget(table) {
		if !a.Frozen() {
			g.Tick++
		}
		return false
	}
	return true
}

func (g *Ghost) speedTable() *parameter.SpeedTable {
	r := g.rules
	switch g.visual {
	case VisualFrightened:
		return &r.GhostFrightened
	case VisualEaten:
		return &r.GhostEaten
	}
	if maze.IsTunnel(g.Tile) {
		return &r.GhostTunnel
	}
	if g.aggression[1] {
		return &r.GhostAggression2
	}
	if g.aggression[0] {
		return &r.GhostAggression1
	}
	return &r.GhostNormal
}
