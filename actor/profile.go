package actor

import (
	"github.com/lixenwraith/mazechase/autopilot"
	"github.com/lixenwraith/mazechase/core"
	"github.com/lixenwraith/mazechase/parameter"
)

// Identity selects a ghost's targeting rule
type Identity uint8

const (
	Shadow  Identity = iota // targets the player tile
	Speedy                  // targets four tiles ahead of the player
	Bashful                 // reflects Shadow through the point two tiles ahead of the player
	Pokey                   // targets the player when near, its corner when far
)

var identityNames = [...]string{
	Shadow:  "shadow",
	Speedy:  "speedy",
	Bashful: "bashful",
	Pokey:   "pokey",
}

func (id Identity) String() string {
	if int(id) >= len(identityNames) {
		return "invalid"
	}
	return identityNames[id]
}

// NoAggression disables an aggression threshold
const NoAggression = -1

// LeaveRule releases a ghost from its pen bobbing once both thresholds are exceeded
type LeaveRule struct {
	PelletsEaten int
	OwnTicks     int
}

// Profile is the fixed per-identity setup of a ghost
type Profile struct {
	Identity Identity

	Start        core.Tile
	StartOffset  int
	StartFacing  core.Direction
	StartControl Control
	StartCursor  int

	// Corner is the scatter target
	Corner core.Tile

	Leave   autopilot.Script // nil when the ghost starts outside the pen
	Respawn autopilot.Script
	Release *LeaveRule // nil when the leave script needs no release

	// Aggression holds remaining-pellet thresholds for the two aggression levels
	Aggression [2]int
}

// Script literals; offsets are in sub-tile units
const (
	scriptUpAndOut      = "up 47"
	scriptBobRightOut   = "up 8~, down 16~, up 8~ | right 32 | up 47"
	scriptBobLeftOut    = "up 8~, down 16~, up 8~ | left 32 | up 47"
	scriptRespawnCenter = "down 55 | up 55+"
	scriptRespawnLeft   = "down 55 | left 32 | right 32+ | up 55"
	scriptRespawnRight  = "down 55 | right 32 | left 32+ | up 55"
)

// Profiles returns the four ghost profiles in update order
// Shadow must stay first; it is the lead for Bashful
func Profiles() []Profile {
	return []Profile{
		{
			Identity:     Shadow,
			Start:        parameter.HomeExit,
			StartOffset:  parameter.TileSize / 2,
			StartFacing:  core.DirLeft,
			StartControl: ControlChase,
			StartCursor:  0,
			Corner:       core.Tile{X: 25, Y: 36},
			Respawn:      autopilot.MustParse(scriptRespawnCenter),
			Aggression:   [2]int{50, 30},
		},
		{
			Identity:     Speedy,
			Start:        parameter.HomeSeat,
			StartOffset:  0,
			StartFacing:  core.DirDown,
			StartControl: ControlLeaving,
			StartCursor:  4,
			Corner:       core.Tile{X: 2, Y: 36},
			Leave:        autopilot.MustParse(scriptUpAndOut),
			Respawn:      autopilot.MustParse(scriptRespawnCenter),
			Aggression:   [2]int{30, NoAggression},
		},
		{
			Identity:     Bashful,
			Start:        core.Tile{X: 11, Y: parameter.TunnelY},
			StartOffset:  0,
			StartFacing:  core.DirUp,
			StartControl: ControlLeaving,
			StartCursor:  8,
			Corner:       core.Tile{X: 27, Y: 1},
			Leave:        autopilot.MustParse(scriptBobRightOut),
			Respawn:      autopilot.MustParse(scriptRespawnLeft),
			Release:      &LeaveRule{PelletsEaten: 30, OwnTicks: 3 * 60},
			Aggression:   [2]int{NoAggression, NoAggression},
		},
		{
			Identity:     Pokey,
			Start:        core.Tile{X: 15, Y: parameter.TunnelY},
			StartOffset:  0,
			StartFacing:  core.DirUp,
			StartControl: ControlLeaving,
			StartCursor:  12,
			Corner:       core.Tile{X: 0, Y: 1},
			Leave:        autopilot.MustParse(scriptBobLeftOut),
			Respawn:      autopilot.MustParse(scriptRespawnRight),
			Release:      &LeaveRule{PelletsEaten: 60, OwnTicks: 5 * 60},
			Aggression:   [2]int{NoAggression, NoAggression},
		},
	}
}
