package autopilot

import "github.com/lixenwraith/mazechase/core"

// Autopilot executes a Script one offset quantum per tick
// Once inactive it never resumes; a new Autopilot replaces it
type Autopilot struct {
	script Script

	group  int // current group index
	index  int // current segment index within the group
	offset int // running offset along the current segment

	committed core.Point // displacement of finished segments
	current   core.Point // displacement of the running segment

	facing        core.Direction
	pendingReveal bool
	active        bool
}

// New creates an active interpreter positioned at the first segment
// Panics on an empty script; scripts are validated at startup
func New(script Script) *Autopilot {
	if len(script) == 0 {
		panic(ErrEmptyScript)
	}
	for _, group := range script {
		if len(group) == 0 {
			panic(ErrEmptyGroup)
		}
	}

	a := &Autopilot{
		script: script,
		active: true,
	}
	a.assign()
	return a
}

// assign latches the reveal flag of the segment that just became current
func (a *Autopilot) assign() {
	seg := a.segment()
	a.facing = seg.Direction
	if seg.Reveal {
		a.pendingReveal = true
	}
}

func (a *Autopilot) segment() Segment {
	return a.script[a.group][a.index]
}

// Advance runs one tick of the script
// interrupt releases an interruptable group; wait holds the motion for this tick
// Returns true exactly once per reveal segment, on the first advance after it became current
func (a *Autopilot) Advance(interrupt, wait bool) (reveal bool) {
	if !a.active {
		return false
	}

	seg := a.segment()
	a.facing = seg.Direction

	if a.pendingReveal {
		a.pendingReveal = false
		reveal = true
	}
	if wait {
		return reveal
	}

	if seg.Interruptable && interrupt {
		a.committed = a.committed.Add(a.current)
		a.current = core.Point{}

		a.group++
		if a.group >= len(a.script) {
			a.active = false
			return reveal
		}
		a.index = 0
		a.offset = 0
		a.assign()
		seg = a.segment()
	}

	a.current = seg.Direction.Vector().Scale(a.offset)

	if a.offset < seg.Stop {
		a.offset++
		return reveal
	}

	// Segment complete
	a.committed = a.committed.Add(a.current)
	a.current = core.Point{}
	a.offset = 0

	a.index++
	if a.index >= len(a.script[a.group]) {
		a.index = 0
		// Interruptable groups loop in place until released
		if !seg.Interruptable {
			a.group++
			if a.group >= len(a.script) {
				a.active = false
				return reveal
			}
		}
	}
	a.assign()
	return reveal
}

// Displacement returns the total offset from the starting point
func (a *Autopilot) Displacement() core.Point {
	return a.committed.Add(a.current)
}

// Facing is the direction of the segment being executed
func (a *Autopilot) Facing() core.Direction {
	return a.facing
}

// Active reports whether the script still has motion left
func (a *Autopilot) Active() bool {
	return a.active
}

// Group returns the current group index
func (a *Autopilot) Group() int {
	return a.group
}
