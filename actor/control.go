package actor

// Control is the steering system a ghost runs
type Control uint8

const (
	ControlNone Control = iota
	ControlChase
	ControlScatter
	ControlRandom
	ControlHeadingHome
	ControlLeaving // scripted exit from the pen
	ControlRespawn // scripted return into the pen and back out
)

var controlNames = [...]string{
	ControlNone:        "none",
	ControlChase:       "chase",
	ControlScatter:     "scatter",
	ControlRandom:      "random",
	ControlHeadingHome: "heading-home",
	ControlLeaving:     "leaving",
	ControlRespawn:     "respawn",
}

func (c Control) String() string {
	if int(c) >= len(controlNames) {
		return "invalid"
	}
	return controlNames[c]
}

// Scripted reports whether the autopilot owns the ghost
func (c Control) Scripted() bool {
	return c == ControlLeaving || c == ControlRespawn
}

// Visual is how a ghost is drawn and how a collision with it resolves
type Visual uint8

const (
	VisualNone Visual = iota
	VisualAlive
	VisualFrightened
	VisualEaten
)

var visualNames = [...]string{
	VisualNone:       "none",
	VisualAlive:      "alive",
	VisualFrightened: "frightened",
	VisualEaten:      "eaten",
}

func (v Visual) String() string {
	if int(v) >= len(visualNames) {
		return "invalid"
	}
	return visualNames[v]
}
