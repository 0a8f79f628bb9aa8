package actor

// SubMode is the per-entity mode pushed by the master mode table
type SubMode uint8

const (
	SubReset SubMode = iota
	SubHide
	SubShow
	SubPlay
	SubFixed
	SubDie
	SubFrozen
	SubDone
)

var subModeNames = [...]string{
	SubReset:  "reset",
	SubHide:   "hide",
	SubShow:   "show",
	SubPlay:   "play",
	SubFixed:  "fixed",
	SubDie:    "die",
	SubFrozen: "frozen",
	SubDone:   "done",
}

func (m SubMode) String() string {
	if int(m) >= len(subModeNames) {
		return "invalid"
	}
	return subModeNames[m]
}

// ParseSubMode resolves a mode table target name
func ParseSubMode(name string) (SubMode, bool) {
	for m, n := range subModeNames {
		if n == name {
			return SubMode(m), true
		}
	}
	return SubReset, false
}
