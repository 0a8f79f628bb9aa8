package input

import "github.com/lixenwraith/mazechase/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // Esc, Ctrl+C
	IntentMute   // Ctrl+S
	IntentResize // Terminal resize event

	// Per-player intents
	IntentDirection // Steering key
	IntentConfirm   // Confirm button press or release
)

// MaxPlayers is the number of key maps a router serves
const MaxPlayers = 2

// Intent is a translated input event
type Intent struct {
	Type      IntentType
	Player    int // key map index, 0 for system intents
	Direction core.Direction
	Pressed   bool // IntentConfirm only
}
