package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mazechase/core"
)

// KeyEntry describes what a key does for one player
type KeyEntry struct {
	IntentType IntentType
	Player     int
	Direction  core.Direction
}

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable keys
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default bindings: arrows and Enter for player one, WASD and Space for player two
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEscape: {IntentType: IntentQuit},
			tcell.KeyCtrlC:  {IntentType: IntentQuit},
			tcell.KeyCtrlS:  {IntentType: IntentMute},

			tcell.KeyUp:    {IntentDirection, 0, core.DirUp},
			tcell.KeyDown:  {IntentDirection, 0, core.DirDown},
			tcell.KeyLeft:  {IntentDirection, 0, core.DirLeft},
			tcell.KeyRight: {IntentDirection, 0, core.DirRight},
			tcell.KeyEnter: {IntentConfirm, 0, core.DirNone},
		},
		Runes: map[rune]KeyEntry{
			'w': {IntentDirection, 1, core.DirUp},
			's': {IntentDirection, 1, core.DirDown},
			'a': {IntentDirection, 1, core.DirLeft},
			'd': {IntentDirection, 1, core.DirRight},
			' ': {IntentConfirm, 1, core.DirNone},
		},
	}
}

// Merge copies override bindings over the table; player bindings replace that player's old keys
func (kt *KeyTable) Merge(override *KeyTable) {
	if override == nil {
		return
	}

	replaced := map[int]bool{}
	for _, e := range override.SpecialKeys {
		replaced[e.Player] = true
	}
	for _, e := range override.Runes {
		replaced[e.Player] = true
	}
	for k, e := range kt.SpecialKeys {
		if e.IntentType >= IntentDirection && replaced[e.Player] {
			delete(kt.SpecialKeys, k)
		}
	}
	for r, e := range kt.Runes {
		if e.IntentType >= IntentDirection && replaced[e.Player] {
			delete(kt.Runes, r)
		}
	}

	for k, e := range override.SpecialKeys {
		kt.SpecialKeys[k] = e
	}
	for r, e := range override.Runes {
		kt.Runes[r] = e
	}
}
