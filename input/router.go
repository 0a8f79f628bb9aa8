package input

import "github.com/gdamore/tcell/v2"

// Router translates terminal events into intents
// Terminals report presses only, so a confirm press is released on the following tick
type Router struct {
	table *KeyTable
	held  [MaxPlayers]bool
}

// NewRouter creates a router over table, the default bindings when nil
func NewRouter(table *KeyTable) *Router {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Router{table: table}
}

// Translate maps one terminal event to an intent, IntentNone when unbound
func (r *Router) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Intent{Type: IntentResize}

	case *tcell.EventKey:
		var entry KeyEntry
		var ok bool
		if ev.Key() == tcell.KeyRune {
			entry, ok = r.table.Runes[ev.Rune()]
		} else {
			entry, ok = r.table.SpecialKeys[ev.Key()]
		}
		if !ok {
			return Intent{}
		}

		in := Intent{Type: entry.IntentType, Player: entry.Player, Direction: entry.Direction}
		if in.Type == IntentConfirm {
			if in.Player < 0 || in.Player >= MaxPlayers {
				return Intent{}
			}
			in.Pressed = true
			r.held[in.Player] = true
		}
		return in
	}
	return Intent{}
}

// Release returns a release intent for every confirm pressed since the last call
func (r *Router) Release() []Intent {
	var out []Intent
	for p, held := range r.held {
		if held {
			out = append(out, Intent{Type: IntentConfirm, Player: p, Pressed: false})
			r.held[p] = false
		}
	}
	return out
}
