package input

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mazechase/core"
)

func TestDefaultBindings(t *testing.T) {
	r := NewRouter(nil)

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Intent
	}{
		{"p1 up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), Intent{IntentDirection, 0, core.DirUp, false}},
		{"p1 left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), Intent{IntentDirection, 0, core.DirLeft, false}},
		{"p1 confirm", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), Intent{IntentConfirm, 0, core.DirNone, true}},
		{"p2 down", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), Intent{IntentDirection, 1, core.DirDown, false}},
		{"p2 right", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), Intent{IntentDirection, 1, core.DirRight, false}},
		{"p2 confirm", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), Intent{IntentConfirm, 1, core.DirNone, true}},
		{"quit", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Intent{Type: IntentQuit}},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), Intent{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Translate(tt.ev)
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestConfirmReleasedNextTick(t *testing.T) {
	r := NewRouter(nil)

	if got := r.Release(); len(got) != 0 {
		t.Fatalf("Expected no releases before any press, got %v", got)
	}

	r.Translate(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	got := r.Release()
	if len(got) != 1 {
		t.Fatalf("Expected 1 release, got %d", len(got))
	}
	if got[0].Player != 1 || got[0].Pressed || got[0].Type != IntentConfirm {
		t.Errorf("Expected player 2 confirm release, got %+v", got[0])
	}

	if got := r.Release(); len(got) != 0 {
		t.Errorf("Expected release to be one-shot, got %v", got)
	}
}

func TestResize(t *testing.T) {
	r := NewRouter(nil)
	if got := r.Translate(tcell.NewEventResize(80, 24)); got.Type != IntentResize {
		t.Errorf("Expected IntentResize, got %v", got.Type)
	}
}

func TestLoadKeyConfig(t *testing.T) {
	data := []byte(`
players:
  - {up: k, down: j, left: h, right: l, confirm: space}
  - {up: Up, confirm: Enter}
`)
	override, err := LoadKeyConfig(data)
	if err != nil {
		t.Fatalf("LoadKeyConfig failed: %v", err)
	}

	if e := override.Runes['k']; e.Player != 0 || e.Direction != core.DirUp {
		t.Errorf("Expected k bound to player 1 up, got %+v", e)
	}
	if e := override.Runes[' ']; e.IntentType != IntentConfirm || e.Player != 0 {
		t.Errorf("Expected space bound to player 1 confirm, got %+v", e)
	}
	if e := override.SpecialKeys[tcell.KeyUp]; e.Player != 1 || e.Direction != core.DirUp {
		t.Errorf("Expected Up bound to player 2 up, got %+v", e)
	}

	kt := DefaultKeyTable()
	kt.Merge(override)
	if _, ok := kt.Runes['w']; ok {
		t.Error("Expected old player 2 bindings to be replaced")
	}
	if _, ok := kt.SpecialKeys[tcell.KeyLeft]; ok {
		t.Error("Expected old player 1 bindings to be replaced")
	}
	if e := kt.SpecialKeys[tcell.KeyEscape]; e.IntentType != IntentQuit {
		t.Error("Expected system bindings to survive a merge")
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	if _, err := LoadKeyConfig([]byte("players:\n  - {up: NoSuchKey}\n")); err == nil {
		t.Error("Expected error for unknown key name")
	}
	if _, err := LoadKeyConfig([]byte("players: [{}, {}, {}]\n")); err == nil {
		t.Error("Expected error for too many players")
	}
	_, err := LoadKeyConfig([]byte("players: {\n"))
	if err == nil || errors.Unwrap(err) == nil {
		t.Errorf("Expected wrapped parse error, got %v", err)
	}
}
