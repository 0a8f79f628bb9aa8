package autopilot

import (
	"errors"
	"testing"

	"github.com/lixenwraith/mazechase/core"
)

// run advances until the script deactivates or the tick budget is spent
func run(a *Autopilot, interrupt bool, budget int) int {
	ticks := 0
	for a.Active() && ticks < budget {
		a.Advance(interrupt, false)
		ticks++
	}
	return ticks
}

// TestDisplacementEqualsSegmentSum checks full execution lands on the vector sum of all segments
func TestDisplacementEqualsSegmentSum(t *testing.T) {
	literals := []string{
		"down 55 | up 55+",
		"down 55 | left 32 | right 32+ | up 55",
		"up 47",
		"right 3, up 2 | left 0 | down 7",
	}

	for _, lit := range literals {
		script := MustParse(lit)
		a := New(script)

		ticks := run(a, false, 10000)
		if a.Active() {
			t.Fatalf("%q: still active after %d ticks", lit, ticks)
		}
		if got, want := a.Displacement(), script.Sum(); got != want {
			t.Errorf("%q: expected displacement %v, got %v", lit, want, got)
		}
	}
}

// TestSegmentTiming verifies a segment with stop n takes n+1 ticks
func TestSegmentTiming(t *testing.T) {
	a := New(MustParse("up 4"))

	for i := 0; i < 4; i++ {
		a.Advance(false, false)
		if !a.Active() {
			t.Fatalf("Expected active after %d ticks", i+1)
		}
	}
	if got := a.Displacement(); got != (core.Point{X: 0, Y: 3}) {
		t.Errorf("Expected running displacement (0,3), got %v", got)
	}

	a.Advance(false, false)
	if a.Active() {
		t.Error("Expected inactive after stop+1 ticks")
	}
	if got := a.Displacement(); got != (core.Point{X: 0, Y: 4}) {
		t.Errorf("Expected final displacement (0,4), got %v", got)
	}
}

// TestInterruptableGroupLoops verifies an interruptable group repeats until released
func TestInterruptableGroupLoops(t *testing.T) {
	a := New(MustParse("up 8~, down 16~, up 8~ | right 32 | up 47"))

	// Two full cycles of the bobbing group (9 + 17 + 9 ticks each)
	for i := 0; i < 70; i++ {
		a.Advance(false, false)
	}
	if a.Group() != 0 {
		t.Fatalf("Expected to stay in group 0 without interrupt, got %d", a.Group())
	}
	if got := a.Displacement(); got != (core.Point{}) {
		t.Errorf("Expected bobbing to return to origin after whole cycles, got %v", got)
	}

	a.Advance(true, false)
	if a.Group() != 1 {
		t.Fatalf("Expected group 1 after interrupt, got %d", a.Group())
	}
	if a.Facing() != core.DirRight {
		t.Errorf("Expected facing right in group 1, got %v", a.Facing())
	}

	// Non-interruptable groups ignore further interrupts
	a.Advance(true, false)
	if a.Group() != 1 {
		t.Errorf("Expected interrupt ignored in non-interruptable group, got group %d", a.Group())
	}
}

// TestInterruptAdvancesOneGroupPerSignal verifies no group is skipped under a held interrupt
func TestInterruptAdvancesOneGroupPerSignal(t *testing.T) {
	a := New(MustParse("up 8~ | left 4~ | right 4~ | down 2"))

	for want := 1; want <= 3; want++ {
		a.Advance(true, false)
		if a.Group() != want {
			t.Fatalf("Expected group %d after %d interrupts, got %d", want, want, a.Group())
		}
	}

	a.Advance(true, false)
	if a.Group() != 3 {
		t.Errorf("Expected last group to ignore interrupt, got %d", a.Group())
	}
}

// TestInterruptOnLastGroupDeactivates checks release from the final group ends the script
func TestInterruptOnLastGroupDeactivates(t *testing.T) {
	a := New(MustParse("up 8~"))
	a.Advance(false, false)
	a.Advance(false, false)
	a.Advance(true, false)

	if a.Active() {
		t.Fatal("Expected inactive after interrupting the last group")
	}
	if got := a.Displacement(); got != (core.Point{X: 0, Y: 1}) {
		t.Errorf("Expected committed displacement (0,1), got %v", got)
	}

	// Inactive interpreters never resume
	a.Advance(false, false)
	if a.Active() || a.Displacement() != (core.Point{X: 0, Y: 1}) {
		t.Error("Expected inactive interpreter to be a no-op")
	}
}

// TestRevealFiresOnce verifies the reveal signal is reported exactly once
func TestRevealFiresOnce(t *testing.T) {
	a := New(MustParse("down 2 | up 2+"))

	reveals := 0
	for a.Active() {
		if a.Advance(false, false) {
			reveals++
		}
	}
	if reveals != 1 {
		t.Errorf("Expected exactly one reveal, got %d", reveals)
	}
}

// TestWaitHoldsMotionButReveals verifies wait freezes displacement while a pending reveal still fires
func TestWaitHoldsMotionButReveals(t *testing.T) {
	a := New(MustParse("down 0 | up 3+"))

	a.Advance(false, false) // finishes group 0, reveal segment becomes current
	before := a.Displacement()

	if !a.Advance(false, true) {
		t.Error("Expected pending reveal to fire during wait")
	}
	if a.Displacement() != before {
		t.Errorf("Expected wait to hold displacement %v, got %v", before, a.Displacement())
	}
	if a.Advance(false, true) {
		t.Error("Expected reveal not to fire twice")
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"",
		"up",
		"sideways 4",
		"up four",
		"up 4 |",
		"up 4,, down 2",
		"up -3",
	}
	for _, lit := range cases {
		if _, err := Parse(lit); err == nil {
			t.Errorf("Expected error for %q", lit)
		}
	}

	if _, err := Parse("  "); !errors.Is(err, ErrEmptyScript) {
		t.Errorf("Expected ErrEmptyScript, got %v", err)
	}
	if _, err := Parse("up 4 | "); !errors.Is(err, ErrEmptyGroup) {
		t.Errorf("Expected ErrEmptyGroup, got %v", err)
	}
}

func TestParseFlags(t *testing.T) {
	s := MustParse("up 8~, left 32+, right 4~+")
	if len(s) != 1 || len(s[0]) != 3 {
		t.Fatalf("Expected one group of three segments, got %v", s)
	}
	if !s[0][0].Interruptable || s[0][0].Reveal {
		t.Errorf("Expected interruptable only, got %+v", s[0][0])
	}
	if s[0][1].Interruptable || !s[0][1].Reveal || s[0][1].Stop != 32 {
		t.Errorf("Expected reveal with stop 32, got %+v", s[0][1])
	}
	if !s[0][2].Interruptable || !s[0][2].Reveal {
		t.Errorf("Expected both flags, got %+v", s[0][2])
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected MustParse to panic on malformed literal")
		}
	}()
	MustParse("up x")
}
