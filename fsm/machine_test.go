package fsm

import (
	"errors"
	"testing"
)

type testCtx struct {
	confirm bool
	entered []string
	hooked  []string
	args    map[string]any
}

const testTable = `
initial: idle
states:
  idle:
    targets: {lamp: dark}
    on_enter:
      - action: record
    transitions:
      - target: armed
        guard: confirm
  armed:
    duration: 3
    targets: {lamp: blink}
    on_enter:
      - action: record
        args: {level: 2}
    transitions:
      - target: idle
`

func newTestMachine(t *testing.T) *Machine[*testCtx] {
	t.Helper()
	m := NewMachine[*testCtx]()
	m.RegisterGuard("confirm", func(ctx *testCtx) bool {
		if ctx.confirm {
			ctx.confirm = false
			return true
		}
		return false
	})
	m.RegisterAction("record", func(ctx *testCtx, args map[string]any) {
		ctx.entered = append(ctx.entered, "enter")
		if args != nil {
			ctx.args = args
		}
	})
	m.OnTransition(func(ctx *testCtx, from, to *Node[*testCtx]) {
		name := "<init>"
		if from != nil {
			name = from.Name
		}
		ctx.hooked = append(ctx.hooked, name+"->"+to.Name+":"+to.Targets["lamp"])
	})
	if err := m.LoadConfig([]byte(testTable)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if err := m.Validate("lamp"); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	return m
}

// TestGuardHoldsState verifies a guard-driven state waits for its guard
func TestGuardHoldsState(t *testing.T) {
	m := newTestMachine(t)
	ctx := &testCtx{}
	if err := m.Init(ctx); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if m.StateName() != "idle" {
		t.Fatalf("Expected idle after init, got %s", m.StateName())
	}
	if len(ctx.hooked) != 1 || ctx.hooked[0] != "<init>->idle:dark" {
		t.Errorf("Expected init hook with idle targets, got %v", ctx.hooked)
	}

	for i := 0; i < 10; i++ {
		m.Update(ctx)
	}
	if m.StateName() != "idle" {
		t.Errorf("Expected idle without confirm, got %s", m.StateName())
	}

	ctx.confirm = true
	m.Update(ctx)
	if m.StateName() != "armed" {
		t.Fatalf("Expected armed after confirm, got %s", m.StateName())
	}
	if ctx.confirm {
		t.Error("Expected guard to consume the confirm signal")
	}
	if ctx.args["level"] != 2 {
		t.Errorf("Expected action args level=2, got %v", ctx.args)
	}
}

// TestDurationOverridesGuard verifies the countdown runs before transitions are evaluated
func TestDurationOverridesGuard(t *testing.T) {
	m := newTestMachine(t)
	ctx := &testCtx{confirm: true}
	_ = m.Init(ctx)
	m.Update(ctx) // idle -> armed

	if m.Countdown() != 3 {
		t.Fatalf("Expected countdown 3 on entry, got %d", m.Countdown())
	}
	for i := 0; i < 3; i++ {
		m.Update(ctx)
		if m.StateName() != "armed" {
			t.Fatalf("Expected armed during countdown tick %d, got %s", i, m.StateName())
		}
	}
	m.Update(ctx)
	if m.StateName() != "idle" {
		t.Errorf("Expected idle once countdown elapsed, got %s", m.StateName())
	}

	want := []string{"<init>->idle:dark", "idle->armed:blink", "armed->idle:dark"}
	if len(ctx.hooked) != len(want) {
		t.Fatalf("Expected hooks %v, got %v", want, ctx.hooked)
	}
	for i := range want {
		if ctx.hooked[i] != want[i] {
			t.Errorf("Hook %d: expected %s, got %s", i, want[i], ctx.hooked[i])
		}
	}
}

func TestLoadConfigRejectsUnknownReferences(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want error
	}{
		{"no initial", "states: {a: {}}", ErrNoInitial},
		{"unknown initial", "initial: b\nstates: {a: {}}", ErrUnknownState},
		{"unknown target", "initial: a\nstates:\n  a:\n    transitions: [{target: z}]", ErrUnknownState},
		{"unknown guard", "initial: a\nstates:\n  a:\n    transitions: [{target: a, guard: nope}]", ErrUnknownGuard},
		{"unknown action", "initial: a\nstates:\n  a:\n    on_enter: [{action: nope}]", ErrUnknownAction},
	}

	for _, tc := range cases {
		m := NewMachine[*testCtx]()
		err := m.LoadConfig([]byte(tc.yaml))
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestValidateMissingTarget(t *testing.T) {
	m := NewMachine[*testCtx]()
	if err := m.LoadConfig([]byte("initial: a\nstates:\n  a:\n    targets: {lamp: lit}\n  b: {}")); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if err := m.Validate("lamp"); !errors.Is(err, ErrMissingTarget) {
		t.Errorf("Expected ErrMissingTarget, got %v", err)
	}
}

func TestProgrammaticBuild(t *testing.T) {
	m := NewMachine[*testCtx]()
	a := m.AddState(1, "a", 0)
	m.AddState(2, "b", 1)
	m.AddTransition(a.ID, Transition[*testCtx]{TargetID: 2})
	m.AddTransition(2, Transition[*testCtx]{TargetID: 1})
	m.InitialStateID = 1

	if err := m.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	ctx := &testCtx{}
	_ = m.Init(ctx)

	seen := []string{}
	for i := 0; i < 4; i++ {
		m.Update(ctx)
		seen = append(seen, m.StateName())
	}
	want := []string{"b", "b", "a", "b"}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("Tick %d: expected %s, got %s", i, want[i], seen[i])
		}
	}

	if id, ok := m.Lookup("b"); !ok || id != 2 {
		t.Errorf("Expected lookup b -> 2, got %d %v", id, ok)
	}
}

func TestUpdateBeforeInitIsNoop(t *testing.T) {
	m := newTestMachine(t)
	ctx := &testCtx{confirm: true}
	m.Update(ctx)
	if m.Current() != nil || len(ctx.entered) != 0 {
		t.Error("Expected no activity before Init")
	}
}

func TestEachNodeOrder(t *testing.T) {
	m := newTestMachine(t)

	var names []string
	if err := m.EachNode(func(n *Node[*testCtx]) error {
		names = append(names, n.Name)
		return nil
	}); err != nil {
		t.Fatalf("EachNode failed: %v", err)
	}
	if len(names) != 2 || names[0] != "armed" || names[1] != "idle" {
		t.Errorf("Expected [armed idle], got %v", names)
	}

	stop := errors.New("stop")
	visited := 0
	err := m.EachNode(func(n *Node[*testCtx]) error {
		visited++
		return stop
	})
	if !errors.Is(err, stop) || visited != 1 {
		t.Errorf("Expected early stop after 1 node, got %d visits and %v", visited, err)
	}
}
