package fsm

import "errors"

// StateID is a unique identifier for a node
type StateID int

const StateNone StateID = 0

// Sentinel errors returned by LoadConfig and Init
var (
	ErrNoInitial     = errors.New("no initial state")
	ErrUnknownState  = errors.New("unknown state")
	ErrUnknownGuard  = errors.New("unknown guard")
	ErrUnknownAction = errors.New("unknown action")
	ErrMissingTarget = errors.New("missing sub-mode target")
)

// Machine is a flat table-driven mode sequencer
// T is the context type passed to actions and guards (e.g., *sim.Game)
//
// Per Update: a running countdown is decremented; otherwise transitions are
// evaluated in order and the first whose guard holds is taken
type Machine[T any] struct {
	// Graph Data (Immutable after load)
	nodes map[StateID]*Node[T]
	names map[string]StateID

	// Configuration
	InitialStateID StateID // Stored during load for reset/init

	// Runtime State
	activeStateID StateID
	countdown     int // ticks left before guards are evaluated

	// Dependency Injection
	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]
	hooks     []TransitionHook[T]
}

// Node is one mode of the table
type Node[T any] struct {
	ID   StateID
	Name string

	// Targets maps a subsystem name to the sub-mode it enters with this node
	Targets map[string]string

	// Duration holds guard evaluation off for this many ticks after entry; 0 = guard-driven
	Duration int

	// Lifecycle Actions
	OnEnter []Action[T]

	// Transitions sorted by evaluation priority
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Guard    GuardFunc[T] // nil = Always true
}

// Action represents a side-effect
type Action[T any] struct {
	Func ActionFunc[T]
	Args map[string]any
}

// GuardFunc returns true if the transition should occur
// Guards may consume one-shot signals they test
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T, args map[string]any)

// TransitionHook observes every entered node after its OnEnter actions
// from is nil on Init
type TransitionHook[T any] func(ctx T, from, to *Node[T])
