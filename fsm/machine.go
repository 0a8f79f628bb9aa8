package fsm

import (
	"fmt"
	"sort"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:     make(map[StateID]*Node[T]),
		names:     make(map[string]StateID),
		guardReg:  make(map[string]GuardFunc[T]),
		actionReg: make(map[string]ActionFunc[T]),
	}
}

// RegisterGuard adds a predicate function to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a side-effect function to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// OnTransition registers a hook run on every node entry, in registration order
func (m *Machine[T]) OnTransition(hook TransitionHook[T]) {
	m.hooks = append(m.hooks, hook)
}

// Init enters the initial state, running its actions and hooks
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.InitialStateID]
	if !ok {
		return ErrNoInitial
	}
	m.activeStateID = StateNone
	m.enter(ctx, nil, node)
	return nil
}

// Update advances the machine by one tick
func (m *Machine[T]) Update(ctx T) {
	if m.activeStateID == StateNone {
		return
	}

	if m.countdown > 0 {
		m.countdown--
		return
	}

	node := m.nodes[m.activeStateID]
	for _, trans := range node.Transitions {
		if trans.Guard == nil || trans.Guard(ctx) {
			m.transition(ctx, node, trans.TargetID)
			return
		}
	}
}

// transition performs the state change
func (m *Machine[T]) transition(ctx T, from *Node[T], targetID StateID) {
	target, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: Attempted transition to unknown state ID %d from '%s'", targetID, from.Name))
	}
	m.enter(ctx, from, target)
}

// enter makes node active: OnEnter actions, hooks, then countdown reload
func (m *Machine[T]) enter(ctx T, from, node *Node[T]) {
	m.activeStateID = node.ID

	for _, action := range node.OnEnter {
		action.Func(ctx, action.Args)
	}
	for _, hook := range m.hooks {
		hook(ctx, from, node)
	}

	m.countdown = node.Duration
}

// Current returns the active node, nil before Init
func (m *Machine[T]) Current() *Node[T] {
	return m.nodes[m.activeStateID]
}

// StateName returns the active state name
func (m *Machine[T]) StateName() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// Countdown returns ticks left before guards are evaluated again
func (m *Machine[T]) Countdown() int {
	return m.countdown
}

// Lookup resolves a state name to its ID
func (m *Machine[T]) Lookup(name string) (StateID, bool) {
	id, ok := m.names[name]
	return id, ok
}

// EachNode visits every node in ID order, stopping at the first error
func (m *Machine[T]) EachNode(fn func(*Node[T]) error) error {
	ids := make([]StateID, 0, len(m.nodes))
	for id := range m.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		if err := fn(m.nodes[id]); err != nil {
			return err
		}
	}
	return nil
}
