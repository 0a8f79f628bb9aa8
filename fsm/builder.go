package fsm

import "fmt"

// AddState adds a node to the machine manually
// Useful for constructing the graph programmatically or during YAML load
func (m *Machine[T]) AddState(id StateID, name string, duration int) *Node[T] {
	node := &Node[T]{
		ID:          id,
		Name:        name,
		Duration:    duration,
		Targets:     make(map[string]string),
		OnEnter:     make([]Action[T], 0),
		Transitions: make([]Transition[T], 0),
	}
	m.nodes[id] = node
	m.names[name] = id
	return node
}

// AddTransition adds a transition to a specific node
func (m *Machine[T]) AddTransition(sourceID StateID, t Transition[T]) {
	if node, ok := m.nodes[sourceID]; ok {
		node.Transitions = append(node.Transitions, t)
	}
}

// Validate checks every transition target exists and every node names each required target
func (m *Machine[T]) Validate(requiredTargets ...string) error {
	if _, ok := m.nodes[m.InitialStateID]; !ok {
		return ErrNoInitial
	}
	for _, node := range m.nodes {
		for _, trans := range node.Transitions {
			if _, ok := m.nodes[trans.TargetID]; !ok {
				return fmt.Errorf("state '%s' transition to id %d: %w", node.Name, trans.TargetID, ErrUnknownState)
			}
		}
		for _, key := range requiredTargets {
			if _, ok := node.Targets[key]; !ok {
				return fmt.Errorf("state '%s' target '%s': %w", node.Name, key, ErrMissingTarget)
			}
		}
	}
	return nil
}
