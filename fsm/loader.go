package fsm

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// LoadConfig parses a YAML byte slice and populates the Machine
// Validates all references (states, guards, actions)
// Clears existing graph data before loading
func (m *Machine[T]) LoadConfig(data []byte) error {
	// 1. Decode YAML into intermediate config
	var config RootConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to unmarshal FSM config: %w", err)
	}
	if config.InitialState == "" {
		return ErrNoInitial
	}

	// 2. Clear existing graph
	m.nodes = make(map[StateID]*Node[T])
	m.names = make(map[string]StateID)
	m.activeStateID = StateNone
	m.countdown = 0

	// 3. First Pass: sort keys for deterministic ID generation
	stateNames := make([]string, 0, len(config.States))
	for name := range config.States {
		stateNames = append(stateNames, name)
	}
	sort.Strings(stateNames)

	for i, name := range stateNames {
		cfg := config.States[name]
		if cfg == nil {
			cfg = &StateConfig{}
			config.States[name] = cfg
		}
		node := m.AddState(StateID(i+1), name, cfg.Duration)
		for k, v := range cfg.Targets {
			node.Targets[k] = v
		}
	}

	initialID, ok := m.names[config.InitialState]
	if !ok {
		return fmt.Errorf("initial '%s': %w", config.InitialState, ErrUnknownState)
	}
	m.InitialStateID = initialID

	// 4. Second Pass: resolve actions and transitions
	for _, name := range stateNames {
		cfg := config.States[name]
		node := m.nodes[m.names[name]]

		for _, ac := range cfg.OnEnter {
			fn, ok := m.actionReg[ac.Action]
			if !ok {
				return fmt.Errorf("state '%s' action '%s': %w", name, ac.Action, ErrUnknownAction)
			}
			node.OnEnter = append(node.OnEnter, Action[T]{Func: fn, Args: ac.Args})
		}

		for _, tc := range cfg.Transitions {
			targetID, ok := m.names[tc.Target]
			if !ok {
				return fmt.Errorf("state '%s' transition to '%s': %w", name, tc.Target, ErrUnknownState)
			}
			trans := Transition[T]{TargetID: targetID}
			if tc.Guard != "" {
				guard, ok := m.guardReg[tc.Guard]
				if !ok {
					return fmt.Errorf("state '%s' guard '%s': %w", name, tc.Guard, ErrUnknownGuard)
				}
				trans.Guard = guard
			}
			node.Transitions = append(node.Transitions, trans)
		}
	}

	return nil
}
