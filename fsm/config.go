package fsm

// RootConfig represents the top-level config structure
type RootConfig struct {
	InitialState string                  `yaml:"initial"`
	States       map[string]*StateConfig `yaml:"states"`
}

// StateConfig represents a single state definition
type StateConfig struct {
	Duration    int                `yaml:"duration,omitempty"`
	Targets     map[string]string  `yaml:"targets,omitempty"`
	OnEnter     []ActionConfig     `yaml:"on_enter,omitempty"`
	Transitions []TransitionConfig `yaml:"transitions,omitempty"`
}

// TransitionConfig represents a transition definition
type TransitionConfig struct {
	Target string `yaml:"target"`          // Target state name
	Guard  string `yaml:"guard,omitempty"` // Guard function name
}

// ActionConfig represents an action definition
type ActionConfig struct {
	Action string         `yaml:"action"`         // Action function name
	Args   map[string]any `yaml:"args,omitempty"` // Passed verbatim to the action
}
