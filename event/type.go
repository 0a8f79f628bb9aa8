package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is the zero value and never pushed
	EventNone EventType = iota

	// === Consumption Event ===

	// EventDotEaten signals a regular pellet was consumed
	// Trigger: Player crossing into a tile with a dot
	// Consumer: Audio | Payload: *PelletPayload
	EventDotEaten

	// EventEnergizerEaten signals a power pellet was consumed and frightened mode began
	// Trigger: Player crossing into a tile with an energizer
	// Consumer: Audio | Payload: *PelletPayload
	EventEnergizerEaten

	// EventFrightenedEnd signals the frightened timer ran out
	// Trigger: Collision phase when the timer reaches zero
	// Consumer: Audio | Payload: nil
	EventFrightenedEnd

	// === Collision Event ===

	// EventGhostEaten signals a frightened ghost was caught
	// Trigger: Collision resolver
	// Consumer: Audio | Payload: *GhostPayload
	EventGhostEaten

	// EventPlayerHit signals the player touched an alive ghost
	// Trigger: Collision resolver
	// Consumer: Audio | Payload: *GhostPayload
	EventPlayerHit

	// === Mode Event ===

	// EventModeChanged signals a master mode transition
	// Trigger: Mode machine transition hook
	// Consumer: Audio, main loop | Payload: *ModePayload
	EventModeChanged

	// EventNewRecord signals a new best completion time was stored
	// Trigger: Entering the record mode
	// Consumer: main loop | Payload: *RecordPayload
	EventNewRecord

	// === Versus Message ===

	// EventPairRequest asks the peer to commit to a versus session
	// Trigger: Confirm pressed while the peer waits for an opponent
	// Consumer: Peer game mailbox | Payload: nil
	EventPairRequest

	// EventEndSession forces the peer's session to end
	// Trigger: Entering a win mode in a paired session
	// Consumer: Peer game mailbox | Payload: nil
	EventEndSession

	// EventPeerWaiting announces the sender is waiting for an opponent
	// Trigger: Entering wait_or_play in a paired game
	// Consumer: Peer game mailbox | Payload: nil
	EventPeerWaiting

	// EventPeerIdle announces the sender stopped waiting for an opponent
	// Trigger: Leaving wait_or_play in a paired game
	// Consumer: Peer game mailbox | Payload: nil
	EventPeerIdle
)

var typeNames = map[EventType]string{
	EventNone:           "None",
	EventDotEaten:       "DotEaten",
	EventEnergizerEaten: "EnergizerEaten",
	EventFrightenedEnd:  "FrightenedEnd",
	EventGhostEaten:     "GhostEaten",
	EventPlayerHit:      "PlayerHit",
	EventModeChanged:    "ModeChanged",
	EventNewRecord:      "NewRecord",
	EventPairRequest:    "PairRequest",
	EventEndSession:     "EndSession",
	EventPeerWaiting:    "PeerWaiting",
	EventPeerIdle:       "PeerIdle",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is a single occurrence recorded during a tick
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    int // game tick at which the event was pushed
}
