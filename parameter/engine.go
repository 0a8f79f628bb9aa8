package parameter

import "time"

// Game Loop Timing
const (
	// TickInterval is the simulation step; one Game.Update per interval (60 Hz)
	TickInterval = time.Second / 60
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255

	// MailboxSize is the capacity of a versus mailbox; only two message kinds exist
	MailboxSize = 16

	// MailboxMask is the bitmask for the versus mailbox
	MailboxMask = 15
)
