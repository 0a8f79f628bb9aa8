package event

import "github.com/lixenwraith/mazechase/parameter"

// Queue is a fixed-capacity ring buffer of game events
// Thread-Safety: none; producer and consumer are the owning game's tick
//
// Overflow: Oldest events overwritten when full
type Queue struct {
	events []GameEvent
	mask   uint64
	head   uint64 // Read index
	tail   uint64 // Write index
}

// NewQueue creates an outbound event queue of parameter.EventQueueSize
func NewQueue() *Queue {
	return newQueue(parameter.EventQueueSize, parameter.EventBufferMask)
}

// NewMailbox creates the small queue used between paired games
func NewMailbox() *Queue {
	return newQueue(parameter.MailboxSize, parameter.MailboxMask)
}

func newQueue(size, mask int) *Queue {
	if size&mask != 0 || size != mask+1 {
		panic("event: queue size must be a power of two matching its mask")
	}
	return &Queue{
		events: make([]GameEvent, size),
		mask:   uint64(mask),
	}
}

// Push adds event at the tail. O(1)
func (q *Queue) Push(ev GameEvent) {
	q.events[q.tail&q.mask] = ev
	q.tail++

	// Advance head if overwriting unread events
	if q.tail-q.head > uint64(len(q.events)) {
		q.head = q.tail - uint64(len(q.events))
	}
}

// Emit is a convenience wrapper around Push
func (q *Queue) Emit(t EventType, payload any, tick int) {
	q.Push(GameEvent{Type: t, Payload: payload, Tick: tick})
}

// Consume returns all pending events in FIFO order and advances head
func (q *Queue) Consume() []GameEvent {
	n := q.tail - q.head
	if n == 0 {
		return nil
	}

	result := make([]GameEvent, 0, n)
	for i := q.head; i < q.tail; i++ {
		result = append(result, q.events[i&q.mask])
	}
	q.head = q.tail
	return result
}

// Len returns pending event count
func (q *Queue) Len() int {
	return int(q.tail - q.head)
}
