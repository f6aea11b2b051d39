package event

import "sync/atomic"

// QueueSize must be a power of two for the index mask
const (
	QueueSize = 256
	indexMask = QueueSize - 1
)

// Queue is a lock-free MPSC ring buffer for inbound game events
//
// Producers are the host's stimulus sources (input thread, physics
// contact callbacks); the single consumer is the frame loop. A
// published flag per slot keeps the consumer from observing a
// half-written event. When full, the oldest unread events are dropped
type Queue struct {
	slots     [QueueSize]GameEvent
	published [QueueSize]atomic.Bool
	head      atomic.Uint64 // next slot to read
	tail      atomic.Uint64 // next slot to write
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push enqueues an event. Safe for concurrent producers
func (q *Queue) Push(ev GameEvent) {
	for {
		tail := q.tail.Load()
		if !q.tail.CompareAndSwap(tail, tail+1) {
			continue
		}

		idx := tail & indexMask
		q.slots[idx] = ev
		q.published[idx].Store(true) // after the slot write

		// Drop oldest if we lapped the reader
		head := q.head.Load()
		if tail+1-head > QueueSize {
			q.head.CompareAndSwap(head, tail+1-QueueSize)
		}
		return
	}
}

// Pop dequeues the oldest pending event, if any
// Single-consumer: only the frame loop may call this
func (q *Queue) Pop() (GameEvent, bool) {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		if head == tail {
			return GameEvent{}, false
		}
		if tail-head > QueueSize {
			// Writers lapped us; resync to the oldest surviving slot
			head = tail - QueueSize
		}

		idx := head & indexMask
		if !q.published[idx].Load() {
			// Writer reserved the slot but has not finished
			return GameEvent{}, false
		}
		ev := q.slots[idx]

		if q.head.CompareAndSwap(head, head+1) {
			q.published[idx].Store(false)
			return ev, true
		}
		// Lost the race against an overflow resync; retry
	}
}

// Len reports the number of pending events (approximate under
// concurrent pushes)
func (q *Queue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	n := tail - head
	if n > QueueSize {
		n = QueueSize
	}
	return int(n)
}
