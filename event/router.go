package event

// Handler processes specific event types
// Systems implement this interface to receive routed events
type Handler interface {
	// HandleEvent processes a single event
	// Called synchronously during dispatch
	HandleEvent(ev GameEvent)

	// EventTypes returns the event types this handler processes
	// The router uses this for registration
	EventTypes() []EventType
}

// Router dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch (the frame loop)
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//
// Two delivery paths share the handler table:
//   - Publish delivers one event immediately; the break sequence uses
//     it at its checkpoints, so subscribers observe notifications in
//     the exact order the sequence emits them
//   - DispatchAll drains the queue; the frame loop uses it for
//     stimuli pushed from other goroutines (input, contact triggers)
type Router struct {
	handlers map[EventType][]Handler
	queue    *Queue
}

// NewRouter creates a router attached to the given queue
// The queue may be nil if only Publish is used
func NewRouter(queue *Queue) *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(h Handler) {
	for _, t := range h.EventTypes() {
		r.handlers[t] = append(r.handlers[t], h)
	}
}

// Publish delivers an event to its handlers immediately, in
// registration order
func (r *Router) Publish(ev GameEvent) {
	for _, h := range r.handlers[ev.Type] {
		h.HandleEvent(ev)
	}
}

// DispatchAll drains the queue and routes events in FIFO order
func (r *Router) DispatchAll() {
	if r.queue == nil {
		return
	}
	for {
		ev, ok := r.queue.Pop()
		if !ok {
			return
		}
		r.Publish(ev)
	}
}

// HandlerCount returns the number of handlers registered for the type
func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
