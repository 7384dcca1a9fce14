package event

// Handler processes specific event types
// Handlers are invoked synchronously during the dispatch phase, after
// the simulation systems have run
type Handler interface {
	// HandleEvent processes a single event
	HandleEvent(ev GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []Type
}

// Router dispatches queued events to registered handlers
// Single-threaded dispatch; multiple handlers may register for the same
// type and are invoked in registration order
type Router struct {
	handlers map[Type][]Handler
	queue    *Queue
}

// NewRouter creates a router attached to the given queue
func NewRouter(queue *Queue) *Router {
	return &Router{
		handlers: make(map[Type][]Handler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(handler Handler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events and routes them in FIFO order
func (r *Router) DispatchAll() {
	for _, ev := range r.queue.Consume() {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
}
