package navroute

import "sync"

// Handler receives an event payload.
type Handler func(payload any)

// Emitter is a route's private event channel. Every Route gets a fresh one at
// construction; no Route observes or emits on another's. The owning host can
// tear it down deterministically with Dispose.
type Emitter struct {
	mu       sync.Mutex
	seq      int
	subs     map[string]map[int]Handler
	disposed bool
}

func newEmitter() *Emitter {
	return &Emitter{subs: make(map[string]map[int]Handler)}
}

// Subscribe registers fn for event and returns a function that removes the
// subscription. Subscribing after Dispose is a no-op.
func (e *Emitter) Subscribe(event string, fn Handler) (unsubscribe func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.disposed {
		return func() {}
	}
	e.seq++
	id := e.seq
	if e.subs[event] == nil {
		e.subs[event] = make(map[int]Handler)
	}
	e.subs[event][id] = fn
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.subs[event], id)
	}
}

// Emit delivers payload to every handler subscribed to event. Handlers run on
// the caller's goroutine, outside the emitter's lock, in subscription order.
func (e *Emitter) Emit(event string, payload any) {
	e.mu.Lock()
	if e.disposed {
		e.mu.Unlock()
		return
	}
	// deliver in subscription order; map iteration order is random
	handlers := make([]Handler, 0, len(e.subs[event]))
	for i := 1; i <= e.seq; i++ {
		if fn, ok := e.subs[event][i]; ok {
			handlers = append(handlers, fn)
		}
	}
	e.mu.Unlock()

	for _, fn := range handlers {
		fn(payload)
	}
}

// Dispose drops all subscriptions and makes further Subscribe and Emit calls
// no-ops.
func (e *Emitter) Dispose() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.disposed = true
	e.subs = nil
}

// Disposed reports whether Dispose has been called.
func (e *Emitter) Disposed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.disposed
}
