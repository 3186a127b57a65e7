package lazyhandle

import "github.com/eapache/queue"

// Created is published on a pool's event bus when an object is registered.
// The handle is the object's public identity from here on.
type Created struct {
	Handle Handle
}

// Destroyed is published after an object's slot has been released. The
// handle is already expired when subscribers see this event.
type Destroyed struct {
	Handle Handle
}

// Pool is the owning counterpart to Table: it allocates objects, registers
// them, and releases their slots when they are destroyed. One pool per
// object category, held by the subsystem responsible for that category.
//
// Destruction can be immediate (Destroy) or deferred to a safe point
// (DestroyLater followed by Flush), the usual shape for simulation loops
// that must not invalidate handles mid-update.
type Pool[T any] struct {
	table   *Table[T]
	bus     *EventBus
	pending *queue.Queue
}

// NewPool creates a Pool backed by a fresh Table with the given layout and
// growth increment.
func NewPool[T any](layout Layout, grow int) *Pool[T] {
	return &Pool[T]{
		table:   New[T](layout, grow),
		pending: queue.New(),
	}
}

// SetEventBus attaches a bus for Created/Destroyed notifications. A nil bus
// disables them.
func (p *Pool[T]) SetEventBus(bus *EventBus) {
	p.bus = bus
}

// Table exposes the underlying handle table, for collaborators that only
// need to re-validate handles.
func (p *Pool[T]) Table() *Table[T] {
	return p.table
}

// Create allocates a zero-valued object, registers it, and returns both the
// object and its handle. The pool keeps no reference beyond the table slot;
// the handle is the only durable way back to the object.
func (p *Pool[T]) Create() (*T, Handle) {
	obj := new(T)
	h := p.table.Acquire(obj)
	if p.bus != nil {
		Publish(p.bus, Created{Handle: h})
	}
	return obj, h
}

// Adopt registers an externally constructed object and returns its handle.
// The caller remains responsible for the object's lifetime; the pool only
// tracks the slot.
func (p *Pool[T]) Adopt(obj *T) Handle {
	h := p.table.Acquire(obj)
	if p.bus != nil {
		Publish(p.bus, Created{Handle: h})
	}
	return h
}

// Get dereferences h through the pool's table.
func (p *Pool[T]) Get(h Handle) (*T, bool) {
	return p.table.Get(h)
}

// Alive reports whether h still refers to a live object.
func (p *Pool[T]) Alive(h Handle) bool {
	return !p.table.IsExpired(h)
}

// Destroy releases h's slot immediately. It reports false if h had already
// expired, which makes double-destroys safe at this level.
func (p *Pool[T]) Destroy(h Handle) bool {
	if p.table.IsExpired(h) {
		return false
	}
	p.table.Release(h)
	if p.bus != nil {
		Publish(p.bus, Destroyed{Handle: h})
	}
	return true
}

// DestroyLater queues h for release on the next Flush. Queueing the same
// handle twice is fine; the second entry is skipped as expired.
func (p *Pool[T]) DestroyLater(h Handle) {
	p.pending.Add(h)
}

// Flush releases every queued handle that is still alive and returns how
// many objects were destroyed. Handles that expired between DestroyLater
// and Flush are skipped.
func (p *Pool[T]) Flush() int {
	n := 0
	for p.pending.Length() > 0 {
		h := p.pending.Remove().(Handle)
		if p.Destroy(h) {
			n++
		}
	}
	return n
}

// Len returns the number of live objects in the pool.
func (p *Pool[T]) Len() int {
	return p.table.Len()
}
