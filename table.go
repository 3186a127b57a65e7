package lazyhandle

// DefaultGrow is the number of slots added per growth increment when no
// explicit increment is given.
const DefaultGrow = 1024

// slot pairs the current generation version with a non-owning pointer to
// the occupant. A free slot has a nil pointer; its version is left in place
// until the next acquisition bumps it.
type slot[T any] struct {
	obj     *T
	version uint32
}

// Table maps Handles to raw object pointers and detects stale handles. It
// never owns the objects it points to: callers construct and destroy them,
// the table only tracks which generation of occupant lives in each slot.
//
// A Table is not safe for concurrent use. It assumes a single logical owner,
// the same way a World assumes one simulation thread; wrap it in external
// synchronization if several goroutines must share it.
type Table[T any] struct {
	layout Layout
	slots  []slot[T]
	free   []uint64 // stack of free slot indexes; fresh increments pop in ascending order
	grow   int
	live   int
}

// New creates a Table using the given handle layout and growth increment.
// The table starts with one increment of free slots and grows by the same
// amount whenever acquisition finds no free slot. A non-positive grow falls
// back to DefaultGrow.
//
// Parameters:
//   - layout: The bit layout handles issued by this table will use.
//   - grow: The number of slots added per growth increment.
//
// Returns:
//   - The newly created Table.
func New[T any](layout Layout, grow int) *Table[T] {
	if grow <= 0 {
		grow = DefaultGrow
	}
	t := &Table[T]{layout: layout, grow: grow}
	t.growTable()
	return t
}

// growTable appends one increment of free slots, clamped to the layout's
// addressable range. Exhausting that range is a configuration error: the
// layout cannot name more live objects than its index bits allow.
func (t *Table[T]) growTable() {
	oldLen := uint64(len(t.slots))
	maxLen := t.layout.MaxIndices()
	if oldLen >= maxLen {
		panic("lazyhandle: table capacity exceeded, configure wider index bits")
	}
	newLen := oldLen + uint64(t.grow)
	if newLen > maxLen {
		newLen = maxLen
	}
	t.slots = append(t.slots, make([]slot[T], newLen-oldLen)...)
	for i := newLen; i > oldLen; i-- {
		t.free = append(t.free, i-1)
	}
}

// Acquire registers obj and returns a Handle for it. The slot's version is
// bumped before the handle is built, so every handle ever issued for a slot
// carries a distinct version until the version space wraps.
//
// The returned handle stays valid until Release is called on it. Acquire
// panics if obj is nil, and panics with a capacity error if the table is
// full and growing would exceed the layout's index range.
//
// Parameters:
//   - obj: A non-owning pointer to an already-constructed object.
//
// Returns:
//   - A Handle that is valid immediately after the call.
func (t *Table[T]) Acquire(obj *T) Handle {
	if obj == nil {
		panic("lazyhandle: cannot acquire a handle for a nil object")
	}
	if len(t.free) == 0 {
		t.growTable()
	}
	last := len(t.free) - 1
	i := t.free[last]
	t.free = t.free[:last]
	s := &t.slots[i]
	if s.version >= t.layout.MaxVersion() {
		s.version = MinVersion
	} else {
		s.version++
	}
	s.obj = obj
	t.live++
	return t.layout.Pack(i, s.version)
}

// Release frees the slot h refers to. The slot's version is left as-is; the
// next Acquire of the slot bumps it, which is what expires every handle
// issued for the previous occupant.
//
// Releasing a handle that is not currently valid (out of range, stale
// version, or already-freed slot) is a lifetime bug in the caller and
// panics rather than returning an error.
func (t *Table[T]) Release(h Handle) {
	i := t.layout.Index(h)
	if i >= uint64(len(t.slots)) {
		panic("lazyhandle: release of out-of-range handle")
	}
	s := &t.slots[i]
	if s.obj == nil || s.version != t.layout.Version(h) {
		panic("lazyhandle: release of invalid handle")
	}
	s.obj = nil
	t.live--
	t.free = append(t.free, i)
}

// lookup resolves h to its slot, or nil if h is out of range, stale, or
// refers to a free slot.
func (t *Table[T]) lookup(h Handle) *slot[T] {
	i := t.layout.Index(h)
	if i >= uint64(len(t.slots)) {
		return nil
	}
	s := &t.slots[i]
	if s.obj == nil || s.version != t.layout.Version(h) {
		return nil
	}
	return s
}

// IsExpired reports whether h no longer refers to a live object: its slot
// was released, reused by a later occupant, or its index is out of range.
// A pure query; it never changes table state.
func (t *Table[T]) IsExpired(h Handle) bool {
	return t.lookup(h) == nil
}

// Get dereferences h. It returns the registered object and true while h is
// valid, or nil and false once h has expired. Stale handles are an expected
// condition in long-lived systems, so Get never panics.
//
// Parameters:
//   - h: The Handle to dereference.
//
// Returns:
//   - A pointer to the object, or nil.
//   - true if h is currently valid, false otherwise.
func (t *Table[T]) Get(h Handle) (*T, bool) {
	s := t.lookup(h)
	if s == nil {
		return nil, false
	}
	return s.obj, true
}

// MustGet dereferences h and panics if h is not currently valid. Use it
// only where handle freshness is guaranteed by construction; everywhere
// else, use Get.
func (t *Table[T]) MustGet(h Handle) *T {
	s := t.lookup(h)
	if s == nil {
		panic("lazyhandle: dereference of invalid handle")
	}
	return s.obj
}

// HandleAt returns the handle matching the slot's current version,
// regardless of what version any caller remembered. It reports false if
// index is out of range or the slot is free.
func (t *Table[T]) HandleAt(index uint64) (Handle, bool) {
	if index >= uint64(len(t.slots)) || t.slots[index].obj == nil {
		return t.layout.Nil(), false
	}
	return t.layout.Pack(index, t.slots[index].version), true
}

// Clear releases every occupied slot, recycling all indexes without
// resetting versions. Handles issued before Clear expire; slot storage is
// kept for reuse.
func (t *Table[T]) Clear() {
	for i := range t.slots {
		t.slots[i].obj = nil
	}
	t.free = t.free[:0]
	for i := len(t.slots); i > 0; i-- {
		t.free = append(t.free, uint64(i-1))
	}
	t.live = 0
}

// Len returns the number of live objects in the table.
func (t *Table[T]) Len() int {
	return t.live
}

// Cap returns the current number of slots, occupied or free.
func (t *Table[T]) Cap() int {
	return len(t.slots)
}

// Layout returns the handle layout this table issues handles with.
func (t *Table[T]) Layout() Layout {
	return t.layout
}
