package handle

import "sync"

// Handle is an opaque 32-bit index into a Table. It carries no type
// information of its own; callers keep separate tables per object kind
// (one for Mutable FSTs, one for Frozen FSTs) so a handle can never be
// presented to the wrong table and silently resolve to an unrelated
// object.
type Handle = uint32

// Invalid is the sentinel "no handle" value, mirroring fst.NoStateId and
// the documented FST_INVALID_HANDLE.
const Invalid Handle = 0xFFFFFFFF

// slot is one entry of a Table: an owned object (or the zero value, when
// unoccupied), a generation counter bumped on every remove and every
// optimistic-commit, a pin count, and a pending-free flag.
type slot[T any] struct {
	obj         T
	occupied    bool
	generation  uint32
	pinCount    int32
	pendingFree bool
}

// Table is the slot-indexed registry mapping handles to owned objects of
// type T, serialized through a single mutex. A free list of released
// indices enables slot reuse; insert skips a generation value of 0 on
// reuse so a freshly reused slot is never mistaken for an
// uninitialized one by a caller that forgot to check occupancy.
type Table[T any] struct {
	mu    sync.Mutex
	slots []slot[T]
	free  []Handle
}

// New returns an empty Table.
func New[T any]() *Table[T] {
	return &Table[T]{}
}

// live returns the slot for h, or ErrInvalidHandle if h is out of range,
// unoccupied, or pending-free. Must be called under t.mu.
func (t *Table[T]) live(h Handle) (*slot[T], error) {
	if h == Invalid || int(h) >= len(t.slots) {
		return nil, ErrInvalidHandle
	}
	s := &t.slots[h]
	if !s.occupied || s.pendingFree {
		return nil, ErrInvalidHandle
	}
	return s, nil
}

// bump advances s's generation, skipping the 0 value.
func bump(s *uint32) {
	*s++
	if *s == 0 {
		*s = 1
	}
}

// Insert takes ownership of obj, reusing a free-list slot if one is
// available (bumping its generation), else growing the table. The
// returned handle remains valid until a Remove call against it completes
// with pin count zero.
func (t *Table[T]) Insert(obj T) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	if n := len(t.free); n > 0 {
		h := t.free[n-1]
		t.free = t.free[:n-1]
		s := &t.slots[h]
		s.obj = obj
		s.occupied = true
		s.pinCount = 0
		s.pendingFree = false
		bump(&s.generation)
		return h
	}

	h := Handle(len(t.slots))
	t.slots = append(t.slots, slot[T]{obj: obj, occupied: true, generation: 1})
	return h
}

// Get returns the object owned by h, or ErrInvalidHandle if h does not
// currently name a live slot.
func (t *Table[T]) Get(h Handle) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, err := t.live(h)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.obj, nil
}

// GetConst behaves identically to Get; it exists to mirror the ABI's
// get/get_const split (Go has no const-pointer distinction to enforce it
// with, so both return the same value under the same lock).
func (t *Table[T]) GetConst(h Handle) (T, error) { return t.Get(h) }

// Generation returns h's current generation counter.
func (t *Table[T]) Generation(h Handle) (uint32, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, err := t.live(h)
	if err != nil {
		return 0, err
	}
	return s.generation, nil
}

// BumpGeneration advances h's generation counter without otherwise
// touching the slot; used by callers that mutate the owned object through
// means outside the Table (rare — most callers go through Snapshot/Commit
// instead).
func (t *Table[T]) BumpGeneration(h Handle) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, err := t.live(h)
	if err != nil {
		return err
	}
	bump(&s.generation)
	return nil
}

// PinConst increments h's pin count and returns its object. A pinned
// object survives a concurrent Remove (which merely marks the slot
// pending-free) until every pin is released via Unpin; this lets a reader
// hold a Frozen FST across a boundary call without the global mutex.
func (t *Table[T]) PinConst(h Handle) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, err := t.live(h)
	if err != nil {
		var zero T
		return zero, err
	}
	s.pinCount++
	return s.obj, nil
}

// Unpin decrements h's pin count. If it drops to zero and the slot was
// marked pending-free by a Remove that arrived while pinned, the object
// is destroyed and the slot recycled now.
func (t *Table[T]) Unpin(h Handle) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if h == Invalid || int(h) >= len(t.slots) {
		return ErrInvalidHandle
	}
	s := &t.slots[h]
	if !s.occupied || s.pinCount == 0 {
		return ErrInvalidHandle
	}
	s.pinCount--
	if s.pinCount == 0 && s.pendingFree {
		t.destroy(h)
	}
	return nil
}

// Remove releases h. If the slot is currently pinned, destruction is
// deferred: the slot is marked pending-free and its generation bumped
// immediately (so optimistic commits in flight observe the change), and
// the actual destroy+recycle happens in the Unpin call that drops the pin
// count to zero. Otherwise the object is destroyed immediately. Returns
// ErrInvalidHandle if h did not name a live slot (including a handle
// already removed once — double remove is rejected).
func (t *Table[T]) Remove(h Handle) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, err := t.live(h)
	if err != nil {
		return err
	}
	if s.pinCount > 0 {
		s.pendingFree = true
		bump(&s.generation)
		return nil
	}
	t.destroy(h)
	return nil
}

// destroy clears and recycles slot h. Must be called under t.mu with h
// known occupied.
func (t *Table[T]) destroy(h Handle) {
	s := &t.slots[h]
	var zero T
	s.obj = zero
	s.occupied = false
	s.pendingFree = false
	bump(&s.generation)
	t.free = append(t.free, h)
}

// Snapshot returns h's current object and generation under lock, the
// first half of the optimistic-commit protocol: the caller releases the
// lock implicitly on return, performs its heavy computation on the
// snapshot, then calls Commit with the generation read here.
func (t *Table[T]) Snapshot(h Handle) (T, uint32, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, err := t.live(h)
	if err != nil {
		var zero T
		return zero, 0, err
	}
	return s.obj, s.generation, nil
}

// Commit re-acquires the lock and compares h's current generation against
// readGeneration (the value Snapshot returned before the caller's heavy
// computation). On match, newObj replaces the slot's object and the
// generation bumps again; on mismatch, newObj is discarded and Commit
// returns ErrConcurrentMutation, the signal an in-place mutating
// operation's boundary wrapper turns into InvalidArg.
func (t *Table[T]) Commit(h Handle, newObj T, readGeneration uint32) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, err := t.live(h)
	if err != nil {
		return err
	}
	if s.generation != readGeneration {
		return ErrConcurrentMutation
	}
	s.obj = newObj
	bump(&s.generation)
	return nil
}
