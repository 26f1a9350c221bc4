package handle

import "errors"

// Sentinel errors for Table[T] operations.
var (
	// ErrInvalidHandle indicates the handle's index is out of range, the
	// slot it names is not currently occupied (never inserted, already
	// removed, or removed twice), or the slot is marked pending-free.
	ErrInvalidHandle = errors.New("handle: invalid handle")

	// ErrConcurrentMutation indicates Commit's caller-supplied generation
	// no longer matches the slot's current generation: another mutation
	// committed (or the slot was removed) while the caller computed its
	// snapshot outside the lock.
	ErrConcurrentMutation = errors.New("handle: concurrent mutation detected")
)
