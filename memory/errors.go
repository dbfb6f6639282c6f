package memory

import "errors"

var (
	// ErrClaimed indicates that a block already has a live lease.
	ErrClaimed = errors.New("memory: block already claimed")

	// ErrReleased indicates that a lease was already returned to its block.
	ErrReleased = errors.New("memory: lease already released")

	// ErrZeroSize indicates an element type that occupies no memory.
	// A slot must hold at least the one-byte free-list link.
	ErrZeroSize = errors.New("memory: zero-sized element type")

	// ErrPointers indicates an element type holding Go pointers, which cannot
	// live in memory the garbage collector does not scan.
	ErrPointers = errors.New("memory: element type contains pointers")

	// ErrNoSlots indicates a mapped block with fewer than one slot.
	ErrNoSlots = errors.New("memory: block needs at least one slot")

	// ErrTooLarge indicates that count * element size does not fit in memory.
	ErrTooLarge = errors.New("memory: block too large")

	// ErrClosed indicates use of a mapped block after Close.
	ErrClosed = errors.New("memory: block closed")
)
