package memory

import (
	"fmt"
	"sync/atomic"
)

// Block is a statically sized memory block with at most one live accessor.
// Declare it once, typically as a package-level variable, and Claim it where
// the pool is built.
type Block[T any] struct {
	name    string
	slots   []T
	claimed atomic.Bool
}

// NewBlock allocates a block of n elements. The memory lives as long as the
// Block itself.
func NewBlock[T any](name string, n int) *Block[T] {
	if n < 0 {
		n = 0
	}
	return &Block[T]{name: name, slots: make([]T, n)}
}

// Name returns the block name.
func (b *Block[T]) Name() string { return b.name }

// Len returns the number of elements in the block.
func (b *Block[T]) Len() int { return len(b.slots) }

// Claimed reports whether a lease is currently live.
func (b *Block[T]) Claimed() bool { return b.claimed.Load() }

// Claim issues the block's single live accessor. It fails with ErrClaimed
// while an earlier lease has not been released.
func (b *Block[T]) Claim() (*Lease[T], error) {
	if !b.claimed.CompareAndSwap(false, true) {
		return nil, fmt.Errorf("%w: %s", ErrClaimed, b.name)
	}
	return newLease(b.name, b.slots, func() { b.claimed.Store(false) }), nil
}

// MustClaim is like Claim but panics on failure. It is meant for startup code
// where a second claim is a programming error.
func (b *Block[T]) MustClaim() *Lease[T] {
	l, err := b.Claim()
	if err != nil {
		panic(err)
	}
	return l
}

// Lease is the live accessor of a block. It implements Store.
type Lease[T any] struct {
	name    string
	slots   []T
	release func()
}

func newLease[T any](name string, slots []T, release func()) *Lease[T] {
	return &Lease[T]{name: name, slots: slots, release: release}
}

// Name returns the name of the block the lease was issued for.
func (l *Lease[T]) Name() string { return l.name }

// Len returns the number of elements.
func (l *Lease[T]) Len() int { return len(l.slots) }

// At returns a pointer to element i.
func (l *Lease[T]) At(i int) *T { return &l.slots[i] }

// Release hands the block back to its provider so it can be claimed again.
// Elements are left exactly as they are; no destructors run.
func (l *Lease[T]) Release() error {
	if l.release == nil {
		return fmt.Errorf("%w: %s", ErrReleased, l.name)
	}
	release := l.release
	l.release = nil
	l.slots = nil
	release()
	return nil
}

var _ Store[int] = (*Lease[int])(nil)
