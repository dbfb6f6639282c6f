package pool

import (
	"fmt"

	"github.com/joshuapare/slotpool/memory"
)

// Manual is a pool whose slots are returned explicitly with Dealloc.
// It must not be used from more than one goroutine at a time.
type Manual[T any] struct {
	*core[T]
}

// Box refers to one allocated slot of a Manual pool. A Box must be handed
// back with Dealloc exactly once; one that is simply dropped leaks its slot.
type Box[T any] struct {
	owner *core[T]
	index uint8
	gen   uint32
}

// Index returns the slot index.
func (b Box[T]) Index() uint8 { return b.index }

// Format prints the element held by b, or <released> once b is deallocated.
func (b Box[T]) Format(f fmt.State, verb rune) {
	formatSlot(f, verb, b.owner, b.index, b.gen)
}

// NewManual creates a Manual pool over store.
func NewManual[T any](store memory.Store[T], opts ...Option[T]) (*Manual[T], error) {
	c, err := newCore(store, opts)
	if err != nil {
		return nil, err
	}
	return &Manual[T]{core: c}, nil
}

// Alloc moves v into a free slot. When the pool is exhausted it returns an
// *ExhaustedError holding v and leaves the pool unchanged.
func (m *Manual[T]) Alloc(v T) (Box[T], error) {
	i, gen, err := m.alloc(v)
	if err != nil {
		return Box[T]{}, err
	}
	return Box[T]{owner: m.core, index: i, gen: gen}, nil
}

// Get returns a pointer to the element held by b. The pointer is valid until
// b is deallocated.
func (m *Manual[T]) Get(b Box[T]) *T {
	m.own(b)
	return m.at(b.index, b.gen)
}

// Dealloc destroys the element held by b and returns its slot to the pool.
func (m *Manual[T]) Dealloc(b Box[T]) {
	m.own(b)
	m.release(b.index, b.gen)
}

func (m *Manual[T]) own(b Box[T]) {
	if b.owner != m.core {
		panic(fmt.Errorf("%w: %s slot %d", ErrForeignHandle, m.name, b.index))
	}
}
