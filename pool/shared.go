package pool

import "github.com/joshuapare/slotpool/memory"

// Shared is a copyable pool accessor. Every copy allocates from the same
// slots, so independent owners can each hold one. Shared pools are confined
// to a single goroutine; neither the accessor nor its Locals may cross to
// another one.
type Shared[T any] struct {
	*core[T]
}

// Local owns one allocated slot of a Shared pool. It may outlive the Shared
// copy it came from.
type Local[T any] struct {
	ref[T]
}

// NewShared creates a Shared pool over store.
func NewShared[T any](store memory.Store[T], opts ...Option[T]) (Shared[T], error) {
	c, err := newCore(store, opts)
	if err != nil {
		return Shared[T]{}, err
	}
	return Shared[T]{core: c}, nil
}

// Alloc moves v into a free slot. When the pool is exhausted it returns an
// *ExhaustedError holding v and leaves the pool unchanged.
func (s Shared[T]) Alloc(v T) (Local[T], error) {
	i, gen, err := s.alloc(v)
	if err != nil {
		return Local[T]{}, err
	}
	return Local[T]{ref[T]{owner: s.core, index: i, gen: gen}}, nil
}

// Use allocates v, calls fn with the slot's element, and releases the slot
// when fn returns or panics.
func (s Shared[T]) Use(v T, fn func(*T) error) error {
	return use(s.core, v, fn)
}
