package pool

import "github.com/joshuapare/slotpool/memory"

// Auto is a pool whose handles release themselves. It must not be used from
// more than one goroutine at a time; handles may move between goroutines as
// long as pool operations stay serialized.
type Auto[T any] struct {
	*core[T]
}

// Handle owns one allocated slot of an Auto pool. Call Release, typically
// with defer, to destroy the element and free the slot.
type Handle[T any] struct {
	ref[T]
}

// NewAuto creates an Auto pool over store.
func NewAuto[T any](store memory.Store[T], opts ...Option[T]) (*Auto[T], error) {
	c, err := newCore(store, opts)
	if err != nil {
		return nil, err
	}
	return &Auto[T]{core: c}, nil
}

// Alloc moves v into a free slot. When the pool is exhausted it returns an
// *ExhaustedError holding v and leaves the pool unchanged.
func (a *Auto[T]) Alloc(v T) (Handle[T], error) {
	i, gen, err := a.alloc(v)
	if err != nil {
		return Handle[T]{}, err
	}
	return Handle[T]{ref[T]{owner: a.core, index: i, gen: gen}}, nil
}

// Use allocates v, calls fn with the slot's element, and releases the slot
// when fn returns or panics.
func (a *Auto[T]) Use(v T, fn func(*T) error) error {
	return use(a.core, v, fn)
}
