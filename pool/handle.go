package pool

import "fmt"

// ref is the slot reference behind Handle and Local.
type ref[T any] struct {
	owner *core[T]
	index uint8
	gen   uint32
	done  bool
}

// Index returns the slot index.
func (r *ref[T]) Index() uint8 { return r.index }

// Value returns a pointer to the element. It panics after Release.
func (r *ref[T]) Value() *T {
	if r.owner == nil {
		panic(fmt.Errorf("%w: zero handle", ErrForeignHandle))
	}
	if r.done {
		panic(fmt.Errorf("%w: %s slot %d", ErrStaleHandle, r.owner.name, r.index))
	}
	return r.owner.at(r.index, r.gen)
}

// Format prints the element the handle refers to.
func (r ref[T]) Format(f fmt.State, verb rune) {
	formatSlot(f, verb, r.owner, r.index, r.gen)
}

// Released reports whether Release has been called on this handle.
func (r *ref[T]) Released() bool { return r.done || r.owner == nil }

// Release destroys the element and returns its slot to the pool. Calling it
// again on the same handle does nothing; releasing a copy of an already
// released handle panics.
func (r *ref[T]) Release() {
	if r.done || r.owner == nil {
		return
	}
	r.done = true
	r.owner.release(r.index, r.gen)
}

func use[T any](c *core[T], v T, fn func(*T) error) error {
	i, gen, err := c.alloc(v)
	if err != nil {
		return err
	}
	r := ref[T]{owner: c, index: i, gen: gen}
	defer r.Release()
	return fn(r.Value())
}
