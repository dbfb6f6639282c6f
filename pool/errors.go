package pool

import (
	"errors"
	"fmt"

	"github.com/joshuapare/slotpool/memory"
)

var (
	// ErrExhausted indicates that every slot of the pool is allocated.
	ErrExhausted = errors.New("pool: exhausted")

	// ErrZeroSize indicates a zero-sized element type, which leaves no room
	// for the free-list link.
	ErrZeroSize = memory.ErrZeroSize

	// ErrNilStore indicates a pool constructed without backing memory.
	ErrNilStore = errors.New("pool: nil store")

	// ErrStaleHandle indicates use of a handle whose slot was already released.
	ErrStaleHandle = errors.New("pool: stale handle")

	// ErrForeignHandle indicates a handle presented to a pool that did not issue it.
	ErrForeignHandle = errors.New("pool: handle from another pool")
)

// ExhaustedError is returned by Alloc when the pool has no free slot. Value
// is the value that was offered, returned unchanged.
type ExhaustedError[T any] struct {
	Pool     string
	Capacity int
	Value    T
}

func (e *ExhaustedError[T]) Error() string {
	return fmt.Sprintf("pool: exhausted (%s, capacity %d)", e.Pool, e.Capacity)
}

func (e *ExhaustedError[T]) Unwrap() error { return ErrExhausted }

// Rejected extracts the value an exhausted pool handed back.
func Rejected[T any](err error) (T, bool) {
	var ex *ExhaustedError[T]
	if errors.As(err, &ex) {
		return ex.Value, true
	}
	var zero T
	return zero, false
}
