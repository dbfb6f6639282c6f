package memory

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/joshuapare/slotpool/internal/buf"
	"github.com/joshuapare/slotpool/internal/mmfile"
)

// Mapped is a block of n elements living in mapped memory instead of the Go
// heap. Element types must be pointer-free; the garbage collector never scans
// the mapping.
//
// Leases issued by a Mapped block keep free-list links inside the slots
// themselves, so a pool over a Mapped block carries no side table.
type Mapped[T any] struct {
	name    string
	data    []byte
	slots   []T
	stride  int
	unmap   func() error
	claimed atomic.Bool

	mu     sync.Mutex
	closed bool
}

// Map creates a Mapped block of n elements over anonymous memory.
func Map[T any](name string, n int) (*Mapped[T], error) {
	return newMapped[T](name, n, mmfile.MapAnon)
}

// MapFile creates a Mapped block of n elements over the file at path, which is
// created or extended as needed. Use Sync to flush element contents.
func MapFile[T any](name, path string, n int) (*Mapped[T], error) {
	return newMapped[T](name, n, func(size int) ([]byte, func() error, error) {
		return mmfile.MapFile(path, size)
	})
}

func newMapped[T any](name string, n int, mapper func(int) ([]byte, func() error, error)) (*Mapped[T], error) {
	size := SizeOf[T]()
	if size == 0 {
		return nil, fmt.Errorf("%w: %s", ErrZeroSize, name)
	}
	if !PointerFree[T]() {
		return nil, fmt.Errorf("%w: %s", ErrPointers, name)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: %s (n=%d)", ErrNoSlots, name, n)
	}

	stride := int(size)
	total, err := buf.RegionSize(n, stride)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTooLarge, name, err)
	}

	data, unmap, err := mapper(total)
	if err != nil {
		return nil, fmt.Errorf("memory: map %s: %w", name, err)
	}

	// Mappings are page aligned and stride is a multiple of T's alignment,
	// so every slot is properly aligned for T.
	slots := unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(data))), n)

	return &Mapped[T]{
		name:   name,
		data:   data,
		slots:  slots,
		stride: stride,
		unmap:  unmap,
	}, nil
}

// Name returns the block name.
func (m *Mapped[T]) Name() string { return m.name }

// Len returns the number of elements in the block.
func (m *Mapped[T]) Len() int { return len(m.slots) }

// Stride returns the size in bytes of one slot.
func (m *Mapped[T]) Stride() int { return m.stride }

// Bytes exposes the raw mapping.
func (m *Mapped[T]) Bytes() []byte { return m.data }

// Claim issues the block's single live accessor.
func (m *Mapped[T]) Claim() (*MappedLease[T], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, fmt.Errorf("%w: %s", ErrClosed, m.name)
	}
	if !m.claimed.CompareAndSwap(false, true) {
		return nil, fmt.Errorf("%w: %s", ErrClaimed, m.name)
	}
	return &MappedLease[T]{
		Lease:  newLease(m.name, m.slots, func() { m.claimed.Store(false) }),
		data:   m.data,
		stride: m.stride,
	}, nil
}

// MustClaim is like Claim but panics on failure.
func (m *Mapped[T]) MustClaim() *MappedLease[T] {
	l, err := m.Claim()
	if err != nil {
		panic(err)
	}
	return l
}

// Sync flushes the mapping to its backing file, if any.
func (m *Mapped[T]) Sync() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return fmt.Errorf("%w: %s", ErrClosed, m.name)
	}
	return mmfile.Sync(m.data)
}

// Close unmaps the block. It fails with ErrClaimed while a lease is live.
func (m *Mapped[T]) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	if m.claimed.Load() {
		return fmt.Errorf("%w: %s", ErrClaimed, m.name)
	}
	m.closed = true
	m.slots = nil
	m.data = nil
	return m.unmap()
}

// MappedLease is the live accessor of a Mapped block. Besides Store it
// implements slots.Links, storing each free slot's link in its first byte.
type MappedLease[T any] struct {
	*Lease[T]
	data   []byte
	stride int
}

// Link returns the link byte stored at the start of slot i.
func (l *MappedLease[T]) Link(i uint8) uint8 {
	return l.data[int(i)*l.stride]
}

// SetLink writes next into the first byte of slot i.
func (l *MappedLease[T]) SetLink(i, next uint8) {
	l.data[int(i)*l.stride] = next
}

// Slot returns the raw bytes of slot i.
func (l *MappedLease[T]) Slot(i int) []byte {
	b, _ := buf.Slot(l.data, i, l.stride)
	return b
}

// Release hands the block back to its provider.
func (l *MappedLease[T]) Release() error {
	if err := l.Lease.Release(); err != nil {
		return err
	}
	l.data = nil
	return nil
}

var _ Store[int] = (*MappedLease[int])(nil)
