package slots

import "math"

// MaxCapacity is the largest number of slots a Store can address. Slot
// indices are single bytes.
const MaxCapacity = math.MaxUint8

// Store is the counter state of a fixed-capacity slot pool. The zero value is
// a pool with no slots.
type Store struct {
	n           uint8
	free        uint8
	head        uint8
	initialized uint8
}

// New returns a Store over length slots. Lengths above MaxCapacity are capped
// and negative lengths yield an empty Store. No slot memory is touched.
func New(length int) Store {
	n := Capacity(length)
	return Store{n: n, free: n}
}

// Capacity returns the number of addressable slots for a backing of the given length.
func Capacity(length int) uint8 {
	switch {
	case length <= 0:
		return 0
	case length > MaxCapacity:
		return MaxCapacity
	default:
		return uint8(length)
	}
}

// Take pops the head of the free list and returns its index. It returns false,
// leaving the Store unchanged, when every slot is allocated.
//
// The link of the frontier slot is materialized first so that following head
// never reads a slot that has not been written yet.
func (s *Store) Take(l Links) (uint8, bool) {
	if s.initialized < s.n {
		i := s.initialized
		l.SetLink(i, i+1)
		s.initialized++
	}

	if s.free == 0 {
		return 0, false
	}

	i := s.head
	s.head = l.Link(i)
	s.free--
	return i, true
}

// Give pushes slot i back onto the free list. The caller must have finished
// with the element in slot i; its leading byte is overwritten with the link.
func (s *Store) Give(l Links, i uint8) {
	l.SetLink(i, s.head)
	s.free++
	s.head = i
}

// Cap returns the number of slots.
func (s *Store) Cap() int { return int(s.n) }

// Free returns the number of unallocated slots.
func (s *Store) Free() int { return int(s.free) }

// InUse returns the number of allocated slots.
func (s *Store) InUse() int { return int(s.n) - int(s.free) }

// Head returns the index of the next slot Take will hand out. Only meaningful
// while Free() > 0.
func (s *Store) Head() uint8 { return s.head }

// Initialized returns the frontier: the count of slots whose link has been written.
func (s *Store) Initialized() int { return int(s.initialized) }

// Exhausted reports whether every slot is allocated.
func (s *Store) Exhausted() bool { return s.free == 0 }
