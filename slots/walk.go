package slots

import "fmt"

// next returns the link of free slot i, using the implicit link for slots
// beyond the frontier.
func (s *Store) next(l Links, i uint8) uint8 {
	if i >= s.initialized {
		return i + 1
	}
	return l.Link(i)
}

// Walk visits the free list in the order Take would hand slots out. It stops
// early when fn returns false. Walk does not validate the list; see Verify.
func (s *Store) Walk(l Links, fn func(i uint8) bool) {
	i := s.head
	for range int(s.free) {
		if !fn(i) {
			return
		}
		i = s.next(l, i)
	}
}

// FreeList returns the free slots in the order Take would hand them out.
func (s *Store) FreeList(l Links) []uint8 {
	out := make([]uint8, 0, s.free)
	s.Walk(l, func(i uint8) bool {
		out = append(out, i)
		return true
	})
	return out
}

// Verify checks the counter invariants and walks the free list, making sure it
// visits exactly Free() distinct slots, all within capacity.
func (s *Store) Verify(l Links) error {
	if s.initialized > s.n {
		return fmt.Errorf("%w: initialized=%d > capacity=%d", ErrCorrupt, s.initialized, s.n)
	}
	if s.free > s.n {
		return fmt.Errorf("%w: free=%d > capacity=%d", ErrCorrupt, s.free, s.n)
	}
	if s.free == 0 {
		return nil
	}
	if s.head >= s.n {
		return fmt.Errorf("%w: head=%d out of range (capacity=%d)", ErrCorrupt, s.head, s.n)
	}
	if s.head > s.initialized {
		return fmt.Errorf("%w: head=%d beyond frontier=%d", ErrCorrupt, s.head, s.initialized)
	}
	// Slots [initialized, n) are all free and chained implicitly, so they must
	// all be reachable too.
	if untouched := s.n - s.initialized; untouched > s.free {
		return fmt.Errorf("%w: %d untouched slots but only %d free", ErrCorrupt, untouched, s.free)
	}

	var seen [MaxCapacity]bool
	i := s.head
	for step := range int(s.free) {
		if i >= s.n {
			return fmt.Errorf("%w: step %d reached slot %d (capacity=%d)", ErrCorrupt, step, i, s.n)
		}
		if seen[i] {
			return fmt.Errorf("%w: slot %d appears twice on the free list", ErrCorrupt, i)
		}
		seen[i] = true
		i = s.next(l, i)
	}
	return nil
}
