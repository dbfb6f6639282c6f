// Package slots implements the bookkeeping core of a fixed-capacity slot pool.
//
// # Overview
//
// A Store tracks at most MaxCapacity (255) equally sized slots with three
// single-byte counters:
//
//   - initialized: how many of the lowest-indexed slots have had their
//     free-list link written at least once (the frontier)
//   - free: how many slots are currently unallocated
//   - head: the index of the first free slot, meaningful only while free > 0
//
// The free list is intrusive: a free slot's leading byte holds the index of the
// next free slot. Slots at or beyond the frontier have never been written and
// carry the implicit link index+1, so a fresh Store threads 0→1→2→… one step
// per allocation instead of priming every slot up front. Both Take and Give are
// O(1) and never scan.
//
// # Links
//
// Store never touches element memory itself. Reads and writes of link bytes go
// through the Links interface, implemented either by the slot memory itself
// (memory.MappedLease writes the slot's first byte) or by Table, a fixed
// 255-byte side table for element types the runtime must be able to scan.
//
// # Reuse Order
//
// Release is strictly LIFO: the most recently given slot is the next one taken.
//
//	s := slots.New(4)
//	var links slots.Table
//	a, _ := s.Take(&links) // 0
//	b, _ := s.Take(&links) // 1
//	s.Give(&links, a)
//	s.Give(&links, b)
//	next, _ := s.Take(&links) // 1, then 0
//
// # Thread Safety
//
// Store has no internal synchronization. Callers serialize every Take and Give.
package slots
