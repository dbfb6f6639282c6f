// Package scenario runs scripted allocate/release sequences against a pool and
// records what happened at every step.
//
// Scripts are YAML:
//
//	name: lifo
//	capacity: 4
//	steps:
//	  - {op: alloc, value: -1, expect_slot: 0}
//	  - {op: alloc, value: -2, expect_slot: 1}
//	  - {op: release, slot: 0}
//	  - {op: release, pick: oldest}
//	  - {op: alloc, value: -3, expect_slot: 1}
//
// An alloc step may assert the slot it receives or that the pool is
// exhausted. A release step names a slot directly or picks the oldest live
// allocation. After each step the pool's invariants are verified.
package scenario
