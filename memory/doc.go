// Package memory provides the fixed-length element stores pools allocate from
// and the exclusive provider that hands out access to them.
//
// # Stores
//
// Store is the capability a pool needs: a length and pointer access to element
// i. Callers guarantee i < Len() before calling At.
//
//   - Array: a plain slice allocated once, owned by whoever built the pool.
//   - Lease: the single live accessor of a Block, a statically declared,
//     Go-managed memory block.
//   - MappedLease: the single live accessor of a Mapped block, carved out of
//     mmap'd memory the garbage collector never scans. MappedLease also writes
//     free-list links straight into the leading byte of each slot.
//
// # Exclusive Access
//
// Blocks are meant to be declared once, at package level, and claimed once at
// startup:
//
//	var buffers = memory.NewBlock[[128]byte]("buffers", 4)
//
//	func main() {
//	    lease := buffers.MustClaim()
//	    p, err := pool.NewManual[[128]byte](lease)
//	    ...
//	}
//
// A second Claim while a lease is live fails with ErrClaimed. Releasing a
// lease returns the block to the provider without running any element
// destructors: values still allocated at that point are leaked, not destroyed.
package memory
