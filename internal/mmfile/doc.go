// Package mmfile provides platform-specific helpers for mapping the memory
// blocks pools are carved from.
//
// On unix the blocks come from mmap(2) through golang.org/x/sys/unix: anonymous
// private mappings for process-lifetime blocks, shared file mappings for blocks
// whose contents should survive the process. Other platforms fall back to
// ordinary byte slices.
package mmfile
