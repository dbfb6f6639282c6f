package slots

import "errors"

var (
	// ErrCorrupt indicates that the counters or the free list violate a Store invariant.
	ErrCorrupt = errors.New("slots: corrupt free list")
)
