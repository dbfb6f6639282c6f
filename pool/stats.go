package pool

// Stats is a point-in-time snapshot of a pool.
type Stats struct {
	Name        string `json:"name"`
	Capacity    int    `json:"capacity"`
	Free        int    `json:"free"`
	InUse       int    `json:"in_use"`
	Initialized int    `json:"initialized"`

	// Head is the next slot Alloc will hand out, or -1 when the pool is exhausted.
	Head int `json:"head"`

	Allocs    uint64 `json:"allocs"`
	Releases  uint64 `json:"releases"`
	Exhausted uint64 `json:"exhausted"`
}
