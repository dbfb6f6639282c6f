package poolmetrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/slotpool/memory"
	"github.com/joshuapare/slotpool/pool"
)

func Test_CollectorExportsRecordedStats(t *testing.T) {
	p, err := pool.NewManual[int](memory.NewArray[int](4), pool.WithName[int]("conns"))
	require.NoError(t, err)

	b, err := p.Alloc(1)
	require.NoError(t, err)
	_, err = p.Alloc(2)
	require.NoError(t, err)
	p.Dealloc(b)

	c := New()
	c.Record(p.Stats())

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(c))

	expected := `
# HELP slotpool_allocs_total Successful allocations.
# TYPE slotpool_allocs_total counter
slotpool_allocs_total{pool="conns"} 2
# HELP slotpool_capacity Number of usable slots in the pool.
# TYPE slotpool_capacity gauge
slotpool_capacity{pool="conns"} 4
# HELP slotpool_free Number of unallocated slots.
# TYPE slotpool_free gauge
slotpool_free{pool="conns"} 3
# HELP slotpool_in_use Number of allocated slots.
# TYPE slotpool_in_use gauge
slotpool_in_use{pool="conns"} 1
# HELP slotpool_initialized Number of slots whose free-list link has been written at least once.
# TYPE slotpool_initialized gauge
slotpool_initialized{pool="conns"} 2
# HELP slotpool_releases_total Slots returned to the pool.
# TYPE slotpool_releases_total counter
slotpool_releases_total{pool="conns"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"slotpool_allocs_total", "slotpool_capacity", "slotpool_free",
		"slotpool_in_use", "slotpool_initialized", "slotpool_releases_total"))
}

func Test_CollectorTracksManyPools(t *testing.T) {
	c := New()
	c.Record(pool.Stats{Name: "b", Capacity: 2})
	c.Record(pool.Stats{Name: "a", Capacity: 1})
	c.Record(pool.Stats{Name: "a", Capacity: 1, Exhausted: 3})

	snap := c.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "a", snap[0].Name)
	assert.Equal(t, uint64(3), snap[0].Exhausted)

	assert.Equal(t, 14, testutil.CollectAndCount(c))
	assert.Equal(t, 2, testutil.CollectAndCount(c, "slotpool_exhausted_total"))

	c.Forget("b")
	assert.Equal(t, 7, testutil.CollectAndCount(c))
}

func Test_CollectorEmpty(t *testing.T) {
	c := New()
	assert.Equal(t, 0, testutil.CollectAndCount(c))
	assert.Empty(t, c.Snapshot())
}
