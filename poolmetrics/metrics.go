// Package poolmetrics exports pool statistics to Prometheus.
//
// Pools are not safe for concurrent use, so a scrape must never read pool
// state directly. Instead the goroutine that owns a pool records snapshots
// and the Collector serves the most recent one:
//
//	c := poolmetrics.New()
//	prometheus.MustRegister(c)
//
//	// in the pool's goroutine
//	c.Record(p.Stats())
package poolmetrics

import (
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/joshuapare/slotpool/pool"
)

const namespace = "slotpool"

var (
	capacityDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "", "capacity"),
		"Number of usable slots in the pool.",
		[]string{"pool"}, nil,
	)
	freeDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "", "free"),
		"Number of unallocated slots.",
		[]string{"pool"}, nil,
	)
	inUseDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "", "in_use"),
		"Number of allocated slots.",
		[]string{"pool"}, nil,
	)
	initializedDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "", "initialized"),
		"Number of slots whose free-list link has been written at least once.",
		[]string{"pool"}, nil,
	)
	allocsDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "", "allocs_total"),
		"Successful allocations.",
		[]string{"pool"}, nil,
	)
	releasesDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "", "releases_total"),
		"Slots returned to the pool.",
		[]string{"pool"}, nil,
	)
	exhaustedDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "", "exhausted_total"),
		"Allocations rejected because every slot was in use.",
		[]string{"pool"}, nil,
	)
)

// Collector serves the last recorded Stats of every pool it has seen.
type Collector struct {
	mu    sync.RWMutex
	pools map[string]pool.Stats
}

// New returns an empty Collector.
func New() *Collector {
	return &Collector{pools: make(map[string]pool.Stats)}
}

// Record stores s as the current snapshot for pool s.Name.
func (c *Collector) Record(s pool.Stats) {
	c.mu.Lock()
	c.pools[s.Name] = s
	c.mu.Unlock()
}

// Forget drops the snapshot for the named pool.
func (c *Collector) Forget(name string) {
	c.mu.Lock()
	delete(c.pools, name)
	c.mu.Unlock()
}

// Snapshot returns the recorded stats, sorted by pool name.
func (c *Collector) Snapshot() []pool.Stats {
	c.mu.RLock()
	out := make([]pool.Stats, 0, len(c.pools))
	for _, s := range c.pools {
		out = append(out, s)
	}
	c.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- capacityDesc
	ch <- freeDesc
	ch <- inUseDesc
	ch <- initializedDesc
	ch <- allocsDesc
	ch <- releasesDesc
	ch <- exhaustedDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, s := range c.Snapshot() {
		ch <- prometheus.MustNewConstMetric(capacityDesc, prometheus.GaugeValue, float64(s.Capacity), s.Name)
		ch <- prometheus.MustNewConstMetric(freeDesc, prometheus.GaugeValue, float64(s.Free), s.Name)
		ch <- prometheus.MustNewConstMetric(inUseDesc, prometheus.GaugeValue, float64(s.InUse), s.Name)
		ch <- prometheus.MustNewConstMetric(initializedDesc, prometheus.GaugeValue, float64(s.Initialized), s.Name)
		ch <- prometheus.MustNewConstMetric(allocsDesc, prometheus.CounterValue, float64(s.Allocs), s.Name)
		ch <- prometheus.MustNewConstMetric(releasesDesc, prometheus.CounterValue, float64(s.Releases), s.Name)
		ch <- prometheus.MustNewConstMetric(exhaustedDesc, prometheus.CounterValue, float64(s.Exhausted), s.Name)
	}
}

var _ prometheus.Collector = (*Collector)(nil)
