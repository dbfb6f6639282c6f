package scenario

import (
	"fmt"

	"github.com/eapache/queue"
	"go.uber.org/zap"

	"github.com/joshuapare/slotpool/memory"
	"github.com/joshuapare/slotpool/pool"
	"github.com/joshuapare/slotpool/poolmetrics"
	"github.com/joshuapare/slotpool/slots"
)

const defaultScriptName = "scenario"

// Event records the outcome of one executed step.
type Event struct {
	Step      int        `json:"step"`
	Op        Op         `json:"op"`
	Value     int64      `json:"value,omitempty"`
	Slot      int        `json:"slot"`
	Exhausted bool       `json:"exhausted,omitempty"`
	Stats     pool.Stats `json:"stats"`
}

// Trace is the full record of a run.
type Trace struct {
	Script   string     `json:"script"`
	Events   []Event    `json:"events"`
	Final    pool.Stats `json:"final"`
	FreeList []int      `json:"free_list"`
}

// Runner executes scripts. The zero value runs silently.
type Runner struct {
	Log     *zap.Logger
	Metrics *poolmetrics.Collector
}

type liveBox struct {
	box pool.Box[int64]
	seq uint64
}

type queued struct {
	slot int
	seq  uint64
}

// run is the state of one script execution.
type run struct {
	log     *zap.Logger
	pool    *pool.Manual[int64]
	metrics *poolmetrics.Collector
	verify  func() error
	live    map[int]liveBox
	// order holds queued entries in allocation order; entries whose slot has
	// since been released or reused are skipped lazily.
	order *queue.Queue
	seq   uint64
}

// blockLen is the number of int64 elements backing a script's pool. Storage
// past the first MaxCapacity+1 elements could never be reached, so larger
// capacities are clamped before anything is allocated.
func blockLen(capacity int) int {
	return min(capacity, slots.MaxCapacity+1)
}

// Run executes s against a fresh pool over a block of s.Capacity int64 slots.
// It stops at the first step whose outcome contradicts the script.
func (r *Runner) Run(s *Script) (*Trace, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}
	name := s.Name
	if name == "" {
		name = defaultScriptName
	}

	block := memory.NewBlock[int64](name, blockLen(s.Capacity))
	lease := block.MustClaim()
	defer func() { _ = lease.Release() }()

	p, err := pool.NewManual[int64](lease, pool.WithLogger[int64](log))
	if err != nil {
		return nil, err
	}

	st := &run{
		log:     log.With(zap.String("script", name)),
		pool:    p,
		metrics: r.Metrics,
		verify:  p.Verify,
		live:    make(map[int]liveBox),
		order:   queue.New(),
	}
	trace := &Trace{Script: name}
	if err := st.steps(s.Steps, trace); err != nil {
		return trace, err
	}

	st.log.Info("script finished",
		zap.Int("steps", len(trace.Events)),
		zap.Int("in_use", trace.Final.InUse),
		zap.Uint64("exhausted", trace.Final.Exhausted),
	)
	return trace, nil
}

// steps executes every step into trace. trace.Final and trace.FreeList
// describe the pool as it was left, whether or not a step failed.
func (st *run) steps(steps []Step, trace *Trace) error {
	defer func() {
		trace.Final = st.pool.Stats()
		trace.FreeList = freeList(st.pool)
	}()

	for i, step := range steps {
		times := max(step.Repeat, 1)
		for range times {
			ev, err := st.exec(i, step)
			if err != nil {
				return err
			}
			ev.Stats = st.pool.Stats()
			if err := st.verify(); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
			if st.metrics != nil {
				st.metrics.Record(ev.Stats)
			}
			st.log.Debug("step",
				zap.Int("step", ev.Step),
				zap.String("op", string(ev.Op)),
				zap.Int("slot", ev.Slot),
				zap.Bool("exhausted", ev.Exhausted),
				zap.Int("free", ev.Stats.Free),
			)
			trace.Events = append(trace.Events, ev)
		}
	}
	return nil
}

func (st *run) exec(i int, step Step) (Event, error) {
	switch step.Op {
	case OpAlloc:
		return st.alloc(i, step)
	case OpRelease:
		return st.release(i, step)
	default:
		return Event{}, fmt.Errorf("%w: step %d: unknown op %q", ErrInvalidScript, i, step.Op)
	}
}

func (st *run) alloc(i int, step Step) (Event, error) {
	ev := Event{Step: i, Op: OpAlloc, Value: step.Value, Slot: -1}

	box, err := st.pool.Alloc(step.Value)
	if err != nil {
		v, ok := pool.Rejected[int64](err)
		if !ok {
			return ev, err
		}
		if v != step.Value {
			return ev, fmt.Errorf("%w: step %d: rejected value %d, offered %d", ErrExpectation, i, v, step.Value)
		}
		ev.Exhausted = true
		if step.ExpectSlot != nil {
			return ev, fmt.Errorf("%w: step %d: expected slot %d, pool exhausted", ErrExpectation, i, *step.ExpectSlot)
		}
		return ev, nil
	}

	slot := int(box.Index())
	ev.Slot = slot
	if step.ExpectExhausted {
		return ev, fmt.Errorf("%w: step %d: expected exhaustion, got slot %d", ErrExpectation, i, slot)
	}
	if step.ExpectSlot != nil && *step.ExpectSlot != slot {
		return ev, fmt.Errorf("%w: step %d: expected slot %d, got %d", ErrExpectation, i, *step.ExpectSlot, slot)
	}

	st.seq++
	st.live[slot] = liveBox{box: box, seq: st.seq}
	st.order.Add(queued{slot: slot, seq: st.seq})
	return ev, nil
}

func (st *run) release(i int, step Step) (Event, error) {
	ev := Event{Step: i, Op: OpRelease, Slot: -1}

	slot := -1
	switch {
	case step.Slot != nil:
		slot = *step.Slot
	case step.Pick == PickOldest:
		slot = st.oldest()
	}
	ev.Slot = slot

	lb, ok := st.live[slot]
	if !ok {
		if slot < 0 {
			return ev, fmt.Errorf("%w: step %d: nothing to release", ErrExpectation, i)
		}
		return ev, fmt.Errorf("%w: step %d: slot %d is not allocated", ErrExpectation, i, slot)
	}
	ev.Value = *st.pool.Get(lb.box)
	st.pool.Dealloc(lb.box)
	delete(st.live, slot)
	return ev, nil
}

// oldest returns the slot of the earliest live allocation, or -1.
func (st *run) oldest() int {
	for st.order.Length() > 0 {
		q := st.order.Peek().(queued)
		if lb, ok := st.live[q.slot]; ok && lb.seq == q.seq {
			return q.slot
		}
		st.order.Remove()
	}
	return -1
}

func freeList(p *pool.Manual[int64]) []int {
	l := p.FreeList()
	out := make([]int, len(l))
	for i, s := range l {
		out[i] = int(s)
	}
	return out
}
