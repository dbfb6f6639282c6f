package pool

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/joshuapare/slotpool/memory"
	"github.com/joshuapare/slotpool/slots"
)

const defaultName = "slotpool"

// core is the allocation state shared by every pool kind.
type core[T any] struct {
	name      string
	store     memory.Store[T]
	links     slots.Links
	intrusive bool
	slots     slots.Store

	// table holds links when the store cannot hold them itself.
	table slots.Table

	// gens counts releases per slot; a handle is valid only while its
	// generation matches.
	gens [slots.MaxCapacity]uint32

	drop func(*T)
	log  *zap.Logger

	allocs    uint64
	releases  uint64
	exhausted uint64
}

func newCore[T any](store memory.Store[T], opts []Option[T]) (*core[T], error) {
	if memory.SizeOf[T]() == 0 {
		var zero T
		return nil, fmt.Errorf("%w: %T", ErrZeroSize, zero)
	}
	if store == nil {
		return nil, ErrNilStore
	}

	o := options[T]{log: zap.NewNop()}
	if named, ok := store.(interface{ Name() string }); ok {
		o.name = named.Name()
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.name == "" {
		o.name = defaultName
	}

	c := &core[T]{
		name:  o.name,
		store: store,
		slots: slots.New(store.Len()),
		drop:  o.drop,
		log:   o.log,
	}
	if l, ok := store.(slots.Links); ok {
		c.links = l
		c.intrusive = true
	} else {
		c.links = &c.table
	}

	c.log.Debug("pool ready",
		zap.String("pool", c.name),
		zap.Int("capacity", c.slots.Cap()),
		zap.Int("store_len", store.Len()),
		zap.Bool("intrusive_links", c.intrusive),
	)
	return c, nil
}

// alloc places v in a free slot and returns the slot index and generation.
func (c *core[T]) alloc(v T) (uint8, uint32, error) {
	i, ok := c.slots.Take(c.links)
	if !ok {
		c.exhausted++
		if ce := c.log.Check(zapcore.DebugLevel, "pool exhausted"); ce != nil {
			ce.Write(zap.String("pool", c.name), zap.Int("capacity", c.slots.Cap()))
		}
		return 0, 0, &ExhaustedError[T]{Pool: c.name, Capacity: c.slots.Cap(), Value: v}
	}
	*c.store.At(int(i)) = v
	c.allocs++
	return i, c.gens[i], nil
}

func (c *core[T]) check(i uint8, gen uint32) {
	if c.gens[i] != gen {
		panic(fmt.Errorf("%w: %s slot %d", ErrStaleHandle, c.name, i))
	}
}

// live reports whether gen still names the allocation in slot i.
func (c *core[T]) live(i uint8, gen uint32) bool {
	return c != nil && c.gens[i] == gen
}

func (c *core[T]) at(i uint8, gen uint32) *T {
	c.check(i, gen)
	return c.store.At(int(i))
}

// release destroys the element in slot i and pushes the slot on the free list.
func (c *core[T]) release(i uint8, gen uint32) {
	c.check(i, gen)
	c.gens[i]++

	p := c.store.At(int(i))
	if c.drop != nil {
		c.drop(p)
	} else if d, ok := any(p).(Dropper); ok {
		d.Drop()
	}
	var zero T
	*p = zero

	c.slots.Give(c.links, i)
	c.releases++
}

// Name returns the pool name.
func (c *core[T]) Name() string { return c.name }

// Cap returns the number of usable slots.
func (c *core[T]) Cap() int { return c.slots.Cap() }

// Available returns the number of free slots.
func (c *core[T]) Available() int { return c.slots.Free() }

// FreeList returns the free slots in the order they will be handed out.
func (c *core[T]) FreeList() []uint8 { return c.slots.FreeList(c.links) }

// Verify checks the free list and counters for corruption.
func (c *core[T]) Verify() error {
	if err := c.slots.Verify(c.links); err != nil {
		return fmt.Errorf("pool %s: %w", c.name, err)
	}
	return nil
}

// Stats returns a snapshot of the pool counters.
func (c *core[T]) Stats() Stats {
	head := -1
	if c.slots.Free() > 0 {
		head = int(c.slots.Head())
	}
	return Stats{
		Name:        c.name,
		Capacity:    c.slots.Cap(),
		Free:        c.slots.Free(),
		InUse:       c.slots.InUse(),
		Initialized: c.slots.Initialized(),
		Head:        head,
		Allocs:      c.allocs,
		Releases:    c.releases,
		Exhausted:   c.exhausted,
	}
}

// formatSlot prints the element held by a live handle, or <released>.
func formatSlot[T any](f fmt.State, verb rune, c *core[T], i uint8, gen uint32) {
	if !c.live(i, gen) {
		_, _ = io.WriteString(f, "<released>")
		return
	}
	_, _ = fmt.Fprintf(f, fmt.FormatString(f, verb), *c.store.At(int(i)))
}
