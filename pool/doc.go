// Package pool provides fixed-capacity object pools over pre-provisioned memory.
//
// # Overview
//
// A pool hands out single-element slots from a memory.Store and takes them
// back, never allocating and never resizing. Allocation and release are O(1).
// At most 255 slots are usable; larger stores are silently capped.
//
// All three pool kinds run the same algorithm (package slots) and differ only
// in how a slot gets released:
//
//	Kind        Alloc receiver       Release                     Handle
//	Manual      *Manual (exclusive)  m.Dealloc(box)              Box
//	Auto        *Auto (exclusive)    h.Release(), usually defer  Handle
//	Shared      Shared (copyable)    l.Release(), usually defer  Local
//
// # Manual Release
//
// Manual makes the caller hand the Box back to the pool it came from. A Box
// that is dropped without Dealloc leaks its slot; the element's destructor
// never runs.
//
//	p, err := pool.NewManual[Conn](memory.NewArray[Conn](16))
//	if err != nil {
//	    return err
//	}
//	box, err := p.Alloc(Conn{ID: 7})
//	if err != nil {
//	    conn, _ := pool.Rejected[Conn](err) // the value comes back untouched
//	    ...
//	}
//	p.Get(box).ID++
//	p.Dealloc(box)
//
// # Automatic Release
//
// Auto and Shared handles carry their pool, so releasing takes no arguments
// and fits a defer. Use wraps the whole allocate/run/release sequence and
// releases on every exit path, panics included.
//
//	err := a.Use(Conn{ID: 7}, func(c *Conn) error {
//	    return c.Serve()
//	})
//
// Shared is a small value: copies handed to independent owners all allocate
// from the same slots. A Local may outlive the Shared copy that produced it.
//
// # Destructors
//
// Releasing a slot runs the WithDrop function if one was given, otherwise
// Drop when *T implements Dropper, exactly once, and then zeroes the slot.
// Nothing runs when a pool or its memory lease goes away with slots still
// allocated: those values are leaked rather than destroyed.
//
// # Errors
//
// Exhaustion is the only recoverable failure. Alloc returns an
// *ExhaustedError carrying the rejected value, matching ErrExhausted under
// errors.Is. Zero-sized element types fail construction with ErrZeroSize.
// Releasing a handle twice, into the wrong pool, or touching it after release
// panics with ErrStaleHandle or ErrForeignHandle.
//
// # Thread Safety
//
// Pools have no internal synchronization. Every Alloc and every release on one
// pool must be serialized by the caller. Box and Handle values may be passed
// to another goroutine under that rule; Shared pools and their Locals belong
// to a single goroutine.
package pool
