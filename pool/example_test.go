package pool_test

import (
	"fmt"

	"github.com/joshuapare/slotpool/memory"
	"github.com/joshuapare/slotpool/pool"
)

var frames = memory.NewBlock[[32]byte]("frames", 4)

func ExampleManual() {
	lease := frames.MustClaim()
	defer lease.Release()

	p, err := pool.NewManual[[32]byte](lease)
	if err != nil {
		panic(err)
	}

	a, _ := p.Alloc([32]byte{'a'})
	b, _ := p.Alloc([32]byte{'b'})
	fmt.Println(a.Index(), b.Index(), p.Available())

	// slots must be handed back or they leak
	p.Dealloc(a)
	c, _ := p.Alloc([32]byte{'c'})
	fmt.Println(c.Index(), string(p.Get(c)[:1]))
	// Output:
	// 0 1 2
	// 0 c
}

func ExampleAuto_Use() {
	p, err := pool.NewAuto[int](memory.NewArray[int](2))
	if err != nil {
		panic(err)
	}

	_ = p.Use(41, func(v *int) error {
		*v++
		fmt.Println(*v, p.Available())
		return nil
	})
	fmt.Println(p.Available())
	// Output:
	// 42 1
	// 2
}

func ExampleRejected() {
	p, _ := pool.NewShared[string](memory.NewArray[string](1))
	l, _ := p.Alloc("first")
	defer l.Release()

	_, err := p.Alloc("second")
	v, ok := pool.Rejected[string](err)
	fmt.Println(err)
	fmt.Println(v, ok)
	// Output:
	// pool: exhausted (slotpool, capacity 1)
	// second true
}
