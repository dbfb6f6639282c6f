package pool

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/slotpool/memory"
)

func Test_Shared_Sanity(t *testing.T) {
	block := memory.NewBlock[int8]("shared-i8", 4)
	lease := block.MustClaim()
	defer lease.Release()

	s, err := NewShared[int8](lease)
	require.NoError(t, err)

	l0, err := s.Alloc(-1)
	require.NoError(t, err)
	l1, err := s.Alloc(-2)
	require.NoError(t, err)
	l2, err := s.Alloc(-3)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), l1.Index())
	assertStats(t, s.Stats(), 3, 1, 3)

	l0.Release()
	l2.Release()
	assertStats(t, s.Stats(), 2, 3, 3)

	l, err := s.Alloc(-4)
	require.NoError(t, err)
	assert.Equal(t, uint8(2), l.Index())
	assert.Equal(t, int8(-4), *l.Value())
	assertStats(t, s.Stats(), 0, 2, 4)
}

// Test_Shared_CopiesShareSlots gives two independent owners their own copy of
// the accessor and checks they draw from one set of slots.
func Test_Shared_CopiesShareSlots(t *testing.T) {
	s, err := NewShared[int](memory.NewArray[int](3))
	require.NoError(t, err)

	type owner struct {
		pool  Shared[int]
		local []Local[int]
	}
	a := owner{pool: s}
	b := owner{pool: s}

	for i := range 2 {
		l, err := a.pool.Alloc(i)
		require.NoError(t, err)
		a.local = append(a.local, l)
	}
	l, err := b.pool.Alloc(100)
	require.NoError(t, err)
	b.local = append(b.local, l)

	_, err = b.pool.Alloc(101)
	require.ErrorIs(t, err, ErrExhausted, "copies must see the same counters")
	assert.Equal(t, 0, s.Available())

	a.local[0].Release()
	l, err = b.pool.Alloc(102)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), l.Index())
}

// Test_Shared_LocalOutlivesAccessor lets the accessor copy go out of scope
// before the Local is released.
func Test_Shared_LocalOutlivesAccessor(t *testing.T) {
	var live atomic.Int64
	block := memory.NewBlock[counted]("outlive", 2)
	lease := block.MustClaim()
	defer lease.Release()

	mk := func() Local[counted] {
		s, err := NewShared[counted](lease)
		require.NoError(t, err)
		l, err := s.Alloc(newCounted(1, &live))
		require.NoError(t, err)
		return l
	}
	l := mk()
	assert.Equal(t, 1, l.Value().id)
	assert.Equal(t, int64(1), live.Load())

	l.Release()
	assert.Equal(t, int64(0), live.Load())
}

func Test_Shared_UseAndDestructor(t *testing.T) {
	var live atomic.Int64
	s, err := NewShared[counted](memory.NewArray[counted](1))
	require.NoError(t, err)

	err = s.Use(newCounted(4, &live), func(c *counted) error {
		assert.Equal(t, int64(1), live.Load())
		c.id++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), live.Load())
	assert.Equal(t, uint64(1), s.Stats().Releases)
}

func Test_Shared_ZeroSizeRejected(t *testing.T) {
	_, err := NewShared[[0]byte](memory.NewArray[[0]byte](1))
	require.ErrorIs(t, err, ErrZeroSize)
}

func Test_Shared_LocalFormatsAsValue(t *testing.T) {
	s, err := NewShared[float64](memory.NewArray[float64](2))
	require.NoError(t, err)

	l, err := s.Alloc(1.5)
	require.NoError(t, err)
	assert.Equal(t, "1.50", fmt.Sprintf("%.2f", l))

	l.Release()
	assert.Equal(t, "<released>", fmt.Sprintf("%.2f", l))
}
