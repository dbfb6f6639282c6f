// Package buf contains overflow-safe helpers for addressing fixed-stride slots
// inside a raw byte region.
package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result would overflow int.
// This is what keeps count * stride calculations for mapped regions honest.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > 0 && b > 0 && a > math.MaxInt/b {
		return 0, false
	}
	if a < 0 && b < 0 && a < math.MaxInt/b {
		return 0, false
	}
	if a > 0 && b < 0 && b < math.MinInt/a {
		return 0, false
	}
	if a < 0 && b > 0 && a < math.MinInt/b {
		return 0, false
	}
	return a * b, true
}

// RegionSize returns the number of bytes needed for count slots of stride bytes,
// or an error describing the specific failure (negative input or overflow).
//
//	size, err := buf.RegionSize(n, int(unsafe.Sizeof(v)))
//	if err != nil {
//	    return fmt.Errorf("map: %w", err)
//	}
func RegionSize(count, stride int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	if stride <= 0 {
		return 0, fmt.Errorf("non-positive stride: %d", stride)
	}
	size, ok := MulOverflowSafe(count, stride)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d * stride=%d", count, stride)
	}
	return size, nil
}

// Slot returns the stride-byte window of slot index inside b, if it fits.
func Slot(b []byte, index, stride int) ([]byte, bool) {
	if index < 0 || stride <= 0 {
		return nil, false
	}
	off, ok := MulOverflowSafe(index, stride)
	if !ok {
		return nil, false
	}
	return Slice(b, off, stride)
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	_, ok := Slice(b, off, n)
	return ok
}
