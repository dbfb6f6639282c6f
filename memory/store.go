package memory

// Store is a fixed-length run of elements with pointer access by index.
// At may skip bounds checks beyond Go's own; callers ensure i < Len().
type Store[T any] interface {
	Len() int
	At(i int) *T
}

// Array is a slice-backed Store allocated once and never resized.
type Array[T any] []T

// NewArray allocates an Array of n zero elements.
func NewArray[T any](n int) Array[T] {
	return make(Array[T], n)
}

// Len returns the number of elements.
func (a Array[T]) Len() int { return len(a) }

// At returns a pointer to element i.
func (a Array[T]) At(i int) *T { return &a[i] }

var _ Store[int] = Array[int](nil)
