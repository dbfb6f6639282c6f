package pool

import "go.uber.org/zap"

// Option configures a pool at construction.
type Option[T any] func(*options[T])

type options[T any] struct {
	name string
	drop func(*T)
	log  *zap.Logger
}

// WithName sets the name used in errors, stats, and logs. It defaults to the
// store's Name() when the store has one.
func WithName[T any](name string) Option[T] {
	return func(o *options[T]) { o.name = name }
}

// WithDrop sets the destructor run on an element when its slot is released.
// It takes precedence over a Drop method on *T.
func WithDrop[T any](fn func(*T)) Option[T] {
	return func(o *options[T]) { o.drop = fn }
}

// WithLogger sets the logger for construction and exhaustion events.
func WithLogger[T any](l *zap.Logger) Option[T] {
	return func(o *options[T]) {
		if l != nil {
			o.log = l
		}
	}
}

// Dropper is implemented by element types that need cleanup when their slot
// is released.
type Dropper interface {
	Drop()
}
