package iox

import (
	"io"
	"iter"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"
)

// ClosingIterator couples a lazy sequence with the resource that feeds
// it. The resource is closed exactly once: when the sequence is
// exhausted, when Close is called early, or when a deferred Close fires
// after either.
type ClosingIterator[T any] struct {
	next func() (T, bool) // Pull side of the wrapped sequence.
	stop func()           // Terminates the wrapped sequence.
	src  io.Closer        // Resource released when iteration ends.
	errf func() error     // Optional source error hook, checked at close.

	closed atomic.Bool // Indicates if the resource has been released.
	once   sync.Once   // Guards the single close.
	err    error       // Error recorded by the close.
}

// NewClosingIterator wraps seq so that src is released the moment the
// sequence ends, however it ends.
func NewClosingIterator[T any](seq iter.Seq[T], src io.Closer) *ClosingIterator[T] {
	next, stop := iter.Pull(seq)
	return &ClosingIterator[T]{next: next, stop: stop, src: src}
}

// Next yields the next element. On exhaustion the resource is closed
// before Next returns; after that, and after an explicit Close, Next
// yields nothing.
func (it *ClosingIterator[T]) Next() (T, bool) {
	var zero T
	if it.closed.Load() {
		return zero, false
	}

	v, ok := it.next()
	if !ok {
		it.close()
		return zero, false
	}
	return v, true
}

// All exposes the remaining elements as a range over func sequence.
// Breaking out of the range leaves the iterator open; only exhaustion
// or Close releases the resource.
func (it *ClosingIterator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Close releases the resource early and terminates the sequence. Only
// the first call does work and reports its error; later calls are
// no-ops returning nil.
func (it *ClosingIterator[T]) Close() error {
	if it.closed.Load() {
		return nil
	}
	it.close()
	return it.err
}

// Closed reports whether the underlying resource has been released.
func (it *ClosingIterator[T]) Closed() bool {
	return it.closed.Load()
}

// Err reports the error recorded when the iterator shut down: the
// source error if the sequence failed, combined with the resource's
// close error. It is nil while the iterator is still open.
func (it *ClosingIterator[T]) Err() error {
	return it.err
}

func (it *ClosingIterator[T]) close() {
	it.once.Do(func() {
		it.stop()

		err := it.src.Close()
		if it.errf != nil {
			err = multierr.Append(it.errf(), err)
		}
		it.err = err

		it.closed.Store(true)
	})
}
