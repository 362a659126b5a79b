// Package dynarray implements a generic, resizable, index-addressable sequence backed by a single
// contiguous buffer.
//
// A [Sequence] offers amortized constant-time appends and linear-time positional removal and
// search. When an append finds no spare slot, the buffer is replaced by a larger one according to
// a [growth.Policy] (doubling by default). Removal compacts the buffer to exactly the remaining
// elements, and this is the only way the capacity ever shrinks.
//
// Sequences are not thread-safe. A caller sharing one between goroutines must synchronize access
// externally.
package dynarray

import (
	"fmt"
	"iter"
	"strings"

	"github.com/teenjuna/dynarray/growth"
)

// NotFound is returned by [Sequence.IndexOf] when no element matches.
const NotFound = -1

// Sequence is a dynamic array of elements of type T.
//
// Slots [0, Size()) hold live elements. Slots [Size(), Capacity()) are spare and never read.
type Sequence[T any] struct {
	buf     []T
	length  int
	equal   func(a, b T) bool
	growth  growth.Policy
	metrics *metrics
}

// New creates a new Sequence of comparable elements, which are matched by [Sequence.IndexOf] with
// the == operator. Many default parameters can be changed by passing configuration functions.
//
// Default configuration:
//   - Capacity: [DefaultCapacity]
//   - Growth: [growth.Doubling]
//   - Prometheus: disabled
//
// Returns an error wrapping [ErrInvalidArgument] if the requested capacity is negative.
func New[T comparable](configFuncs ...ConfigFunc) (*Sequence[T], error) {
	return newSequence(func(a, b T) bool { return a == b }, configFuncs...)
}

// NewFunc is like [New], but elements are matched by the provided equal function. It allows
// sequences of elements that are not comparable, or that define their own notion of equality.
func NewFunc[T any](equal func(a, b T) bool, configFuncs ...ConfigFunc) (*Sequence[T], error) {
	if equal == nil {
		panic("equal func can't be nil")
	}
	return newSequence(equal, configFuncs...)
}

func newSequence[T any](equal func(a, b T) bool, configFuncs ...ConfigFunc) (*Sequence[T], error) {
	cfg := newConfig(configFuncs...)
	if cfg.capacity < 0 {
		return nil, fmt.Errorf("%w: capacity can't be < 0, got %d", ErrInvalidArgument, cfg.capacity)
	}

	s := Sequence[T]{
		buf:    make([]T, cfg.capacity),
		equal:  equal,
		growth: cfg.growth,
	}
	if p := cfg.prometheus; p != nil {
		s.metrics = newMetrics(p.registerer, p.namespace, p.subsystem)
		s.metrics.init(cfg.capacity)
	}

	return &s, nil
}

// Size returns the number of elements in the sequence.
func (s *Sequence[T]) Size() int {
	return s.length
}

// Capacity returns the number of allocated slots. It always matches the size of the backing
// buffer, including before the first growth.
func (s *Sequence[T]) Capacity() int {
	return len(s.buf)
}

// IsEmpty reports whether the sequence has no elements.
func (s *Sequence[T]) IsEmpty() bool {
	return s.Size() == 0
}

// Get returns the element at index.
func (s *Sequence[T]) Get(index int) (T, error) {
	if err := s.check(index); err != nil {
		var zero T
		return zero, err
	}
	return s.buf[index], nil
}

// Set replaces the element at index. It never resizes the sequence.
func (s *Sequence[T]) Set(index int, value T) error {
	if err := s.check(index); err != nil {
		return err
	}
	s.buf[index] = value
	return nil
}

// Add appends value to the end of the sequence.
//
// The buffer grows as soon as an append would leave no spare slot, one element earlier than
// strictly needed, so there is always a free slot for the write.
func (s *Sequence[T]) Add(value T) {
	if s.length+1 >= len(s.buf) {
		s.grow()
	}
	s.buf[s.length] = value
	s.length++
	s.metrics.add(s.length)
}

// AddRange appends values in order. The result is the same as calling [Sequence.Add] for each of
// them.
func (s *Sequence[T]) AddRange(values ...T) {
	for _, value := range values {
		s.Add(value)
	}
}

// RemoveAt removes and returns the element at index, keeping the relative order of the rest.
//
// The remaining elements are moved into a new buffer of exactly Size()-1 slots, so after the call
// Capacity() == Size().
func (s *Sequence[T]) RemoveAt(index int) (T, error) {
	if err := s.check(index); err != nil {
		var zero T
		return zero, err
	}

	value := s.buf[index]
	buf := make([]T, s.length-1)
	n := copy(buf, s.buf[:index])
	copy(buf[n:], s.buf[index+1:s.length])

	s.buf = buf
	s.length--
	s.metrics.remove(s.length)

	return value, nil
}

// Remove removes the first element equal to value. It reports whether such element was found.
func (s *Sequence[T]) Remove(value T) bool {
	index := s.IndexOf(value)
	if index == NotFound {
		return false
	}
	// The index comes from IndexOf, so it's always in range.
	_, _ = s.RemoveAt(index)
	return true
}

// Clear removes all elements from the sequence. The live slots are reset to the zero value of T,
// the buffer itself is kept, so Capacity() doesn't change.
func (s *Sequence[T]) Clear() {
	clear(s.buf[:s.length])
	s.length = 0
	s.metrics.clear()
}

// IndexOf returns the index of the first element equal to value, or [NotFound].
func (s *Sequence[T]) IndexOf(value T) int {
	for i := range s.length {
		if s.equal(value, s.buf[i]) {
			return i
		}
	}
	return NotFound
}

// Contains reports whether the sequence has an element equal to value.
func (s *Sequence[T]) Contains(value T) bool {
	return s.IndexOf(value) != NotFound
}

// Iterator returns a new cursor positioned before the first element.
func (s *Sequence[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{
		seq: s,
		pos: -1,
	}
}

// All returns a sequence of index-element pairs in order.
//
// Like [Iterator], it reads the live sequence, so changing the sequence while ranging over it
// gives unspecified results.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := s.Iterator()
		for it.Next() {
			if !yield(it.pos, it.current()) {
				return
			}
		}
	}
}

// Values returns a sequence of elements in order. See [Sequence.All] for mutation caveats.
func (s *Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.Iterator()
		for it.Next() {
			if !yield(it.current()) {
				return
			}
		}
	}
}

// String renders the sequence as [e0, e1, ...] using the default fmt formatting of elements.
func (s *Sequence[T]) String() string {
	if s.length == 0 {
		return "[]"
	}

	var b strings.Builder
	b.WriteByte('[')
	for i := range s.length {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, s.buf[i])
	}
	b.WriteByte(']')

	return b.String()
}

func (s *Sequence[T]) grow() {
	capacity := len(s.buf)
	next := max(s.growth.Next(capacity), capacity+1)

	buf := make([]T, next)
	copy(buf, s.buf[:s.length])
	s.buf = buf

	s.metrics.grow(s.length, next)
}

func (s *Sequence[T]) check(index int) error {
	if index < 0 || index >= s.length {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, s.length)
	}
	return nil
}
