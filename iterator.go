package dynarray

import "fmt"

// Iterator is a forward-only cursor over a [Sequence]. It starts before the first element and
// can't be restarted: call [Sequence.Iterator] again for a new pass.
//
// The iterator doesn't own or snapshot the sequence. It reads the element at its current position
// from the live sequence, so adding, removing or clearing elements while an iterator is in use
// makes the remaining elements it yields unspecified. Keeping the sequence unchanged during
// iteration is the caller's responsibility.
type Iterator[T any] struct {
	seq  *Sequence[T]
	pos  int
	done bool
}

// Next advances the iterator to the next element. It returns false once there are no more
// elements, and keeps returning false after that.
func (it *Iterator[T]) Next() bool {
	if it.done {
		return false
	}
	it.pos++
	if it.pos >= it.seq.length {
		it.done = true
		return false
	}
	return true
}

// Value returns the current element. It returns an error wrapping [ErrInvalidState] if
// [Iterator.Next] wasn't called yet or the iterator is exhausted.
func (it *Iterator[T]) Value() (T, error) {
	if it.pos < 0 {
		var zero T
		return zero, fmt.Errorf("%w: Next wasn't called", ErrInvalidState)
	}
	if it.done || it.pos >= it.seq.length {
		var zero T
		return zero, fmt.Errorf("%w: iterator is exhausted", ErrInvalidState)
	}
	return it.current(), nil
}

func (it *Iterator[T]) current() T {
	return it.seq.buf[it.pos]
}
