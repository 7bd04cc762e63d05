// Package windowkit provides a windowed iteration adapter.
//
// A window iterator wraps a forward-only sequence and exposes,
// next to the current element, a fixed number of already visited elements (lookbehind)
// and a fixed number of elements fetched ahead of the consumer (lookahead).
// Elements are addressed with signed offsets relative to the current position:
// offset zero is the current element, negative offsets reach into the history,
// positive offsets into the pre-fetched future.
//
// The adapter pulls at most one element from the source per advance,
// except on the first advance where it fills the current and lookahead slots.
// When the source runs out, the window keeps advancing until the already
// fetched elements drained through the current position.
package windowkit

// Iterator is a windowed view over a forward-only sequence.
//
// An Iterator must be used from a single goroutine;
// wrap it with external synchronisation if shared access is required.
type Iterator[T any] struct {
	next  func() (T, bool)
	stops []func()

	lookbehind int
	lookahead  int
	// buf holds lookbehind+1+lookahead slots,
	// the current element lives at index lookbehind for the Iterator's whole lifetime.
	buf []slot[T]

	phase phase
	// remaining is the number of advances left with a valid current element,
	// it is only meaningful while draining.
	remaining int

	srcErr error
	closed bool
}

type slot[T any] struct {
	value T
	ok    bool
}

// Slot is a single window position as reported by Iterator.Window.
// OK reports whether the position holds an element;
// a position the source never reached, or that already drained out, is not an error, just absent.
type Slot[T any] struct {
	Value T
	OK    bool
}

type phase int

const (
	phaseUninitialized phase = iota
	phaseActive
	phaseDraining
	phaseExhausted
)

// Next advances the window by one position.
// It reports whether a current element exists after the call.
// Once Next returned false, every further call returns false as well,
// and the lookbehind slots keep the values they held at the point of exhaustion.
func (i *Iterator[T]) Next() bool {
	switch i.phase {
	case phaseUninitialized:
		return i.fill()
	case phaseActive:
		if v, ok := i.pull(); ok {
			i.shift(slot[T]{value: v, ok: true})
			return true
		}
		i.shift(slot[T]{})
		if i.lookahead == 0 {
			i.phase = phaseExhausted
			return false
		}
		i.phase = phaseDraining
		i.remaining = i.lookahead
		return true
	case phaseDraining:
		i.shift(slot[T]{})
		i.remaining--
		if i.remaining == 0 {
			i.phase = phaseExhausted
			return false
		}
		return true
	default: // exhausted
		return false
	}
}

// fill populates the current and lookahead slots on the first advance.
func (i *Iterator[T]) fill() bool {
	for n := i.lookbehind; n < len(i.buf); n++ {
		v, ok := i.pull()
		if !ok {
			filled := n - i.lookbehind
			if filled == 0 {
				i.phase = phaseExhausted
				return false
			}
			i.phase = phaseDraining
			i.remaining = filled
			return true
		}
		i.buf[n] = slot[T]{value: v, ok: true}
	}
	i.phase = phaseActive
	return true
}

// shift moves every slot one position toward the low end
// and places the incoming slot at the top.
// Keeping the current element at a fixed index makes At a plain bounds-checked lookup.
func (i *Iterator[T]) shift(top slot[T]) {
	copy(i.buf, i.buf[1:])
	i.buf[len(i.buf)-1] = top
}

func (i *Iterator[T]) pull() (T, bool) {
	if i.closed {
		var zero T
		return zero, false
	}
	return i.next()
}

// At returns the element at the given offset relative to the current position.
// The valid offset range is [-Lookbehind(), Lookahead()]; outside of it,
// At fails with ErrOutOfRange. Within the range, a position without an element
// reports ok as false, which is a regular result and not an error.
func (i *Iterator[T]) At(offset int) (_ T, ok bool, _ error) {
	if offset < -i.lookbehind || i.lookahead < offset {
		var zero T
		return zero, false, ErrOutOfRange.F("offset %d is outside of the valid range [%d, %d]",
			offset, -i.lookbehind, i.lookahead)
	}
	s := i.buf[i.lookbehind+offset]
	return s.value, s.ok, nil
}

// Value returns the current element, the one at offset zero.
// Before the first advance, and after the window exhausted, there is no current element.
func (i *Iterator[T]) Value() (T, bool) {
	s := i.buf[i.lookbehind]
	return s.value, s.ok
}

// Prev returns the element one position behind the current one.
// It fails with ErrOutOfRange when the window has no lookbehind.
func (i *Iterator[T]) Prev() (T, bool, error) { return i.At(-1) }

// Peek returns the already fetched element one position ahead of the current one.
// It fails with ErrOutOfRange when the window has no lookahead.
func (i *Iterator[T]) Peek() (T, bool, error) { return i.At(1) }

// Lookbehind returns how many historical elements the window retains.
func (i *Iterator[T]) Lookbehind() int { return i.lookbehind }

// Lookahead returns how many elements the window keeps fetched ahead.
func (i *Iterator[T]) Lookahead() int { return i.lookahead }

// Size returns the total slot count of the window.
func (i *Iterator[T]) Size() int { return len(i.buf) }

// Window returns a snapshot copy of the window, oldest slot first.
func (i *Iterator[T]) Window() []Slot[T] {
	out := make([]Slot[T], 0, len(i.buf))
	for _, s := range i.buf {
		out = append(out, Slot[T]{Value: s.value, OK: s.ok})
	}
	return out
}

// Err returns the error the source failed with, unchanged.
// Running out of elements is not a failure; Err is nil for sources that ended regularly.
func (i *Iterator[T]) Err() error {
	return i.srcErr
}

// Close releases the coupling to the source; it is safe to call multiple times.
// After Close the source is never pulled again,
// while the already fetched window content drains through Next as usual.
func (i *Iterator[T]) Close() error {
	if i.closed {
		return nil
	}
	i.closed = true
	for _, stop := range i.stops {
		stop()
	}
	return nil
}
