package windowkit

import "iter"

// New creates a window iterator over the given sequence.
// The sequence is treated as single use: it is pulled lazily,
// at most one element per advance after the initial fill,
// and it is never pulled again once it reported its end.
func New[T any](src iter.Seq[T], opts ...Option) (*Iterator[T], error) {
	next, stop := iter.Pull(src)
	return newIterator(next, []func(){stop}, opts)
}

// NewErrSeq creates a window iterator over a failable sequence.
// A yielded non-nil error ends the sequence: the window drains what was
// already fetched, and the error is accessible unchanged through Iterator.Err.
func NewErrSeq[T any](src iter.Seq2[T, error], opts ...Option) (*Iterator[T], error) {
	next, stop := iter.Pull2(src)
	i, err := newIterator[T](nil, []func(){stop}, opts)
	if err != nil {
		return nil, err
	}
	i.next = func() (T, bool) {
		v, srcErr, ok := next()
		if !ok {
			var zero T
			return zero, false
		}
		if srcErr != nil {
			i.srcErr = srcErr
			var zero T
			return zero, false
		}
		return v, true
	}
	return i, nil
}

// FromPull creates a window iterator over a pull styled source.
// The source must keep reporting the end of the sequence once it reported it.
// Cleanup the source owns can be registered with the WithStop option,
// it will run once when the iterator is closed.
func FromPull[T any](next func() (T, bool), opts ...Option) (*Iterator[T], error) {
	return newIterator(next, nil, opts)
}

func newIterator[T any](next func() (T, bool), stops []func(), opts []Option) (*Iterator[T], error) {
	var c Config
	for _, opt := range opts {
		opt.Configure(&c)
	}
	stops = append(stops, c.stops...)
	if c.Lookbehind < 0 || c.Lookahead < 0 {
		for _, stop := range stops {
			stop()
		}
		return nil, ErrInvalidBound.F("lookbehind: %d, lookahead: %d", c.Lookbehind, c.Lookahead)
	}
	return &Iterator[T]{
		next:       next,
		stops:      stops,
		lookbehind: c.Lookbehind,
		lookahead:  c.Lookahead,
		buf:        make([]slot[T], c.Lookbehind+1+c.Lookahead),
	}, nil
}
