package windowkit

import (
	"errors"
	"fmt"
)

const (
	// ErrInvalidBound is returned by the constructors
	// when a negative lookbehind or lookahead bound is requested.
	ErrInvalidBound Error = "windowkit: window bounds must be non-negative"
	// ErrOutOfRange is returned by the offset accessors
	// when the requested offset falls outside of the window's offset range.
	// The returned error states the offending offset and the valid inclusive range.
	ErrOutOfRange Error = "windowkit: offset out of range"
)

// Error is an error implementation that allows declaring error values as exported constants.
type Error string

func (err Error) Error() string { return string(err) }

// Wrap bundles another error value together with this Error,
// the result matches both through errors.Is / errors.As.
func (err Error) Wrap(oth error) error {
	if oth == nil {
		return err
	}
	return wrapper{Owner: err, Wrapped: oth}
}

// F formats additional detail onto the error value.
func (err Error) F(format string, a ...any) error {
	return err.Wrap(fmt.Errorf(format, a...))
}

type wrapper struct {
	Owner   Error
	Wrapped error // must be not nil
}

func (w wrapper) Error() string {
	return fmt.Sprintf("[%s] %s", w.Owner, w.Wrapped.Error())
}

func (w wrapper) As(target any) bool {
	return errors.As(w.Owner, target) || errors.As(w.Wrapped, target)
}

func (w wrapper) Is(target error) bool {
	return errors.Is(w.Owner, target) || errors.Is(w.Wrapped, target)
}
