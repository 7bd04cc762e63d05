// Package windowkitcontract defines the behavioral requirements
// that every window iterator construction must satisfy,
// regardless of what kind of source feeds it.
package windowkitcontract

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/windowkit"
)

// Subject contains the dependencies the Iterator contract needs
// to construct and feed the window iterator under test.
type Subject[T any] struct {
	// MakeIterator creates the iterator under test over the given source values,
	// configured with the given window bounds.
	MakeIterator func(tb testing.TB, values []T, c windowkit.Config) *windowkit.Iterator[T]
	// MakeValue creates a single source element.
	MakeValue func(tb testing.TB) T
}

// Iterator returns the behavior suite of the window iterator adapter.
func Iterator[T any](subject Subject[T]) testcase.Suite {
	s := testcase.NewSpec(nil)

	var (
		lookbehind = testcase.Let(s, func(t *testcase.T) int {
			return t.Random.IntB(0, 3)
		})
		lookahead = testcase.Let(s, func(t *testcase.T) int {
			return t.Random.IntB(1, 3)
		})
		values = testcase.Let(s, func(t *testcase.T) []T {
			var vs []T
			t.Random.Repeat(3, 25, func() {
				vs = append(vs, subject.MakeValue(t))
			})
			return vs
		})
		iterator = testcase.Let(s, func(t *testcase.T) *windowkit.Iterator[T] {
			itr := subject.MakeIterator(t, values.Get(t), windowkit.Config{
				Lookbehind: lookbehind.Get(t),
				Lookahead:  lookahead.Get(t),
			})
			t.Defer(itr.Close)
			return itr
		})
	)

	s.Then("offsets outside of the window fail with ErrOutOfRange in every phase", func(t *testcase.T) {
		itr := iterator.Get(t)

		var assertOutOfRange = func() {
			t.Helper()
			_, _, err := itr.At(lookahead.Get(t) + 1)
			assert.ErrorIs(t, err, windowkit.ErrOutOfRange)
			_, _, err = itr.At(-lookbehind.Get(t) - 1)
			assert.ErrorIs(t, err, windowkit.ErrOutOfRange)
		}

		assertOutOfRange()
		for itr.Next() {
			assertOutOfRange()
		}
		assertOutOfRange()
	})

	s.Then("every offset within the window is empty before the first advance", func(t *testcase.T) {
		itr := iterator.Get(t)

		for offset := -lookbehind.Get(t); offset <= lookahead.Get(t); offset++ {
			_, ok, err := itr.At(offset)
			assert.NoError(t, err)
			assert.False(t, ok)
		}
	})

	s.Then("advancing promotes the lookahead element into the current position", func(t *testcase.T) {
		itr := iterator.Get(t)
		if !itr.Next() { // initial fill
			return
		}
		for {
			expValue, expOK, err := itr.At(1)
			assert.NoError(t, err)

			cont := itr.Next()
			gotValue, gotOK := itr.Value()
			assert.Equal(t, expOK, cont)
			assert.Equal(t, expOK, gotOK)
			if !cont {
				break
			}
			assert.Equal(t, expValue, gotValue)
		}
	})

	s.Then("every source element becomes the current element exactly once", func(t *testcase.T) {
		itr := iterator.Get(t)

		var got []T
		for itr.Next() {
			v, ok := itr.Value()
			assert.True(t, ok)
			got = append(got, v)
		}
		assert.Equal(t, values.Get(t), got)
	})

	s.Then("exhaustion is stable and keeps the trailing history frozen", func(t *testcase.T) {
		itr := iterator.Get(t)
		for itr.Next() {
		}

		frozen := itr.Window()

		t.Random.Repeat(3, 7, func() {
			assert.False(t, itr.Next())
		})

		assert.Equal(t, frozen, itr.Window())
		for offset := 0; offset <= lookahead.Get(t); offset++ {
			_, ok, err := itr.At(offset)
			assert.NoError(t, err)
			assert.False(t, ok)
		}
	})

	s.Then("reading without advancing has no side effect", func(t *testcase.T) {
		itr := iterator.Get(t)
		itr.Next()

		for offset := -lookbehind.Get(t); offset <= lookahead.Get(t); offset++ {
			v1, ok1, err1 := itr.At(offset)
			v2, ok2, err2 := itr.At(offset)
			assert.Equal(t, v1, v2)
			assert.Equal(t, ok1, ok2)
			assert.Equal(t, err1, err2)
		}
	})

	s.Then("a window without lookahead exhausts in step with the source", func(t *testcase.T) {
		itr := subject.MakeIterator(t, values.Get(t), windowkit.Config{
			Lookbehind: lookbehind.Get(t),
		})
		t.Defer(itr.Close)

		var count int
		for itr.Next() {
			_, ok := itr.Value()
			assert.True(t, ok)
			count++
		}
		assert.Equal(t, len(values.Get(t)), count)
		_, ok := itr.Value()
		assert.False(t, ok)
	})

	return s.AsSuite("Iterator")
}
