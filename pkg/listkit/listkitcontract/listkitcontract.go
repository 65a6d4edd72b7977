// Package listkitcontract holds the behavioral contract of listkit.List.
package listkitcontract

import (
	"fmt"
	"reflect"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/listkit/pkg/listkit"
	"go.llib.dev/listkit/port/contract"
)

// Subject is a list under test together with the elements it must yield.
type Subject[T any] struct {
	List listkit.List[T]
	Want []T
}

// List checks that a listkit.List keeps its promises:
// a stable length, repeatable random access, and traversals that agree with indexing.
func List[T any](mk contract.Make[Subject[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) Subject[T] {
		return mk(t)
	})

	s.Test("Len matches the number of expected elements", func(t *testcase.T) {
		sub := subject.Get(t)
		assert.Equal(t, len(sub.Want), sub.List.Len())
		assert.Equal(t, sub.List.Len(), sub.List.Len(), "length is expected to be stable")
	})

	s.Test("At returns every element by its index", func(t *testcase.T) {
		sub := subject.Get(t)
		for i, want := range sub.Want {
			got, err := sub.List.At(i)
			assert.NoError(t, err)
			assert.Equal(t, want, got, assert.MessageF("index %d", i))
		}
	})

	s.Test("At is repeatable", func(t *testcase.T) {
		sub := subject.Get(t)
		if len(sub.Want) == 0 {
			t.Skip("empty list")
		}
		i := t.Random.IntN(len(sub.Want))
		first, err := sub.List.At(i)
		assert.NoError(t, err)
		second, err := sub.List.At(i)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	s.Test("At rejects indexes outside of the list", func(t *testcase.T) {
		sub := subject.Get(t)
		_, err := sub.List.At(-1)
		assert.ErrorIs(t, err, listkit.ErrOutOfRange)
		_, err = sub.List.At(sub.List.Len())
		assert.ErrorIs(t, err, listkit.ErrOutOfRange)
		_, err = sub.List.At(sub.List.Len() + t.Random.IntBetween(1, 42))
		assert.ErrorIs(t, err, listkit.ErrOutOfRange)
	})

	s.Test("traversal yields the same elements as indexing", func(t *testcase.T) {
		sub := subject.Get(t)
		var got []T
		it := listkit.Iterate(sub.List)
		for it.Next() {
			got = append(got, it.Value())
		}
		assert.NoError(t, it.Err())
		assert.NoError(t, it.Close())
		assert.Equal(t, len(sub.Want), len(got))
		for i := range sub.Want {
			assert.Equal(t, sub.Want[i], got[i], assert.MessageF("index %d", i))
		}
	})

	s.Test("an exhausted traversal stays exhausted", func(t *testcase.T) {
		sub := subject.Get(t)
		it := listkit.Iterate(sub.List)
		for it.Next() {
		}
		assert.False(t, it.Next())
		assert.NoError(t, it.Err())
	})

	s.Test("traversals are repeatable", func(t *testcase.T) {
		sub := subject.Get(t)
		t.Random.Repeat(2, 5, func() {
			vs, err := listkit.Collect(sub.List)
			assert.NoError(t, err)
			assert.Equal(t, len(sub.Want), len(vs))
			for i := range sub.Want {
				assert.Equal(t, sub.Want[i], vs[i])
			}
		})
	})

	s.Test("concurrent traversals are independent", func(t *testcase.T) {
		sub := subject.Get(t)
		a := listkit.Iterate(sub.List)
		b := listkit.Iterate(sub.List)
		for _, want := range sub.Want {
			assert.True(t, a.Next())
			assert.Equal(t, want, a.Value())
		}
		for _, want := range sub.Want {
			assert.True(t, b.Next())
			assert.Equal(t, want, b.Value())
		}
		assert.False(t, a.Next())
		assert.False(t, b.Next())
	})

	s.Test("closing a traversal early ends it", func(t *testcase.T) {
		sub := subject.Get(t)
		it := listkit.Iterate(sub.List)
		assert.NoError(t, it.Close())
		assert.False(t, it.Next())
	})

	s.Test("Values can be ranged over", func(t *testcase.T) {
		sub := subject.Get(t)
		var n int
		for v, err := range listkit.Values(sub.List) {
			assert.NoError(t, err)
			assert.Equal(t, sub.Want[n], v)
			n++
		}
		assert.Equal(t, len(sub.Want), n)
	})

	s.Test("breaking out of Values stops the traversal", func(t *testcase.T) {
		sub := subject.Get(t)
		if len(sub.Want) == 0 {
			t.Skip("empty list")
		}
		var n int
		for range listkit.Values(sub.List) {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})

	return s.AsSuite(fmt.Sprintf("List[%s]", reflect.TypeFor[T]()))
}
