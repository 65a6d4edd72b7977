package listkit_test

import (
	"fmt"
	"strings"
	"testing"

	randomdata "github.com/Pallinder/go-randomdata"
	uuid "github.com/satori/go.uuid"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/listkit/pkg/listkit"
	"go.llib.dev/listkit/pkg/listkit/listkitcontract"
	"go.llib.dev/listkit/pkg/must"
)

func collect[T any](tb testing.TB, l listkit.List[T]) []T {
	tb.Helper()
	vs, err := listkit.Collect(l)
	assert.NoError(tb, err)
	return vs
}

func randomNames(tb testing.TB) []string {
	t := testcase.ToT(&tb)
	var names []string
	t.Random.Repeat(3, 12, func() {
		names = append(names, randomdata.SillyName())
	})
	return names
}

func randomIDs(tb testing.TB) []string {
	t := testcase.ToT(&tb)
	var ids []string
	t.Random.Repeat(3, 12, func() {
		ids = append(ids, uuid.NewV4().String())
	})
	return ids
}

func setReanchorMultiplier(tb testing.TB, m float64) {
	tb.Helper()
	og := listkit.ReanchorMultiplier
	listkit.ReanchorMultiplier = m
	tb.Cleanup(func() { listkit.ReanchorMultiplier = og })
}

func TestList_contract(t *testing.T) {
	type Subject = listkitcontract.Subject[string]

	listkitcontract.List[string](func(tb testing.TB) Subject {
		vs := randomNames(tb)
		return Subject{List: listkit.Slice(vs), Want: vs}
	}).Test(t)

	listkitcontract.List[string](func(tb testing.TB) Subject {
		return Subject{List: listkit.Empty[string](), Want: nil}
	}).Test(t)

	listkitcontract.List[string](func(tb testing.TB) Subject {
		vs := randomIDs(tb)
		l := must.Must(listkit.Map(listkit.Slice(vs), strings.ToUpper))
		return Subject{List: l, Want: mapSlice(vs, strings.ToUpper)}
	}).Test(t)

	listkitcontract.List[string](func(tb testing.TB) Subject {
		vs := randomNames(tb)
		label := func(v string, i int) string { return fmt.Sprintf("%d:%s", i, v) }
		l := must.Must(listkit.MapIndexed(listkit.Slice(vs), label))
		var want []string
		for i, v := range vs {
			want = append(want, label(v, i))
		}
		return Subject{List: l, Want: want}
	}).Test(t)

	listkitcontract.List[string](func(tb testing.TB) Subject {
		vs := randomNames(tb)
		src := make([]any, 0, len(vs))
		for _, v := range vs {
			src = append(src, v)
		}
		return Subject{List: must.Must(listkit.Cast[string](listkit.Slice(src))), Want: vs}
	}).Test(t)

	listkitcontract.List[string](func(tb testing.TB) Subject {
		vs := randomNames(tb)
		n := testcase.ToT(&tb).Random.IntBetween(0, len(vs)+2)
		l := must.Must(listkit.Skip(listkit.Slice(vs), n))
		return Subject{List: l, Want: vs[min(n, len(vs)):]}
	}).Test(t)

	listkitcontract.List[string](func(tb testing.TB) Subject {
		vs := randomNames(tb)
		n := testcase.ToT(&tb).Random.IntBetween(1, len(vs)+2)
		l := must.Must(listkit.Take(listkit.Slice(vs), n))
		return Subject{List: l, Want: vs[:min(n, len(vs))]}
	}).Test(t)

	listkitcontract.List[string](func(tb testing.TB) Subject {
		vs := randomNames(tb)
		l := must.Must(listkit.Reverse(listkit.Slice(vs)))
		return Subject{List: l, Want: reversed(vs)}
	}).Test(t)

	listkitcontract.List[string](func(tb testing.TB) Subject {
		a, b, c := randomNames(tb), randomIDs(tb), randomNames(tb)
		l := must.Must(listkit.Concat(listkit.Slice(a), listkit.Slice(b), listkit.Slice(c)))
		return Subject{List: l, Want: append(append(append([]string{}, a...), b...), c...)}
	}).Test(t)

	listkitcontract.List[string](func(tb testing.TB) Subject {
		names, ids := randomNames(tb), randomIDs(tb)
		join := func(a, b string) string { return a + "/" + b }
		l := must.Must(listkit.Zip(listkit.Slice(names), listkit.Slice(ids), join))
		var want []string
		for i := 0; i < min(len(names), len(ids)); i++ {
			want = append(want, join(names[i], ids[i]))
		}
		return Subject{List: l, Want: want}
	}).Test(t)

	listkitcontract.List[string](func(tb testing.TB) Subject {
		v := randomdata.SillyName()
		n := testcase.ToT(&tb).Random.IntBetween(1, 7)
		want := make([]string, n)
		for i := range want {
			want[i] = v
		}
		return Subject{List: must.Must(listkit.Repeat(v, n)), Want: want}
	}).Test(t)

	listkitcontract.List[string](func(tb testing.TB) Subject {
		vs := randomNames(tb)
		item := randomdata.SillyName()
		l := must.Must(listkit.Append(listkit.Slice(vs), item))
		return Subject{List: l, Want: append(append([]string{}, vs...), item)}
	}).Test(t)

	listkitcontract.List[string](func(tb testing.TB) Subject {
		vs := randomNames(tb)
		item := randomdata.SillyName()
		l := must.Must(listkit.Prepend(listkit.Slice(vs), item))
		return Subject{List: l, Want: append([]string{item}, vs...)}
	}).Test(t)

	listkitcontract.List[string](func(tb testing.TB) Subject {
		t := testcase.ToT(&tb)
		m := newChainModel(randomNames(tb))
		t.Random.Repeat(2, 64, func() {
			m.step(t, randomdata.SillyName())
		})
		return Subject{List: m.list, Want: m.want}
	}).Test(t)

	listkitcontract.List[int](func(tb testing.TB) listkitcontract.Subject[int] {
		t := testcase.ToT(&tb)
		start := t.Random.IntBetween(-100, 100)
		n := t.Random.IntBetween(1, 20)
		want := make([]int, n)
		for i := range want {
			want[i] = start + i
		}
		return listkitcontract.Subject[int]{List: must.Must(listkit.Range(start, n)), Want: want}
	}).Test(t)
}

func TestIterate(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("the first traversal of an adapter is the adapter itself", func(t *testcase.T) {
		l := must.Must(listkit.Range(0, 3))
		it := listkit.Iterate(l)
		assert.Equal[any](t, l, it)
	})

	s.Test("later traversals start from the beginning, even when the first one is in progress", func(t *testcase.T) {
		l := must.Must(listkit.Range(0, 3))
		first := listkit.Iterate(l)
		assert.True(t, first.Next())
		assert.True(t, first.Next())
		assert.Equal(t, 1, first.Value())

		second := listkit.Iterate(l)
		assert.True(t, second.Next())
		assert.Equal(t, 0, second.Value())

		assert.True(t, first.Next())
		assert.Equal(t, 2, first.Value())
		assert.False(t, first.Next())
	})

	s.Test("a plain List is walked by index", func(t *testcase.T) {
		l := plainList{1, 2, 3}
		it := listkit.Iterate[int](l)
		var got []int
		for it.Next() {
			got = append(got, it.Value())
		}
		assert.NoError(t, it.Err())
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	s.Test("an element access error ends the traversal", func(t *testcase.T) {
		expErr := t.Random.Error()
		l := must.Must(listkit.CastFunc(listkit.Slice([]int{1, 2, 3}), func(v int) (int, error) {
			if v == 2 {
				return 0, expErr
			}
			return v, nil
		}))
		it := listkit.Iterate(l)
		assert.True(t, it.Next())
		assert.Equal(t, 1, it.Value())
		assert.False(t, it.Next())
		assert.ErrorIs(t, it.Err(), expErr)
		assert.False(t, it.Next())
	})
}

func TestValues(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("a failing access is yielded with the error, and the iteration ends", func(t *testcase.T) {
		l := must.Must(listkit.Cast[int](listkit.Slice([]any{1, 2, "3", 4})))
		var (
			got  []int
			errs []error
		)
		for v, err := range listkit.Values(l) {
			if err != nil {
				errs = append(errs, err)
				continue
			}
			got = append(got, v)
		}
		assert.Equal(t, []int{1, 2}, got)
		assert.Equal(t, 1, len(errs))
		assert.ErrorIs(t, errs[0], listkit.ErrInvalidCast)
	})

	s.Test("nil list yields nothing", func(t *testcase.T) {
		for range listkit.Values[int](nil) {
			t.Fatal("unexpected iteration")
		}
	})
}

func TestCollect(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("nil list", func(t *testcase.T) {
		_, err := listkit.Collect[int](nil)
		assert.ErrorIs(t, err, listkit.ErrInvalidArgument)
	})

	s.Test("the elements before a failure are returned with the error", func(t *testcase.T) {
		l := must.Must(listkit.Cast[int](listkit.Slice([]any{1, "2"})))
		vs, err := listkit.Collect(l)
		assert.ErrorIs(t, err, listkit.ErrInvalidCast)
		assert.Equal(t, []int{1}, vs)
	})

	s.Test("Slice is not copied", func(t *testcase.T) {
		vs := []int{1, 2, 3}
		l := listkit.Slice(vs)
		vs[1] = 42
		assert.Equal(t, []int{1, 42, 3}, collect(t, l))
	})
}

type plainList []int

func (l plainList) Len() int { return len(l) }

func (l plainList) At(index int) (int, error) {
	if index < 0 || len(l) <= index {
		return 0, listkit.ErrOutOfRange
	}
	return l[index], nil
}

func mapSlice[T, R any](vs []T, f func(T) R) []R {
	out := make([]R, 0, len(vs))
	for _, v := range vs {
		out = append(out, f(v))
	}
	return out
}

func reversed[T any](vs []T) []T {
	out := make([]T, len(vs))
	for i, v := range vs {
		out[len(vs)-1-i] = v
	}
	return out
}
