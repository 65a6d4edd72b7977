package listkit

import (
	"context"
	"fmt"
	"math"

	"go.llib.dev/listkit/pkg/logging"
)

// Concat joins lists one after the other into a single list.
//
// Lists made by Concat are not nested into each other, their sources are merged instead,
// so indexing costs O(number of sources) no matter how the concatenation was built up.
//
// The combined length is checked when the list is made, and a total beyond math.MaxInt is an ErrOverflow.
func Concat[T any](first, second List[T], more ...List[T]) (List[T], error) {
	if first == nil {
		return nil, argNil("first")
	}
	if second == nil {
		return nil, argNil("second")
	}
	for i, l := range more {
		if l == nil {
			return nil, argNil(fmt.Sprintf("more[%d]", i))
		}
	}
	var (
		operands  = append([]List[T]{first, second}, more...)
		sources   = make([]List[T], 0, len(operands))
		flattened bool
	)
	for _, l := range operands {
		if c, ok := l.(*concatList[T]); ok {
			sources = append(sources, c.sources...)
			flattened = true
			continue
		}
		sources = append(sources, l)
	}
	var total int
	for _, s := range sources {
		n := s.Len()
		if math.MaxInt-total < n {
			return nil, ErrOverflow.F("the combined length of %d sources exceeds %d", len(sources), math.MaxInt)
		}
		total += n
	}
	if flattened && logging.Default.Enabled(logging.LevelDebug) {
		logging.Debug(context.Background(), "listkit: nested concat flattened",
			logging.Field("sources", len(sources)),
			logging.Field("len", total))
	}
	return &concatList[T]{sources: sources}, nil
}

type concatList[T any] struct {
	cursor[T]
	sources []List[T]
	current int // index of the source being traversed
}

func (l *concatList[T]) Len() int {
	var total int
	for _, s := range l.sources {
		total += s.Len()
	}
	return total
}

func (l *concatList[T]) At(index int) (T, error) {
	if index < 0 {
		return outOfRange[T](index, l.Len())
	}
	var offset int
	for _, s := range l.sources {
		n := s.Len()
		if index < offset+n {
			return s.At(index - offset)
		}
		offset += n
	}
	return outOfRange[T](index, offset)
}

func (l *concatList[T]) Next() bool {
	if l.done {
		return false
	}
	for l.current < len(l.sources) {
		src := l.sources[l.current]
		if l.pos < l.size(src.Len) {
			v, err := src.At(l.pos)
			if err != nil {
				return l.fail(err)
			}
			l.pos++
			return l.yield(v)
		}
		l.current++
		l.pos, l.sized = 0, false
	}
	return l.finish()
}

func (l *concatList[T]) Iter() Iterator[T] { return iterOf[T](l, &l.cursor) }

func (l *concatList[T]) clone() adapter[T] {
	return &concatList[T]{sources: l.sources}
}
