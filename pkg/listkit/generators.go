package listkit

import (
	"golang.org/x/exp/constraints"
)

// Range returns a list of count sequential integers, starting at start.
//
// The arguments are validated right away:
// a negative count, or a last element that does not fit into N, is an ErrInvalidArgument.
// A zero count results in an empty list.
func Range[N constraints.Integer](start N, count int) (List[N], error) {
	if count < 0 {
		return nil, ErrInvalidArgument.F("count is negative: %d", count)
	}
	if count == 0 {
		return Empty[N](), nil
	}
	// distance from start to the maximum of N, modulo 2^64 for negative starts
	room := uint64(maxOf[N]()) - uint64(start)
	if room < uint64(count-1) {
		return nil, ErrInvalidArgument.F("count is out of range, %v+%d overflows %T", start, count-1, start)
	}
	return &rangeList[N]{start: start, count: count}, nil
}

func maxOf[N constraints.Integer]() N {
	if m := ^N(0); 0 < m {
		return m
	}
	m := N(1)
	for m < m<<1|1 {
		m = m<<1 | 1
	}
	return m
}

type rangeList[N constraints.Integer] struct {
	cursor[N]
	start N
	count int
}

func (l *rangeList[N]) Len() int { return l.count }

func (l *rangeList[N]) At(index int) (N, error) {
	if index < 0 || l.count <= index {
		return outOfRange[N](index, l.count)
	}
	return l.start + N(index), nil
}

func (l *rangeList[N]) Next() bool { return l.step(l) }

func (l *rangeList[N]) Iter() Iterator[N] { return iterOf[N](l, &l.cursor) }

func (l *rangeList[N]) clone() adapter[N] {
	return &rangeList[N]{start: l.start, count: l.count}
}

// Repeat returns a list that holds v count times.
// A negative count is an ErrInvalidArgument, a zero count results in an empty list.
func Repeat[T any](v T, count int) (List[T], error) {
	if count < 0 {
		return nil, ErrInvalidArgument.F("count is negative: %d", count)
	}
	if count == 0 {
		return Empty[T](), nil
	}
	return &repeatList[T]{value: v, count: count}, nil
}

type repeatList[T any] struct {
	cursor[T]
	value T
	count int
}

func (l *repeatList[T]) Len() int { return l.count }

func (l *repeatList[T]) At(index int) (T, error) {
	if index < 0 || l.count <= index {
		return outOfRange[T](index, l.count)
	}
	return l.value, nil
}

func (l *repeatList[T]) Next() bool { return l.step(l) }

func (l *repeatList[T]) Iter() Iterator[T] { return iterOf[T](l, &l.cursor) }

func (l *repeatList[T]) clone() adapter[T] {
	return &repeatList[T]{value: l.value, count: l.count}
}
