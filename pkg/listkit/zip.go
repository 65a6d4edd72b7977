package listkit

import "fmt"

// Zip pairs up the elements of two lists by index and combines them.
// The result is as long as the shorter list.
// combine runs on every access, and errors of either source surface at the index that caused them.
func Zip[R, A, B any](first List[A], second List[B], combine func(A, B) R) (List[R], error) {
	if first == nil {
		return nil, argNil("first")
	}
	if second == nil {
		return nil, argNil("second")
	}
	if combine == nil {
		return nil, argNil("combine")
	}
	return &zipList[R, A, B]{first: first, second: second, combine: combine}, nil
}

// Pair holds two values of possibly different types.
// It is the element type produced by ZipPairs.
type Pair[A, B any] struct {
	First  A
	Second B
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// ZipPairs is Zip with the elements combined into a Pair.
func ZipPairs[A, B any](first List[A], second List[B]) (List[Pair[A, B]], error) {
	return Zip(first, second, func(a A, b B) Pair[A, B] {
		return Pair[A, B]{First: a, Second: b}
	})
}

type zipList[R, A, B any] struct {
	cursor[R]
	first   List[A]
	second  List[B]
	combine func(A, B) R
}

func (l *zipList[R, A, B]) Len() int { return min(l.first.Len(), l.second.Len()) }

func (l *zipList[R, A, B]) At(index int) (R, error) {
	var zero R
	if n := l.Len(); index < 0 || n <= index {
		return outOfRange[R](index, n)
	}
	a, err := l.first.At(index)
	if err != nil {
		return zero, err
	}
	b, err := l.second.At(index)
	if err != nil {
		return zero, err
	}
	return l.combine(a, b), nil
}

func (l *zipList[R, A, B]) Next() bool { return l.step(l) }

func (l *zipList[R, A, B]) Iter() Iterator[R] { return iterOf[R](l, &l.cursor) }

func (l *zipList[R, A, B]) clone() adapter[R] {
	return &zipList[R, A, B]{first: l.first, second: l.second, combine: l.combine}
}
