package listkit

// Skip bypasses the first n elements of the list.
//
// A zero or negative n skips nothing.
// In that case an adapter from this package is returned unchanged.
func Skip[T any](source List[T], n int) (List[T], error) {
	if source == nil {
		return nil, argNil("source")
	}
	if n <= 0 {
		if a, ok := source.(adapter[T]); ok {
			return a, nil
		}
		n = 0
	}
	return &skipList[T]{source: source, skip: n}, nil
}

type skipList[T any] struct {
	cursor[T]
	source List[T]
	skip   int
}

func (l *skipList[T]) Len() int {
	if n := l.source.Len() - l.skip; 0 < n {
		return n
	}
	return 0
}

func (l *skipList[T]) At(index int) (T, error) {
	if index < 0 {
		return outOfRange[T](index, l.Len())
	}
	return l.source.At(index + l.skip)
}

func (l *skipList[T]) Next() bool { return l.step(l) }

func (l *skipList[T]) Iter() Iterator[T] { return iterOf[T](l, &l.cursor) }

func (l *skipList[T]) clone() adapter[T] {
	return &skipList[T]{source: l.source, skip: l.skip}
}

// Take limits the list to its first n elements.
// Elements at or beyond n are never requested from the source.
// A zero or negative n results in an empty list.
func Take[T any](source List[T], n int) (List[T], error) {
	if source == nil {
		return nil, argNil("source")
	}
	if n <= 0 {
		return Empty[T](), nil
	}
	return &takeList[T]{source: source, take: n}, nil
}

type takeList[T any] struct {
	cursor[T]
	source List[T]
	take   int
}

func (l *takeList[T]) Len() int { return min(l.take, l.source.Len()) }

func (l *takeList[T]) At(index int) (T, error) {
	if index < 0 || l.take <= index {
		return outOfRange[T](index, l.Len())
	}
	return l.source.At(index)
}

func (l *takeList[T]) Next() bool { return l.step(l) }

func (l *takeList[T]) Iter() Iterator[T] { return iterOf[T](l, &l.cursor) }

func (l *takeList[T]) clone() adapter[T] {
	return &takeList[T]{source: l.source, take: l.take}
}
