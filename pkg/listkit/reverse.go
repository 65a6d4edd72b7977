package listkit

// Reverse returns a view of the list in the opposite order.
// The elements are not collected, every access is forwarded to the source.
func Reverse[T any](source List[T]) (List[T], error) {
	if source == nil {
		return nil, argNil("source")
	}
	return &reverseList[T]{source: source}, nil
}

type reverseList[T any] struct {
	cursor[T]
	source List[T]
}

func (l *reverseList[T]) Len() int { return l.source.Len() }

func (l *reverseList[T]) At(index int) (T, error) {
	length := l.source.Len()
	if index < 0 || length <= index {
		return outOfRange[T](index, length)
	}
	return l.source.At(length - 1 - index)
}

func (l *reverseList[T]) Next() bool {
	if l.done {
		return false
	}
	length := l.size(l.source.Len)
	if length <= l.pos {
		return l.finish()
	}
	v, err := l.source.At(length - 1 - l.pos)
	if err != nil {
		return l.fail(err)
	}
	l.pos++
	return l.yield(v)
}

func (l *reverseList[T]) Iter() Iterator[T] { return iterOf[T](l, &l.cursor) }

func (l *reverseList[T]) clone() adapter[T] {
	return &reverseList[T]{source: l.source}
}
