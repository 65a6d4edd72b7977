package listkit

import "errors"

// First returns the first element of the list.
func First[T any](l List[T]) (T, error) {
	var zero T
	if l == nil {
		return zero, argNil("source")
	}
	if l.Len() == 0 {
		return zero, ErrNoElements
	}
	return l.At(0)
}

// Last returns the last element of the list, without walking through the rest of it.
func Last[T any](l List[T]) (T, error) {
	var zero T
	if l == nil {
		return zero, argNil("source")
	}
	n := l.Len()
	if n == 0 {
		return zero, ErrNoElements
	}
	return l.At(n - 1)
}

// FirstFunc returns the first element that satisfies the predicate.
func FirstFunc[T any](l List[T], pred func(T) bool) (T, error) {
	var zero T
	if l == nil {
		return zero, argNil("source")
	}
	if pred == nil {
		return zero, argNil("predicate")
	}
	for v, err := range Values(l) {
		if err != nil {
			return zero, err
		}
		if pred(v) {
			return v, nil
		}
	}
	return zero, ErrNoMatch
}

// LastFunc returns the last element that satisfies the predicate.
// It scans the list backwards by index, so it stops at the first match from the end.
func LastFunc[T any](l List[T], pred func(T) bool) (T, error) {
	var zero T
	if l == nil {
		return zero, argNil("source")
	}
	if pred == nil {
		return zero, argNil("predicate")
	}
	for i := l.Len() - 1; 0 <= i; i-- {
		v, err := l.At(i)
		if err != nil {
			return zero, err
		}
		if pred(v) {
			return v, nil
		}
	}
	return zero, ErrNoMatch
}

// ElementAtOrZero returns the element at index,
// or the zero value of T when the index is out of range.
// Any other failure of the access is returned.
func ElementAtOrZero[T any](l List[T], index int) (T, error) {
	var zero T
	if l == nil {
		return zero, argNil("source")
	}
	if index < 0 || l.Len() <= index {
		return zero, nil
	}
	return l.At(index)
}

// FirstOrZero is First, but an empty list yields the zero value of T instead of ErrNoElements.
func FirstOrZero[T any](l List[T]) (T, error) {
	return orZero(First(l))
}

// LastOrZero is Last, but an empty list yields the zero value of T instead of ErrNoElements.
func LastOrZero[T any](l List[T]) (T, error) {
	return orZero(Last(l))
}

// FirstFuncOrZero is FirstFunc, but yields the zero value of T when nothing matches.
func FirstFuncOrZero[T any](l List[T], pred func(T) bool) (T, error) {
	return orZero(FirstFunc(l, pred))
}

// LastFuncOrZero is LastFunc, but yields the zero value of T when nothing matches.
func LastFuncOrZero[T any](l List[T], pred func(T) bool) (T, error) {
	return orZero(LastFunc(l, pred))
}

func orZero[T any](v T, err error) (T, error) {
	if errors.Is(err, ErrNoElements) || errors.Is(err, ErrNoMatch) {
		var zero T
		return zero, nil
	}
	return v, err
}
