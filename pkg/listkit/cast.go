package listkit

import (
	"reflect"
)

// Cast converts the elements of a list into T with a type assertion.
//
// The assertion is exact: an int32 element does not become an int64.
// A mismatch surfaces as ErrInvalidCast at the access of the offending element,
// and a nil element for a T that cannot be nil surfaces as ErrNilReference.
// The rest of the elements stay accessible.
//
// When source already is a List[T], it is returned as is.
func Cast[T any, From any](source List[From]) (List[T], error) {
	if source == nil {
		return nil, argNil("source")
	}
	if l, ok := any(source).(List[T]); ok {
		return l, nil
	}
	return &castList[T, From]{source: source, convert: assertTo[T, From]}, nil
}

// CastFunc converts the elements of a list with a fallible conversion.
// The conversion runs on every access, and its error is returned from that access.
func CastFunc[T any, From any](source List[From], convert func(From) (T, error)) (List[T], error) {
	if source == nil {
		return nil, argNil("source")
	}
	if convert == nil {
		return nil, argNil("convert")
	}
	return &castList[T, From]{source: source, convert: convert}, nil
}

type castList[T, From any] struct {
	cursor[T]
	source  List[From]
	convert func(From) (T, error)
}

func (l *castList[T, From]) Len() int { return l.source.Len() }

func (l *castList[T, From]) At(index int) (T, error) {
	v, err := l.source.At(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return l.convert(v)
}

func (l *castList[T, From]) Next() bool { return l.step(l) }

func (l *castList[T, From]) Iter() Iterator[T] { return iterOf[T](l, &l.cursor) }

func (l *castList[T, From]) clone() adapter[T] {
	return &castList[T, From]{source: l.source, convert: l.convert}
}

func assertTo[T, From any](v From) (T, error) {
	if t, ok := any(v).(T); ok {
		return t, nil
	}
	var zero T
	if any(v) == nil {
		if isNilable[T]() {
			return zero, nil
		}
		return zero, ErrNilReference.F("nil can not be cast to %s", reflect.TypeFor[T]())
	}
	return zero, ErrInvalidCast.F("%T can not be cast to %s", v, reflect.TypeFor[T]())
}

func isNilable[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
