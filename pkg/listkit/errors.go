package listkit

import "go.llib.dev/listkit/pkg/errorkit"

const (
	// ErrInvalidArgument is returned by constructors for a nil source, a nil function or an out of domain count.
	ErrInvalidArgument errorkit.Error = "listkit: invalid argument"
	// ErrOutOfRange is returned by At for an index outside of [0, Len()).
	ErrOutOfRange errorkit.Error = "listkit: index out of range"
	// ErrInvalidCast is returned when an element's dynamic type does not match the requested type.
	ErrInvalidCast errorkit.Error = "listkit: invalid cast"
	// ErrNilReference is returned when a nil element is cast to a type that cannot hold nil.
	ErrNilReference errorkit.Error = "listkit: nil reference"
	// ErrOverflow is returned when a combined length is not representable as an int.
	ErrOverflow errorkit.Error = "listkit: overflow"
	// ErrNoElements is returned by First and Last on an empty list.
	ErrNoElements errorkit.Error = "listkit: list contains no elements"
	// ErrNoMatch is returned by FirstFunc and LastFunc when no element satisfies the predicate.
	ErrNoMatch errorkit.Error = "listkit: no element matches the predicate"
)

// ErrInvalidState signals a broken invariant inside this package.
// It is only ever raised as a panic, and it should not be recovered from.
// If you see it, please report it as a bug.
const ErrInvalidState errorkit.Error = "listkit: invalid internal state"

func argNil(name string) error {
	return ErrInvalidArgument.F("%s is nil", name)
}

func outOfRange[T any](index, length int) (T, error) {
	var zero T
	return zero, ErrOutOfRange.F("index %d, length %d", index, length)
}
