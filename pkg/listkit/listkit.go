// Package listkit provides lazily evaluated adapters over finite, indexable, read-only lists.
//
// # Summary
//
// Unlike an iter.Seq, which can only be walked from start to end,
// every adapter in listkit keeps random access by index.
// An adapter does no work when it is constructed, beyond validating its arguments.
// The transformation happens when an element is requested,
// either through At or through a traversal with Iterate or Values.
//
// Adapters compose without nesting where it would hurt:
// a Concat of Concats keeps a flat list of sources,
// and a long chain of single element Append or Prepend calls shares a buffer
// instead of wrapping the list once per call.
//
// Adapters are immutable and share their sources by reference.
// The only structure that changes after construction is the buffer behind Append and Prepend,
// so a list is meant to be used from a single goroutine at a time.
package listkit

import (
	"io"
	"iter"
	"sync/atomic"

	"go.llib.dev/listkit/pkg/errorkit"
)

// List is a finite, ordered, read-only collection with random access.
//
// Len must be stable, and At must be repeatable for every index in [0, Len()).
// Any other index yields an error that matches ErrOutOfRange.
type List[T any] interface {
	Len() int
	At(index int) (T, error)
}

// Iterator is a pull based traversal handle.
//
// Next moves to the following element and reports whether there was one.
// When Next returns false because an element could not be accessed, Err tells why.
type Iterator[T any] interface {
	Next() bool
	Value() T
	Err() error
	io.Closer
}

// adapter is implemented by every list constructed in this package.
// An adapter doubles as its own first Iterator.
type adapter[T any] interface {
	List[T]
	Iterator[T]
	Iter() Iterator[T]
	// clone returns an adapter with the same content and an untouched traversal state.
	clone() adapter[T]
}

// Iterate returns a new traversal over the list.
//
// The first traversal of an adapter reuses the adapter itself,
// every later one gets an independent clone.
func Iterate[T any](l List[T]) Iterator[T] {
	if a, ok := l.(adapter[T]); ok {
		return a.Iter()
	}
	return &indexIter[T]{list: l}
}

// Values turns a list into an iter.Seq2 that can be used with the range keyword.
// A failing element access is yielded as the zero value together with the error,
// and the iteration ends there.
func Values[T any](l List[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		if l == nil {
			return
		}
		it := Iterate(l)
		defer it.Close()
		for it.Next() {
			if !yield(it.Value(), nil) {
				return
			}
		}
		if err := it.Err(); err != nil {
			var zero T
			yield(zero, err)
		}
	}
}

// Collect materializes the list into a slice.
func Collect[T any](l List[T]) (_ []T, rErr error) {
	if l == nil {
		return nil, argNil("source")
	}
	it := Iterate(l)
	defer errorkit.Finish(&rErr, it.Close)
	var vs = make([]T, 0, l.Len())
	for it.Next() {
		vs = append(vs, it.Value())
	}
	return vs, it.Err()
}

// Slice wraps a materialized slice as a List.
// The slice is not copied, the caller keeps owning it.
func Slice[T any](vs []T) List[T] {
	return sliceList[T](vs)
}

type sliceList[T any] []T

func (l sliceList[T]) Len() int { return len(l) }

func (l sliceList[T]) At(index int) (T, error) {
	if index < 0 || len(l) <= index {
		return outOfRange[T](index, len(l))
	}
	return l[index], nil
}

// Empty returns the empty list.
func Empty[T any]() List[T] { return emptyList[T]{} }

type emptyList[T any] struct{}

func (emptyList[T]) Len() int { return 0 }

func (emptyList[T]) At(index int) (T, error) { return outOfRange[T](index, 0) }

// cursor is the traversal state an adapter embeds, so it can serve as its own Iterator.
type cursor[T any] struct {
	issued atomic.Bool

	pos    int // elements consumed so far in the current phase
	length int
	sized  bool

	value T
	err   error
	done  bool
}

// issue reports whether this is the first traversal requested from the owner.
func (c *cursor[T]) issue() bool { return c.issued.CompareAndSwap(false, true) }

func (c *cursor[T]) Value() T { return c.value }

func (c *cursor[T]) Err() error { return c.err }

func (c *cursor[T]) Close() error {
	c.done = true
	var zero T
	c.value = zero
	return nil
}

func (c *cursor[T]) yield(v T) bool {
	c.value = v
	return true
}

func (c *cursor[T]) finish() bool {
	c.done = true
	var zero T
	c.value = zero
	return false
}

func (c *cursor[T]) fail(err error) bool {
	c.err = err
	return c.finish()
}

// size returns the length of the traversed list, computed once per traversal.
func (c *cursor[T]) size(length func() int) int {
	if !c.sized {
		c.length = length()
		c.sized = true
	}
	return c.length
}

// step walks l in index order.
func (c *cursor[T]) step(l List[T]) bool {
	if c.done {
		return false
	}
	if !c.sized {
		c.length = l.Len()
		c.sized = true
	}
	if c.length <= c.pos {
		return c.finish()
	}
	v, err := l.At(c.pos)
	if err != nil {
		return c.fail(err)
	}
	c.pos++
	return c.yield(v)
}

// iterOf hands out a as its first traversal, and clones afterwards.
func iterOf[T any](a adapter[T], c *cursor[T]) Iterator[T] {
	if c.issue() {
		return a
	}
	return a.clone().Iter()
}

type indexIter[T any] struct {
	cursor[T]
	list List[T]
}

func (i *indexIter[T]) Next() bool { return i.step(i.list) }
