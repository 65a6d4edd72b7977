package listkit

import (
	"context"
	"math"
	"slices"

	"go.llib.dev/listkit/pkg/logging"
)

// ReanchorMultiplier tunes when a chain of Append or Prepend calls starts over on a fresh buffer.
//
// A list that diverged from its shared buffer copies its own part of the buffer
// as long as that part is at most sqrt(len(source)) * ReanchorMultiplier long.
// Beyond that, the list becomes the source of a new buffer instead.
// Only the amortized cost depends on it, the elements never do.
var ReanchorMultiplier float64 = 15

// Append adds item to the end of the list.
//
// Repeated Append and Prepend calls share their buffers,
// so building a list by thousands of single appends does not cost O(n²),
// and it does not nest the list thousands of levels deep either.
func Append[T any](source List[T], item T) (List[T], error) {
	if source == nil {
		return nil, argNil("source")
	}
	if ap, ok := source.(appendPrepender[T]); ok {
		return ap.appendItem(item), nil
	}
	return &appendPrepend1[T]{source: source, item: item, appended: true}, nil
}

// Prepend adds item to the start of the list.
// It shares the amortization of Append.
func Prepend[T any](source List[T], item T) (List[T], error) {
	if source == nil {
		return nil, argNil("source")
	}
	if ap, ok := source.(appendPrepender[T]); ok {
		return ap.prependItem(item), nil
	}
	return &appendPrepend1[T]{source: source, item: item, appended: false}, nil
}

type appendPrepender[T any] interface {
	adapter[T]
	appendItem(item T) adapter[T]
	prependItem(item T) adapter[T]
}

// appendPrepend1 is a list with a single element added to one of its ends.
type appendPrepend1[T any] struct {
	cursor[T]
	source   List[T]
	item     T
	appended bool
}

func (l *appendPrepend1[T]) Len() int { return l.source.Len() + 1 }

func (l *appendPrepend1[T]) At(index int) (T, error) {
	if index < 0 {
		return outOfRange[T](index, l.Len())
	}
	if !l.appended {
		if index == 0 {
			return l.item, nil
		}
		return l.source.At(index - 1)
	}
	switch n := l.source.Len(); {
	case index < n:
		return l.source.At(index)
	case index == n:
		return l.item, nil
	default:
		return outOfRange[T](index, n+1)
	}
}

func (l *appendPrepend1[T]) Next() bool {
	if l.done {
		return false
	}
	if !l.appended {
		// the prepended item is yielded before the source is even measured
		if l.pos == 0 {
			l.pos++
			return l.yield(l.item)
		}
		i := l.pos - 1
		if l.size(l.source.Len) <= i {
			return l.finish()
		}
		v, err := l.source.At(i)
		if err != nil {
			return l.fail(err)
		}
		l.pos++
		return l.yield(v)
	}
	n := l.size(l.source.Len)
	switch {
	case l.pos < n:
		v, err := l.source.At(l.pos)
		if err != nil {
			return l.fail(err)
		}
		l.pos++
		return l.yield(v)
	case l.pos == n:
		l.pos++
		return l.yield(l.item)
	default:
		return l.finish()
	}
}

func (l *appendPrepend1[T]) Iter() Iterator[T] { return iterOf[T](l, &l.cursor) }

func (l *appendPrepend1[T]) clone() adapter[T] {
	return &appendPrepend1[T]{source: l.source, item: l.item, appended: l.appended}
}

func (l *appendPrepend1[T]) appendItem(item T) adapter[T] {
	n := &appendPrependN[T]{source: l.source}
	if l.appended {
		n.prepended = newBuffer[T]()
		n.appended = newBuffer(l.item, item)
		n.appendedCount = 2
	} else {
		n.prepended = newBuffer(l.item)
		n.prependedCount = 1
		n.appended = newBuffer(item)
		n.appendedCount = 1
	}
	return n
}

func (l *appendPrepend1[T]) prependItem(item T) adapter[T] {
	n := &appendPrependN[T]{source: l.source}
	if l.appended {
		n.prepended = newBuffer(item)
		n.prependedCount = 1
		n.appended = newBuffer(l.item)
		n.appendedCount = 1
	} else {
		n.prepended = newBuffer(l.item, item)
		n.prependedCount = 2
		n.appended = newBuffer[T]()
	}
	return n
}

// buffer holds the items added to one end of a chain.
// Lists of the same chain share it, each of them owning a prefix of a given length.
type buffer[T any] struct {
	items []T
}

func newBuffer[T any](items ...T) *buffer[T] {
	return &buffer[T]{items: items}
}

// extend adds item after the first count items of the buffer.
// When the buffer holds only those count items, it grows in place,
// otherwise another list already owns the following slot, and the prefix is copied first.
func (b *buffer[T]) extend(count int, item T) *buffer[T] {
	if b.diverged(count) {
		b = newBuffer(slices.Clone(b.items[:count])...)
	}
	b.items = append(b.items, item)
	return b
}

func (b *buffer[T]) diverged(count int) bool { return count < len(b.items) }

type phase int

const (
	phasePrepended phase = iota
	phaseSource
	phaseAppended
)

// appendPrependN is a list with any number of elements added to its ends.
//
// Its source is either the list the chain started from,
// or an earlier appendPrependN that was re-anchored as a plain source.
type appendPrependN[T any] struct {
	cursor[T]
	source List[T]

	// prepended is kept in insertion order, the most recently prepended item is the last one.
	prepended      *buffer[T]
	appended       *buffer[T]
	prependedCount int
	appendedCount  int

	phase phase
}

func (l *appendPrependN[T]) Len() int {
	return l.prependedCount + l.source.Len() + l.appendedCount
}

func (l *appendPrependN[T]) At(index int) (T, error) {
	if index < 0 {
		return outOfRange[T](index, l.Len())
	}
	if index < l.prependedCount {
		return l.prepended.items[l.prependedCount-index-1], nil
	}
	n := l.source.Len()
	if index < l.prependedCount+n {
		return l.source.At(index - l.prependedCount)
	}
	if index < l.prependedCount+n+l.appendedCount {
		return l.appended.items[index-n-l.prependedCount], nil
	}
	return outOfRange[T](index, l.prependedCount+n+l.appendedCount)
}

func (l *appendPrependN[T]) Next() bool {
	if l.done {
		return false
	}
	for {
		switch l.phase {
		case phasePrepended:
			if l.pos < l.prependedCount {
				v := l.prepended.items[l.prependedCount-l.pos-1]
				l.pos++
				return l.yield(v)
			}
			l.phase, l.pos = phaseSource, 0

		case phaseSource:
			if l.pos < l.size(l.source.Len) {
				v, err := l.source.At(l.pos)
				if err != nil {
					return l.fail(err)
				}
				l.pos++
				return l.yield(v)
			}
			l.phase, l.pos = phaseAppended, 0

		case phaseAppended:
			if l.pos < l.appendedCount {
				v := l.appended.items[l.pos]
				l.pos++
				return l.yield(v)
			}
			return l.finish()

		default:
			panic(ErrInvalidState.F("append/prepend traversal is in unknown phase %d", l.phase))
		}
	}
}

func (l *appendPrependN[T]) Iter() Iterator[T] { return iterOf[T](l, &l.cursor) }

func (l *appendPrependN[T]) clone() adapter[T] {
	return &appendPrependN[T]{
		source:         l.source,
		prepended:      l.prepended,
		appended:       l.appended,
		prependedCount: l.prependedCount,
		appendedCount:  l.appendedCount,
	}
}

func (l *appendPrependN[T]) appendItem(item T) adapter[T] {
	if l.appended.diverged(l.appendedCount) && l.exceedsCopyLimit(l.appendedCount) {
		l.logReanchor("append", l.appendedCount)
		return &appendPrependN[T]{
			source:        l,
			prepended:     newBuffer[T](),
			appended:      newBuffer(item),
			appendedCount: 1,
		}
	}
	return &appendPrependN[T]{
		source:         l.source,
		prepended:      l.prepended,
		prependedCount: l.prependedCount,
		appended:       l.appended.extend(l.appendedCount, item),
		appendedCount:  l.appendedCount + 1,
	}
}

func (l *appendPrependN[T]) prependItem(item T) adapter[T] {
	if l.prepended.diverged(l.prependedCount) && l.exceedsCopyLimit(l.prependedCount) {
		l.logReanchor("prepend", l.prependedCount)
		return &appendPrependN[T]{
			source:         l,
			prepended:      newBuffer(item),
			prependedCount: 1,
			appended:       newBuffer[T](),
		}
	}
	return &appendPrependN[T]{
		source:         l.source,
		prepended:      l.prepended.extend(l.prependedCount, item),
		prependedCount: l.prependedCount + 1,
		appended:       l.appended,
		appendedCount:  l.appendedCount,
	}
}

// exceedsCopyLimit tells whether copying count buffered items would cost more
// than adding one more level of indirection over the source.
func (l *appendPrependN[T]) exceedsCopyLimit(count int) bool {
	return math.Sqrt(float64(l.source.Len()))*ReanchorMultiplier < float64(count)
}

func (l *appendPrependN[T]) logReanchor(side string, buffered int) {
	logging.Debug(context.Background(), "listkit: append/prepend chain re-anchored",
		logging.LazyDetail(func() logging.Detail {
			return logging.Fields{
				"side":       side,
				"buffered":   buffered,
				"source_len": l.source.Len(),
			}
		}))
}
