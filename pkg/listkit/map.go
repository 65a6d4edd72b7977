package listkit

// Map allows you to do transformation on the values of a list.
// The selector runs on every access, results are not cached.
// When you need the values repeatedly, Collect them.
func Map[To any, From any](source List[From], selector func(From) To) (List[To], error) {
	if source == nil {
		return nil, argNil("source")
	}
	if selector == nil {
		return nil, argNil("selector")
	}
	return &mapList[To, From]{source: source, selector: selector}, nil
}

type mapList[To, From any] struct {
	cursor[To]
	source   List[From]
	selector func(From) To
}

func (l *mapList[To, From]) Len() int { return l.source.Len() }

func (l *mapList[To, From]) At(index int) (To, error) {
	v, err := l.source.At(index)
	if err != nil {
		var zero To
		return zero, err
	}
	return l.selector(v), nil
}

func (l *mapList[To, From]) Next() bool { return l.step(l) }

func (l *mapList[To, From]) Iter() Iterator[To] { return iterOf[To](l, &l.cursor) }

func (l *mapList[To, From]) clone() adapter[To] {
	return &mapList[To, From]{source: l.source, selector: l.selector}
}

// MapIndexed works like Map, but the selector also receives the element's index.
func MapIndexed[To any, From any](source List[From], selector func(From, int) To) (List[To], error) {
	if source == nil {
		return nil, argNil("source")
	}
	if selector == nil {
		return nil, argNil("selector")
	}
	return &mapIndexedList[To, From]{source: source, selector: selector}, nil
}

type mapIndexedList[To, From any] struct {
	cursor[To]
	source   List[From]
	selector func(From, int) To
}

func (l *mapIndexedList[To, From]) Len() int { return l.source.Len() }

func (l *mapIndexedList[To, From]) At(index int) (To, error) {
	v, err := l.source.At(index)
	if err != nil {
		var zero To
		return zero, err
	}
	return l.selector(v, index), nil
}

func (l *mapIndexedList[To, From]) Next() bool { return l.step(l) }

func (l *mapIndexedList[To, From]) Iter() Iterator[To] { return iterOf[To](l, &l.cursor) }

func (l *mapIndexedList[To, From]) clone() adapter[To] {
	return &mapIndexedList[To, From]{source: l.source, selector: l.selector}
}
