// Package listmock provides a gomock double of an int list,
// to observe which elements an adapter actually requests from its source.
package listmock

//go:generate mockgen -destination mock_listmock.go -source listmock.go -package listmock

// IntList mirrors listkit.List[int].
// mockgen works on non generic interfaces, so the element type is fixed here.
type IntList interface {
	Len() int
	At(index int) (int, error)
}
