package par

import (
	"iter"

	"grid/views"
)

// Elements adapts a view to the unordered element contract: every element
// is yielded exactly once across all leaves, with no ordering between
// leaves. Write through the pointers only on views tagged Exclusive.
func Elements[T any](v views.View[T]) Producer[*T] {
	return elements[T]{v}
}

type elements[T any] struct{ v views.View[T] }

func (e elements[T]) Len() int { return e.v.Size() }

func (e elements[T]) Split() (Producer[*T], Producer[*T]) {
	dim, mid, ok := splitPoint(e.v)
	if !ok {
		panic("par: split on leaf element producer")
	}
	ext := e.v.Extent(dim)
	return elements[T]{e.v.Slice(dim, 0, mid)}, elements[T]{e.v.Slice(dim, mid, ext)}
}

func (e elements[T]) Items() iter.Seq[*T] { return e.v.Elems() }
