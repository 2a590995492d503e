package par

import (
	"fmt"
	"iter"

	"grid/views"
)

// AxisOf adapts a view to the ordered, exact-length contract over one
// fixed axis: Len is that axis's extent and item i is the sub-view at
// index i with the axis removed. An axis outside the view's rank is a
// configuration error, reported here and never at split time.
func AxisOf[T any](v views.View[T], axis int) (Ordered[views.View[T]], error) {
	if axis < 0 || axis >= v.Rank() {
		return nil, fmt.Errorf("%w: axis %d of rank-%d view", ErrInvalidAxis, axis, v.Rank())
	}
	return axisProducer[T]{v: v, axis: axis}, nil
}

type axisProducer[T any] struct {
	v     views.View[T]
	axis  int
	start int
}

func (p axisProducer[T]) Len() int { return p.v.Extent(p.axis) }

func (p axisProducer[T]) Start() int { return p.start }

// Split bisects the fixed axis itself rather than consulting the split
// policy: preserving index order between the halves is the point of this
// producer kind.
func (p axisProducer[T]) Split() (Ordered[views.View[T]], Ordered[views.View[T]]) {
	ext := p.Len()
	if ext <= 1 {
		panic("par: split on leaf axis producer")
	}
	mid := ext / 2
	left := axisProducer[T]{v: p.v.Slice(p.axis, 0, mid), axis: p.axis, start: p.start}
	right := axisProducer[T]{v: p.v.Slice(p.axis, mid, ext), axis: p.axis, start: p.start + mid}
	return left, right
}

func (p axisProducer[T]) Items() iter.Seq[views.View[T]] { return p.v.Along(p.axis) }
