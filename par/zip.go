package par

import (
	"fmt"
	"iter"
	"slices"

	"grid/views"
)

// Cell2 is one lock-step position across two zipped views.
type Cell2[A, B any] struct {
	A *A
	B *B
}

// Cell3 is one lock-step position across three zipped views.
type Cell3[A, B, C any] struct {
	A *A
	B *B
	C *C
}

// Zip2 traverses two equally shaped views in lock-step. Shape equality is
// verified once at construction; every split applies one SplitPoint to
// both constituents, so positional alignment survives arbitrarily deep
// splitting and is never re-checked. Write through a cell pointer only
// when its view is tagged Exclusive.
type Zip2[A, B any] struct {
	a     views.View[A]
	b     views.View[B]
	shape []int
}

// NewZip2 builds a lock-step producer over two views, rejecting mismatched
// shapes with ErrShapeMismatch before any traversal can begin.
func NewZip2[A, B any](a views.View[A], b views.View[B]) (*Zip2[A, B], error) {
	sa, sb := a.Shape(), b.Shape()
	if !slices.Equal(sa, sb) {
		return nil, fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, sa, sb)
	}
	return &Zip2[A, B]{a: a, b: b, shape: sa}, nil
}

// Rank returns the number of dimensions of the common shape.
func (z *Zip2[A, B]) Rank() int { return len(z.shape) }

// Extent returns the common extent along axis.
func (z *Zip2[A, B]) Extent(axis int) int { return z.shape[axis] }

func (z *Zip2[A, B]) Len() int { return sizeOf(z.shape) }

func (z *Zip2[A, B]) Split() (Producer[Cell2[A, B]], Producer[Cell2[A, B]]) {
	dim, mid, ok := splitPoint(z)
	if !ok {
		panic("par: split on leaf zip producer")
	}
	ext := z.shape[dim]
	left := &Zip2[A, B]{
		a:     z.a.Slice(dim, 0, mid),
		b:     z.b.Slice(dim, 0, mid),
		shape: cutShape(z.shape, dim, mid),
	}
	right := &Zip2[A, B]{
		a:     z.a.Slice(dim, mid, ext),
		b:     z.b.Slice(dim, mid, ext),
		shape: cutShape(z.shape, dim, ext-mid),
	}
	return left, right
}

func (z *Zip2[A, B]) Items() iter.Seq[Cell2[A, B]] {
	return func(yield func(Cell2[A, B]) bool) {
		if z.Len() == 0 {
			return
		}
		ra, rb := z.a.Raw(), z.b.Raw()
		offA, offB := z.a.Offset(), z.b.Offset()
		if len(z.shape) == 0 {
			yield(Cell2[A, B]{&ra[offA], &rb[offB]})
			return
		}
		idx := make([]int, len(z.shape))
		for {
			if !yield(Cell2[A, B]{&ra[offA], &rb[offB]}) {
				return
			}
			d := len(z.shape) - 1
			for ; d >= 0; d-- {
				idx[d]++
				offA += z.a.Stride(d)
				offB += z.b.Stride(d)
				if idx[d] < z.shape[d] {
					break
				}
				offA -= idx[d] * z.a.Stride(d)
				offB -= idx[d] * z.b.Stride(d)
				idx[d] = 0
			}
			if d < 0 {
				return
			}
		}
	}
}

// Apply runs fn at every position serially, the baseline the parallel
// drivers are compared against.
func (z *Zip2[A, B]) Apply(fn func(*A, *B)) {
	for c := range z.Items() {
		fn(c.A, c.B)
	}
}

// Zip3 traverses three equally shaped views in lock-step. Same contract
// as Zip2.
type Zip3[A, B, C any] struct {
	a     views.View[A]
	b     views.View[B]
	c     views.View[C]
	shape []int
}

// NewZip3 builds a lock-step producer over three views, rejecting
// mismatched shapes with ErrShapeMismatch before any traversal can begin.
func NewZip3[A, B, C any](a views.View[A], b views.View[B], c views.View[C]) (*Zip3[A, B, C], error) {
	sa, sb, sc := a.Shape(), b.Shape(), c.Shape()
	if !slices.Equal(sa, sb) || !slices.Equal(sa, sc) {
		return nil, fmt.Errorf("%w: %v vs %v vs %v", ErrShapeMismatch, sa, sb, sc)
	}
	return &Zip3[A, B, C]{a: a, b: b, c: c, shape: sa}, nil
}

// Rank returns the number of dimensions of the common shape.
func (z *Zip3[A, B, C]) Rank() int { return len(z.shape) }

// Extent returns the common extent along axis.
func (z *Zip3[A, B, C]) Extent(axis int) int { return z.shape[axis] }

func (z *Zip3[A, B, C]) Len() int { return sizeOf(z.shape) }

func (z *Zip3[A, B, C]) Split() (Producer[Cell3[A, B, C]], Producer[Cell3[A, B, C]]) {
	dim, mid, ok := splitPoint(z)
	if !ok {
		panic("par: split on leaf zip producer")
	}
	ext := z.shape[dim]
	left := &Zip3[A, B, C]{
		a:     z.a.Slice(dim, 0, mid),
		b:     z.b.Slice(dim, 0, mid),
		c:     z.c.Slice(dim, 0, mid),
		shape: cutShape(z.shape, dim, mid),
	}
	right := &Zip3[A, B, C]{
		a:     z.a.Slice(dim, mid, ext),
		b:     z.b.Slice(dim, mid, ext),
		c:     z.c.Slice(dim, mid, ext),
		shape: cutShape(z.shape, dim, ext-mid),
	}
	return left, right
}

func (z *Zip3[A, B, C]) Items() iter.Seq[Cell3[A, B, C]] {
	return func(yield func(Cell3[A, B, C]) bool) {
		if z.Len() == 0 {
			return
		}
		ra, rb, rc := z.a.Raw(), z.b.Raw(), z.c.Raw()
		offA, offB, offC := z.a.Offset(), z.b.Offset(), z.c.Offset()
		if len(z.shape) == 0 {
			yield(Cell3[A, B, C]{&ra[offA], &rb[offB], &rc[offC]})
			return
		}
		idx := make([]int, len(z.shape))
		for {
			if !yield(Cell3[A, B, C]{&ra[offA], &rb[offB], &rc[offC]}) {
				return
			}
			d := len(z.shape) - 1
			for ; d >= 0; d-- {
				idx[d]++
				offA += z.a.Stride(d)
				offB += z.b.Stride(d)
				offC += z.c.Stride(d)
				if idx[d] < z.shape[d] {
					break
				}
				offA -= idx[d] * z.a.Stride(d)
				offB -= idx[d] * z.b.Stride(d)
				offC -= idx[d] * z.c.Stride(d)
				idx[d] = 0
			}
			if d < 0 {
				return
			}
		}
	}
}

// Apply runs fn at every position serially.
func (z *Zip3[A, B, C]) Apply(fn func(*A, *B, *C)) {
	for c := range z.Items() {
		fn(c.A, c.B, c.C)
	}
}

func sizeOf(shape []int) int {
	n := 1
	for _, ext := range shape {
		n *= ext
	}
	return n
}

// cutShape returns shape with dim's extent replaced by ext.
func cutShape(shape []int, dim, ext int) []int {
	out := make([]int, len(shape))
	copy(out, shape)
	out[dim] = ext
	return out
}
