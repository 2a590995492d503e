package views

import "fmt"

// Array owns a dense row-major buffer together with the shape laid over
// it. Views borrow its storage; the array must outlive them.
type Array[T any] struct {
	data  []T
	shape []int
}

// New allocates a zeroed array with the given extents, outermost first.
func New[T any](shape ...int) *Array[T] {
	n := checkShape(shape)
	return &Array[T]{data: make([]T, n), shape: cloneShape(shape)}
}

// FromElem allocates an array with every element set to fill.
func FromElem[T any](fill T, shape ...int) *Array[T] {
	a := New[T](shape...)
	for i := range a.data {
		a.data[i] = fill
	}
	return a
}

// Linspace returns a 1-d array of n evenly spaced values from lo to hi
// inclusive.
func Linspace(lo, hi float64, n int) *Array[float64] {
	a := New[float64](n)
	if n == 1 {
		a.data[0] = lo
		return a
	}
	step := (hi - lo) / float64(n-1)
	for i := range a.data {
		a.data[i] = lo + float64(i)*step
	}
	return a
}

// Reshape lays a new shape over the same buffer. The element count must
// match exactly; the returned array shares storage with the receiver.
func (a *Array[T]) Reshape(shape ...int) (*Array[T], error) {
	if n := checkShape(shape); n != len(a.data) {
		return nil, fmt.Errorf("views: cannot reshape %d elements to %v", len(a.data), shape)
	}
	return &Array[T]{data: a.data, shape: cloneShape(shape)}, nil
}

// Data exposes the flat row-major buffer.
func (a *Array[T]) Data() []T { return a.data }

// Shape returns a copy of the extents.
func (a *Array[T]) Shape() []int { return cloneShape(a.shape) }

// Size returns the total element count.
func (a *Array[T]) Size() int { return len(a.data) }

// View returns a read-only view of the whole array.
func (a *Array[T]) View() View[T] { return a.view(Shared) }

// MutView returns an exclusive view of the whole array.
func (a *Array[T]) MutView() View[T] { return a.view(Exclusive) }

func (a *Array[T]) view(m Mode) View[T] {
	return View[T]{
		data:    a.data,
		shape:   cloneShape(a.shape),
		strides: contiguousStrides(a.shape),
		mode:    m,
	}
}

// contiguousStrides computes row-major element strides: the last axis has
// unit stride and each earlier stride is the product of the extents after
// it.
func contiguousStrides(shape []int) []int {
	strides := make([]int, len(shape))
	st := 1
	for d := len(shape) - 1; d >= 0; d-- {
		strides[d] = st
		st *= shape[d]
	}
	return strides
}

func checkShape(shape []int) int {
	n := 1
	for _, ext := range shape {
		if ext < 0 {
			panic("views: negative extent")
		}
		n *= ext
	}
	return n
}

func cloneShape(shape []int) []int {
	out := make([]int, len(shape))
	copy(out, shape)
	return out
}
