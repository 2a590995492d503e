// Package views provides dense, strided n-dimensional arrays and
// non-copying views over their storage.
package views

// Mode records how a view's storage may be accessed. The tag travels with
// every sub-view so iteration adapters can expose the matching element
// contract; Go offers no static enforcement, so it is advisory.
type Mode uint8

const (
	// Shared marks a read-only view. Any number of shared views of the
	// same storage may be traversed concurrently.
	Shared Mode = iota
	// Exclusive marks a mutable view. Concurrent traversal stays safe
	// because every split hands each half a disjoint index range.
	Exclusive
)

// View is a non-owning descriptor of an n-dimensional region of a flat
// backing slice: per-axis extents and element strides plus a starting
// offset. Sub-view operations compute new descriptors and never copy
// storage.
type View[T any] struct {
	data    []T
	shape   []int
	strides []int
	offset  int
	mode    Mode
}

// Rank returns the number of dimensions.
func (v View[T]) Rank() int { return len(v.shape) }

// Extent returns the number of indices along axis.
func (v View[T]) Extent(axis int) int { return v.shape[axis] }

// Stride returns the element stride along axis.
func (v View[T]) Stride(axis int) int { return v.strides[axis] }

// Offset returns the position of the view's first element within Raw.
func (v View[T]) Offset() int { return v.offset }

// Raw exposes the full backing slice for iterator implementations that
// address elements by offset. Respect Mode when writing through it.
func (v View[T]) Raw() []T { return v.data }

// Mode reports the access tag the view was created with.
func (v View[T]) Mode() Mode { return v.mode }

// Shape returns a copy of the extents, outermost axis first.
func (v View[T]) Shape() []int {
	shape := make([]int, len(v.shape))
	copy(shape, v.shape)
	return shape
}

// Size returns the total element count, the product of all extents.
// A rank-0 view holds exactly one element.
func (v View[T]) Size() int {
	n := 1
	for _, ext := range v.shape {
		n *= ext
	}
	return n
}

// At returns a pointer to the element at the given index, one coordinate
// per axis. It panics on rank mismatch or an out-of-range coordinate.
func (v View[T]) At(ix ...int) *T {
	if len(ix) != len(v.shape) {
		panic("views: index rank mismatch")
	}
	off := v.offset
	for d, i := range ix {
		if i < 0 || i >= v.shape[d] {
			panic("views: index out of range")
		}
		off += i * v.strides[d]
	}
	return &v.data[off]
}

// Slice returns the sub-view covering the half-open range [lo, hi) along
// axis. Only the descriptor changes; storage and mode are shared. It
// panics on an invalid axis or range.
func (v View[T]) Slice(axis, lo, hi int) View[T] {
	if axis < 0 || axis >= len(v.shape) {
		panic("views: slice axis out of range")
	}
	if lo < 0 || hi > v.shape[axis] || lo > hi {
		panic("views: slice range out of bounds")
	}
	shape := make([]int, len(v.shape))
	copy(shape, v.shape)
	shape[axis] = hi - lo
	return View[T]{
		data:    v.data,
		shape:   shape,
		strides: v.strides,
		offset:  v.offset + lo*v.strides[axis],
		mode:    v.mode,
	}
}

// Pick returns the sub-view at index i along axis with that axis removed,
// dropping the rank by one. It panics on an invalid axis or index.
func (v View[T]) Pick(axis, i int) View[T] {
	if axis < 0 || axis >= len(v.shape) {
		panic("views: pick axis out of range")
	}
	if i < 0 || i >= v.shape[axis] {
		panic("views: pick index out of range")
	}
	shape := make([]int, 0, len(v.shape)-1)
	strides := make([]int, 0, len(v.shape)-1)
	for d := range v.shape {
		if d == axis {
			continue
		}
		shape = append(shape, v.shape[d])
		strides = append(strides, v.strides[d])
	}
	return View[T]{
		data:    v.data,
		shape:   shape,
		strides: strides,
		offset:  v.offset + i*v.strides[axis],
		mode:    v.mode,
	}
}
