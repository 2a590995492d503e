package views

import "iter"

// Elems yields a pointer to every element in storage order: the last axis
// varies fastest, matching row-major layout for contiguous views. The
// traversal is an odometer over the shape so it works for any strides a
// sub-view may carry.
func (v View[T]) Elems() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if v.Size() == 0 {
			return
		}
		if len(v.shape) == 0 {
			yield(&v.data[v.offset])
			return
		}
		idx := make([]int, len(v.shape))
		off := v.offset
		for {
			if !yield(&v.data[off]) {
				return
			}
			d := len(v.shape) - 1
			for ; d >= 0; d-- {
				idx[d]++
				off += v.strides[d]
				if idx[d] < v.shape[d] {
					break
				}
				off -= idx[d] * v.strides[d]
				idx[d] = 0
			}
			if d < 0 {
				return
			}
		}
	}
}

// Along yields the sub-view at each index of axis in ascending order, with
// the axis removed from every sub-view. It panics on an invalid axis.
func (v View[T]) Along(axis int) iter.Seq[View[T]] {
	if axis < 0 || axis >= len(v.shape) {
		panic("views: axis out of range")
	}
	return func(yield func(View[T]) bool) {
		for i := 0; i < v.shape[axis]; i++ {
			if !yield(v.Pick(axis, i)) {
				return
			}
		}
	}
}
