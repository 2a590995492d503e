package par

import (
	"errors"
	"iter"
)

var (
	// ErrInvalidAxis reports an axis index outside the view's rank.
	ErrInvalidAxis = errors.New("par: invalid axis")
	// ErrShapeMismatch reports zip constituents whose shapes differ.
	ErrShapeMismatch = errors.New("par: zip shape mismatch")
)

// Producer is a splittable unit of parallel work. It has two observable
// states, splittable (Len > 1) and leaf, with Split as the only
// transition. Producers created by the same Split call may be consumed
// concurrently with no coordination.
type Producer[T any] interface {
	// Len reports how many items Items will yield.
	Len() int
	// Split bisects the unit into two producers over disjoint index sets
	// whose union is exactly this unit's index set. It panics when called
	// on a leaf (Len() <= 1); drivers must check Len first.
	Split() (Producer[T], Producer[T])
	// Items drains the unit serially in storage order. No ordering is
	// implied between items of different producers.
	Items() iter.Seq[T]
}

// Ordered is a producer with a total order and exact length: item i of
// the original unit keeps absolute position Start()+i through every
// split, so consumers can place results positionally into pre-sized
// output, reassembling the left half before the right.
type Ordered[T any] interface {
	// Len reports how many items Items will yield.
	Len() int
	// Start is the absolute index of this unit's first item within the
	// producer it was split from, 0 for a freshly constructed one.
	Start() int
	// Split bisects at Len()/2. The left half keeps the lower indices.
	// It panics when called on a leaf (Len() <= 1).
	Split() (Ordered[T], Ordered[T])
	// Items drains the unit's items in ascending index order.
	Items() iter.Seq[T]
}

// Unordered adapts an ordered producer to the unordered contract so it
// can feed drivers that do not need positions.
func Unordered[T any](p Ordered[T]) Producer[T] { return unordered[T]{p} }

type unordered[T any] struct{ p Ordered[T] }

func (u unordered[T]) Len() int { return u.p.Len() }

func (u unordered[T]) Split() (Producer[T], Producer[T]) {
	l, r := u.p.Split()
	return unordered[T]{l}, unordered[T]{r}
}

func (u unordered[T]) Items() iter.Seq[T] { return u.p.Items() }
