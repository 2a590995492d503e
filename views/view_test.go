package views_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"grid/views"
)

// iota fill, row-major
func fillSeq(a *views.Array[int]) *views.Array[int] {
	for i := range a.Data() {
		a.Data()[i] = i
	}
	return a
}

func elemsOf[T any](v views.View[T]) []T {
	out := make([]T, 0, v.Size())
	for p := range v.Elems() {
		out = append(out, *p)
	}
	return out
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestNewIsZeroed(t *testing.T) {
	a := views.New[float64](2, 3)
	if a.Size() != 6 {
		t.Fatalf("size: got %d, want 6", a.Size())
	}
	for i, v := range a.Data() {
		if v != 0 {
			t.Errorf("data[%d] = %v, want 0", i, v)
		}
	}
}

func TestElemsRowMajor(t *testing.T) {
	a := fillSeq(views.New[int](2, 3))
	got := elemsOf(a.View())
	if diff := cmp.Diff([]int{0, 1, 2, 3, 4, 5}, got); diff != "" {
		t.Errorf("element order mismatch (-want +got):\n%s", diff)
	}
}

func TestSlice(t *testing.T) {
	a := fillSeq(views.New[int](3, 4))
	s := a.View().Slice(1, 1, 3)

	if diff := cmp.Diff([]int{3, 2}, s.Shape()); diff != "" {
		t.Errorf("shape mismatch (-want +got):\n%s", diff)
	}
	want := []int{1, 2, 5, 6, 9, 10}
	if diff := cmp.Diff(want, elemsOf(s)); diff != "" {
		t.Errorf("sliced elements mismatch (-want +got):\n%s", diff)
	}
	if s.Size() != 6 {
		t.Errorf("size: got %d, want 6", s.Size())
	}
}

func TestSliceOfSlice(t *testing.T) {
	a := fillSeq(views.New[int](4, 4))
	s := a.View().Slice(0, 1, 4).Slice(1, 2, 4).Slice(0, 1, 2)
	if diff := cmp.Diff([]int{1, 2}, s.Shape()); diff != "" {
		t.Fatalf("shape mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{10, 11}, elemsOf(s)); diff != "" {
		t.Errorf("elements mismatch (-want +got):\n%s", diff)
	}
}

func TestPickRemovesAxis(t *testing.T) {
	a := fillSeq(views.New[int](3, 4))

	row := a.View().Pick(0, 2)
	if diff := cmp.Diff([]int{4}, row.Shape()); diff != "" {
		t.Errorf("row shape mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{8, 9, 10, 11}, elemsOf(row)); diff != "" {
		t.Errorf("row elements mismatch (-want +got):\n%s", diff)
	}

	col := a.View().Pick(1, 1)
	if diff := cmp.Diff([]int{1, 5, 9}, elemsOf(col)); diff != "" {
		t.Errorf("column elements mismatch (-want +got):\n%s", diff)
	}
}

func TestPickToRankZero(t *testing.T) {
	a := fillSeq(views.New[int](5))
	scalar := a.View().Pick(0, 3)
	if scalar.Rank() != 0 || scalar.Size() != 1 {
		t.Fatalf("rank/size: got %d/%d, want 0/1", scalar.Rank(), scalar.Size())
	}
	if got := elemsOf(scalar); len(got) != 1 || got[0] != 3 {
		t.Errorf("scalar elements: got %v, want [3]", got)
	}
	if *scalar.At() != 3 {
		t.Errorf("At(): got %d, want 3", *scalar.At())
	}
}

func TestAt(t *testing.T) {
	a := fillSeq(views.New[int](3, 4))
	v := a.MutView()
	if *v.At(2, 3) != 11 {
		t.Errorf("At(2,3): got %d, want 11", *v.At(2, 3))
	}
	*v.At(1, 1) = 99
	if a.Data()[5] != 99 {
		t.Errorf("write through At not visible: data[5] = %d", a.Data()[5])
	}
}

func TestAlong(t *testing.T) {
	a := fillSeq(views.New[int](3, 2))
	var rows [][]int
	for row := range a.View().Along(0) {
		rows = append(rows, elemsOf(row))
	}
	want := [][]int{{0, 1}, {2, 3}, {4, 5}}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestReshape(t *testing.T) {
	a := views.Linspace(0, 63, 64)
	b, err := a.Reshape(4, 16)
	if err != nil {
		t.Fatalf("reshape: %v", err)
	}
	if got := *b.View().At(1, 0); got != 16 {
		t.Errorf("At(1,0): got %v, want 16", got)
	}

	// shares storage
	b.Data()[0] = -1
	if a.Data()[0] != -1 {
		t.Error("reshape did not share storage")
	}

	if _, err := a.Reshape(5, 5); err == nil {
		t.Error("expected error reshaping 64 elements to (5,5)")
	}
}

func TestLinspaceEndpoints(t *testing.T) {
	a := views.Linspace(0, 63, 64)
	if a.Data()[0] != 0 || a.Data()[63] != 63 {
		t.Errorf("endpoints: got %v..%v, want 0..63", a.Data()[0], a.Data()[63])
	}
	if views.Linspace(5, 9, 1).Data()[0] != 5 {
		t.Error("single-point linspace should hold lo")
	}
}

func TestModes(t *testing.T) {
	a := views.New[int](2, 2)
	if a.View().Mode() != views.Shared {
		t.Error("View() should be Shared")
	}
	if a.MutView().Mode() != views.Exclusive {
		t.Error("MutView() should be Exclusive")
	}
	if a.MutView().Slice(0, 0, 1).Mode() != views.Exclusive {
		t.Error("Slice should preserve mode")
	}
	if a.View().Pick(0, 0).Mode() != views.Shared {
		t.Error("Pick should preserve mode")
	}
}

func TestZeroExtent(t *testing.T) {
	a := views.New[int](0, 5)
	v := a.View()
	if v.Size() != 0 {
		t.Fatalf("size: got %d, want 0", v.Size())
	}
	if got := elemsOf(v); len(got) != 0 {
		t.Errorf("expected no elements, got %v", got)
	}
}

func TestPreconditionPanics(t *testing.T) {
	v := views.New[int](3, 4).View()
	mustPanic(t, "At rank mismatch", func() { v.At(1) })
	mustPanic(t, "At out of range", func() { v.At(3, 0) })
	mustPanic(t, "Slice bad axis", func() { v.Slice(2, 0, 1) })
	mustPanic(t, "Slice bad range", func() { v.Slice(0, 2, 5) })
	mustPanic(t, "Slice inverted range", func() { v.Slice(0, 2, 1) })
	mustPanic(t, "Pick bad axis", func() { v.Pick(-1, 0) })
	mustPanic(t, "Pick bad index", func() { v.Pick(1, 4) })
	mustPanic(t, "Along bad axis", func() { v.Along(2) })
	mustPanic(t, "negative extent", func() { views.New[int](-1, 2) })
}
