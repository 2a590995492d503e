package par

// shaped is the minimal geometry a split decision needs.
type shaped interface {
	Rank() int
	Extent(axis int) int
}

// splitPoint chooses where to bisect a work unit: the dimension with the
// largest extent, lowest index winning ties, cut at floor(extent/2). The
// halves differ in size by at most one, which keeps the split tree depth
// logarithmic in the largest extent. ok is false when no dimension has
// extent > 1, i.e. the unit is a leaf.
func splitPoint(s shaped) (dim, mid int, ok bool) {
	best, bestExt := -1, 1
	for d := 0; d < s.Rank(); d++ {
		if ext := s.Extent(d); ext > bestExt {
			best, bestExt = d, ext
		}
	}
	if best < 0 {
		return 0, 0, false
	}
	return best, bestExt / 2, true
}
