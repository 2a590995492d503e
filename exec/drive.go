package exec

import (
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"grid/par"
)

// ForEach drains every item of p through fn, split across workers. fn
// observes items from different leaves concurrently and in no particular
// order and must be safe under that contract. ForEach returns once every
// leaf has been drained.
func ForEach[T any](r *Runner, p par.Producer[T], fn func(T)) {
	n := p.Len()
	leaf := r.leafSize(n)
	r.log.Debug("foreach",
		zap.Int("items", n), zap.Int("workers", r.workers), zap.Int("leaf", leaf))
	var g errgroup.Group
	g.SetLimit(r.workers - 1)
	forEachNode(&g, p, fn, leaf)
	_ = g.Wait() // workers return nil; Wait repanics if fn panicked
}

// forEachNode splits until the unit fits a leaf, spawning the left half
// when a worker slot is free and descending inline otherwise.
func forEachNode[T any](g *errgroup.Group, p par.Producer[T], fn func(T), leaf int) {
	for p.Len() > leaf && p.Len() > 1 {
		l, rest := p.Split()
		if !g.TryGo(func() error {
			forEachNode(g, l, fn, leaf)
			return nil
		}) {
			forEachNode(g, l, fn, leaf)
		}
		p = rest
	}
	for item := range p.Items() {
		fn(item)
	}
}

// Fold reduces p to a single value: init seeds one accumulator per leaf,
// acc folds the leaf's items into it, and merge combines the two halves
// of every split. merge must be associative for the result to be
// independent of split depth; a commutative merge additionally makes the
// result independent of which worker finishes first.
func Fold[T, R any](r *Runner, p par.Producer[T], init func() R, acc func(R, T) R, merge func(R, R) R) R {
	n := p.Len()
	leaf := r.leafSize(n)
	r.log.Debug("fold",
		zap.Int("items", n), zap.Int("workers", r.workers), zap.Int("leaf", leaf))
	var g errgroup.Group
	g.SetLimit(r.workers - 1)
	res := foldNode(&g, p, init, acc, merge, leaf)
	_ = g.Wait()
	return res
}

func foldNode[T, R any](g *errgroup.Group, p par.Producer[T], init func() R, acc func(R, T) R, merge func(R, R) R, leaf int) R {
	if p.Len() <= leaf || p.Len() <= 1 {
		a := init()
		for item := range p.Items() {
			a = acc(a, item)
		}
		return a
	}
	l, rest := p.Split()
	var lres R
	done := make(chan struct{})
	if g.TryGo(func() error {
		defer close(done)
		lres = foldNode(g, l, init, acc, merge, leaf)
		return nil
	}) {
		rres := foldNode(g, rest, init, acc, merge, leaf)
		<-done
		return merge(lres, rres)
	}
	return merge(
		foldNode(g, l, init, acc, merge, leaf),
		foldNode(g, rest, init, acc, merge, leaf),
	)
}

// Collect maps an ordered producer into a pre-sized slice: fn's result
// for item i lands at index i no matter how the split tree is shaped or
// which worker drained which leaf. p must be freshly constructed, not a
// half of an earlier split.
func Collect[T, R any](r *Runner, p par.Ordered[T], fn func(T) R) []R {
	n := p.Len()
	leaf := r.leafSize(n)
	r.log.Debug("collect",
		zap.Int("items", n), zap.Int("workers", r.workers), zap.Int("leaf", leaf))
	out := make([]R, n)
	var g errgroup.Group
	g.SetLimit(r.workers - 1)
	collectNode(&g, p, fn, out, leaf)
	_ = g.Wait()
	return out
}

func collectNode[T, R any](g *errgroup.Group, p par.Ordered[T], fn func(T) R, out []R, leaf int) {
	for p.Len() > leaf && p.Len() > 1 {
		l, rest := p.Split()
		if !g.TryGo(func() error {
			collectNode(g, l, fn, out, leaf)
			return nil
		}) {
			collectNode(g, l, fn, out, leaf)
		}
		p = rest
	}
	i := p.Start()
	for item := range p.Items() {
		out[i] = fn(item)
		i++
	}
}

// Apply2 runs fn at every position of the zip in parallel, the direct
// replacement for a serial Zip2.Apply.
func Apply2[A, B any](r *Runner, z *par.Zip2[A, B], fn func(*A, *B)) {
	ForEach[par.Cell2[A, B]](r, z, func(c par.Cell2[A, B]) { fn(c.A, c.B) })
}

// Apply3 runs fn at every position of the zip in parallel, the direct
// replacement for a serial Zip3.Apply.
func Apply3[A, B, C any](r *Runner, z *par.Zip3[A, B, C], fn func(*A, *B, *C)) {
	ForEach[par.Cell3[A, B, C]](r, z, func(c par.Cell3[A, B, C]) { fn(c.A, c.B, c.C) })
}
