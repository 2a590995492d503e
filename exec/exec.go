/*
Package exec drives splittable producers to completion.

A [Runner] recursively splits a producer until units fit a leaf
threshold, drains leaves serially, and hands split halves to new
goroutines while worker capacity remains; when the pool is saturated it
descends inline instead of blocking, so a bounded worker limit can never
deadlock. Scheduling beyond that is left to the Go runtime.

Every drive call returns only after all leaves have completed. That is
the sole cross-leaf happens-before: side effects in different leaves are
otherwise unordered unless the producer itself is ordered ([Collect]).
There is no cancellation; a traversal runs to completion. Panics from
user functions propagate out of the drive call.
*/
package exec

import (
	"runtime"

	"go.uber.org/zap"
)

// Runner holds the tuning for a family of drive calls. The zero options
// give one worker per CPU, an adaptive leaf size, and no logging; a
// Runner is cheap and safe to share across goroutines.
type Runner struct {
	workers int
	minLeaf int
	log     *zap.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// Workers caps how many goroutines drain leaves concurrently. Defaults
// to runtime.GOMAXPROCS(0). One worker never spawns, which makes the
// runner a serial driver that still exercises the full split recursion.
func Workers(n int) Option {
	return func(r *Runner) {
		if n < 1 {
			n = 1
		}
		r.workers = n
	}
}

// MinLeaf fixes the split cutoff: units at or below this many items are
// drained without further splitting. By default the cutoff is chosen per
// call as items/(workers*4), at least 1, which leaves enough surplus
// units for the runtime to balance load.
func MinLeaf(n int) Option {
	return func(r *Runner) {
		if n < 1 {
			n = 1
		}
		r.minLeaf = n
	}
}

// Logger attaches a logger for per-call debug summaries. Defaults to
// zap.NewNop.
func Logger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// New builds a Runner from the given options.
func New(opts ...Option) *Runner {
	r := &Runner{workers: runtime.GOMAXPROCS(0), log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Sequential returns the single-worker reference runner. Property tests
// compare parallel runners against it.
func Sequential() *Runner { return New(Workers(1)) }

func (r *Runner) leafSize(n int) int {
	if r.minLeaf > 0 {
		return r.minLeaf
	}
	leaf := n / (r.workers * 4)
	if leaf < 1 {
		leaf = 1
	}
	return leaf
}
