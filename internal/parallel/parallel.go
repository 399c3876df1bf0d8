// Package parallel provides a small bounded fan-out helper built on
// golang.org/x/sync/errgroup, used wherever the protocol requires
// data-parallel work across parties, domain indices, or MSM chunks.
// Combination of partial results is always left to the caller in a
// fixed, deterministic order — this package only bounds concurrency and
// propagates the first error.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// For runs f(i) for every i in [0,n) across a worker pool bounded by
// runtime.GOMAXPROCS(0), waiting for every call to finish and returning
// the first non-nil error encountered, if any. Results must be combined
// by the caller in a fixed order; For makes no ordering guarantee about
// when individual calls to f run relative to one another.
func For(n int, f func(i int) error) error {
	if n <= 0 {
		return nil
	}
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			return f(i)
		})
	}
	return g.Wait()
}

// Chunks splits n items into at most parts contiguous, near-equal-size
// ranges [lo, hi), used to bound MSM chunking to one goroutine per
// available core instead of one goroutine per scalar.
func Chunks(n, parts int) [][2]int {
	if parts <= 0 {
		parts = 1
	}
	if parts > n {
		parts = n
	}
	if parts <= 0 {
		return nil
	}
	base := n / parts
	rem := n % parts
	out := make([][2]int, 0, parts)
	lo := 0
	for p := 0; p < parts; p++ {
		size := base
		if p < rem {
			size++
		}
		hi := lo + size
		if size > 0 {
			out = append(out, [2]int{lo, hi})
		}
		lo = hi
	}
	return out
}
