// Package solve defines the result type and best-result register shared by
// the exact and approximate longest-path engines.
//
// Both engines explore many candidate paths and keep a single best
// (value, path) pair. The [Best] register centralizes that bookkeeping:
// updates are monotone (a candidate replaces the incumbent only when its
// value is strictly greater), so ties keep the first result found and the
// final outcome is independent of attempt interleaving under concurrency.
package solve

import (
	"sync"

	"github.com/pathmax/pathmax/pkg/graph"
)

// Result is a solved path together with its total weight.
type Result struct {
	Value float64
	Path  graph.Path
}

// Best is a monotone best-result register. The zero value is ready to use
// and holds an empty result with value zero. Best is safe for concurrent
// use; Offer is the only critical section shared between parallel search
// attempts.
type Best struct {
	mu  sync.Mutex
	res Result
	set bool
}

// Offer replaces the incumbent when r.Value is strictly greater, or when
// no result has been recorded yet. It reports whether r was accepted.
// Equal values keep the incumbent, so discovery order decides ties.
func (b *Best) Offer(r Result) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.set && r.Value <= b.res.Value {
		return false
	}
	b.res = r
	b.set = true
	return true
}

// Result returns the current best result. Calling Result before any Offer
// yields the zero Result.
func (b *Best) Result() Result {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.res
}
