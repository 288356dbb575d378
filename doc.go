// Package selectk provides bounded K-best selection for Go.
//
// Selectk incrementally maintains the K best candidates from a stream or
// collection, judged by a caller-supplied scoring function, without ever
// storing the full input. The retained set is kept in a bounded binary heap
// keyed by score, so selection costs O(N log K) time and O(K) space for N
// offered candidates.
//
// # Quick Start
//
// Top-K over a stream:
//
//	sel, _ := selectk.Top(3, score.Identity[int]())
//	for _, v := range candidates {
//	    sel.Offer(v)
//	}
//	best := sel.Results(selectk.Sorted())
//
// One-shot over a slice:
//
//	best, _ := selectk.TopN(3, candidates, score.Identity[int]())
//
// Bottom-K nearest points:
//
//	sel, _ := selectk.Bottom(4, score.SquaredL2From(origin))
//	for _, p := range points {
//	    sel.Offer(p)
//	}
//	nearest := sel.Results(selectk.Sorted())
//
// # Selection Contract
//
// Offer considers one candidate: while the selector holds fewer than K
// entries the candidate is always retained; once saturated, it replaces the
// current worst entry only when it scores strictly better. Ties with the
// current worst keep the incumbent, so earlier-offered candidates win exact
// score ties at the boundary.
//
// Results returns the retained candidates. By default it is non-destructive
// and unsorted; pass Sorted() for best-to-worst order and Drain() to empty
// the selector as a side effect.
//
// # Concurrency
//
// A Selector has no internal locking and is designed for a single logical
// owner. Concurrent producers must serialize Offer and Results calls with
// their own mutual exclusion.
package selectk
