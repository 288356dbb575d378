package selectk

import "time"

// ResultOptions configure a Results read.
type ResultOptions struct {
	// Sorted orders the output best-to-worst by the configured ordering.
	// Unsorted output is in arbitrary heap order; the only guarantee is
	// that the multiset of candidates equals the retained set.
	Sorted bool

	// Drain empties the selector as a side effect. After a drained read the
	// selector behaves as if freshly constructed with the same K. Without
	// Drain the read operates on a copy and the selector is untouched.
	Drain bool
}

// Sorted orders the results best-to-worst.
func Sorted() func(o *ResultOptions) {
	return func(o *ResultOptions) { o.Sorted = true }
}

// Drain makes the read destructive: the selector is empty afterwards.
func Drain() func(o *ResultOptions) {
	return func(o *ResultOptions) { o.Drain = true }
}

// Results returns the retained candidates. The returned slice always has
// length min(K, candidates offered and retained).
//
// By default the read is non-destructive and unsorted. Pass Sorted and/or
// Drain to change that:
//
//	sel.Results()                            // copy, heap order
//	sel.Results(selectk.Sorted())            // copy, best to worst
//	sel.Results(selectk.Sorted(), selectk.Drain()) // empties the selector
//
// Sorting costs O(K log K): the retained heap is drained worst-first into
// the output back-to-front. Candidates with equal scores may appear in
// either relative order.
func (s *Selector[T, S]) Results(optFns ...func(o *ResultOptions)) []T {
	start := time.Now()

	var o ResultOptions
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	h := s.heap
	if !o.Drain {
		h = s.heap.Clone()
	}

	var out []T
	if o.Sorted {
		// Worst pops first; fill from the back for best-to-worst order.
		out = make([]T, h.Len())
		for i := len(out) - 1; i >= 0; i-- {
			item, _ := h.Pop()
			out[i] = item.candidate
		}
	} else {
		items := h.Slice()
		out = make([]T, len(items))
		for i := range items {
			out[i] = items[i].candidate
		}
		if o.Drain {
			h.Reset()
		}
	}

	s.metrics.RecordResults(len(out), time.Since(start))
	s.logger.LogResults(len(out), o.Sorted, o.Drain)

	return out
}
