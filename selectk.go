package selectk

import (
	"iter"
	"time"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/selectk/internal/bheap"
	"github.com/hupe1980/selectk/score"
)

// WorseFunc reports whether score a ranks worse than score b.
// It must define a strict weak ordering over scores. For Top-K "worse"
// means lower; for Bottom-K it means higher. This single predicate is the
// only difference between the two policies.
type WorseFunc[S any] func(a, b S) bool

// scored pairs a candidate with the score computed for it at offer time.
type scored[T any, S any] struct {
	candidate T
	score     S
}

// Selector maintains the K best candidates seen so far.
//
// The retained set is a binary heap ordered worst-first, so the next
// eviction victim is always at the root. A Selector holds at most K
// candidates at any point in its lifetime; K is fixed at construction.
//
// Selector is not safe for concurrent use. See the package documentation.
type Selector[T any, S any] struct {
	k       int
	scorer  score.Func[T, S]
	worse   WorseFunc[S]
	heap    *bheap.Heap[scored[T, S]]
	metrics MetricsCollector
	logger  *Logger
}

// New creates a Selector with an explicit "worse than" predicate.
//
// Most callers want the Top or Bottom constructors instead; New exists for
// score types without a natural ordering (or with a custom one).
//
// k is the retention bound and must be non-negative. k == 0 is legal and
// yields a selector that retains nothing.
func New[T any, S any](k int, scorer score.Func[T, S], worse WorseFunc[S], optFns ...Option) (*Selector[T, S], error) {
	if k < 0 {
		return nil, ErrInvalidK
	}
	if scorer == nil {
		return nil, ErrNilScorer
	}
	if worse == nil {
		return nil, ErrNilOrdering
	}

	o := applyOptions(optFns)

	s := &Selector[T, S]{
		k:       k,
		scorer:  scorer,
		worse:   worse,
		metrics: o.metricsCollector,
		logger:  o.logger,
	}
	s.heap = bheap.New(k, func(a, b scored[T, S]) bool {
		return worse(a.score, b.score)
	})

	return s, nil
}

// Top creates a Selector retaining the k candidates with the greatest scores.
func Top[T any, S constraints.Ordered](k int, scorer score.Func[T, S], optFns ...Option) (*Selector[T, S], error) {
	return New(k, scorer, func(a, b S) bool { return a < b }, optFns...)
}

// Bottom creates a Selector retaining the k candidates with the least scores.
func Bottom[T any, S constraints.Ordered](k int, scorer score.Func[T, S], optFns ...Option) (*Selector[T, S], error) {
	return New(k, scorer, func(a, b S) bool { return a > b }, optFns...)
}

// K returns the retention bound.
func (s *Selector[T, S]) K() int { return s.k }

// Len returns the number of candidates currently retained.
func (s *Selector[T, S]) Len() int { return s.heap.Len() }

// Offer considers one candidate for retention and reports whether it was
// retained. The scoring function is invoked exactly once, before any state
// changes, so a panicking scorer leaves the selector untouched.
//
// While the selector holds fewer than K entries the candidate is always
// retained. Once saturated, the candidate replaces the current worst entry
// only if it scores strictly better; on an exact tie with the worst entry
// the incumbent is kept and Offer returns false.
func (s *Selector[T, S]) Offer(candidate T) bool {
	start := time.Now()
	accepted := s.offer(candidate)
	s.metrics.RecordOffer(accepted, time.Since(start))
	s.logger.LogOffer(accepted, s.heap.Len(), s.k)
	return accepted
}

func (s *Selector[T, S]) offer(candidate T) bool {
	if s.k == 0 {
		return false
	}

	item := scored[T, S]{
		candidate: candidate,
		score:     s.scorer(candidate),
	}

	if s.heap.Len() < s.k {
		s.heap.Push(item)
		return true
	}

	worst, _ := s.heap.Peek()
	if !s.worse(worst.score, item.score) {
		return false
	}

	// Root-replace evicts the worst and inserts in one sift.
	s.heap.Replace(item)

	return true
}

// OfferAll offers every candidate the sequence yields, in order, and
// returns the number retained.
func (s *Selector[T, S]) OfferAll(seq iter.Seq[T]) int {
	accepted := 0
	for candidate := range seq {
		if s.Offer(candidate) {
			accepted++
		}
	}
	return accepted
}
