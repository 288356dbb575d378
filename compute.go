package selectk

import (
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/selectk/score"
)

// TopN returns the k candidates with the greatest scores, best first.
//
// It is sugar over the streaming interface: a fresh Top selector is fed
// every candidate in slice order and then read sorted, so the output is
// identical to doing that by hand. Ties at the retention boundary favor
// earlier candidates.
func TopN[T any, S constraints.Ordered](k int, candidates []T, scorer score.Func[T, S], optFns ...Option) ([]T, error) {
	sel, err := Top(k, scorer, optFns...)
	if err != nil {
		return nil, err
	}
	return computeResults(sel, candidates), nil
}

// BottomN returns the k candidates with the least scores, best (lowest)
// first. See TopN for the contract.
func BottomN[T any, S constraints.Ordered](k int, candidates []T, scorer score.Func[T, S], optFns ...Option) ([]T, error) {
	sel, err := Bottom(k, scorer, optFns...)
	if err != nil {
		return nil, err
	}
	return computeResults(sel, candidates), nil
}

func computeResults[T any, S any](sel *Selector[T, S], candidates []T) []T {
	for _, c := range candidates {
		sel.Offer(c)
	}
	return sel.Results(Sorted(), Drain())
}
