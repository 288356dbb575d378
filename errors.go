package selectk

import "errors"

var (
	// ErrInvalidK is returned when k is negative.
	ErrInvalidK = errors.New("k must be non-negative")

	// ErrNilScorer is returned when no scoring function is supplied.
	ErrNilScorer = errors.New("scoring function must not be nil")

	// ErrNilOrdering is returned when New is given a nil ordering predicate.
	ErrNilOrdering = errors.New("ordering predicate must not be nil")
)
