package score

import "golang.org/x/exp/constraints"

// Func maps a candidate to its score.
// It must be pure: the engine may assume equal candidates score equally.
type Func[T any, S any] func(candidate T) S

// Identity scores an orderable value by itself.
func Identity[T constraints.Ordered]() Func[T, T] {
	return func(v T) T { return v }
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// SquaredL2From returns a scorer measuring squared L2 distance from target.
// Useful for Bottom-K nearest-point selection.
func SquaredL2From(target []float32) Func[[]float32, float32] {
	return func(v []float32) float32 {
		return SquaredL2(v, target)
	}
}
