// Package score provides scoring functions for k-best selection.
//
// A scoring function maps a candidate to an orderable score. The selectk
// engine never inspects candidates itself; everything it knows about a
// candidate comes from the score the caller's function produces.
//
// The package ships the scorers the demonstration programs need: Identity
// for self-scoring values and SquaredL2From for nearest-point selection.
// Callers with richer candidates supply their own Func.
package score
