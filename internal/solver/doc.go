// Package solver adapts the odeint integrator to an evaluation-grid
// calling convention: the caller names the output times it wants, in
// the order it wants them, and gets states exactly there regardless of
// integration direction.
//
//	res, err := solver.Solve(rhs, [2]float64{0, 2}, y0, solver.Config{
//		TEval: []float64{1.0, 1.5, 1.7},
//		Rtol:  1e-10, Atol: 1e-10,
//	})
//
// Internally the requested times are merged with the span endpoints
// into the integrator's save-at set (sorted in stepping direction,
// deduplicated), and the raw output is reconciled back to the caller's
// original order. Without TEval the result holds the two endpoints
// only.
package solver
