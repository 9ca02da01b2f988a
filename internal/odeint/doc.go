// Package odeint is an adaptive-step explicit Runge-Kutta integrator
// over arraylias-registered state arrays.
//
// It follows the calling convention of adaptive solver libraries: a
// right-hand-side function, the span endpoints, an initial state, a
// method token, and a stepsize controller. Output states are
// materialized exactly at the requested save points:
//
//	ts, ys, stats, err := odeint.Integrate(rhs, 0, 2, y0, odeint.Dopri5(), odeint.Options{
//		SaveAt:     []float64{0, 1, 2},
//		Controller: odeint.NewPIController(1e-10, 1e-10),
//	})
//
// Save points must lie inside the span and be strictly monotonic in the
// stepping direction (ascending for t0 < t1, descending for t0 > t1).
// Accepted steps are clamped so the state lands exactly on each save
// point; no interpolation is performed. With an empty SaveAt the full
// sequence of accepted steps is recorded, t0 and the terminal time
// included.
package odeint
