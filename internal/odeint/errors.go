package odeint

import "errors"

// Integration errors. The span and save-point errors are detected
// before stepping begins; the rest abort a run in progress.
var (
	// ErrDegenerateSpan indicates t0 == t1.
	ErrDegenerateSpan = errors.New("odeint: degenerate span (t0 == t1)")

	// ErrSaveOutOfSpan indicates a save point outside [min(t0,t1), max(t0,t1)].
	ErrSaveOutOfSpan = errors.New("odeint: save point outside integration span")

	// ErrSaveNotMonotonic indicates save points not strictly monotonic
	// in the stepping direction.
	ErrSaveNotMonotonic = errors.New("odeint: save points not monotonic in stepping direction")

	// ErrMaxSteps indicates the step budget ran out before reaching t1.
	ErrMaxSteps = errors.New("odeint: maximum step count exceeded")

	// ErrStepTooSmall indicates the controller drove the step below its
	// minimum without meeting the tolerance.
	ErrStepTooSmall = errors.New("odeint: step size underflow")

	// ErrUnstable indicates a non-finite state (NaN or Inf).
	ErrUnstable = errors.New("odeint: state diverged (NaN or Inf detected)")

	// ErrUnknownMethod indicates an unrecognized method name.
	ErrUnknownMethod = errors.New("odeint: unknown method")
)
