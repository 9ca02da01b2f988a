package odeint

import (
	"fmt"
	"math"

	"github.com/qdynlab/qdyn/internal/arraylias"
)

// Func is a right-hand side dy/dt = f(t, y). It must tolerate repeated
// evaluation at non-monotonic stage times.
type Func func(t float64, y arraylias.Array) arraylias.Array

// Options are the integrator tuning knobs. Zero values select defaults.
type Options struct {
	// Dt0 is the initial step magnitude; 0 picks span/100.
	Dt0 float64

	// MaxSteps bounds attempted steps; 0 means 100000.
	MaxSteps int

	// SaveAt lists the times to materialize states at, strictly
	// monotonic in stepping direction and inside the span. Empty
	// records every accepted step.
	SaveAt []float64

	// Controller defaults to NewPIController(1e-8, 1e-8).
	Controller *PIController

	// Registry resolves y0's backend; nil uses arraylias.Numeric.
	Registry *arraylias.Registry
}

// Stats counts integrator work for a single call.
type Stats struct {
	Steps    int // attempted steps
	Accepted int
	Rejected int
	Evals    int // right-hand-side evaluations
}

const defaultMaxSteps = 100000

// Integrate advances y0 from t0 to t1 with adaptive error control,
// returning times and states at the save points (monotonic in the
// stepping direction), plus work statistics.
func Integrate(rhs Func, t0, t1 float64, y0 arraylias.Array, method *Method, opts Options) ([]float64, []arraylias.Array, Stats, error) {
	var stats Stats

	if t0 == t1 {
		return nil, nil, stats, ErrDegenerateSpan
	}
	if method == nil {
		method = Dopri5()
	}

	reg := opts.Registry
	if reg == nil {
		reg = arraylias.Numeric
	}
	be, err := reg.Resolve(y0)
	if err != nil {
		return nil, nil, stats, err
	}

	dir := 1.0
	if t1 < t0 {
		dir = -1.0
	}
	if err := checkSaveAt(opts.SaveAt, t0, t1, dir); err != nil {
		return nil, nil, stats, err
	}

	ctrl := opts.Controller
	if ctrl == nil {
		ctrl = NewPIController(1e-8, 1e-8)
	}
	maxSteps := opts.MaxSteps
	if maxSteps <= 0 {
		maxSteps = defaultMaxSteps
	}
	dt := opts.Dt0
	if dt <= 0 {
		dt = math.Abs(t1-t0) / 100
	}

	saveAll := len(opts.SaveAt) == 0
	si := 0

	t := t0
	y := be.Clone(y0)

	var ts []float64
	var ys []arraylias.Array
	record := func(tv float64, yv arraylias.Array) {
		ts = append(ts, tv)
		ys = append(ys, yv)
	}

	if saveAll {
		record(t, y)
	} else if opts.SaveAt[si] == t {
		record(t, y)
		si++
	}

	for (t-t1)*dir < 0 {
		if stats.Steps >= maxSteps {
			return nil, nil, stats, fmt.Errorf("%w: %d steps, t=%g of [%g, %g]", ErrMaxSteps, stats.Steps, t, t0, t1)
		}

		// Clamp the step so it lands exactly on the next save point
		// (or on t1); the reported save times must equal the requested
		// values bit for bit.
		target := t + dt*dir
		next := t1
		clamped := true
		if !saveAll && si < len(opts.SaveAt) {
			next = opts.SaveAt[si]
		}
		if (target-next)*dir >= 0 {
			target = next
		} else {
			clamped = false
		}
		h := target - t

		ks := make([]arraylias.Array, method.stages())
		for i := range ks {
			yi := y
			for j, aij := range method.a[i] {
				if aij != 0 {
					yi = be.Add(yi, be.Scale(ks[j], h*aij))
				}
			}
			ks[i] = rhs(t+method.c[i]*h, yi)
			stats.Evals++
		}

		ynew := y
		for i, bw := range method.b {
			if bw != 0 {
				ynew = be.Add(ynew, be.Scale(ks[i], h*bw))
			}
		}
		yerr := be.Zeros(y0.Shape(), y0.DType())
		for i, ew := range method.e {
			if ew != 0 {
				yerr = be.Add(yerr, be.Scale(ks[i], h*ew))
			}
		}

		stats.Steps++
		if !be.IsFinite(ynew) {
			return nil, nil, stats, fmt.Errorf("%w at t=%g", ErrUnstable, t)
		}

		ratio := be.NormScaled(yerr, y, ynew, ctrl.Atol, ctrl.Rtol)
		if ratio <= 1 {
			stats.Accepted++
			if clamped {
				t = next
			} else {
				t = target
			}
			y = ynew
			if saveAll {
				record(t, y)
			} else if si < len(opts.SaveAt) && opts.SaveAt[si] == t {
				record(t, y)
				si++
			}
		} else {
			stats.Rejected++
		}

		dt *= ctrl.scale(ratio, method.order)
		if dt < ctrl.MinStep {
			return nil, nil, stats, fmt.Errorf("%w: dt=%g at t=%g", ErrStepTooSmall, dt, t)
		}
	}

	return ts, ys, stats, nil
}

func checkSaveAt(saveAt []float64, t0, t1, dir float64) error {
	for i, s := range saveAt {
		if (s-t0)*dir < 0 || (s-t1)*dir > 0 {
			return fmt.Errorf("%w: %g not in [%g, %g]", ErrSaveOutOfSpan, s, math.Min(t0, t1), math.Max(t0, t1))
		}
		if i > 0 && (s-saveAt[i-1])*dir <= 0 {
			return fmt.Errorf("%w: %g after %g", ErrSaveNotMonotonic, s, saveAt[i-1])
		}
	}
	return nil
}
