package solver

import (
	"fmt"
	"math"
	"sort"

	"github.com/qdynlab/qdyn/internal/arraylias"
	"github.com/qdynlab/qdyn/internal/odeint"
)

// Config selects the integrator and describes the evaluation request.
// Zero values pick defaults (dopri5, rtol/atol 1e-8).
type Config struct {
	// Method is the integrator token, resolved by odeint.MethodByName.
	Method string

	// TEval lists the requested output times, in the order the caller
	// wants them back. May repeat values, include the span endpoints,
	// and run against the integration direction. Every value must lie
	// inside the span. Nil or empty requests the endpoints only.
	TEval []float64

	Rtol, Atol float64
	Dt0        float64
	MaxSteps   int

	// Registry resolves the state backend; nil uses arraylias.Numeric.
	Registry *arraylias.Registry
}

// Result is the reconciled solver output. T follows the caller's
// requested order exactly; Y stacks the matching states along a new
// leading axis, one slice per entry of T.
type Result struct {
	T     []float64
	Y     arraylias.Array
	Stats odeint.Stats
}

// Solve integrates rhs over tSpan from y0 and returns states at the
// requested times. The span direction is taken from sign(t1 - t0);
// backward spans are supported throughout.
func Solve(rhs odeint.Func, tSpan [2]float64, y0 arraylias.Array, cfg Config) (*Result, error) {
	t0, t1 := tSpan[0], tSpan[1]

	method, err := odeint.MethodByName(cfg.Method)
	if err != nil {
		return nil, err
	}
	reg := cfg.Registry
	if reg == nil {
		reg = arraylias.Numeric
	}
	be, err := reg.Resolve(y0)
	if err != nil {
		return nil, err
	}

	saveAt, err := buildSaveAt(t0, t1, cfg.TEval)
	if err != nil {
		return nil, err
	}

	rtol, atol := cfg.Rtol, cfg.Atol
	if rtol == 0 {
		rtol = 1e-8
	}
	if atol == 0 {
		atol = 1e-8
	}

	ts, ys, stats, err := odeint.Integrate(rhs, t0, t1, y0, method, odeint.Options{
		Dt0:        cfg.Dt0,
		MaxSteps:   cfg.MaxSteps,
		SaveAt:     saveAt,
		Controller: odeint.NewPIController(rtol, atol),
		Registry:   reg,
	})
	if err != nil {
		return nil, &IntegrationError{Method: method.Name(), Err: err}
	}

	outT, outY := reconcile(t0, t1, cfg.TEval, ts, ys)
	return &Result{T: outT, Y: be.Stack(outY), Stats: stats}, nil
}

// buildSaveAt validates the request and produces the integrator's
// save-at set: the endpoints united with every requested time,
// deduplicated, sorted in the stepping direction.
func buildSaveAt(t0, t1 float64, tEval []float64) ([]float64, error) {
	if math.IsNaN(t0) || math.IsNaN(t1) {
		return nil, fmt.Errorf("%w: span [%g, %g]", ErrInvalidRequest, t0, t1)
	}
	if t0 == t1 {
		return nil, fmt.Errorf("%w: degenerate span [%g, %g]", ErrInvalidRequest, t0, t1)
	}
	lo, hi := math.Min(t0, t1), math.Max(t0, t1)
	for _, te := range tEval {
		// NaN compares false against both bounds, so test it explicitly.
		if math.IsNaN(te) || te < lo || te > hi {
			return nil, fmt.Errorf("%w: t=%g outside span [%g, %g]", ErrInvalidRequest, te, lo, hi)
		}
	}

	seen := map[float64]struct{}{t0: {}, t1: {}}
	saveAt := []float64{t0, t1}
	for _, te := range tEval {
		if _, dup := seen[te]; !dup {
			seen[te] = struct{}{}
			saveAt = append(saveAt, te)
		}
	}

	sort.Float64s(saveAt)
	if t1 < t0 {
		for i, j := 0, len(saveAt)-1; i < j; i, j = i+1, j-1 {
			saveAt[i], saveAt[j] = saveAt[j], saveAt[i]
		}
	}
	return saveAt, nil
}

// reconcile maps the integrator's direction-ordered output back to the
// caller's request. Every requested occurrence resolves independently,
// so duplicates appear once per occurrence; save points added only for
// the endpoints are dropped unless explicitly requested.
func reconcile(t0, t1 float64, tEval, ts []float64, ys []arraylias.Array) ([]float64, []arraylias.Array) {
	index := make(map[float64]int, len(ts))
	for i, t := range ts {
		index[t] = i
	}

	if len(tEval) == 0 {
		return []float64{t0, t1}, []arraylias.Array{ys[index[t0]], ys[index[t1]]}
	}

	outT := make([]float64, len(tEval))
	outY := make([]arraylias.Array, len(tEval))
	for i, te := range tEval {
		outT[i] = te
		outY[i] = ys[index[te]]
	}
	return outT, outY
}
