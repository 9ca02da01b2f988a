package models

import (
	"fmt"
	"sort"

	"github.com/qdynlab/qdyn/internal/arraylias"
	"github.com/qdynlab/qdyn/internal/backends"
	"github.com/qdynlab/qdyn/internal/odeint"
)

// Factory builds a right-hand side and its default initial state from
// named parameters. Missing parameters fall back to model defaults.
type Factory func(params map[string]float64) (odeint.Func, arraylias.Array)

type entry struct {
	desc    string
	factory Factory
}

var catalog = map[string]entry{
	"decay": {
		desc:    "exponential decay dy/dt = -k*y",
		factory: decay,
	},
	"oscillator": {
		desc:    "harmonic oscillator dy/dt = [v, -omega^2*x]",
		factory: oscillator,
	},
	"piecewise": {
		desc:    "piecewise field dy/dt = t (t<1), t^2 (t>=1)",
		factory: piecewise,
	},
	"twolevel": {
		desc:    "two-level system dpsi/dt = -i*H*psi (Rabi)",
		factory: twoLevel,
	},
}

// Get returns the model's right-hand side and default initial state.
func Get(name string, params map[string]float64) (odeint.Func, arraylias.Array, error) {
	e, ok := catalog[name]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownModel, name)
	}
	rhs, y0 := e.factory(params)
	return rhs, y0, nil
}

// List returns the model names, sorted.
func List() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns the one-line description for a model name.
func Describe(name string) string {
	return catalog[name].desc
}

func param(params map[string]float64, name string, def float64) float64 {
	if v, ok := params[name]; ok {
		return v
	}
	return def
}

func decay(params map[string]float64) (odeint.Func, arraylias.Array) {
	k := param(params, "k", 1.0)
	rhs := func(t float64, y arraylias.Array) arraylias.Array {
		be, _ := arraylias.Numeric.Resolve(y)
		return be.Scale(y, -k)
	}
	return rhs, backends.Vector(param(params, "y0", 1.0))
}

func oscillator(params map[string]float64) (odeint.Func, arraylias.Array) {
	omega2 := param(params, "omega", 1.0)
	omega2 *= omega2
	rhs := func(t float64, y arraylias.Array) arraylias.Array {
		d := y.(*backends.Dense)
		return backends.Vector(d.At(1), -omega2*d.At(0))
	}
	return rhs, backends.Vector(param(params, "x", 1.0), param(params, "v", 0.0))
}

// piecewise is the acceptance field from the solver test suite: the
// derivative depends on t only, switching from t to t^2 at t=1.
func piecewise(params map[string]float64) (odeint.Func, arraylias.Array) {
	rhs := func(t float64, y arraylias.Array) arraylias.Array {
		if t < 1.0 {
			return backends.Vector(t)
		}
		return backends.Vector(t * t)
	}
	return rhs, backends.Vector(param(params, "y0", 1.0))
}

// twoLevel evolves a qubit under H = (delta/2)*Z + (rabi/2)*X via the
// Schrodinger equation. The state lives on the complex backend; the
// matrix-vector product dispatches through the Linear alias table.
func twoLevel(params map[string]float64) (odeint.Func, arraylias.Array) {
	delta := param(params, "delta", 0.0)
	rabi := param(params, "rabi", 1.0)

	h := backends.NewCDense([]int{2, 2}, []complex128{
		complex(delta/2, 0), complex(rabi/2, 0),
		complex(rabi/2, 0), complex(-delta/2, 0),
	})
	psi0 := backends.CVector(1, 0)
	la, err := arraylias.Linear.Linalg(psi0)
	if err != nil {
		panic(err)
	}

	rhs := func(t float64, y arraylias.Array) arraylias.Array {
		hy := la.MatVec(h, y)
		return hy.(*backends.CDense).ScaleC(complex(0, -1))
	}
	return rhs, psi0
}
