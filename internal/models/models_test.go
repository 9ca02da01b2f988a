package models

import (
	"errors"
	"math"
	"testing"

	"github.com/qdynlab/qdyn/internal/backends"
	"github.com/qdynlab/qdyn/internal/solver"
)

func TestGetUnknownModel(t *testing.T) {
	_, _, err := Get("warpdrive", nil)
	if !errors.Is(err, ErrUnknownModel) {
		t.Errorf("expected ErrUnknownModel, got %v", err)
	}
}

func TestList(t *testing.T) {
	names := List()
	if len(names) != len(catalog) {
		t.Fatalf("List returned %d names, catalog has %d", len(names), len(catalog))
	}
	for _, name := range names {
		if Describe(name) == "" {
			t.Errorf("model %s has no description", name)
		}
	}
}

func TestDecayRHS(t *testing.T) {
	rhs, y0, err := Get("decay", map[string]float64{"k": 2.0, "y0": 3.0})
	if err != nil {
		t.Fatal(err)
	}
	if got := y0.(*backends.Dense).At(0); got != 3.0 {
		t.Errorf("y0 = %g, want 3", got)
	}
	dy := rhs(0, y0).(*backends.Dense)
	if dy.At(0) != -6.0 {
		t.Errorf("dy = %g, want -6", dy.At(0))
	}
}

func TestOscillatorPeriod(t *testing.T) {
	rhs, y0, err := Get("oscillator", nil)
	if err != nil {
		t.Fatal(err)
	}
	res, err := solver.Solve(rhs, [2]float64{0, 2 * math.Pi}, y0, solver.Config{Rtol: 1e-10, Atol: 1e-10})
	if err != nil {
		t.Fatal(err)
	}
	final := res.Y.(*backends.Dense)
	if math.Abs(final.At(1, 0)-1) > 1e-7 || math.Abs(final.At(1, 1)) > 1e-7 {
		t.Errorf("after one period got [%g, %g], want [1, 0]", final.At(1, 0), final.At(1, 1))
	}
}

func TestTwoLevelRabiFlop(t *testing.T) {
	rhs, psi0, err := Get("twolevel", map[string]float64{"rabi": 1.0})
	if err != nil {
		t.Fatal(err)
	}

	// resonant pi pulse: full population transfer at t = pi
	res, err := solver.Solve(rhs, [2]float64{0, math.Pi}, psi0, solver.Config{
		TEval: []float64{math.Pi / 2, math.Pi},
		Rtol:  1e-10, Atol: 1e-10,
	})
	if err != nil {
		t.Fatal(err)
	}

	y := res.Y.(*backends.CDense)
	p1Half := absSq(y.At(0, 1))
	p1Full := absSq(y.At(1, 1))

	if math.Abs(p1Half-0.5) > 1e-7 {
		t.Errorf("p1(pi/2) = %g, want 0.5", p1Half)
	}
	if math.Abs(p1Full-1.0) > 1e-7 {
		t.Errorf("p1(pi) = %g, want 1", p1Full)
	}

	// norm conserved
	norm := absSq(y.At(1, 0)) + absSq(y.At(1, 1))
	if math.Abs(norm-1) > 1e-7 {
		t.Errorf("|psi|^2 = %g, want 1", norm)
	}
}

func absSq(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}
