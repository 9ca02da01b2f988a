package arraylias_test

import (
	"errors"
	"testing"

	"github.com/qdynlab/qdyn/internal/arraylias"
	"github.com/qdynlab/qdyn/internal/backends"
)

type stubArray struct{}

func (stubArray) Shape() []int           { return nil }
func (stubArray) DType() arraylias.DType { return arraylias.Float64 }

// stubBackend implements the elementwise surface only, so Linalg
// resolution against it must fail.
type stubBackend struct{ name string }

func (b stubBackend) Name() string { return b.name }

func (stubBackend) Zeros(shape []int, _ arraylias.DType) arraylias.Array       { return stubArray{} }
func (stubBackend) Clone(a arraylias.Array) arraylias.Array                    { return a }
func (stubBackend) Add(a, b arraylias.Array) arraylias.Array                   { return a }
func (stubBackend) Sub(a, b arraylias.Array) arraylias.Array                   { return a }
func (stubBackend) Mul(a, b arraylias.Array) arraylias.Array                   { return a }
func (stubBackend) Scale(a arraylias.Array, s float64) arraylias.Array         { return a }
func (stubBackend) Norm(a arraylias.Array) float64                             { return 0 }
func (stubBackend) NormScaled(e, y0, y1 arraylias.Array, _, _ float64) float64 { return 0 }
func (stubBackend) Stack(xs []arraylias.Array) arraylias.Array                 { return xs[0] }
func (stubBackend) IsFinite(a arraylias.Array) bool                            { return true }

func TestDefaultTables(t *testing.T) {
	for _, reg := range []*arraylias.Registry{arraylias.Numeric, arraylias.Linear} {
		b, err := reg.Resolve(backends.Vector(1, 2))
		if err != nil {
			t.Fatalf("%s: resolve Dense: %v", reg.Name(), err)
		}
		if b.Name() != "dense" {
			t.Errorf("%s: expected dense backend, got %s", reg.Name(), b.Name())
		}

		b, err = reg.Resolve(backends.CVector(1i))
		if err != nil {
			t.Fatalf("%s: resolve CDense: %v", reg.Name(), err)
		}
		if b.Name() != "cdense" {
			t.Errorf("%s: expected cdense backend, got %s", reg.Name(), b.Name())
		}
	}
}

func TestResolveUnregisteredType(t *testing.T) {
	_, err := arraylias.Numeric.Resolve(stubArray{})
	if !errors.Is(err, arraylias.ErrUnregisteredType) {
		t.Errorf("expected ErrUnregisteredType, got %v", err)
	}
}

func TestRegisterTypeLastWriteWins(t *testing.T) {
	reg := arraylias.New("test")
	reg.RegisterBackend(stubBackend{name: "first"})
	reg.RegisterBackend(stubBackend{name: "second"})

	reg.RegisterType(stubArray{}, "first")
	reg.RegisterType(stubArray{}, "second")

	b, err := reg.Resolve(stubArray{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if b.Name() != "second" {
		t.Errorf("expected last registration to win, got %s", b.Name())
	}
}

func TestResolveUnknownBackendName(t *testing.T) {
	reg := arraylias.New("test")
	reg.RegisterType(stubArray{}, "ghost")

	_, err := reg.Resolve(stubArray{})
	if !errors.Is(err, arraylias.ErrUnknownBackend) {
		t.Errorf("expected ErrUnknownBackend, got %v", err)
	}
}

func TestRegisteredTypesSnapshot(t *testing.T) {
	reg := arraylias.New("test")
	reg.RegisterBackend(stubBackend{name: "stub"})
	reg.RegisterType(stubArray{}, "stub")

	snap := reg.RegisteredTypes()
	if len(snap) != 1 {
		t.Fatalf("expected 1 registered type, got %d", len(snap))
	}

	reg.RegisterType(backends.Vector(0), "stub")
	if len(snap) != 1 {
		t.Error("snapshot must not update with later registrations")
	}
	if got := len(reg.RegisteredTypes()); got != 2 {
		t.Errorf("re-read should reflect new registrations, got %d", got)
	}
}

func TestLinalgNotImplemented(t *testing.T) {
	reg := arraylias.New("test")
	reg.RegisterBackend(stubBackend{name: "stub"})
	reg.RegisterType(stubArray{}, "stub")

	_, err := reg.Linalg(stubArray{})
	if !errors.Is(err, arraylias.ErrNotImplemented) {
		t.Errorf("expected ErrNotImplemented, got %v", err)
	}
}

func TestBackendByName(t *testing.T) {
	if _, err := arraylias.Numeric.Backend("dense"); err != nil {
		t.Errorf("dense should be registered: %v", err)
	}
	if _, err := arraylias.Numeric.Backend("nope"); !errors.Is(err, arraylias.ErrUnknownBackend) {
		t.Errorf("expected ErrUnknownBackend, got %v", err)
	}
}
