package backends

import (
	"math"
	"testing"

	"github.com/qdynlab/qdyn/internal/arraylias"
)

func TestDenseElementwise(t *testing.T) {
	be := denseBackend{}
	a := Vector(1, 2, 3)
	b := Vector(10, 20, 30)

	sum := be.Add(a, b).(*Dense)
	for i, want := range []float64{11, 22, 33} {
		if sum.Data()[i] != want {
			t.Errorf("add[%d] = %f, want %f", i, sum.Data()[i], want)
		}
	}

	diff := be.Sub(b, a).(*Dense)
	if diff.Data()[0] != 9 || diff.Data()[2] != 27 {
		t.Errorf("sub wrong: %v", diff.Data())
	}

	scaled := be.Scale(a, 2).(*Dense)
	if scaled.Data()[2] != 6 {
		t.Errorf("scale wrong: %v", scaled.Data())
	}

	// inputs untouched
	if a.Data()[0] != 1 || b.Data()[0] != 10 {
		t.Error("operations must not mutate inputs")
	}
}

func TestDenseNorm(t *testing.T) {
	be := denseBackend{}
	if got := be.Norm(Vector(3, 4)); math.Abs(got-5) > 1e-15 {
		t.Errorf("norm = %f, want 5", got)
	}
}

func TestDenseNormScaled(t *testing.T) {
	be := denseBackend{}
	e := Vector(1e-6, 2e-6)
	y := Vector(1, 1)
	// atol 0, rtol 1e-6: ratio = max(1, 2) = 2
	if got := be.NormScaled(e, y, y, 0, 1e-6); math.Abs(got-2) > 1e-12 {
		t.Errorf("normScaled = %f, want 2", got)
	}
}

func TestDenseMatMul(t *testing.T) {
	be := denseBackend{}
	a := NewDense([]int{2, 2}, []float64{1, 2, 3, 4})
	b := NewDense([]int{2, 2}, []float64{5, 6, 7, 8})

	got := be.MatMul(a, b).(*Dense)
	want := []float64{19, 22, 43, 50}
	for i := range want {
		if got.Data()[i] != want[i] {
			t.Errorf("matmul[%d] = %f, want %f", i, got.Data()[i], want[i])
		}
	}
}

func TestDenseMatVec(t *testing.T) {
	be := denseBackend{}
	a := NewDense([]int{2, 2}, []float64{1, 2, 3, 4})
	x := Vector(1, 1)

	got := be.MatVec(a, x).(*Dense)
	if got.Data()[0] != 3 || got.Data()[1] != 7 {
		t.Errorf("matvec = %v, want [3 7]", got.Data())
	}
	if len(got.Shape()) != 1 {
		t.Errorf("matvec result should be 1-d, got shape %v", got.Shape())
	}
}

func TestDenseTranspose(t *testing.T) {
	be := denseBackend{}
	a := NewDense([]int{2, 3}, []float64{1, 2, 3, 4, 5, 6})

	got := be.Transpose(a).(*Dense)
	if got.Shape()[0] != 3 || got.Shape()[1] != 2 {
		t.Fatalf("transpose shape %v, want [3 2]", got.Shape())
	}
	if got.At(0, 1) != 4 || got.At(2, 0) != 3 {
		t.Errorf("transpose values wrong: %v", got.Data())
	}
}

func TestDenseStack(t *testing.T) {
	be := denseBackend{}
	stacked := be.Stack([]arraylias.Array{Vector(1, 2), Vector(3, 4), Vector(5, 6)}).(*Dense)

	if stacked.Shape()[0] != 3 || stacked.Shape()[1] != 2 {
		t.Fatalf("stack shape %v, want [3 2]", stacked.Shape())
	}
	if stacked.At(1, 0) != 3 || stacked.At(2, 1) != 6 {
		t.Errorf("stack values wrong: %v", stacked.Data())
	}
}

func TestDenseIsFinite(t *testing.T) {
	be := denseBackend{}
	if !be.IsFinite(Vector(1, 2)) {
		t.Error("finite vector reported non-finite")
	}
	if be.IsFinite(Vector(1, math.NaN())) {
		t.Error("NaN not detected")
	}
	if be.IsFinite(Vector(math.Inf(1))) {
		t.Error("Inf not detected")
	}
}

func TestCDenseMatVec(t *testing.T) {
	be := cdenseBackend{}
	// Pauli X
	x := NewCDense([]int{2, 2}, []complex128{0, 1, 1, 0})
	psi := CVector(1, 0)

	got := be.MatVec(x, psi).(*CDense)
	if got.Data()[0] != 0 || got.Data()[1] != 1 {
		t.Errorf("X|0> = %v, want |1>", got.Data())
	}
}

func TestCDenseScaleC(t *testing.T) {
	v := CVector(1, 1i).ScaleC(-1i)
	if v.Data()[0] != -1i || v.Data()[1] != 1 {
		t.Errorf("scaleC wrong: %v", v.Data())
	}
}

func TestCDenseNorm(t *testing.T) {
	be := cdenseBackend{}
	if got := be.Norm(CVector(3i, 4)); math.Abs(got-5) > 1e-15 {
		t.Errorf("norm = %f, want 5", got)
	}
}

func TestCDenseStack(t *testing.T) {
	be := cdenseBackend{}
	stacked := be.Stack([]arraylias.Array{CVector(1, 0), CVector(0, 1i)}).(*CDense)
	if stacked.Shape()[0] != 2 || stacked.Shape()[1] != 2 {
		t.Fatalf("stack shape %v", stacked.Shape())
	}
	if stacked.At(1, 1) != 1i {
		t.Errorf("stack values wrong: %v", stacked.Data())
	}
}
