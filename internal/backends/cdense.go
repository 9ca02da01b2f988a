package backends

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"

	"github.com/qdynlab/qdyn/internal/arraylias"
)

// CDense is a complex-valued array, used for quantum state vectors and
// operators. Same layout contract as Dense.
type CDense struct {
	shape []int
	data  []complex128
}

func NewCDense(shape []int, data []complex128) *CDense {
	n := sizeOf(shape)
	if data == nil {
		data = make([]complex128, n)
	}
	if len(data) != n {
		panic(fmt.Sprintf("backends: shape %v needs %d elements, got %d", shape, n, len(data)))
	}
	return &CDense{shape: append([]int(nil), shape...), data: data}
}

// CVector builds a 1-d CDense from its arguments.
func CVector(vs ...complex128) *CDense {
	return NewCDense([]int{len(vs)}, append([]complex128(nil), vs...))
}

func (d *CDense) Shape() []int           { return d.shape }
func (d *CDense) DType() arraylias.DType { return arraylias.Complex128 }
func (d *CDense) Data() []complex128     { return d.data }
func (d *CDense) Len() int               { return len(d.data) }

func (d *CDense) At(idx ...int) complex128 {
	return d.data[flatIndex(d.shape, idx)]
}

// ScaleC returns a copy scaled by a complex factor. Exposed on the
// concrete type because the generic backend surface only carries real
// scalars (integrator coefficients are real).
func (d *CDense) ScaleC(z complex128) *CDense {
	out := NewCDense(d.shape, append([]complex128(nil), d.data...))
	cmplxs.Scale(z, out.data)
	return out
}

// cdenseBackend implements the arraylias surfaces for CDense values.
type cdenseBackend struct{}

func (cdenseBackend) Name() string { return "cdense" }

func asCDense(v arraylias.Array) *CDense { return v.(*CDense) }

func (cdenseBackend) Zeros(shape []int, _ arraylias.DType) arraylias.Array {
	return NewCDense(shape, nil)
}

func (cdenseBackend) Clone(a arraylias.Array) arraylias.Array {
	d := asCDense(a)
	return NewCDense(d.shape, append([]complex128(nil), d.data...))
}

func (b cdenseBackend) Add(x, y arraylias.Array) arraylias.Array {
	out := asCDense(b.Clone(x))
	cmplxs.Add(out.data, asCDense(y).data)
	return out
}

func (b cdenseBackend) Sub(x, y arraylias.Array) arraylias.Array {
	out := asCDense(b.Clone(x))
	cmplxs.Sub(out.data, asCDense(y).data)
	return out
}

func (b cdenseBackend) Mul(x, y arraylias.Array) arraylias.Array {
	out := asCDense(b.Clone(x))
	yd := asCDense(y).data
	for i := range out.data {
		out.data[i] *= yd[i]
	}
	return out
}

func (b cdenseBackend) Scale(x arraylias.Array, s float64) arraylias.Array {
	out := asCDense(b.Clone(x))
	cmplxs.Scale(complex(s, 0), out.data)
	return out
}

func (cdenseBackend) Norm(a arraylias.Array) float64 {
	sum := 0.0
	for _, v := range asCDense(a).data {
		sum += real(v)*real(v) + imag(v)*imag(v)
	}
	return math.Sqrt(sum)
}

func (cdenseBackend) NormScaled(e, y0, y1 arraylias.Array, atol, rtol float64) float64 {
	ed, a, b := asCDense(e).data, asCDense(y0).data, asCDense(y1).data
	ratio := 0.0
	for i := range ed {
		scale := atol + rtol*math.Max(cmplx.Abs(a[i]), cmplx.Abs(b[i]))
		ratio = math.Max(ratio, cmplx.Abs(ed[i])/scale)
	}
	return ratio
}

func (cdenseBackend) Stack(xs []arraylias.Array) arraylias.Array {
	if len(xs) == 0 {
		return NewCDense([]int{0}, nil)
	}
	first := asCDense(xs[0])
	out := NewCDense(append([]int{len(xs)}, first.shape...), nil)
	for i, x := range xs {
		copy(out.data[i*first.Len():], asCDense(x).data)
	}
	return out
}

func (cdenseBackend) IsFinite(a arraylias.Array) bool {
	for _, v := range asCDense(a).data {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			return false
		}
	}
	return true
}

func (cdenseBackend) MatMul(a, x arraylias.Array) arraylias.Array {
	ad, xd := asCDense(a), asCDense(x)
	if len(ad.shape) != 2 || len(xd.shape) != 2 || ad.shape[1] != xd.shape[0] {
		panic(fmt.Sprintf("backends: matmul shapes %v x %v", ad.shape, xd.shape))
	}
	r, k, c := ad.shape[0], ad.shape[1], xd.shape[1]
	out := NewCDense([]int{r, c}, nil)
	for i := 0; i < r; i++ {
		for l := 0; l < k; l++ {
			av := ad.data[i*k+l]
			if av == 0 {
				continue
			}
			for j := 0; j < c; j++ {
				out.data[i*c+j] += av * xd.data[l*c+j]
			}
		}
	}
	return out
}

func (b cdenseBackend) MatVec(a, x arraylias.Array) arraylias.Array {
	xd := asCDense(x)
	if len(xd.shape) != 1 {
		panic(fmt.Sprintf("backends: need 1-d vector, got shape %v", xd.shape))
	}
	col := NewCDense([]int{xd.Len(), 1}, append([]complex128(nil), xd.data...))
	out := asCDense(b.MatMul(a, col))
	return NewCDense([]int{out.shape[0]}, out.data)
}

func (cdenseBackend) Transpose(a arraylias.Array) arraylias.Array {
	ad := asCDense(a)
	if len(ad.shape) != 2 {
		panic(fmt.Sprintf("backends: need 2-d array, got shape %v", ad.shape))
	}
	r, c := ad.shape[0], ad.shape[1]
	out := NewCDense([]int{c, r}, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[j*r+i] = ad.data[i*c+j]
		}
	}
	return out
}
