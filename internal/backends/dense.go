package backends

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/qdynlab/qdyn/internal/arraylias"
)

// Dense is a real-valued array: flat row-major float64 buffer plus a
// shape. The zero value is an empty array.
type Dense struct {
	shape []int
	data  []float64
}

// NewDense builds an array with the given shape. A nil data slice
// allocates zeros; otherwise len(data) must equal the shape product.
func NewDense(shape []int, data []float64) *Dense {
	n := sizeOf(shape)
	if data == nil {
		data = make([]float64, n)
	}
	if len(data) != n {
		panic(fmt.Sprintf("backends: shape %v needs %d elements, got %d", shape, n, len(data)))
	}
	return &Dense{shape: append([]int(nil), shape...), data: data}
}

// Vector builds a 1-d Dense from its arguments.
func Vector(vs ...float64) *Dense {
	return NewDense([]int{len(vs)}, append([]float64(nil), vs...))
}

func (d *Dense) Shape() []int           { return d.shape }
func (d *Dense) DType() arraylias.DType { return arraylias.Float64 }
func (d *Dense) Data() []float64        { return d.data }
func (d *Dense) Len() int               { return len(d.data) }

// At returns the element at a row-major multi-index.
func (d *Dense) At(idx ...int) float64 {
	return d.data[flatIndex(d.shape, idx)]
}

func sizeOf(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return n
}

func flatIndex(shape, idx []int) int {
	if len(idx) != len(shape) {
		panic(fmt.Sprintf("backends: index rank %d against shape %v", len(idx), shape))
	}
	flat := 0
	for i, ix := range idx {
		if ix < 0 || ix >= shape[i] {
			panic(fmt.Sprintf("backends: index %v out of range for shape %v", idx, shape))
		}
		flat = flat*shape[i] + ix
	}
	return flat
}

// denseBackend implements the arraylias surfaces for Dense values.
type denseBackend struct{}

func (denseBackend) Name() string { return "dense" }

func asDense(v arraylias.Array) *Dense { return v.(*Dense) }

func (denseBackend) Zeros(shape []int, _ arraylias.DType) arraylias.Array {
	return NewDense(shape, nil)
}

func (denseBackend) Clone(a arraylias.Array) arraylias.Array {
	d := asDense(a)
	return NewDense(d.shape, append([]float64(nil), d.data...))
}

func (b denseBackend) Add(x, y arraylias.Array) arraylias.Array {
	out := asDense(b.Clone(x))
	floats.Add(out.data, asDense(y).data)
	return out
}

func (b denseBackend) Sub(x, y arraylias.Array) arraylias.Array {
	out := asDense(b.Clone(x))
	floats.Sub(out.data, asDense(y).data)
	return out
}

func (b denseBackend) Mul(x, y arraylias.Array) arraylias.Array {
	out := asDense(b.Clone(x))
	floats.Mul(out.data, asDense(y).data)
	return out
}

func (b denseBackend) Scale(x arraylias.Array, s float64) arraylias.Array {
	out := asDense(b.Clone(x))
	floats.Scale(s, out.data)
	return out
}

func (denseBackend) Norm(a arraylias.Array) float64 {
	return floats.Norm(asDense(a).data, 2)
}

func (denseBackend) NormScaled(e, y0, y1 arraylias.Array, atol, rtol float64) float64 {
	ed, a, b := asDense(e).data, asDense(y0).data, asDense(y1).data
	ratio := 0.0
	for i := range ed {
		scale := atol + rtol*math.Max(math.Abs(a[i]), math.Abs(b[i]))
		ratio = math.Max(ratio, math.Abs(ed[i])/scale)
	}
	return ratio
}

func (denseBackend) Stack(xs []arraylias.Array) arraylias.Array {
	if len(xs) == 0 {
		return NewDense([]int{0}, nil)
	}
	first := asDense(xs[0])
	out := NewDense(append([]int{len(xs)}, first.shape...), nil)
	for i, x := range xs {
		copy(out.data[i*first.Len():], asDense(x).data)
	}
	return out
}

func (denseBackend) IsFinite(a arraylias.Array) bool {
	for _, v := range asDense(a).data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// matrix views a 2-d Dense as a gonum matrix without copying.
func matrix(d *Dense) *mat.Dense {
	if len(d.shape) != 2 {
		panic(fmt.Sprintf("backends: need 2-d array, got shape %v", d.shape))
	}
	return mat.NewDense(d.shape[0], d.shape[1], d.data)
}

func (denseBackend) MatMul(a, x arraylias.Array) arraylias.Array {
	var out mat.Dense
	out.Mul(matrix(asDense(a)), matrix(asDense(x)))
	r, c := out.Dims()
	return NewDense([]int{r, c}, out.RawMatrix().Data)
}

func (denseBackend) MatVec(a, x arraylias.Array) arraylias.Array {
	xd := asDense(x)
	if len(xd.shape) != 1 {
		panic(fmt.Sprintf("backends: need 1-d vector, got shape %v", xd.shape))
	}
	var out mat.VecDense
	out.MulVec(matrix(asDense(a)), mat.NewVecDense(xd.Len(), xd.data))
	return NewDense([]int{out.Len()}, out.RawVector().Data)
}

func (denseBackend) Transpose(a arraylias.Array) arraylias.Array {
	var out mat.Dense
	out.CloneFrom(matrix(asDense(a)).T())
	r, c := out.Dims()
	return NewDense([]int{r, c}, out.RawMatrix().Data)
}
