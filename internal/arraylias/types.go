package arraylias

// DType identifies the element precision of an array value.
type DType int

const (
	Float64 DType = iota
	Complex128
)

func (d DType) String() string {
	switch d {
	case Float64:
		return "float64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}

// Array is an opaque N-dimensional numeric value owned by some backend.
// The registry never owns arrays; it only records which backend does.
type Array interface {
	Shape() []int
	DType() DType
}

// Backend is the elementwise function surface every registered backend
// must provide. Operations return new arrays; shape mismatches panic in
// the concrete implementation (gonum convention).
type Backend interface {
	Name() string

	Zeros(shape []int, dtype DType) Array
	Clone(a Array) Array

	Add(a, b Array) Array
	Sub(a, b Array) Array
	Mul(a, b Array) Array
	Scale(a Array, s float64) Array

	// Norm returns the Euclidean norm of the flattened array.
	Norm(a Array) float64

	// NormScaled returns max_i |e_i| / (atol + rtol*max(|y0_i|, |y1_i|)),
	// the weighted error ratio used by adaptive step control.
	NormScaled(e, y0, y1 Array, atol, rtol float64) float64

	// Stack joins arrays of identical shape along a new leading axis.
	Stack(xs []Array) Array

	// IsFinite reports whether every element is finite (no NaN/Inf).
	IsFinite(a Array) bool
}

// LinearAlgebra is the extended surface for backends that support
// matrix operations. Backends opt in by implementing it.
type LinearAlgebra interface {
	MatMul(a, b Array) Array
	MatVec(a, x Array) Array
	Transpose(a Array) Array
}
