// Package backends provides the concrete array types registered with
// the arraylias tables:
//
//   - [Dense]: float64 arrays, elementwise via gonum/floats, linear
//     algebra via gonum/mat
//   - [CDense]: complex128 arrays for quantum state vectors and
//     operators
//
// Both are flat row-major buffers with a shape, in the spirit of every
// tensor runtime this package fronts for. Registration into the global
// tables happens in this package's init, so importing it is enough to
// make both backends dispatchable.
package backends
