// Package arraylias maps concrete array types to named compute backends,
// letting numeric code dispatch on whatever array value it is handed.
//
// Two process-wide tables are created at load time:
//
//   - [Numeric]: the elementwise / construction function surface
//   - [Linear]: the linear-algebra function surface
//
// Backend integration packages register their value types at init:
//
//	arraylias.Numeric.RegisterBackend(denseBackend{})
//	arraylias.Numeric.RegisterType(&Dense{}, "dense")
//
// After registration, generic code resolves the backend from a value's
// runtime type:
//
//	b, err := arraylias.Numeric.Resolve(y)
//	y2 := b.Add(y, b.Scale(k, dt))
//
// Registration is additive and happens before any worker goroutine is
// spawned; the tables are read-only afterwards. Isolated registries for
// tests are constructed with [New].
package arraylias
