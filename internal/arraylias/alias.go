package arraylias

// Global alias tables, created once at load time and never torn down.
// Numeric carries the elementwise surface, Linear the linear-algebra
// surface. Backend packages register into both during their init.
var (
	Numeric = New("numeric")
	Linear  = New("linear")
)
