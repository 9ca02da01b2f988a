package solver

import "errors"

// ErrInvalidRequest covers degenerate spans and evaluation times
// outside the span. Detected before the integrator is invoked.
var ErrInvalidRequest = errors.New("solver: invalid evaluation request")

// IntegrationError wraps a failure raised by the integrator. The
// diagnostic payload is carried opaquely; no retry or fallback is
// attempted.
type IntegrationError struct {
	Method string
	Err    error
}

func (e *IntegrationError) Error() string {
	return "solver: integration failed (" + e.Method + "): " + e.Err.Error()
}

func (e *IntegrationError) Unwrap() error { return e.Err }
