package arraylias

import "errors"

// Registry errors. All are caller errors: registration happens at load
// time, so hitting one of these means a type or backend was never wired.
var (
	// ErrUnknownBackend indicates a backend name with no registration.
	ErrUnknownBackend = errors.New("arraylias: unknown backend")

	// ErrUnregisteredType indicates an array value whose concrete type
	// was never associated with a backend.
	ErrUnregisteredType = errors.New("arraylias: unregistered array type")

	// ErrNotImplemented indicates a backend that does not provide the
	// requested function surface.
	ErrNotImplemented = errors.New("arraylias: backend does not implement operation")
)
