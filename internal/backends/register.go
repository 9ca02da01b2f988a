package backends

import "github.com/qdynlab/qdyn/internal/arraylias"

// Load-time registration into the global alias tables. Both surfaces
// learn both value types; registration is additive and happens before
// any dispatch call.
func init() {
	for _, r := range []*arraylias.Registry{arraylias.Numeric, arraylias.Linear} {
		r.RegisterBackend(denseBackend{})
		r.RegisterBackend(cdenseBackend{})
		r.RegisterType(&Dense{}, "dense")
		r.RegisterType(&CDense{}, "cdense")
	}
}
