package odeint

import "math"

// PIController tunes the adaptive step size from the weighted error
// ratio of each attempted step.
type PIController struct {
	Rtol, Atol float64

	Safety   float64
	MinScale float64
	MaxScale float64
	MinStep  float64
}

// NewPIController returns a controller with the given tolerances and
// the usual safety and clamp factors.
func NewPIController(rtol, atol float64) *PIController {
	return &PIController{
		Rtol:     rtol,
		Atol:     atol,
		Safety:   0.9,
		MinScale: 0.2,
		MaxScale: 10.0,
		MinStep:  1e-14,
	}
}

// scale returns the factor applied to the step magnitude after a step
// with error ratio errRatio (<= 1 means accepted).
func (c *PIController) scale(errRatio float64, order int) float64 {
	if errRatio > 1 {
		return math.Max(c.MinScale, c.Safety*math.Pow(errRatio, -1.0/float64(order-1)))
	}
	if errRatio > 0 {
		return math.Min(c.MaxScale, c.Safety*math.Pow(errRatio, -1.0/float64(order)))
	}
	return c.MaxScale
}
