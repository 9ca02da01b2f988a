package odeint

import "fmt"

// Method is an embedded Runge-Kutta tableau. The error weights e are
// the difference between the high- and low-order solution weights, so
// the local error estimate is h * sum_i e[i]*k[i].
type Method struct {
	name  string
	order int
	c     []float64
	a     [][]float64
	b     []float64
	e     []float64
}

func (m *Method) Name() string { return m.name }
func (m *Method) Order() int   { return m.order }
func (m *Method) stages() int  { return len(m.c) }

// Dopri5 returns the Dormand-Prince 5(4) method, the classic ode45
// pair. First choice for non-stiff problems.
func Dopri5() *Method {
	b := []float64{
		35.0 / 384.0,
		0,
		500.0 / 1113.0,
		125.0 / 192.0,
		-2187.0 / 6784.0,
		11.0 / 84.0,
		0,
	}
	bhat := []float64{
		5179.0 / 57600.0,
		0,
		7571.0 / 16695.0,
		393.0 / 640.0,
		-92097.0 / 339200.0,
		187.0 / 2100.0,
		1.0 / 40.0,
	}
	return &Method{
		name:  "dopri5",
		order: 5,
		c:     []float64{0, 1.0 / 5.0, 3.0 / 10.0, 4.0 / 5.0, 8.0 / 9.0, 1, 1},
		a: [][]float64{
			{},
			{1.0 / 5.0},
			{3.0 / 40.0, 9.0 / 40.0},
			{44.0 / 45.0, -56.0 / 15.0, 32.0 / 9.0},
			{19372.0 / 6561.0, -25360.0 / 2187.0, 64448.0 / 6561.0, -212.0 / 729.0},
			{9017.0 / 3168.0, -355.0 / 33.0, 46732.0 / 5247.0, 49.0 / 176.0, -5103.0 / 18656.0},
			{35.0 / 384.0, 0, 500.0 / 1113.0, 125.0 / 192.0, -2187.0 / 6784.0, 11.0 / 84.0},
		},
		b: b,
		e: errorWeights(b, bhat),
	}
}

// Bosh3 returns the Bogacki-Shampine 3(2) method. Cheaper per step than
// Dopri5; useful at loose tolerances.
func Bosh3() *Method {
	b := []float64{2.0 / 9.0, 1.0 / 3.0, 4.0 / 9.0, 0}
	bhat := []float64{7.0 / 24.0, 1.0 / 4.0, 1.0 / 3.0, 1.0 / 8.0}
	return &Method{
		name:  "bosh3",
		order: 3,
		c:     []float64{0, 1.0 / 2.0, 3.0 / 4.0, 1},
		a: [][]float64{
			{},
			{1.0 / 2.0},
			{0, 3.0 / 4.0},
			{2.0 / 9.0, 1.0 / 3.0, 4.0 / 9.0},
		},
		b: b,
		e: errorWeights(b, bhat),
	}
}

func errorWeights(b, bhat []float64) []float64 {
	e := make([]float64, len(b))
	for i := range b {
		e[i] = b[i] - bhat[i]
	}
	return e
}

// MethodByName resolves a method token from configuration.
func MethodByName(name string) (*Method, error) {
	switch name {
	case "dopri5", "":
		return Dopri5(), nil
	case "bosh3":
		return Bosh3(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

// Methods lists the available method names.
func Methods() []string {
	return []string{"dopri5", "bosh3"}
}
