package ivp

import (
	"github.com/san-kum/odezoo/backend"
)

const (
	heatGridPoints = 10
	heatBoxLo      = 0.0
	heatBoxHi      = 1.0
)

// Heat1DDirichlet constructs the method-of-lines discretisation of the
// one-dimensional heat equation on [0, 1] with homogeneous Dirichlet
// boundaries. The state holds the temperature at ten equispaced grid
// points; the single parameter is the diffusion coefficient. The returned
// Grid carries the spatial locations so that callers can plot or refine
// against them.
//
// The default initial profile is a Gaussian bump centred on the box.
func Heat1DDirichlet(opts ...Option) (Problem, Grid, error) {
	s, ns, err := resolve(opts)
	if err != nil {
		return Problem{}, Grid{}, err
	}
	grid := ns.Linspace(heatBoxLo, heatBoxHi, heatGridPoints)
	dx := (heatBoxHi - heatBoxLo) / float64(heatGridPoints-1)

	d := ns.Shift(-(heatBoxLo+heatBoxHi)/2, grid)
	def := ns.ToSlice(ns.Exp(ns.Scale(-20, ns.Mul(d, d))))
	u0, err := s.initial(ns, def, heatGridPoints)
	if err != nil {
		return Problem{}, Grid{}, err
	}
	args, err := s.parameters([]float64{1}, 1)
	if err != nil {
		return Problem{}, Grid{}, err
	}

	laplacian := tridiagLaplacian(heatGridPoints, dx)
	field := func(t float64, u backend.Vector, args ...float64) backend.Vector {
		return ns.Scale(args[0], ns.MatVec(laplacian, u))
	}
	p := Problem{VectorField: field, InitialValues: u0, TimeSpan: s.timeSpan(0, 1), Args: args}
	return p, Grid{Points: grid, Spacing: dx}, nil
}

// tridiagLaplacian builds the standard second-difference matrix with
// homogeneous Dirichlet boundaries, already divided by dx^2.
func tridiagLaplacian(n int, dx float64) [][]float64 {
	inv := 1 / (dx * dx)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		m[i][i] = -2 * inv
		if i > 0 {
			m[i][i-1] = inv
		}
		if i < n-1 {
			m[i][i+1] = inv
		}
	}
	return m
}
