package bvp

import (
	"math"

	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/internal/fields"
)

// Bratu constructs the Bratu combustion problem u'' = -k * exp(u) on
// [0, 1] with u vanishing at both ends. The single parameter is the
// Frank-Kamenetskii coefficient; below the critical value the problem
// has two solutions.
func Bratu(opts ...Option) (Problem, error) {
	s, ns, err := resolve(opts)
	if err != nil {
		return Problem{}, err
	}
	args, err := s.parameters([]float64{1}, 1)
	if err != nil {
		return Problem{}, err
	}
	field := func(t float64, u, du backend.Vector, args ...float64) backend.Vector {
		return fields.Bratu(ns, u, du, args...)
	}
	return Problem{
		VectorField: field,
		Boundary:    [2]Residual{identity, identity},
		TimeSpan:    s.timeSpan(0, 1),
		Args:        args,
	}, nil
}

// Pendulum constructs the pendulum boundary value problem
// u'' = -p * sin(u) on [0, pi/2] with u vanishing at both ends. The
// parameter is the gravity-over-length ratio.
func Pendulum(opts ...Option) (Problem, error) {
	s, ns, err := resolve(opts)
	if err != nil {
		return Problem{}, err
	}
	args, err := s.parameters([]float64{9.81}, 1)
	if err != nil {
		return Problem{}, err
	}
	field := func(t float64, u, du backend.Vector, args ...float64) backend.Vector {
		return fields.Pendulum(ns, u, du, args...)
	}
	return Problem{
		VectorField: field,
		Boundary:    [2]Residual{identity, identity},
		TimeSpan:    s.timeSpan(0, math.Pi/2),
		Args:        args,
	}, nil
}

// Measles constructs the seasonally forced measles transmission model as
// a periodic boundary value problem over one year: the compartments at
// the end of the interval must match those at its start. Parameters are
// (mu, lambda, eta, beta0).
func Measles(opts ...Option) (TwoPointProblem, error) {
	s, ns, err := resolve(opts)
	if err != nil {
		return TwoPointProblem{}, err
	}
	args, err := s.parameters([]float64{0.02, 0.0279, 0.01, 1575}, 4)
	if err != nil {
		return TwoPointProblem{}, err
	}
	field := func(t float64, u backend.Vector, args ...float64) backend.Vector {
		return fields.Measles(ns, t, u, args...)
	}
	boundary := func(uLeft, uRight backend.Vector) backend.Vector {
		return ns.Sub(uLeft, uRight)
	}
	return TwoPointProblem{
		VectorField: field,
		Boundary:    boundary,
		TimeSpan:    s.timeSpan(0, 1),
		Args:        args,
	}, nil
}
