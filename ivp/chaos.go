package ivp

import (
	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/internal/fields"
)

// Lorenz63 constructs the three-dimensional atmospheric convection model
// with a chaotic solution, due to Lorenz (1963). Parameters are
// (sigma, rho, beta), defaulting to the classic (10, 28, 8/3).
func Lorenz63(opts ...Option) (Problem, error) {
	s, ns, err := resolve(opts)
	if err != nil {
		return Problem{}, err
	}
	u0, err := s.initial(ns, []float64{0, 1, 1.05}, 3)
	if err != nil {
		return Problem{}, err
	}
	args, err := s.parameters([]float64{10, 28, 8.0 / 3.0}, 3)
	if err != nil {
		return Problem{}, err
	}
	field := func(t float64, u backend.Vector, args ...float64) backend.Vector {
		return fields.Lorenz63(ns, u, args...)
	}
	return Problem{VectorField: field, InitialValues: u0, TimeSpan: s.timeSpan(0, 20), Args: args}, nil
}

// Defaults for the Lorenz96 chaotic initial state.
const (
	lorenz96Dim     = 10
	lorenz96Perturb = 0.01
)

// Lorenz96 constructs the cyclic atmospheric model of Lorenz (1996),
// common in data assimilation. The single parameter is the forcing,
// defaulting to 8. The default initial state is the equilibrium with the
// first coordinate perturbed, which puts the system on its chaotic
// attractor.
func Lorenz96(opts ...Option) (Problem, error) {
	s, ns, err := resolve(opts)
	if err != nil {
		return Problem{}, err
	}
	args, err := s.parameters([]float64{8}, 1)
	if err != nil {
		return Problem{}, err
	}

	def := make([]float64, lorenz96Dim)
	for i := range def {
		def[i] = args[0]
	}
	def[0] += lorenz96Perturb

	u0, err := s.initial(ns, def, 0)
	if err != nil {
		return Problem{}, err
	}
	field := func(t float64, u backend.Vector, args ...float64) backend.Vector {
		return fields.Lorenz96(ns, u, args...)
	}
	return Problem{VectorField: field, InitialValues: u0, TimeSpan: s.timeSpan(0, 30), Args: args}, nil
}

// Roessler constructs the three-dimensional chaotic system of Roessler
// (1976) with parameters (a, b, c) defaulting to (0.1, 0.1, 14).
func Roessler(opts ...Option) (Problem, error) {
	s, ns, err := resolve(opts)
	if err != nil {
		return Problem{}, err
	}
	u0, err := s.initial(ns, []float64{1, 0, 0}, 3)
	if err != nil {
		return Problem{}, err
	}
	args, err := s.parameters([]float64{0.1, 0.1, 14}, 3)
	if err != nil {
		return Problem{}, err
	}
	field := func(t float64, u backend.Vector, args ...float64) backend.Vector {
		return fields.Roessler(ns, u, args...)
	}
	return Problem{VectorField: field, InitialValues: u0, TimeSpan: s.timeSpan(0, 100), Args: args}, nil
}
