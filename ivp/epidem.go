package ivp

import (
	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/internal/fields"
)

// SIR constructs the susceptible/infected/removed epidemic model without
// vital dynamics, due to Kermack and McKendrick (1927). The overridable
// parameters are (beta, gamma); the susceptible population count is
// derived from the initial state and appended, so Args holds
// (beta, gamma, population).
func SIR(opts ...Option) (Problem, error) {
	s, ns, err := resolve(opts)
	if err != nil {
		return Problem{}, err
	}
	u0, err := s.initial(ns, []float64{998, 1, 1}, 3)
	if err != nil {
		return Problem{}, err
	}
	rates, err := s.parameters([]float64{0.3, 0.1}, 2)
	if err != nil {
		return Problem{}, err
	}
	args := append(rates, ns.ToSlice(u0)[0])

	field := func(t float64, u backend.Vector, args ...float64) backend.Vector {
		return fields.SIR(ns, u, args...)
	}
	return Problem{VectorField: field, InitialValues: u0, TimeSpan: s.timeSpan(0, 200), Args: args}, nil
}

// SEIR constructs the SIR variant with an exposed compartment, following
// Hethcote (2000). Overridable parameters are (alpha, beta, gamma); Args
// holds (alpha, beta, gamma, population).
func SEIR(opts ...Option) (Problem, error) {
	s, ns, err := resolve(opts)
	if err != nil {
		return Problem{}, err
	}
	u0, err := s.initial(ns, []float64{998, 1, 1, 1}, 4)
	if err != nil {
		return Problem{}, err
	}
	rates, err := s.parameters([]float64{0.3, 0.3, 0.1}, 3)
	if err != nil {
		return Problem{}, err
	}
	args := append(rates, ns.ToSlice(u0)[0])

	field := func(t float64, u backend.Vector, args ...float64) backend.Vector {
		return fields.SEIR(ns, u, args...)
	}
	return Problem{VectorField: field, InitialValues: u0, TimeSpan: s.timeSpan(0, 200), Args: args}, nil
}

// SIRD constructs the SIR variant that separates recovered from deceased,
// following Hethcote (2000). Overridable parameters are
// (beta, gamma, eta); Args holds (beta, gamma, eta, population).
func SIRD(opts ...Option) (Problem, error) {
	s, ns, err := resolve(opts)
	if err != nil {
		return Problem{}, err
	}
	u0, err := s.initial(ns, []float64{998, 1, 1, 0}, 4)
	if err != nil {
		return Problem{}, err
	}
	rates, err := s.parameters([]float64{0.3, 0.1, 0.005}, 3)
	if err != nil {
		return Problem{}, err
	}
	args := append(rates, ns.ToSlice(u0)[0])

	field := func(t float64, u backend.Vector, args ...float64) backend.Vector {
		return fields.SIRD(ns, u, args...)
	}
	return Problem{VectorField: field, InitialValues: u0, TimeSpan: s.timeSpan(0, 200), Args: args}, nil
}
