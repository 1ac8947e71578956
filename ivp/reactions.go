package ivp

import (
	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/internal/fields"
)

// HIRES constructs the stiff "high irradiance response" problem from
// plant physiology, proposed by Schaefer (1975) and named by Hairer and
// Wanner (1996). The rate constants are part of the vector field; Args
// is empty.
func HIRES(opts ...Option) (Problem, error) {
	s, ns, err := resolve(opts)
	if err != nil {
		return Problem{}, err
	}
	u0, err := s.initial(ns, []float64{1, 0, 0, 0, 0, 0, 0, 0.0057}, 8)
	if err != nil {
		return Problem{}, err
	}
	args, err := s.parameters(nil, 0)
	if err != nil {
		return Problem{}, err
	}
	field := func(t float64, u backend.Vector, args ...float64) backend.Vector {
		return fields.HIRES(ns, u, args...)
	}
	return Problem{VectorField: field, InitialValues: u0, TimeSpan: s.timeSpan(0, 321.8122), Args: args}, nil
}

// Rober constructs Robertson's (1966) stiff autocatalytic reaction with
// rate constants (k1, k2, k3) defaulting to (0.04, 3e7, 1e4).
func Rober(opts ...Option) (Problem, error) {
	s, ns, err := resolve(opts)
	if err != nil {
		return Problem{}, err
	}
	u0, err := s.initial(ns, []float64{1, 0, 0}, 3)
	if err != nil {
		return Problem{}, err
	}
	args, err := s.parameters([]float64{0.04, 3e7, 1e4}, 3)
	if err != nil {
		return Problem{}, err
	}
	field := func(t float64, u backend.Vector, args ...float64) backend.Vector {
		return fields.Rober(ns, u, args...)
	}
	return Problem{VectorField: field, InitialValues: u0, TimeSpan: s.timeSpan(0, 1e5), Args: args}, nil
}

// RoberDAE constructs the Robertson kinetics in mass-matrix form: the
// third equation is replaced by the algebraic conservation constraint
// u0+u1+u2 = 1, and the singular mass matrix diag(1, 1, 0) is attached
// to the descriptor.
func RoberDAE(opts ...Option) (Problem, error) {
	s, ns, err := resolve(opts)
	if err != nil {
		return Problem{}, err
	}
	u0, err := s.initial(ns, []float64{1, 0, 0}, 3)
	if err != nil {
		return Problem{}, err
	}
	args, err := s.parameters([]float64{0.04, 3e7, 1e4}, 3)
	if err != nil {
		return Problem{}, err
	}
	field := func(t float64, u backend.Vector, args ...float64) backend.Vector {
		return fields.RoberConstrained(ns, u, args...)
	}
	mass := [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 0}}
	return Problem{VectorField: field, InitialValues: u0, TimeSpan: s.timeSpan(0, 1e5), Args: args, Mass: mass}, nil
}

// Oregonator constructs the scaled Belousov-Zhabotinsky reaction dynamics
// of Field and Noyes (1974), a stiff three-dimensional oscillator with
// parameters (s, q, w) defaulting to (77.27, 8.375e-6, 0.161).
func Oregonator(opts ...Option) (Problem, error) {
	s, ns, err := resolve(opts)
	if err != nil {
		return Problem{}, err
	}
	u0, err := s.initial(ns, []float64{1, 2, 3}, 3)
	if err != nil {
		return Problem{}, err
	}
	args, err := s.parameters([]float64{77.27, 8.375e-6, 0.161}, 3)
	if err != nil {
		return Problem{}, err
	}
	field := func(t float64, u backend.Vector, args ...float64) backend.Vector {
		return fields.Oregonator(ns, u, args...)
	}
	return Problem{VectorField: field, InitialValues: u0, TimeSpan: s.timeSpan(0, 1e5), Args: args}, nil
}

// NonlinearChemicalReaction constructs the A -> B -> C reaction chain in
// the form analyzed by Liu et al. (2012), with rates (k1, k2).
func NonlinearChemicalReaction(opts ...Option) (Problem, error) {
	s, ns, err := resolve(opts)
	if err != nil {
		return Problem{}, err
	}
	u0, err := s.initial(ns, []float64{1, 0, 0}, 3)
	if err != nil {
		return Problem{}, err
	}
	args, err := s.parameters([]float64{1, 1}, 2)
	if err != nil {
		return Problem{}, err
	}
	field := func(t float64, u backend.Vector, args ...float64) backend.Vector {
		return fields.NonlinearChemicalReaction(ns, u, args...)
	}
	return Problem{VectorField: field, InitialValues: u0, TimeSpan: s.timeSpan(0, 1), Args: args}, nil
}
