package ivp

import (
	"fmt"

	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/internal/fields"
)

// VanDerPol constructs the Van der Pol oscillator in its original
// second-order form, due to Van der Pol (1920). The single parameter is
// the stiffness constant mu; mu near 1 is nonstiff, large mu (say 1e6)
// makes the problem severely stiff.
func VanDerPol(opts ...Option) (Problem2, error) {
	s, ns, err := resolve(opts)
	if err != nil {
		return Problem2{}, err
	}
	u0, err := s.initial(ns, []float64{2}, 1)
	if err != nil {
		return Problem2{}, err
	}
	du0, err := s.derivative(ns, []float64{0}, 1)
	if err != nil {
		return Problem2{}, err
	}
	args, err := s.parameters([]float64{1}, 1)
	if err != nil {
		return Problem2{}, err
	}
	field := func(t float64, u, du backend.Vector, args ...float64) backend.Vector {
		return fields.VanDerPol(ns, u, du, args...)
	}
	return Problem2{
		VectorField:   field,
		InitialValues: [2]backend.Vector{u0, du0},
		TimeSpan:      s.timeSpan(0, 6.3),
		Args:          args,
		ns:            ns,
	}, nil
}

// VanDerPolFirstOrder constructs the Van der Pol oscillator reduced to
// first-order form.
func VanDerPolFirstOrder(opts ...Option) (Problem, error) {
	p, err := VanDerPol(opts...)
	if err != nil {
		return Problem{}, err
	}
	return p.FirstOrder(), nil
}

// FitzHughNagumo constructs the two-dimensional excitable-system model of
// FitzHugh (1961) and Nagumo et al. (1962) with parameters (a, b, c).
func FitzHughNagumo(opts ...Option) (Problem, error) {
	s, ns, err := resolve(opts)
	if err != nil {
		return Problem{}, err
	}
	u0, err := s.initial(ns, []float64{-1, 1}, 2)
	if err != nil {
		return Problem{}, err
	}
	args, err := s.parameters([]float64{0.2, 0.2, 3}, 3)
	if err != nil {
		return Problem{}, err
	}
	field := func(t float64, u backend.Vector, args ...float64) backend.Vector {
		return fields.FitzHughNagumo(ns, u, args...)
	}
	return Problem{VectorField: field, InitialValues: u0, TimeSpan: s.timeSpan(0, 20), Args: args}, nil
}

// Goodwin constructs the protein-expression oscillator of Goodwin (1965).
// Args holds (r, a1, a2, alpha) followed by one chain rate per dimension
// after the first, so for an n-dimensional state the parameter count is
// n+3. Hill coefficients r > 8 give oscillatory behavior.
func Goodwin(opts ...Option) (Problem, error) {
	s, ns, err := resolve(opts)
	if err != nil {
		return Problem{}, err
	}
	u0, err := s.initial(ns, []float64{0, 0}, 0)
	if err != nil {
		return Problem{}, err
	}
	n := u0.Len()
	args, err := s.parameters([]float64{10, 1, 3, 0.5, 1}, n+3)
	if err != nil {
		return Problem{}, err
	}
	if n < 2 {
		return Problem{}, fmt.Errorf("%w: goodwin needs at least two dimensions, got %d", ErrInvalidParameter, n)
	}
	field := func(t float64, u backend.Vector, args ...float64) backend.Vector {
		return fields.Goodwin(ns, u, args...)
	}
	return Problem{VectorField: field, InitialValues: u0, TimeSpan: s.timeSpan(0, 25), Args: args}, nil
}
