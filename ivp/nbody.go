package ivp

import (
	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/internal/fields"
)

// RigidBody constructs Euler's rotation equations for a torque-free rigid
// body, following Hairer et al. (1993), p. 244. Parameters default to
// (-2, 1.25, -0.5).
func RigidBody(opts ...Option) (Problem, error) {
	s, ns, err := resolve(opts)
	if err != nil {
		return Problem{}, err
	}
	u0, err := s.initial(ns, []float64{1, 0, 0.9}, 3)
	if err != nil {
		return Problem{}, err
	}
	args, err := s.parameters([]float64{-2, 1.25, -0.5}, 3)
	if err != nil {
		return Problem{}, err
	}
	field := func(t float64, u backend.Vector, args ...float64) backend.Vector {
		return fields.RigidBody(ns, u, args...)
	}
	return Problem{VectorField: field, InitialValues: u0, TimeSpan: s.timeSpan(0, 20), Args: args}, nil
}

// Pleiades default initial configuration (Hairer et al. 1993, p. 245):
// positions of the seven stars followed by their velocities, x before y.
var (
	pleiadesU0  = []float64{3, 3, -1, -3, 2, -2, 2, 3, -3, 2, 0, 0, -4, 4}
	pleiadesDU0 = []float64{0, 0, 0, 0, 0, 1.75, -1.5, 0, 0, 0, -1.25, 1, 0, 0}
)

// Pleiades constructs the planar gravitational seven-star problem in its
// original second-order form, a 14-dimensional celestial mechanics
// benchmark from Hairer et al. (1993).
func Pleiades(opts ...Option) (Problem2, error) {
	s, ns, err := resolve(opts)
	if err != nil {
		return Problem2{}, err
	}
	u0, err := s.initial(ns, pleiadesU0, 14)
	if err != nil {
		return Problem2{}, err
	}
	du0, err := s.derivative(ns, pleiadesDU0, 14)
	if err != nil {
		return Problem2{}, err
	}
	args, err := s.parameters(nil, 0)
	if err != nil {
		return Problem2{}, err
	}
	field := func(t float64, u, du backend.Vector, args ...float64) backend.Vector {
		return fields.Pleiades(ns, u, du, args...)
	}
	return Problem2{
		VectorField:   field,
		InitialValues: [2]backend.Vector{u0, du0},
		TimeSpan:      s.timeSpan(0, 3),
		Args:          args,
		ns:            ns,
	}, nil
}

// PleiadesFirstOrder constructs the Pleiades problem as a 28-dimensional
// first-order system.
func PleiadesFirstOrder(opts ...Option) (Problem, error) {
	p, err := Pleiades(opts...)
	if err != nil {
		return Problem{}, err
	}
	return p.FirstOrder(), nil
}

// HenonHeiles constructs the planar star-motion problem of Henon and
// Heiles (1964) in second-order form. Its well-known Hamiltonian makes it
// a standard test for symplectic integrators. The single parameter is
// the cubic coupling strength.
func HenonHeiles(opts ...Option) (Problem2, error) {
	s, ns, err := resolve(opts)
	if err != nil {
		return Problem2{}, err
	}
	u0, err := s.initial(ns, []float64{0.5, 0}, 2)
	if err != nil {
		return Problem2{}, err
	}
	du0, err := s.derivative(ns, []float64{0, 0.1}, 2)
	if err != nil {
		return Problem2{}, err
	}
	args, err := s.parameters([]float64{1}, 1)
	if err != nil {
		return Problem2{}, err
	}
	field := func(t float64, u, du backend.Vector, args ...float64) backend.Vector {
		return fields.HenonHeiles(ns, u, du, args...)
	}
	return Problem2{
		VectorField:   field,
		InitialValues: [2]backend.Vector{u0, du0},
		TimeSpan:      s.timeSpan(0, 100),
		Args:          args,
		ns:            ns,
	}, nil
}

// HenonHeilesFirstOrder constructs the Henon-Heiles problem as a
// four-dimensional first-order system.
func HenonHeilesFirstOrder(opts ...Option) (Problem, error) {
	p, err := HenonHeiles(opts...)
	if err != nil {
		return Problem{}, err
	}
	return p.FirstOrder(), nil
}

// ThreeBodyRestricted constructs the planar restricted three-body problem
// in second-order form, following Hairer et al. (1993), p. 129. The
// defaults trace a closed periodic orbit; the parameter is the
// standardised moon mass.
func ThreeBodyRestricted(opts ...Option) (Problem2, error) {
	s, ns, err := resolve(opts)
	if err != nil {
		return Problem2{}, err
	}
	u0, err := s.initial(ns, []float64{0.994, 0}, 2)
	if err != nil {
		return Problem2{}, err
	}
	du0, err := s.derivative(ns, []float64{0, -2.00158510637908252240537862224}, 2)
	if err != nil {
		return Problem2{}, err
	}
	args, err := s.parameters([]float64{0.012277471}, 1)
	if err != nil {
		return Problem2{}, err
	}
	field := func(t float64, u, du backend.Vector, args ...float64) backend.Vector {
		return fields.ThreeBodyRestricted(ns, u, du, args...)
	}
	return Problem2{
		VectorField:   field,
		InitialValues: [2]backend.Vector{u0, du0},
		TimeSpan:      s.timeSpan(0, 17.0652165601579625588917206249),
		Args:          args,
		ns:            ns,
	}, nil
}

// ThreeBodyRestrictedFirstOrder constructs the restricted three-body
// problem as a four-dimensional first-order system.
func ThreeBodyRestrictedFirstOrder(opts ...Option) (Problem, error) {
	p, err := ThreeBodyRestricted(opts...)
	if err != nil {
		return Problem{}, err
	}
	return p.FirstOrder(), nil
}
