package ivp

import (
	"math"
	"math/rand"

	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/internal/fields"
)

// LotkaVolterra constructs the classic predator-prey model. Parameters
// are (prey growth, predation, predator death, predator growth).
func LotkaVolterra(opts ...Option) (Problem, error) {
	s, ns, err := resolve(opts)
	if err != nil {
		return Problem{}, err
	}
	u0, err := s.initial(ns, []float64{20, 20}, 2)
	if err != nil {
		return Problem{}, err
	}
	args, err := s.parameters([]float64{0.5, 0.05, 0.5, 0.05}, 4)
	if err != nil {
		return Problem{}, err
	}
	field := func(t float64, u backend.Vector, args ...float64) backend.Vector {
		return fields.LotkaVolterra(ns, u, args...)
	}
	return Problem{VectorField: field, InitialValues: u0, TimeSpan: s.timeSpan(0, 20), Args: args}, nil
}

// Logistic constructs the scalar logistic growth equation with parameters
// (growth rate, carrying capacity).
func Logistic(opts ...Option) (Problem, error) {
	s, ns, err := resolve(opts)
	if err != nil {
		return Problem{}, err
	}
	u0, err := s.initial(ns, []float64{0.1}, 1)
	if err != nil {
		return Problem{}, err
	}
	args, err := s.parameters([]float64{1, 1}, 2)
	if err != nil {
		return Problem{}, err
	}
	field := func(t float64, u backend.Vector, args ...float64) backend.Vector {
		return fields.Logistic(ns, u, args...)
	}
	return Problem{VectorField: field, InitialValues: u0, TimeSpan: s.timeSpan(0, 2.5), Args: args}, nil
}

// AffineIndependent constructs the scalar affine equation du/dt = a*u + b
// with parameters (a, b). Its closed-form solution makes it useful for
// convergence studies.
func AffineIndependent(opts ...Option) (Problem, error) {
	s, ns, err := resolve(opts)
	if err != nil {
		return Problem{}, err
	}
	u0, err := s.initial(ns, []float64{1}, 1)
	if err != nil {
		return Problem{}, err
	}
	args, err := s.parameters([]float64{1, 0}, 2)
	if err != nil {
		return Problem{}, err
	}
	field := func(t float64, u backend.Vector, args ...float64) backend.Vector {
		return fields.AffineIndependent(ns, u, args...)
	}
	return Problem{VectorField: field, InitialValues: u0, TimeSpan: s.timeSpan(0, 1), Args: args}, nil
}

// AffineDependent constructs a linear system du/dt = A*u + b of arbitrary
// dimension. A nil matrix means the identity of the dimension implied by
// the initial values; a nil offset means zero. Unlike the other
// constructors, A and b are closed over by the field rather than exposed
// through Args so that the descriptor stays flat.
func AffineDependent(a [][]float64, b []float64, opts ...Option) (Problem, error) {
	s, ns, err := resolve(opts)
	if err != nil {
		return Problem{}, err
	}
	dim := 1
	switch {
	case a != nil:
		dim = len(a)
	case b != nil:
		dim = len(b)
	case s.u0Set:
		dim = len(s.u0)
	}
	def := make([]float64, dim)
	for i := range def {
		def[i] = 1
	}
	u0, err := s.initial(ns, def, dim)
	if err != nil {
		return Problem{}, err
	}
	if a == nil {
		a = make([][]float64, dim)
		for i := range a {
			a[i] = make([]float64, dim)
			a[i][i] = 1
		}
	}
	if b == nil {
		b = make([]float64, dim)
	}
	if len(a) != dim || len(b) != dim {
		return Problem{}, errInvalidf("affine system needs a %dx%d matrix and length-%d offset", dim, dim, dim)
	}
	for _, row := range a {
		if len(row) != dim {
			return Problem{}, errInvalidf("affine system needs a %dx%d matrix and length-%d offset", dim, dim, dim)
		}
	}
	args, err := s.parameters(nil, 0)
	if err != nil {
		return Problem{}, err
	}
	offset := ns.FromSlice(b)
	field := func(t float64, u backend.Vector, args ...float64) backend.Vector {
		return ns.Add(ns.MatVec(a, u), offset)
	}
	return Problem{VectorField: field, InitialValues: u0, TimeSpan: s.timeSpan(0, 1), Args: args}, nil
}

// Fixed seed so that repeated constructions share their weights. The
// network is a benchmark field, not a model to be trained in place.
const neuralODESeed = 1234

// NeuralODE constructs a scalar problem whose field is a small randomly
// initialised tanh network over (u, t). The weights are drawn once per
// construction from a fixed seed and closed over by the field; Args stays
// empty because the parameter vector is not meaningfully user-facing.
func NeuralODE(opts ...Option) (Problem, error) {
	s, ns, err := resolve(opts)
	if err != nil {
		return Problem{}, err
	}
	u0, err := s.initial(ns, []float64{0}, 1)
	if err != nil {
		return Problem{}, err
	}
	args, err := s.parameters(nil, 0)
	if err != nil {
		return Problem{}, err
	}

	const hidden = 20
	rng := rand.New(rand.NewSource(neuralODESeed))
	// Glorot-style scaling keeps the tanh units away from saturation.
	w1 := randomMatrix(rng, hidden, 2)
	b1 := randomSlice(rng, hidden, 2)
	w2 := randomMatrix(rng, 1, hidden)
	b2 := randomSlice(rng, 1, hidden)

	bias1 := ns.FromSlice(b1)
	bias2 := ns.FromSlice(b2)
	field := func(t float64, u backend.Vector, args ...float64) backend.Vector {
		x := ns.Concat(u, ns.FromSlice([]float64{t}))
		h := ns.Tanh(ns.Add(ns.MatVec(w1, x), bias1))
		return ns.Add(ns.MatVec(w2, h), bias2)
	}
	return Problem{VectorField: field, InitialValues: u0, TimeSpan: s.timeSpan(0, 1), Args: args}, nil
}

func randomMatrix(rng *rand.Rand, rows, cols int) [][]float64 {
	scale := 1 / math.Sqrt(float64(cols))
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
		for j := range m[i] {
			m[i][j] = rng.NormFloat64() * scale
		}
	}
	return m
}

func randomSlice(rng *rand.Rand, n, fanIn int) []float64 {
	scale := 1 / math.Sqrt(float64(fanIn))
	s := make([]float64, n)
	for i := range s {
		s[i] = rng.NormFloat64() * scale
	}
	return s
}
