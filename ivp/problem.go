package ivp

import (
	"errors"
	"fmt"

	"github.com/san-kum/odezoo/backend"
)

// ErrInvalidParameter indicates an override whose shape does not match
// the problem being constructed (wrong parameter arity, wrong state
// dimension, or a malformed time span).
var ErrInvalidParameter = errors.New("ivp: invalid parameter")

// Field is a first-order vector field du/dt = f(t, u, args). Autonomous
// problems ignore t. The args must match the arity the constructor
// documented; they are passed per call so that callers can perturb
// parameters without reconstructing the field.
type Field func(t float64, u backend.Vector, args ...float64) backend.Vector

// Field2 is a second-order vector field d2u/dt2 = f(t, u, du, args).
type Field2 func(t float64, u, du backend.Vector, args ...float64) backend.Vector

// Problem describes one first-order initial value problem. The four
// fields are the descriptor contract, in order: vector field, initial
// values, time span, vector-field arguments.
//
// Mass is non-nil only for mass-matrix-form problems (M * du/dt = f); a
// nil Mass means the identity.
type Problem struct {
	VectorField   Field
	InitialValues backend.Vector
	TimeSpan      [2]float64
	Args          []float64

	Mass [][]float64
}

// Problem2 describes a second-order initial value problem with initial
// state and initial derivative.
type Problem2 struct {
	VectorField   Field2
	InitialValues [2]backend.Vector // u0, du0
	TimeSpan      [2]float64
	Args          []float64

	ns backend.Ops
}

// FirstOrder reduces the problem to an equivalent first-order form by
// stacking the state on top of its derivative. The first half of the
// reduced field's output is the second half of its input.
func (p Problem2) FirstOrder() Problem {
	ns := p.ns
	f := p.VectorField
	field := func(t float64, y backend.Vector, args ...float64) backend.Vector {
		u, du := ns.Split2(y)
		return ns.Concat(du, f(t, u, du, args...))
	}
	return Problem{
		VectorField:   field,
		InitialValues: ns.Concat(p.InitialValues[0], p.InitialValues[1]),
		TimeSpan:      p.TimeSpan,
		Args:          p.Args,
	}
}

// Grid describes the spatial discretization behind a PDE-derived problem.
type Grid struct {
	Points  backend.Vector
	Spacing float64
}

type settings struct {
	ns backend.Ops

	u0       []float64
	u0Set    bool
	du0      []float64
	du0Set   bool
	span     [2]float64
	spanSet  bool
	params   []float64
	paramSet bool
}

// Option overrides one aspect of a problem construction.
type Option func(*settings)

// WithBackend constructs the problem against an explicit substrate
// instead of the process-wide selection.
func WithBackend(ns backend.Ops) Option {
	return func(s *settings) { s.ns = ns }
}

// WithInitialValues overrides the initial state.
func WithInitialValues(u0 ...float64) Option {
	return func(s *settings) {
		s.u0 = u0
		s.u0Set = true
	}
}

// WithDerivativeValues overrides the initial derivative of a second-order
// problem.
func WithDerivativeValues(du0 ...float64) Option {
	return func(s *settings) {
		s.du0 = du0
		s.du0Set = true
	}
}

// WithTimeSpan overrides the integration interval.
func WithTimeSpan(t0, t1 float64) Option {
	return func(s *settings) {
		s.span = [2]float64{t0, t1}
		s.spanSet = true
	}
}

// WithParameters overrides the vector-field parameters. The arity must
// match the constructor's documented parameter count.
func WithParameters(params ...float64) Option {
	return func(s *settings) {
		s.params = params
		s.paramSet = true
	}
}

// resolve applies options and binds the substrate, either the injected
// one or the process-wide selection.
func resolve(opts []Option) (settings, backend.Ops, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	if s.ns != nil {
		return s, s.ns, nil
	}
	ns, err := backend.Active()
	if err != nil {
		return s, nil, err
	}
	return s, ns, nil
}

// initial materializes the initial state, validating an override against
// the problem dimension. dim <= 0 skips the check (variable-dimension
// problems).
func (s settings) initial(ns backend.Ops, def []float64, dim int) (backend.Vector, error) {
	u0 := def
	if s.u0Set {
		u0 = s.u0
	}
	if dim > 0 && len(u0) != dim {
		return nil, fmt.Errorf("%w: initial values must have length %d, got %d", ErrInvalidParameter, dim, len(u0))
	}
	return ns.FromSlice(u0), nil
}

// derivative materializes the initial derivative of a second-order
// problem.
func (s settings) derivative(ns backend.Ops, def []float64, dim int) (backend.Vector, error) {
	du0 := def
	if s.du0Set {
		du0 = s.du0
	}
	if dim > 0 && len(du0) != dim {
		return nil, fmt.Errorf("%w: derivative values must have length %d, got %d", ErrInvalidParameter, dim, len(du0))
	}
	return ns.FromSlice(du0), nil
}

// parameters validates an override against the documented arity.
func (s settings) parameters(def []float64, arity int) ([]float64, error) {
	params := def
	if s.paramSet {
		params = s.params
	}
	if arity > 0 && len(params) != arity {
		return nil, fmt.Errorf("%w: expected %d parameters, got %d", ErrInvalidParameter, arity, len(params))
	}
	out := make([]float64, len(params))
	copy(out, params)
	return out, nil
}

func errInvalidf(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, a...))
}

func (s settings) timeSpan(t0, t1 float64) [2]float64 {
	if s.spanSet {
		return s.span
	}
	return [2]float64{t0, t1}
}
