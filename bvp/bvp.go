// Package bvp catalogs boundary value problems. Each constructor returns
// a descriptor pairing a vector field with residual functions over the
// interval endpoints; a root of the residuals under the field's flow is a
// solution of the problem.
//
// As in package ivp, fields and residuals are bound to the substrate
// captured at construction time.
package bvp

import (
	"errors"
	"fmt"

	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/ivp"
)

// ErrInvalidParameter indicates an override whose shape does not match
// the problem being constructed.
var ErrInvalidParameter = errors.New("bvp: invalid parameter")

// Residual maps the state at one endpoint to a residual that a solution
// drives to zero.
type Residual func(u backend.Vector) backend.Vector

// TwoPointResidual couples the states at both endpoints, e.g. for
// periodic conditions.
type TwoPointResidual func(uLeft, uRight backend.Vector) backend.Vector

// Problem describes a second-order boundary value problem with separated
// conditions: Boundary[0] constrains the state at TimeSpan[0] and
// Boundary[1] the state at TimeSpan[1].
type Problem struct {
	VectorField ivp.Field2
	Boundary    [2]Residual
	TimeSpan    [2]float64
	Args        []float64
}

// TwoPointProblem describes a first-order boundary value problem whose
// single condition couples both endpoints.
type TwoPointProblem struct {
	VectorField ivp.Field
	Boundary    TwoPointResidual
	TimeSpan    [2]float64
	Args        []float64
}

type settings struct {
	ns       backend.Ops
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

// WithTimeSpan overrides the problem interval.
func WithTimeSpan(t0, t1 float64) Option {
	return func(s *settings) {
		s.span = [2]float64{t0, t1}
		s.spanSet = true
	}
}

// WithParameters overrides the vector-field parameters.
func WithParameters(params ...float64) Option {
	return func(s *settings) {
		s.params = params
		s.paramSet = true
	}
}

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

func (s settings) timeSpan(t0, t1 float64) [2]float64 {
	if s.spanSet {
		return s.span
	}
	return [2]float64{t0, t1}
}

// identity is the homogeneous Dirichlet residual: the state itself must
// vanish at the endpoint.
func identity(u backend.Vector) backend.Vector { return u }
