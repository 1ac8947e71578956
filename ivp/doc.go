// Package ivp is a catalog of initial value problems for testing and
// benchmarking numerical solvers. The package implements no solver; each
// constructor returns a plain descriptor bundling a vector field with the
// data an external integrator needs.
//
// Descriptors follow one fixed shape, consumed in field order:
//
//	prob, _ := ivp.LotkaVolterra()
//	f, u0, tspan, args := prob.VectorField, prob.InitialValues, prob.TimeSpan, prob.Args
//
// Second-order problems ([Problem2]) carry a pair of initial values
// (u0, du0) and can be reduced to first-order form with
// [Problem2.FirstOrder].
//
// All defaults are literature-standard values; each constructor's
// documentation names the reference. Parameters, initial values, and time
// spans can be overridden per call with [WithParameters],
// [WithInitialValues], and [WithTimeSpan].
//
// Every vector field is bound at construction time to the backend active
// at that moment (or injected with [WithBackend]); reselecting the global
// backend later does not change fields that already exist.
package ivp
