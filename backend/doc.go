// Package backend provides the numeric substrates that all problem
// constructors in this module are written against.
//
// Every vector field in the catalog is implemented once, generically,
// against the [Ops] interface. The concrete substrate is chosen per
// process with [Select]:
//
//   - "dense": eager evaluation on gonum dense vectors
//   - "dual":  forward-mode differentiable evaluation on dual numbers
//
// A caller selects a backend once, then constructs problems:
//
//	backend.Select("dense")
//	prob, _ := ivp.LotkaVolterra()
//
// # Binding time
//
// A constructed vector field is permanently bound to the backend that was
// active when its constructor ran. Reselecting afterwards affects only
// problems constructed from that point on.
//
// # Thread safety
//
// Selection is guarded so that a constructor always observes a fully
// applied selection. The package does not serialize construction against
// concurrent reselection; confine selection and construction to one
// goroutine, or inject an explicit substrate per call site with
// ivp.WithBackend.
package backend
