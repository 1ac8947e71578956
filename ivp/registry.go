package ivp

import (
	"errors"
	"fmt"
)

// ErrUnknownProblem indicates a catalog lookup by a name no constructor
// registered.
var ErrUnknownProblem = errors.New("ivp: unknown problem")

// Constructor builds a problem descriptor. Second-order problems appear
// in the catalog through their first-order reductions so that every
// entry shares a signature.
type Constructor func(opts ...Option) (Problem, error)

// Info summarizes one catalog entry for listings and presets.
type Info struct {
	Name      string
	Summary   string
	Reference string
	Dim       int
	Params    int
	Stiff     bool
}

type entry struct {
	info Info
	ctor Constructor
}

// catalog is ordered roughly by field: population dynamics, epidemiology,
// chaos, chemistry, mechanics, networks, PDEs.
var catalog = []entry{
	{Info{"lotka-volterra", "Predator-prey population dynamics", "Lotka (1925), Volterra (1926)", 2, 4, false}, LotkaVolterra},
	{Info{"logistic", "Scalar logistic growth", "Verhulst (1838)", 1, 2, false}, Logistic},
	{Info{"fitzhugh-nagumo", "Two-dimensional neuron excitation model", "FitzHugh (1961), Nagumo et al. (1962)", 2, 3, false}, FitzHughNagumo},
	{Info{"goodwin", "Oscillating gene regulation cascade", "Goodwin (1965)", 2, 5, false}, Goodwin},
	{Info{"sir", "Susceptible-infectious-recovered compartments", "Kermack and McKendrick (1927)", 3, 3, false}, SIR},
	{Info{"seir", "SIR with an incubating compartment", "Hethcote (2000)", 4, 4, false}, SEIR},
	{Info{"sird", "SIR with a deceased compartment", "Hethcote (2000)", 4, 4, false}, SIRD},
	{Info{"lorenz63", "Three-dimensional atmospheric convection", "Lorenz (1963)", 3, 3, false}, Lorenz63},
	{Info{"lorenz96", "Cyclic atmospheric toy model", "Lorenz (1996)", 10, 1, false}, Lorenz96},
	{Info{"roessler", "Minimal continuous chaotic attractor", "Roessler (1976)", 3, 3, false}, Roessler},
	{Info{"hires", "High irradiance response photochemistry", "Schaefer (1975)", 8, 0, true}, HIRES},
	{Info{"rober", "Robertson autocatalytic reaction", "Robertson (1966)", 3, 3, true}, Rober},
	{Info{"rober-dae", "Robertson reaction in mass-matrix form", "Robertson (1966)", 3, 3, true}, RoberDAE},
	{Info{"oregonator", "Belousov-Zhabotinsky reaction kinetics", "Field and Noyes (1974)", 3, 3, true}, Oregonator},
	{Info{"nonlinear-chemical-reaction", "Autocatalytic two-step reaction chain", "Hull et al. (1972)", 3, 2, false}, NonlinearChemicalReaction},
	{Info{"van-der-pol", "Nonlinearly damped oscillator, first-order form", "van der Pol (1920)", 2, 1, true}, VanDerPolFirstOrder},
	{Info{"rigid-body", "Torque-free Euler rotation equations", "Hairer, Norsett and Wanner (1993)", 3, 3, false}, RigidBody},
	{Info{"henon-heiles", "Star motion in a galactic potential, first-order form", "Henon and Heiles (1964)", 4, 1, false}, HenonHeilesFirstOrder},
	{Info{"pleiades", "Planar gravitational seven-body problem, first-order form", "Hairer, Norsett and Wanner (1993)", 28, 0, false}, PleiadesFirstOrder},
	{Info{"three-body-restricted", "Planar restricted three-body orbit, first-order form", "Hairer, Norsett and Wanner (1993)", 4, 1, false}, ThreeBodyRestrictedFirstOrder},
	{Info{"affine-independent", "Scalar affine equation with closed-form solution", "", 1, 2, false}, AffineIndependent},
	{Info{"neural-ode", "Scalar field from a fixed-seed tanh network", "Chen et al. (2018)", 1, 0, false}, NeuralODE},
	{Info{"heat-1d", "Method-of-lines heat equation, Dirichlet boundaries", "", 10, 1, true}, heatConstructor},
}

// heatConstructor adapts Heat1DDirichlet to the catalog signature by
// dropping the grid.
func heatConstructor(opts ...Option) (Problem, error) {
	p, _, err := Heat1DDirichlet(opts...)
	return p, err
}

// Names returns the catalog names in registration order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, e := range catalog {
		names[i] = e.info.Name
	}
	return names
}

// Lookup returns the constructor and metadata registered under name.
func Lookup(name string) (Constructor, Info, error) {
	for _, e := range catalog {
		if e.info.Name == name {
			return e.ctor, e.info, nil
		}
	}
	return nil, Info{}, fmt.Errorf("%w: %q", ErrUnknownProblem, name)
}

// Catalog returns the metadata of every registered problem in order.
func Catalog() []Info {
	infos := make([]Info, len(catalog))
	for i, e := range catalog {
		infos[i] = e.info
	}
	return infos
}
