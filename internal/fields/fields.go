// Package fields holds the raw vector-field implementations shared by the
// ivp and bvp constructors. Every function is written once against
// backend.Ops; the constructors bind a concrete substrate and default
// parameters around them.
package fields

import (
	"math"

	"github.com/san-kum/odezoo/backend"
)

func sum(ns backend.Ops, vs ...backend.Vector) backend.Vector {
	acc := vs[0]
	for _, v := range vs[1:] {
		acc = ns.Add(acc, v)
	}
	return acc
}

// LotkaVolterra evaluates the predator-prey dynamics with rates
// (a, b, c, d).
func LotkaVolterra(ns backend.Ops, y backend.Vector, args ...float64) backend.Vector {
	a, b, c, d := args[0], args[1], args[2], args[3]
	y0, y1 := ns.At(y, 0), ns.At(y, 1)
	cross := ns.Mul(y0, y1)
	prey := ns.Sub(ns.Scale(a, y0), ns.Scale(b, cross))
	pred := ns.Add(ns.Scale(-c, y1), ns.Scale(d, cross))
	return ns.Concat(prey, pred)
}

// FitzHughNagumo evaluates the two-dimensional neuron-excitation model
// with parameters (a, b, c).
func FitzHughNagumo(ns backend.Ops, u backend.Vector, args ...float64) backend.Vector {
	a, b, c := args[0], args[1], args[2]
	u0, u1 := ns.At(u, 0), ns.At(u, 1)
	cube := ns.Scale(1.0/3.0, ns.Mul(u0, ns.Mul(u0, u0)))
	du0 := ns.Scale(c, ns.Add(ns.Sub(u0, cube), u1))
	du1 := ns.Scale(-1.0/c, ns.Shift(-a, ns.Sub(u0, ns.Scale(b, u1))))
	return ns.Concat(du0, du1)
}

// Logistic evaluates p0*u*(1 - p1*u), elementwise.
func Logistic(ns backend.Ops, u backend.Vector, args ...float64) backend.Vector {
	p0, p1 := args[0], args[1]
	return ns.Scale(p0, ns.Mul(u, ns.Shift(1, ns.Neg(ns.Scale(p1, u)))))
}

// SIR evaluates the susceptible/infected/removed compartment model with
// parameters (beta, gamma, population).
func SIR(ns backend.Ops, u backend.Vector, args ...float64) backend.Vector {
	beta, gamma, population := args[0], args[1], args[2]
	s, i := ns.At(u, 0), ns.At(u, 1)
	infection := ns.Scale(beta/population, ns.Mul(s, i))
	removal := ns.Scale(gamma, i)
	return ns.Concat(ns.Neg(infection), ns.Sub(infection, removal), removal)
}

// SEIR adds an exposed compartment; parameters are
// (alpha, beta, gamma, population).
func SEIR(ns backend.Ops, u backend.Vector, args ...float64) backend.Vector {
	alpha, beta, gamma, population := args[0], args[1], args[2], args[3]
	s, e, i := ns.At(u, 0), ns.At(u, 1), ns.At(u, 2)
	exposure := ns.Scale(beta/population, ns.Mul(s, i))
	onset := ns.Scale(alpha, e)
	removal := ns.Scale(gamma, i)
	return ns.Concat(ns.Neg(exposure), ns.Sub(exposure, onset), ns.Sub(onset, removal), removal)
}

// SIRD splits removal into recovery and death; parameters are
// (beta, gamma, eta, population).
func SIRD(ns backend.Ops, u backend.Vector, args ...float64) backend.Vector {
	beta, gamma, eta, population := args[0], args[1], args[2], args[3]
	s, i := ns.At(u, 0), ns.At(u, 1)
	infection := ns.Scale(beta/population, ns.Mul(s, i))
	recovery := ns.Scale(gamma, i)
	death := ns.Scale(eta, i)
	return ns.Concat(ns.Neg(infection), ns.Sub(infection, ns.Add(recovery, death)), recovery, death)
}

// Lorenz63 evaluates the three-dimensional convection model with
// parameters (a, b, c).
func Lorenz63(ns backend.Ops, u backend.Vector, args ...float64) backend.Vector {
	a, b, c := args[0], args[1], args[2]
	u0, u1, u2 := ns.At(u, 0), ns.At(u, 1), ns.At(u, 2)
	du0 := ns.Scale(a, ns.Sub(u1, u0))
	du1 := ns.Sub(ns.Mul(u0, ns.Shift(b, ns.Neg(u2))), u1)
	du2 := ns.Sub(ns.Mul(u0, u1), ns.Scale(c, u2))
	return ns.Concat(du0, du1, du2)
}

// Lorenz96 evaluates the cyclic atmospheric model (A-B)*C - y + forcing,
// where A, B, C are rotations of the state.
func Lorenz96(ns backend.Ops, y backend.Vector, args ...float64) backend.Vector {
	forcing := args[0]
	a := ns.Roll(y, -1)
	b := ns.Roll(y, 2)
	c := ns.Roll(y, 1)
	return ns.Shift(forcing, ns.Sub(ns.Mul(ns.Sub(a, b), c), y))
}

// Roessler evaluates the Roessler attractor with parameters (a, b, c).
func Roessler(ns backend.Ops, u backend.Vector, args ...float64) backend.Vector {
	a, b, c := args[0], args[1], args[2]
	u0, u1, u2 := ns.At(u, 0), ns.At(u, 1), ns.At(u, 2)
	du0 := ns.Neg(ns.Add(u1, u2))
	du1 := ns.Add(u0, ns.Scale(a, u1))
	du2 := ns.Shift(b, ns.Mul(u2, ns.Shift(-c, u0)))
	return ns.Concat(du0, du1, du2)
}

// RigidBody evaluates Euler's rotation equations without external forces;
// parameters are the principal moment coefficients (p1, p2, p3).
func RigidBody(ns backend.Ops, y backend.Vector, args ...float64) backend.Vector {
	p1, p2, p3 := args[0], args[1], args[2]
	y0, y1, y2 := ns.At(y, 0), ns.At(y, 1), ns.At(y, 2)
	return ns.Concat(
		ns.Scale(p1, ns.Mul(y1, y2)),
		ns.Scale(p2, ns.Mul(y0, y2)),
		ns.Scale(p3, ns.Mul(y0, y1)),
	)
}

// HIRES evaluates the eight-dimensional high-irradiance-response kinetics.
// The rate constants are part of the problem definition.
func HIRES(ns backend.Ops, y backend.Vector, _ ...float64) backend.Vector {
	u := make([]backend.Vector, 8)
	for i := range u {
		u[i] = ns.At(y, i)
	}
	du1 := ns.Shift(0.0007, sum(ns, ns.Scale(-1.71, u[0]), ns.Scale(0.43, u[1]), ns.Scale(8.32, u[2])))
	du2 := ns.Sub(ns.Scale(1.71, u[0]), ns.Scale(8.75, u[1]))
	du3 := sum(ns, ns.Scale(-10.03, u[2]), ns.Scale(0.43, u[3]), ns.Scale(0.035, u[4]))
	du4 := sum(ns, ns.Scale(8.32, u[1]), ns.Scale(1.71, u[2]), ns.Scale(-1.12, u[3]))
	du5 := sum(ns, ns.Scale(-1.745, u[4]), ns.Scale(0.43, u[5]), ns.Scale(0.43, u[6]))
	du6 := sum(ns,
		ns.Scale(-280, ns.Mul(u[5], u[7])),
		ns.Scale(0.69, u[3]),
		ns.Scale(1.71, u[4]),
		ns.Scale(-0.43, u[5]),
		ns.Scale(0.69, u[6]),
	)
	du7 := ns.Sub(ns.Scale(280, ns.Mul(u[5], u[7])), ns.Scale(1.81, u[6]))
	du8 := ns.Neg(du7)
	return ns.Concat(du1, du2, du3, du4, du5, du6, du7, du8)
}

// Rober evaluates Robertson's autocatalytic reaction kinetics with rate
// constants (k1, k2, k3).
func Rober(ns backend.Ops, u backend.Vector, args ...float64) backend.Vector {
	k1, k2, k3 := args[0], args[1], args[2]
	u0, u1, u2 := ns.At(u, 0), ns.At(u, 1), ns.At(u, 2)
	fast := ns.Scale(k1, u0)
	quad := ns.Scale(k2, ns.Mul(u1, u1))
	back := ns.Scale(k3, ns.Mul(u1, u2))
	return ns.Concat(
		ns.Sub(back, fast),
		ns.Sub(fast, ns.Add(quad, back)),
		quad,
	)
}

// RoberConstrained evaluates the Robertson kinetics in mass-matrix form:
// the first two rows are differential, the third row is the algebraic
// conservation residual u0+u1+u2-1.
func RoberConstrained(ns backend.Ops, u backend.Vector, args ...float64) backend.Vector {
	k1, k2, k3 := args[0], args[1], args[2]
	u0, u1, u2 := ns.At(u, 0), ns.At(u, 1), ns.At(u, 2)
	fast := ns.Scale(k1, u0)
	quad := ns.Scale(k2, ns.Mul(u1, u1))
	back := ns.Scale(k3, ns.Mul(u1, u2))
	return ns.Concat(
		ns.Sub(back, fast),
		ns.Sub(fast, ns.Add(quad, back)),
		ns.Shift(-1, ns.Sum(u)),
	)
}

// Oregonator evaluates the scaled Field-Koros-Noyes dynamics of the
// Belousov-Zhabotinsky reaction with parameters (s, q, w).
func Oregonator(ns backend.Ops, u backend.Vector, args ...float64) backend.Vector {
	s, q, w := args[0], args[1], args[2]
	u0, u1, u2 := ns.At(u, 0), ns.At(u, 1), ns.At(u, 2)
	du0 := ns.Scale(s, ns.Add(u1, ns.Mul(u0, ns.Shift(1, ns.Neg(ns.Add(ns.Scale(q, u0), u1))))))
	du1 := ns.Scale(1/s, ns.Sub(u2, ns.Mul(ns.Shift(1, u0), u1)))
	du2 := ns.Scale(w, ns.Sub(u0, u2))
	return ns.Concat(du0, du1, du2)
}

// NonlinearChemicalReaction evaluates the A -> B -> C chain of Liu et al.
// (2012) with rates (k1, k2).
func NonlinearChemicalReaction(ns backend.Ops, u backend.Vector, args ...float64) backend.Vector {
	k1, k2 := args[0], args[1]
	u0, u1 := ns.At(u, 0), ns.At(u, 1)
	first := ns.Scale(k1, u0)
	second := ns.Scale(k2, ns.Mul(u1, u1))
	return ns.Concat(ns.Neg(first), ns.Sub(first, second), second)
}

// Goodwin evaluates the protein-expression oscillator. Parameters are
// (r, a1, a2, alpha) followed by the chain rates k, one per dimension
// after the first.
func Goodwin(ns backend.Ops, u backend.Vector, args ...float64) backend.Vector {
	r, a1, a2, alpha := args[0], args[1], args[2], args[3]
	k := args[4:]
	n := u.Len()

	last := ns.At(u, n-1)
	denom := ns.Shift(a2, ns.Pow(last, r))
	parts := make([]backend.Vector, 0, n)
	parts = append(parts, ns.Sub(ns.Div(ns.Scale(a1, ns.Ones(1)), denom), ns.Scale(alpha, ns.At(u, 0))))
	for i := 1; i < n; i++ {
		parts = append(parts, ns.Sub(ns.Scale(k[i-1], ns.At(u, i-1)), ns.Scale(alpha, ns.At(u, i))))
	}
	return ns.Concat(parts...)
}

// AffineIndependent evaluates a*u + b with each dimension independent.
func AffineIndependent(ns backend.Ops, u backend.Vector, args ...float64) backend.Vector {
	a, b := args[0], args[1]
	return ns.Shift(b, ns.Scale(a, u))
}

// VanDerPol evaluates the second-order Van der Pol dynamics
// mu * ((1 - u^2) * u' - u).
func VanDerPol(ns backend.Ops, u, du backend.Vector, args ...float64) backend.Vector {
	mu := args[0]
	return ns.Scale(mu, ns.Sub(ns.Mul(ns.Shift(1, ns.Neg(ns.Mul(u, u))), du), u))
}

// HenonHeiles evaluates the planar galactic-motion dynamics in
// second-order form with coupling strength p.
func HenonHeiles(ns backend.Ops, u, _ backend.Vector, args ...float64) backend.Vector {
	p := args[0]
	x, y := ns.At(u, 0), ns.At(u, 1)
	ddx := ns.Sub(ns.Neg(x), ns.Scale(2*p, ns.Mul(x, y)))
	ddy := ns.Sub(ns.Neg(y), ns.Scale(p, ns.Sub(ns.Mul(x, x), ns.Mul(y, y))))
	return ns.Concat(ddx, ddy)
}

// ThreeBodyRestricted evaluates the planar restricted three-body dynamics
// in second-order form; the parameter is the standardised moon mass.
func ThreeBodyRestricted(ns backend.Ops, y, dy backend.Vector, args ...float64) backend.Vector {
	mu := args[0]
	mp := 1 - mu
	y0, y1 := ns.At(y, 0), ns.At(y, 1)
	dy0, dy1 := ns.At(dy, 0), ns.At(dy, 1)

	d1 := ns.Pow(ns.Norm(ns.Concat(ns.Shift(mu, y0), y1)), 3)
	d2 := ns.Pow(ns.Norm(ns.Concat(ns.Shift(-mp, y0), y1)), 3)

	ddy0 := sum(ns,
		y0,
		ns.Scale(2, dy1),
		ns.Neg(ns.Scale(mp, ns.Div(ns.Shift(mu, y0), d1))),
		ns.Neg(ns.Scale(mu, ns.Div(ns.Shift(-mp, y0), d2))),
	)
	ddy1 := sum(ns,
		y1,
		ns.Scale(-2, dy0),
		ns.Neg(ns.Scale(mp, ns.Div(y1, d1))),
		ns.Neg(ns.Scale(mu, ns.Div(y1, d2))),
	)
	return ns.Concat(ddy0, ddy1)
}

// Pleiades evaluates the gravitational interaction of seven stars in a
// plane, in second-order form. Star j has mass j+1; the state stacks the
// seven x coordinates before the seven y coordinates.
func Pleiades(ns backend.Ops, u, _ backend.Vector, _ ...float64) backend.Vector {
	const stars = 7
	x := ns.Slice(u, 0, stars)
	y := ns.Slice(u, stars, 2*stars)

	acc := make([]backend.Vector, 2*stars)
	for i := 0; i < stars; i++ {
		ax, ay := ns.Zeros(1), ns.Zeros(1)
		xi, yi := ns.At(x, i), ns.At(y, i)
		for j := 0; j < stars; j++ {
			if j == i {
				continue
			}
			rx := ns.Sub(ns.At(x, j), xi)
			ry := ns.Sub(ns.At(y, j), yi)
			r3 := ns.Pow(ns.Add(ns.Mul(rx, rx), ns.Mul(ry, ry)), 1.5)
			mj := float64(j + 1)
			ax = ns.Add(ax, ns.Scale(mj, ns.Div(rx, r3)))
			ay = ns.Add(ay, ns.Scale(mj, ns.Div(ry, r3)))
		}
		acc[i] = ax
		acc[stars+i] = ay
	}
	return ns.Concat(acc...)
}

// Bratu evaluates -k * exp(u), the right-hand side of Bratu's boundary
// value problem in second-order form.
func Bratu(ns backend.Ops, u, _ backend.Vector, args ...float64) backend.Vector {
	k := args[0]
	return ns.Scale(-k, ns.Exp(u))
}

// Pendulum evaluates -p * sin(u), the second-order pendulum dynamics.
func Pendulum(ns backend.Ops, u, _ backend.Vector, args ...float64) backend.Vector {
	p := args[0]
	return ns.Scale(-p, ns.Sin(u))
}

// Measles evaluates the seasonally-forced measles compartment dynamics
// with parameters (mu, lambda, eta, beta0). The contact rate oscillates
// with period one in t.
func Measles(ns backend.Ops, t float64, u backend.Vector, args ...float64) backend.Vector {
	mu, lambda, eta, beta0 := args[0], args[1], args[2], args[3]
	b := beta0 * (1 + math.Cos(2*math.Pi*t))
	u0, u1, u2 := ns.At(u, 0), ns.At(u, 1), ns.At(u, 2)
	contact := ns.Scale(b, ns.Mul(u0, u2))
	latency := ns.Scale(1/lambda, u1)
	recovery := ns.Scale(1/eta, u2)
	return ns.Concat(
		ns.Shift(mu, ns.Neg(contact)),
		ns.Sub(contact, latency),
		ns.Sub(latency, recovery),
	)
}
