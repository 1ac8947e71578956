package backend

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/dual"
)

// dualOps is the traceable substrate. Vectors hold forward-mode dual
// numbers, so any vector field constructed under this backend propagates
// first derivatives alongside values with no change to the field's code.
type dualOps struct{}

type dualVec []dual.Number

func (d dualVec) Len() int { return len(d) }

func asDual(v Vector) dualVec {
	dv, ok := v.(dualVec)
	if !ok {
		panic("backend: vector does not belong to the dual backend")
	}
	return dv
}

func (dualOps) Name() string { return DualName }

func (dualOps) FromSlice(vals []float64) Vector {
	out := make(dualVec, len(vals))
	for i, x := range vals {
		out[i] = dual.Number{Real: x}
	}
	return out
}

// Seed builds a dual vector with unit derivative magnitude in coordinate
// j. Evaluating a field on a seeded input yields the j-th column of its
// Jacobian in the Emag parts.
func Seed(vals []float64, j int) Vector {
	out := make(dualVec, len(vals))
	for i, x := range vals {
		out[i] = dual.Number{Real: x}
	}
	out[j].Emag = 1
	return out
}

func (dualOps) Zeros(n int) Vector { return make(dualVec, n) }

func (dualOps) Ones(n int) Vector {
	out := make(dualVec, n)
	for i := range out {
		out[i] = dual.Number{Real: 1}
	}
	return out
}

func (dualOps) Linspace(lo, hi float64, n int) Vector {
	out := make(dualVec, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = dual.Number{Real: lo + float64(i)*step}
	}
	out[n-1] = dual.Number{Real: hi}
	return out
}

func (dualOps) At(v Vector, i int) Vector {
	return dualVec{asDual(v)[i]}
}

func (dualOps) Slice(v Vector, i, j int) Vector {
	dv := asDual(v)
	out := make(dualVec, j-i)
	copy(out, dv[i:j])
	return out
}

func (dualOps) Concat(vs ...Vector) Vector {
	n := 0
	for _, v := range vs {
		n += v.Len()
	}
	out := make(dualVec, 0, n)
	for _, v := range vs {
		out = append(out, asDual(v)...)
	}
	return out
}

func (o dualOps) Split2(v Vector) (Vector, Vector) {
	n := v.Len()
	if n%2 != 0 {
		panic("backend: Split2 requires an even-length vector")
	}
	return o.Slice(v, 0, n/2), o.Slice(v, n/2, n)
}

func (dualOps) binary(a, b Vector, f func(x, y dual.Number) dual.Number) Vector {
	av, bv := asDual(a), asDual(b)
	n := broadcastLen(len(av), len(bv))
	ia, ib := bcastIdx(len(av)), bcastIdx(len(bv))
	out := make(dualVec, n)
	for i := range out {
		out[i] = f(av[ia(i)], bv[ib(i)])
	}
	return out
}

func (dualOps) unary(v Vector, f func(x dual.Number) dual.Number) Vector {
	dv := asDual(v)
	out := make(dualVec, len(dv))
	for i := range out {
		out[i] = f(dv[i])
	}
	return out
}

func (o dualOps) Add(a, b Vector) Vector { return o.binary(a, b, dual.Add) }
func (o dualOps) Sub(a, b Vector) Vector { return o.binary(a, b, dual.Sub) }
func (o dualOps) Mul(a, b Vector) Vector { return o.binary(a, b, dual.Mul) }

func (o dualOps) Div(a, b Vector) Vector {
	return o.binary(a, b, func(x, y dual.Number) dual.Number {
		return dual.Mul(x, dual.Inv(y))
	})
}

func (o dualOps) Scale(c float64, v Vector) Vector {
	return o.unary(v, func(x dual.Number) dual.Number { return dual.Scale(c, x) })
}

func (o dualOps) Shift(c float64, v Vector) Vector {
	return o.unary(v, func(x dual.Number) dual.Number {
		return dual.Add(dual.Number{Real: c}, x)
	})
}

func (o dualOps) Neg(v Vector) Vector {
	return o.unary(v, func(x dual.Number) dual.Number { return dual.Scale(-1, x) })
}

func (o dualOps) Pow(v Vector, p float64) Vector {
	return o.unary(v, func(x dual.Number) dual.Number { return dual.PowReal(x, p) })
}

func (o dualOps) Sin(v Vector) Vector  { return o.unary(v, dual.Sin) }
func (o dualOps) Cos(v Vector) Vector  { return o.unary(v, dual.Cos) }
func (o dualOps) Exp(v Vector) Vector  { return o.unary(v, dual.Exp) }
func (o dualOps) Sqrt(v Vector) Vector { return o.unary(v, dual.Sqrt) }
func (o dualOps) Tanh(v Vector) Vector { return o.unary(v, dual.Tanh) }

func (dualOps) Roll(v Vector, shift int) Vector {
	dv := asDual(v)
	n := len(dv)
	out := make(dualVec, n)
	for i := 0; i < n; i++ {
		out[((i+shift)%n+n)%n] = dv[i]
	}
	return out
}

func (dualOps) MatVec(a [][]float64, v Vector) Vector {
	dv := asDual(v)
	out := make(dualVec, len(a))
	for i, row := range a {
		var acc dual.Number
		for j, w := range row {
			acc = dual.Add(acc, dual.Scale(w, dv[j]))
		}
		out[i] = acc
	}
	return out
}

func (dualOps) Sum(v Vector) Vector {
	var acc dual.Number
	for _, x := range asDual(v) {
		acc = dual.Add(acc, x)
	}
	return dualVec{acc}
}

func (dualOps) Mean(v Vector) Vector {
	dv := asDual(v)
	var acc dual.Number
	for _, x := range dv {
		acc = dual.Add(acc, x)
	}
	return dualVec{dual.Scale(1/float64(len(dv)), acc)}
}

func (dualOps) Norm(v Vector) Vector {
	var acc dual.Number
	for _, x := range asDual(v) {
		acc = dual.Add(acc, dual.Mul(x, x))
	}
	return dualVec{dual.Sqrt(acc)}
}

func (dualOps) ToSlice(v Vector) []float64 {
	dv := asDual(v)
	out := make([]float64, len(dv))
	for i, x := range dv {
		out[i] = x.Real
	}
	return out
}

// Derivatives extracts the derivative parts of a dual vector. Inputs from
// other backends panic.
func Derivatives(v Vector) []float64 {
	dv := asDual(v)
	out := make([]float64, len(dv))
	for i, x := range dv {
		out[i] = x.Emag
	}
	return out
}

// Jacobian evaluates f at x under the dual backend, one seeded coordinate
// at a time, and assembles the resulting Jacobian matrix. The function f
// must have been constructed with the dual backend active (or injected).
func Jacobian(f func(Vector) Vector, x []float64) *mat.Dense {
	var jac *mat.Dense
	for j := range x {
		col := asDual(f(Seed(x, j)))
		if jac == nil {
			jac = mat.NewDense(len(col), len(x), nil)
		}
		for i, d := range col {
			jac.Set(i, j, d.Emag)
		}
	}
	return jac
}
