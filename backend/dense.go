package backend

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// denseOps is the eager substrate. Vectors are gonum dense vectors and
// every operation evaluates immediately to float64 values.
type denseOps struct{}

type denseVec struct {
	v *mat.VecDense
}

func (d denseVec) Len() int { return d.v.Len() }

func asDense(v Vector) denseVec {
	dv, ok := v.(denseVec)
	if !ok {
		panic("backend: vector does not belong to the dense backend")
	}
	return dv
}

func (denseOps) Name() string { return DenseName }

func (denseOps) FromSlice(vals []float64) Vector {
	data := make([]float64, len(vals))
	copy(data, vals)
	return denseVec{v: mat.NewVecDense(len(data), data)}
}

func (denseOps) Zeros(n int) Vector {
	return denseVec{v: mat.NewVecDense(n, nil)}
}

func (o denseOps) Ones(n int) Vector {
	data := make([]float64, n)
	for i := range data {
		data[i] = 1
	}
	return denseVec{v: mat.NewVecDense(n, data)}
}

func (denseOps) Linspace(lo, hi float64, n int) Vector {
	data := make([]float64, n)
	floats.Span(data, lo, hi)
	return denseVec{v: mat.NewVecDense(n, data)}
}

func (denseOps) At(v Vector, i int) Vector {
	return denseVec{v: mat.NewVecDense(1, []float64{asDense(v).v.AtVec(i)})}
}

func (denseOps) Slice(v Vector, i, j int) Vector {
	dv := asDense(v).v
	data := make([]float64, j-i)
	for k := range data {
		data[k] = dv.AtVec(i + k)
	}
	return denseVec{v: mat.NewVecDense(len(data), data)}
}

func (denseOps) Concat(vs ...Vector) Vector {
	n := 0
	for _, v := range vs {
		n += v.Len()
	}
	data := make([]float64, 0, n)
	for _, v := range vs {
		dv := asDense(v).v
		for i := 0; i < dv.Len(); i++ {
			data = append(data, dv.AtVec(i))
		}
	}
	return denseVec{v: mat.NewVecDense(n, data)}
}

func (o denseOps) Split2(v Vector) (Vector, Vector) {
	n := v.Len()
	if n%2 != 0 {
		panic("backend: Split2 requires an even-length vector")
	}
	return o.Slice(v, 0, n/2), o.Slice(v, n/2, n)
}

func (denseOps) binary(a, b Vector, f func(x, y float64) float64) Vector {
	av, bv := asDense(a).v, asDense(b).v
	n := broadcastLen(av.Len(), bv.Len())
	ia, ib := bcastIdx(av.Len()), bcastIdx(bv.Len())
	data := make([]float64, n)
	for i := range data {
		data[i] = f(av.AtVec(ia(i)), bv.AtVec(ib(i)))
	}
	return denseVec{v: mat.NewVecDense(n, data)}
}

func (denseOps) unary(v Vector, f func(x float64) float64) Vector {
	dv := asDense(v).v
	data := make([]float64, dv.Len())
	for i := range data {
		data[i] = f(dv.AtVec(i))
	}
	return denseVec{v: mat.NewVecDense(len(data), data)}
}

func (o denseOps) Add(a, b Vector) Vector { return o.binary(a, b, func(x, y float64) float64 { return x + y }) }
func (o denseOps) Sub(a, b Vector) Vector { return o.binary(a, b, func(x, y float64) float64 { return x - y }) }
func (o denseOps) Mul(a, b Vector) Vector { return o.binary(a, b, func(x, y float64) float64 { return x * y }) }
func (o denseOps) Div(a, b Vector) Vector { return o.binary(a, b, func(x, y float64) float64 { return x / y }) }

func (o denseOps) Scale(c float64, v Vector) Vector {
	return o.unary(v, func(x float64) float64 { return c * x })
}

func (o denseOps) Shift(c float64, v Vector) Vector {
	return o.unary(v, func(x float64) float64 { return c + x })
}

func (o denseOps) Neg(v Vector) Vector {
	return o.unary(v, func(x float64) float64 { return -x })
}

func (o denseOps) Pow(v Vector, p float64) Vector {
	return o.unary(v, func(x float64) float64 { return math.Pow(x, p) })
}

func (o denseOps) Sin(v Vector) Vector  { return o.unary(v, math.Sin) }
func (o denseOps) Cos(v Vector) Vector  { return o.unary(v, math.Cos) }
func (o denseOps) Exp(v Vector) Vector  { return o.unary(v, math.Exp) }
func (o denseOps) Sqrt(v Vector) Vector { return o.unary(v, math.Sqrt) }
func (o denseOps) Tanh(v Vector) Vector { return o.unary(v, math.Tanh) }

func (denseOps) Roll(v Vector, shift int) Vector {
	dv := asDense(v).v
	n := dv.Len()
	data := make([]float64, n)
	for i := 0; i < n; i++ {
		data[((i+shift)%n+n)%n] = dv.AtVec(i)
	}
	return denseVec{v: mat.NewVecDense(n, data)}
}

func (denseOps) MatVec(a [][]float64, v Vector) Vector {
	rows, cols := len(a), len(a[0])
	flat := make([]float64, 0, rows*cols)
	for _, row := range a {
		flat = append(flat, row...)
	}
	m := mat.NewDense(rows, cols, flat)

	var out mat.VecDense
	out.MulVec(m, asDense(v).v)
	return denseVec{v: &out}
}

func (denseOps) Sum(v Vector) Vector {
	dv := asDense(v).v
	return denseVec{v: mat.NewVecDense(1, []float64{floats.Sum(dv.RawVector().Data)})}
}

func (o denseOps) Mean(v Vector) Vector {
	dv := asDense(v).v
	s := floats.Sum(dv.RawVector().Data)
	return denseVec{v: mat.NewVecDense(1, []float64{s / float64(dv.Len())})}
}

func (denseOps) Norm(v Vector) Vector {
	n := mat.Norm(asDense(v).v, 2)
	return denseVec{v: mat.NewVecDense(1, []float64{n})}
}

func (denseOps) ToSlice(v Vector) []float64 {
	dv := asDense(v).v
	out := make([]float64, dv.Len())
	for i := range out {
		out[i] = dv.AtVec(i)
	}
	return out
}
