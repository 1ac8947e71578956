package backend

import (
	"math"
	"testing"
)

func almostEqual(t *testing.T, got, want []float64, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > tol {
			t.Errorf("element %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestElementwiseOps(t *testing.T) {
	for _, ops := range []Ops{Dense(), Dual()} {
		t.Run(ops.Name(), func(t *testing.T) {
			a := ops.FromSlice([]float64{1, 2, 3})
			b := ops.FromSlice([]float64{4, 5, 6})

			almostEqual(t, ops.ToSlice(ops.Add(a, b)), []float64{5, 7, 9}, 1e-15)
			almostEqual(t, ops.ToSlice(ops.Sub(a, b)), []float64{-3, -3, -3}, 1e-15)
			almostEqual(t, ops.ToSlice(ops.Mul(a, b)), []float64{4, 10, 18}, 1e-15)
			almostEqual(t, ops.ToSlice(ops.Div(b, a)), []float64{4, 2.5, 2}, 1e-15)
			almostEqual(t, ops.ToSlice(ops.Scale(2, a)), []float64{2, 4, 6}, 1e-15)
			almostEqual(t, ops.ToSlice(ops.Shift(10, a)), []float64{11, 12, 13}, 1e-15)
			almostEqual(t, ops.ToSlice(ops.Neg(a)), []float64{-1, -2, -3}, 1e-15)
			almostEqual(t, ops.ToSlice(ops.Pow(a, 2)), []float64{1, 4, 9}, 1e-12)
		})
	}
}

func TestBroadcastLengthOne(t *testing.T) {
	for _, ops := range []Ops{Dense(), Dual()} {
		t.Run(ops.Name(), func(t *testing.T) {
			a := ops.FromSlice([]float64{1, 2, 3})
			s := ops.FromSlice([]float64{10})

			almostEqual(t, ops.ToSlice(ops.Add(a, s)), []float64{11, 12, 13}, 1e-15)
			almostEqual(t, ops.ToSlice(ops.Mul(s, a)), []float64{10, 20, 30}, 1e-15)
			almostEqual(t, ops.ToSlice(ops.Div(a, s)), []float64{0.1, 0.2, 0.3}, 1e-15)
		})
	}
}

func TestTranscendentals(t *testing.T) {
	for _, ops := range []Ops{Dense(), Dual()} {
		t.Run(ops.Name(), func(t *testing.T) {
			v := ops.FromSlice([]float64{0, math.Pi / 2})
			almostEqual(t, ops.ToSlice(ops.Sin(v)), []float64{0, 1}, 1e-15)
			almostEqual(t, ops.ToSlice(ops.Cos(v)), []float64{1, 0}, 1e-15)

			w := ops.FromSlice([]float64{0, 1})
			almostEqual(t, ops.ToSlice(ops.Exp(w)), []float64{1, math.E}, 1e-15)
			almostEqual(t, ops.ToSlice(ops.Tanh(w)), []float64{0, math.Tanh(1)}, 1e-15)

			u := ops.FromSlice([]float64{4, 9})
			almostEqual(t, ops.ToSlice(ops.Sqrt(u)), []float64{2, 3}, 1e-15)
		})
	}
}

func TestShapeOps(t *testing.T) {
	for _, ops := range []Ops{Dense(), Dual()} {
		t.Run(ops.Name(), func(t *testing.T) {
			v := ops.FromSlice([]float64{1, 2, 3, 4})

			almostEqual(t, ops.ToSlice(ops.At(v, 2)), []float64{3}, 0)
			almostEqual(t, ops.ToSlice(ops.Slice(v, 1, 3)), []float64{2, 3}, 0)

			lo, hi := ops.Split2(v)
			almostEqual(t, ops.ToSlice(lo), []float64{1, 2}, 0)
			almostEqual(t, ops.ToSlice(hi), []float64{3, 4}, 0)

			back := ops.Concat(lo, hi)
			almostEqual(t, ops.ToSlice(back), []float64{1, 2, 3, 4}, 0)

			almostEqual(t, ops.ToSlice(ops.Zeros(2)), []float64{0, 0}, 0)
			almostEqual(t, ops.ToSlice(ops.Ones(2)), []float64{1, 1}, 0)
			almostEqual(t, ops.ToSlice(ops.Linspace(0, 1, 5)), []float64{0, 0.25, 0.5, 0.75, 1}, 1e-15)
		})
	}
}

// Roll matches the numpy convention: a positive shift moves elements
// toward higher indices, wrapping around.
func TestRoll(t *testing.T) {
	for _, ops := range []Ops{Dense(), Dual()} {
		t.Run(ops.Name(), func(t *testing.T) {
			v := ops.FromSlice([]float64{1, 2, 3, 4})
			almostEqual(t, ops.ToSlice(ops.Roll(v, 1)), []float64{4, 1, 2, 3}, 0)
			almostEqual(t, ops.ToSlice(ops.Roll(v, -1)), []float64{2, 3, 4, 1}, 0)
			almostEqual(t, ops.ToSlice(ops.Roll(v, 2)), []float64{3, 4, 1, 2}, 0)
			almostEqual(t, ops.ToSlice(ops.Roll(v, 0)), []float64{1, 2, 3, 4}, 0)
		})
	}
}

func TestMatVecAndReductions(t *testing.T) {
	for _, ops := range []Ops{Dense(), Dual()} {
		t.Run(ops.Name(), func(t *testing.T) {
			a := [][]float64{{1, 2}, {3, 4}, {5, 6}}
			v := ops.FromSlice([]float64{1, 1})
			almostEqual(t, ops.ToSlice(ops.MatVec(a, v)), []float64{3, 7, 11}, 1e-15)

			w := ops.FromSlice([]float64{3, 4})
			almostEqual(t, ops.ToSlice(ops.Sum(w)), []float64{7}, 1e-15)
			almostEqual(t, ops.ToSlice(ops.Mean(w)), []float64{3.5}, 1e-15)
			almostEqual(t, ops.ToSlice(ops.Norm(w)), []float64{5}, 1e-12)
		})
	}
}

func TestFromSliceCopies(t *testing.T) {
	for _, ops := range []Ops{Dense(), Dual()} {
		t.Run(ops.Name(), func(t *testing.T) {
			src := []float64{1, 2, 3}
			v := ops.FromSlice(src)
			src[0] = 99
			almostEqual(t, ops.ToSlice(v), []float64{1, 2, 3}, 0)
		})
	}
}

func TestMixedBackendVectorsPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when mixing backend vectors")
		}
	}()
	dense, dl := Dense(), Dual()
	dense.Add(dense.FromSlice([]float64{1}), dl.FromSlice([]float64{1}))
}
