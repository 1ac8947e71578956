package backend

import (
	"math"
	"testing"
)

func TestSeedCarriesUnitDerivative(t *testing.T) {
	v := Seed([]float64{1, 2, 3}, 1)
	almostEqual(t, Dual().ToSlice(v), []float64{1, 2, 3}, 0)
	almostEqual(t, Derivatives(v), []float64{0, 1, 0}, 0)
}

func TestDualPropagatesChainRule(t *testing.T) {
	ops := Dual()

	// f(x) = sin(x^2); f'(x) = 2x cos(x^2)
	x := 0.7
	v := Seed([]float64{x}, 0)
	out := ops.Sin(ops.Mul(v, v))

	want := 2 * x * math.Cos(x*x)
	got := Derivatives(out)[0]
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("chain rule derivative: got %v, want %v", got, want)
	}
}

func TestDualDivisionDerivative(t *testing.T) {
	ops := Dual()

	// f(x) = 1/x; f'(x) = -1/x^2
	x := 2.5
	v := Seed([]float64{x}, 0)
	out := ops.Div(ops.Ones(1), v)

	want := -1 / (x * x)
	got := Derivatives(out)[0]
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("division derivative: got %v, want %v", got, want)
	}
}

func TestJacobianOfPolynomialField(t *testing.T) {
	ops := Dual()

	// f(x, y) = [x*y, x^2] has Jacobian [[y, x], [2x, 0]].
	f := func(v Vector) Vector {
		x, y := ops.At(v, 0), ops.At(v, 1)
		return ops.Concat(ops.Mul(x, y), ops.Mul(x, x))
	}

	x, y := 3.0, 4.0
	jac := Jacobian(f, []float64{x, y})

	want := [][]float64{{y, x}, {2 * x, 0}}
	for i := range want {
		for j := range want[i] {
			if math.Abs(jac.At(i, j)-want[i][j]) > 1e-12 {
				t.Errorf("jacobian[%d][%d]: got %v, want %v", i, j, jac.At(i, j), want[i][j])
			}
		}
	}
}

func TestJacobianOfLinearMap(t *testing.T) {
	ops := Dual()

	a := [][]float64{{1, 2, 3}, {4, 5, 6}}
	f := func(v Vector) Vector { return ops.MatVec(a, v) }

	jac := Jacobian(f, []float64{0.5, -1, 2})
	for i := range a {
		for j := range a[i] {
			if math.Abs(jac.At(i, j)-a[i][j]) > 1e-12 {
				t.Errorf("jacobian[%d][%d]: got %v, want %v", i, j, jac.At(i, j), a[i][j])
			}
		}
	}
}
