package ivp

import (
	"math"
	"testing"

	"github.com/san-kum/odezoo/backend"
)

func almostEqual(t *testing.T, got, want []float64, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > tol {
			t.Errorf("element %d: got %g, want %g", i, got[i], want[i])
		}
	}
}

func TestLotkaVolterraAtDefaults(t *testing.T) {
	ns := backend.Dense()
	p, err := LotkaVolterra(WithBackend(ns))
	if err != nil {
		t.Fatal(err)
	}

	if p.TimeSpan != [2]float64{0, 20} {
		t.Errorf("unexpected time span %v", p.TimeSpan)
	}
	du := ns.ToSlice(p.VectorField(p.TimeSpan[0], p.InitialValues, p.Args...))
	almostEqual(t, du, []float64{-10, 10}, 1e-12)
}

func TestRigidBodyAtDefaults(t *testing.T) {
	ns := backend.Dense()
	p, err := RigidBody(WithBackend(ns))
	if err != nil {
		t.Fatal(err)
	}

	// du = (a*y2*y3, b*y1*y3, c*y1*y2) at y = (1, 0, 0.9).
	du := ns.ToSlice(p.VectorField(0, p.InitialValues, p.Args...))
	almostEqual(t, du, []float64{0, 1.125, 0}, 1e-12)
}

func TestHIRESConservesNothingButShape(t *testing.T) {
	ns := backend.Dense()
	p, err := HIRES(WithBackend(ns))
	if err != nil {
		t.Fatal(err)
	}
	if p.InitialValues.Len() != 8 {
		t.Fatalf("expected dimension 8, got %d", p.InitialValues.Len())
	}
	du := p.VectorField(0, p.InitialValues, p.Args...)
	if du.Len() != 8 {
		t.Fatalf("field output dimension %d", du.Len())
	}
}

func TestRoberDAEMassMatrix(t *testing.T) {
	ns := backend.Dense()
	p, err := RoberDAE(WithBackend(ns))
	if err != nil {
		t.Fatal(err)
	}
	if p.Mass == nil {
		t.Fatal("expected explicit mass matrix")
	}
	want := [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 0}}
	for i := range want {
		for j := range want[i] {
			if p.Mass[i][j] != want[i][j] {
				t.Errorf("mass[%d][%d] = %g, want %g", i, j, p.Mass[i][j], want[i][j])
			}
		}
	}

	// The constrained third component is the species sum shifted by -1,
	// which vanishes at the consistent initial state.
	du := ns.ToSlice(p.VectorField(0, p.InitialValues, p.Args...))
	if math.Abs(du[2]) > 1e-12 {
		t.Errorf("algebraic residual at consistent initial state: %g", du[2])
	}
}

// Every catalog field must produce identical values under the eager and
// the differentiable substrates.
func TestSubstratesAgree(t *testing.T) {
	dense := backend.Dense()
	dualNS := backend.Dual()

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			ctor, info, err := Lookup(name)
			if err != nil {
				t.Fatal(err)
			}

			pd, err := ctor(WithBackend(dense))
			if err != nil {
				t.Fatal(err)
			}
			pj, err := ctor(WithBackend(dualNS))
			if err != nil {
				t.Fatal(err)
			}

			if pd.InitialValues.Len() != info.Dim {
				t.Errorf("dimension %d, catalog says %d", pd.InitialValues.Len(), info.Dim)
			}
			if len(pd.Args) != info.Params {
				t.Errorf("parameter arity %d, catalog says %d", len(pd.Args), info.Params)
			}
			if pd.TimeSpan != pj.TimeSpan {
				t.Errorf("time spans differ: %v vs %v", pd.TimeSpan, pj.TimeSpan)
			}

			tm := pd.TimeSpan[0] + (pd.TimeSpan[1]-pd.TimeSpan[0])/3
			got := dense.ToSlice(pd.VectorField(tm, pd.InitialValues, pd.Args...))
			want := dualNS.ToSlice(pj.VectorField(tm, pj.InitialValues, pj.Args...))
			almostEqual(t, got, want, 1e-10)
		})
	}
}

func TestConstructionIsIdempotent(t *testing.T) {
	ns := backend.Dense()
	for _, name := range Names() {
		ctor, _, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		a, err := ctor(WithBackend(ns))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		b, err := ctor(WithBackend(ns))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		almostEqual(t, ns.ToSlice(a.InitialValues), ns.ToSlice(b.InitialValues), 0)
		va := ns.ToSlice(a.VectorField(a.TimeSpan[0], a.InitialValues, a.Args...))
		vb := ns.ToSlice(b.VectorField(b.TimeSpan[0], b.InitialValues, b.Args...))
		almostEqual(t, va, vb, 0)
	}
}

func TestJacobianOfLotkaVolterra(t *testing.T) {
	dualNS := backend.Dual()
	p, err := LotkaVolterra(WithBackend(dualNS))
	if err != nil {
		t.Fatal(err)
	}

	jac := backend.Jacobian(func(v backend.Vector) backend.Vector {
		return p.VectorField(0, v, p.Args...)
	}, []float64{20, 20})

	// d(prey')/d(prey) = a - b*pred = 0.5 - 0.05*20 = -0.5 at defaults.
	if got := jac.At(0, 0); math.Abs(got-(-0.5)) > 1e-12 {
		t.Errorf("jac[0][0] = %g, want -0.5", got)
	}
	if got := jac.At(1, 1); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("jac[1][1] = %g, want 0.5", got)
	}
}
