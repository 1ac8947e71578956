package ivp

import (
	"math"
	"testing"

	"github.com/san-kum/odezoo/backend"
)

func TestHeatGrid(t *testing.T) {
	ns := backend.Dense()
	p, grid, err := Heat1DDirichlet(WithBackend(ns))
	if err != nil {
		t.Fatal(err)
	}

	if grid.Points.Len() != 10 {
		t.Fatalf("expected 10 grid points, got %d", grid.Points.Len())
	}
	if math.Abs(grid.Spacing-1.0/9) > 1e-15 {
		t.Errorf("spacing %g, want 1/9", grid.Spacing)
	}
	pts := ns.ToSlice(grid.Points)
	if pts[0] != 0 || math.Abs(pts[9]-1) > 1e-15 {
		t.Errorf("grid endpoints %g, %g", pts[0], pts[9])
	}
	if p.InitialValues.Len() != grid.Points.Len() {
		t.Errorf("state dimension %d does not match grid", p.InitialValues.Len())
	}
}

func TestHeatInitialProfile(t *testing.T) {
	ns := backend.Dense()
	p, grid, err := Heat1DDirichlet(WithBackend(ns))
	if err != nil {
		t.Fatal(err)
	}

	pts := ns.ToSlice(grid.Points)
	u0 := ns.ToSlice(p.InitialValues)
	for i := range u0 {
		d := pts[i] - 0.5
		want := math.Exp(-20 * d * d)
		if math.Abs(u0[i]-want) > 1e-14 {
			t.Errorf("u0[%d] = %g, want %g", i, u0[i], want)
		}
	}
}

func TestHeatFieldIsSecondDifference(t *testing.T) {
	ns := backend.Dense()
	p, grid, err := Heat1DDirichlet(WithBackend(ns))
	if err != nil {
		t.Fatal(err)
	}

	u := ns.ToSlice(p.InitialValues)
	du := ns.ToSlice(p.VectorField(0, p.InitialValues, p.Args...))
	inv := 1 / (grid.Spacing * grid.Spacing)
	for i := 1; i < len(u)-1; i++ {
		want := (u[i-1] - 2*u[i] + u[i+1]) * inv
		if math.Abs(du[i]-want) > 1e-9 {
			t.Errorf("du[%d] = %g, want %g", i, du[i], want)
		}
	}
}

func TestHeatDiffusionCoefficientScales(t *testing.T) {
	ns := backend.Dense()
	p1, _, err := Heat1DDirichlet(WithBackend(ns))
	if err != nil {
		t.Fatal(err)
	}
	p2, _, err := Heat1DDirichlet(WithBackend(ns), WithParameters(2.5))
	if err != nil {
		t.Fatal(err)
	}

	du1 := ns.ToSlice(p1.VectorField(0, p1.InitialValues, p1.Args...))
	du2 := ns.ToSlice(p2.VectorField(0, p2.InitialValues, p2.Args...))
	for i := range du1 {
		if math.Abs(du2[i]-2.5*du1[i]) > 1e-9 {
			t.Errorf("element %d does not scale with the coefficient", i)
		}
	}
}
