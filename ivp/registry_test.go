package ivp

import (
	"errors"
	"testing"

	"github.com/san-kum/odezoo/backend"
)

func TestLookupUnknown(t *testing.T) {
	_, _, err := Lookup("brusselator")
	if !errors.Is(err, ErrUnknownProblem) {
		t.Fatalf("expected ErrUnknownProblem, got %v", err)
	}
}

func TestNamesMatchCatalog(t *testing.T) {
	names := Names()
	infos := Catalog()
	if len(names) != len(infos) {
		t.Fatalf("%d names, %d infos", len(names), len(infos))
	}
	seen := make(map[string]bool, len(names))
	for i, name := range names {
		if infos[i].Name != name {
			t.Errorf("order mismatch at %d: %q vs %q", i, name, infos[i].Name)
		}
		if seen[name] {
			t.Errorf("duplicate catalog name %q", name)
		}
		seen[name] = true
	}
}

func TestEveryEntryConstructs(t *testing.T) {
	ns := backend.Dense()
	for _, name := range Names() {
		ctor, info, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		p, err := ctor(WithBackend(ns))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if p.VectorField == nil {
			t.Errorf("%s: nil vector field", name)
		}
		if p.TimeSpan[1] <= p.TimeSpan[0] {
			t.Errorf("%s: degenerate time span %v", name, p.TimeSpan)
		}
		if info.Summary == "" {
			t.Errorf("%s: missing summary", name)
		}
	}
}
