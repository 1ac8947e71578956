package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/ivp"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Problem != "lotka-volterra" {
		t.Errorf("expected problem lotka-volterra, got %s", cfg.Problem)
	}
	if cfg.Backend != "dense" {
		t.Errorf("expected backend dense, got %s", cfg.Backend)
	}
	if cfg.Sweep.Steps != 0 {
		t.Error("default config should not configure a sweep")
	}
}

func TestSubstrate(t *testing.T) {
	cfg := DefaultConfig()
	ns, err := cfg.Substrate()
	if err != nil {
		t.Fatal(err)
	}
	if ns.Name() != "dense" {
		t.Errorf("expected dense substrate, got %s", ns.Name())
	}

	cfg.Backend = "dual"
	ns, err = cfg.Substrate()
	if err != nil {
		t.Fatal(err)
	}
	if ns.Name() != "dual" {
		t.Errorf("expected dual substrate, got %s", ns.Name())
	}

	cfg.Backend = "gpu"
	if _, err := cfg.Substrate(); !errors.Is(err, backend.ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}

func TestOptionsApply(t *testing.T) {
	cfg := &Config{
		Problem:    "lorenz63",
		Backend:    "dense",
		Parameters: []float64{10, 20, 8.0 / 3},
		TimeSpan:   []float64{0, 40},
	}
	opts, err := cfg.Options()
	if err != nil {
		t.Fatal(err)
	}

	ctor, _, err := ivp.Lookup(cfg.Problem)
	if err != nil {
		t.Fatal(err)
	}
	p, err := ctor(opts...)
	if err != nil {
		t.Fatal(err)
	}
	if p.TimeSpan != [2]float64{0, 40} {
		t.Errorf("time span override not applied: %v", p.TimeSpan)
	}
	if p.Args[1] != 20 {
		t.Errorf("parameter override not applied: %v", p.Args)
	}
}

func TestOptionsBadTimeSpan(t *testing.T) {
	cfg := &Config{Problem: "logistic", TimeSpan: []float64{0, 1, 2}}
	if _, err := cfg.Options(); err == nil {
		t.Error("expected error for three-entry time span")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	in := &Config{
		Problem:       "sir",
		Backend:       "dual",
		Parameters:    []float64{0.3, 0.1},
		InitialValues: []float64{997, 1, 0},
		TimeSpan:      []float64{0, 160},
		Sweep:         SweepConfig{Coord: 1, From: 0, To: 500, Steps: 50},
	}
	if err := Save(path, in); err != nil {
		t.Fatal(err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if out.Problem != in.Problem || out.Backend != in.Backend {
		t.Errorf("round trip changed identity: %+v", out)
	}
	if len(out.Parameters) != 2 || out.Parameters[0] != 0.3 {
		t.Errorf("round trip changed parameters: %v", out.Parameters)
	}
	if out.Sweep != in.Sweep {
		t.Errorf("round trip changed sweep: %+v", out.Sweep)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("lorenz63", "classic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Parameters[1] != 28 {
		t.Errorf("expected rho 28, got %f", cfg.Parameters[1])
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("lorenz63", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "classic"); cfg != nil {
		t.Error("expected nil for nonexistent problem")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets("van-der-pol"); len(presets) == 0 {
		t.Error("expected presets for van-der-pol")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent problem")
	}
}

// Every preset must construct its catalog problem without error.
func TestPresetsConstruct(t *testing.T) {
	for problem, byName := range Presets {
		for name, cfg := range byName {
			opts, err := cfg.Options()
			if err != nil {
				t.Fatalf("%s/%s: %v", problem, name, err)
			}
			ctor, _, err := ivp.Lookup(cfg.Problem)
			if err != nil {
				t.Fatalf("%s/%s: %v", problem, name, err)
			}
			if _, err := ctor(opts...); err != nil {
				t.Errorf("%s/%s: %v", problem, name, err)
			}
		}
	}
}
