// Package config loads and saves problem run configurations and ships a
// small set of named presets for the command line tools.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/ivp"
)

const (
	DefaultBackend = backend.DenseName
	DefaultProblem = "lotka-volterra"
)

// Config describes one problem evaluation: which catalog entry, which
// substrate, and any overrides. Zero-valued fields mean "use the
// constructor's default".
type Config struct {
	Problem       string      `yaml:"problem"`
	Backend       string      `yaml:"backend"`
	Parameters    []float64   `yaml:"parameters,omitempty"`
	InitialValues []float64   `yaml:"init_values,omitempty"`
	TimeSpan      []float64   `yaml:"time_span,omitempty"`
	Sweep         SweepConfig `yaml:"sweep,omitempty"`
}

// SweepConfig pins the axes of a state-coordinate sweep. Steps of zero
// means no sweep was configured.
type SweepConfig struct {
	Coord int     `yaml:"coord"`
	From  float64 `yaml:"from"`
	To    float64 `yaml:"to"`
	Steps int     `yaml:"steps"`
}

func DefaultConfig() *Config {
	return &Config{
		Problem: DefaultProblem,
		Backend: DefaultBackend,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Substrate returns the numeric substrate the config names.
func (c *Config) Substrate() (backend.Ops, error) {
	switch c.Backend {
	case "", backend.DenseName:
		return backend.Dense(), nil
	case backend.DualName:
		return backend.Dual(), nil
	default:
		return nil, fmt.Errorf("%w: %q", backend.ErrUnsupported, c.Backend)
	}
}

// Options translates the overrides into constructor options, including
// the substrate.
func (c *Config) Options() ([]ivp.Option, error) {
	ns, err := c.Substrate()
	if err != nil {
		return nil, err
	}
	opts := []ivp.Option{ivp.WithBackend(ns)}
	if c.Parameters != nil {
		opts = append(opts, ivp.WithParameters(c.Parameters...))
	}
	if c.InitialValues != nil {
		opts = append(opts, ivp.WithInitialValues(c.InitialValues...))
	}
	if c.TimeSpan != nil {
		if len(c.TimeSpan) != 2 {
			return nil, fmt.Errorf("config: time_span must have two entries, got %d", len(c.TimeSpan))
		}
		opts = append(opts, ivp.WithTimeSpan(c.TimeSpan[0], c.TimeSpan[1]))
	}
	return opts, nil
}
