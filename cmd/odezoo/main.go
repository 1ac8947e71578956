package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/internal/config"
	"github.com/san-kum/odezoo/internal/tui"
	"github.com/san-kum/odezoo/ivp"
)

var (
	backendName string
	params      []float64
	initValues  []float64
	evalTime    float64
	asJSON      bool
	asYAML      bool
	configFile  string
	preset      string
	// Sweep axes
	sweepCoord     int
	sweepComponent int
	sweepFrom      float64
	sweepTo        float64
	sweepSteps     int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "odezoo",
		Short: "a zoo of ordinary differential equation test problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list catalog problems",
		RunE:  listProblems,
	}

	describeCmd := &cobra.Command{
		Use:   "describe [problem]",
		Short: "show a problem's defaults and metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  describeProblem,
	}
	describeCmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON")
	describeCmd.Flags().BoolVar(&asYAML, "yaml", false, "emit YAML")

	evalCmd := &cobra.Command{
		Use:   "eval [problem]",
		Short: "evaluate the vector field at the initial values",
		Args:  cobra.ExactArgs(1),
		RunE:  evalProblem,
	}
	evalCmd.Flags().StringVar(&backendName, "backend", backend.DenseName, "numeric backend")
	evalCmd.Flags().Float64SliceVar(&params, "params", nil, "vector field parameters")
	evalCmd.Flags().Float64SliceVar(&initValues, "u0", nil, "initial values")
	evalCmd.Flags().Float64Var(&evalTime, "t", 0, "evaluation time (defaults to the span start)")
	evalCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	evalCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	jacobianCmd := &cobra.Command{
		Use:   "jacobian [problem]",
		Short: "print the field Jacobian at the initial values",
		Args:  cobra.ExactArgs(1),
		RunE:  jacobianProblem,
	}
	jacobianCmd.Flags().Float64SliceVar(&params, "params", nil, "vector field parameters")
	jacobianCmd.Flags().Float64SliceVar(&initValues, "u0", nil, "initial values")

	sweepCmd := &cobra.Command{
		Use:   "sweep [problem]",
		Short: "plot one derivative component while sweeping one state coordinate",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepProblem,
	}
	sweepCmd.Flags().StringVar(&backendName, "backend", backend.DenseName, "numeric backend")
	sweepCmd.Flags().Float64SliceVar(&params, "params", nil, "vector field parameters")
	sweepCmd.Flags().IntVar(&sweepCoord, "coord", 0, "state coordinate to sweep")
	sweepCmd.Flags().IntVar(&sweepComponent, "component", 0, "derivative component to plot")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", -5, "sweep start")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 5, "sweep end")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 80, "number of sweep points")

	presetsCmd := &cobra.Command{
		Use:   "presets [problem]",
		Short: "list available presets for a problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for problem: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "interactive problem browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.AddCommand(listCmd, describeCmd, evalCmd, jacobianCmd, sweepCmd, presetsCmd, browseCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func listProblems(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDIM\tPARAMS\tSTIFF\tSUMMARY")
	for _, info := range ivp.Catalog() {
		stiff := ""
		if info.Stiff {
			stiff = "yes"
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n", info.Name, info.Dim, info.Params, stiff, info.Summary)
	}
	return w.Flush()
}

// description is the describe command's output shape.
type description struct {
	Name          string    `json:"name" yaml:"name"`
	Summary       string    `json:"summary" yaml:"summary"`
	Reference     string    `json:"reference,omitempty" yaml:"reference,omitempty"`
	Dim           int       `json:"dim" yaml:"dim"`
	Stiff         bool      `json:"stiff" yaml:"stiff"`
	Parameters    []float64 `json:"parameters" yaml:"parameters"`
	InitialValues []float64 `json:"init_values" yaml:"init_values"`
	TimeSpan      []float64 `json:"time_span" yaml:"time_span"`
}

func describeProblem(cmd *cobra.Command, args []string) error {
	ctor, info, err := ivp.Lookup(args[0])
	if err != nil {
		return err
	}
	ns := backend.Dense()
	p, err := ctor(ivp.WithBackend(ns))
	if err != nil {
		return err
	}

	d := description{
		Name:          info.Name,
		Summary:       info.Summary,
		Reference:     info.Reference,
		Dim:           info.Dim,
		Stiff:         info.Stiff,
		Parameters:    p.Args,
		InitialValues: ns.ToSlice(p.InitialValues),
		TimeSpan:      p.TimeSpan[:],
	}

	switch {
	case asJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case asYAML:
		data, err := yaml.Marshal(d)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	fmt.Printf("%s  %s\n", d.Name, d.Summary)
	if d.Reference != "" {
		fmt.Printf("reference: %s\n", d.Reference)
	}
	fmt.Printf("dimension: %d\n", d.Dim)
	if d.Stiff {
		fmt.Println("stiff: yes")
	}
	fmt.Printf("time span: [%g, %g]\n", d.TimeSpan[0], d.TimeSpan[1])
	fmt.Printf("parameters: %v\n", d.Parameters)
	fmt.Printf("init values: %v\n", d.InitialValues)
	return nil
}

// buildOptions merges preset, config file and flags, flags last.
func buildOptions(cmd *cobra.Command, problem string) (*config.Config, []ivp.Option, backend.Ops, error) {
	cfg := config.DefaultConfig()
	cfg.Problem = problem

	if preset != "" {
		p := config.GetPreset(problem, preset)
		if p == nil {
			return nil, nil, nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(problem))
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("backend") {
		cfg.Backend = backendName
	}
	if cmd.Flags().Changed("params") {
		cfg.Parameters = params
	}
	if cmd.Flags().Changed("u0") {
		cfg.InitialValues = initValues
	}

	opts, err := cfg.Options()
	if err != nil {
		return nil, nil, nil, err
	}
	ns, err := cfg.Substrate()
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, opts, ns, nil
}

func evalProblem(cmd *cobra.Command, args []string) error {
	ctor, _, err := ivp.Lookup(args[0])
	if err != nil {
		return err
	}
	_, opts, ns, err := buildOptions(cmd, args[0])
	if err != nil {
		return err
	}
	p, err := ctor(opts...)
	if err != nil {
		return err
	}

	t := p.TimeSpan[0]
	if cmd.Flags().Changed("t") {
		t = evalTime
	}
	u0 := ns.ToSlice(p.InitialValues)
	du := ns.ToSlice(p.VectorField(t, p.InitialValues, p.Args...))

	fmt.Printf("%s at t=%g (backend %s)\n", args[0], t, ns.Name())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "I\tU0\tDU/DT")
	for i := range u0 {
		fmt.Fprintf(w, "%d\t%g\t%g\n", i, u0[i], du[i])
	}
	return w.Flush()
}

func jacobianProblem(cmd *cobra.Command, args []string) error {
	ctor, _, err := ivp.Lookup(args[0])
	if err != nil {
		return err
	}
	ns := backend.Dual()
	opts := []ivp.Option{ivp.WithBackend(ns)}
	if cmd.Flags().Changed("params") {
		opts = append(opts, ivp.WithParameters(params...))
	}
	if cmd.Flags().Changed("u0") {
		opts = append(opts, ivp.WithInitialValues(initValues...))
	}
	p, err := ctor(opts...)
	if err != nil {
		return err
	}

	u0 := ns.ToSlice(p.InitialValues)
	jac := backend.Jacobian(func(v backend.Vector) backend.Vector {
		return p.VectorField(p.TimeSpan[0], v, p.Args...)
	}, u0)

	rows, cols := jac.Dims()
	fmt.Printf("%s Jacobian at the initial values (%dx%d)\n", args[0], rows, cols)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			fmt.Fprintf(w, "%.6g", jac.At(i, j))
			if j < cols-1 {
				fmt.Fprint(w, "\t")
			}
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

func sweepProblem(cmd *cobra.Command, args []string) error {
	ctor, info, err := ivp.Lookup(args[0])
	if err != nil {
		return err
	}
	cfg, opts, ns, err := buildOptions(cmd, args[0])
	if err != nil {
		return err
	}
	p, err := ctor(opts...)
	if err != nil {
		return err
	}

	// Config files can pin the sweep axes; flags win.
	if !cmd.Flags().Changed("coord") && cfg.Sweep.Steps > 0 {
		sweepCoord = cfg.Sweep.Coord
	}
	if !cmd.Flags().Changed("from") && cfg.Sweep.Steps > 0 {
		sweepFrom = cfg.Sweep.From
	}
	if !cmd.Flags().Changed("to") && cfg.Sweep.Steps > 0 {
		sweepTo = cfg.Sweep.To
	}
	if !cmd.Flags().Changed("steps") && cfg.Sweep.Steps > 0 {
		sweepSteps = cfg.Sweep.Steps
	}

	dim := p.InitialValues.Len()
	if sweepCoord < 0 || sweepCoord >= dim {
		return fmt.Errorf("coord %d out of range for dimension %d", sweepCoord, dim)
	}
	if sweepComponent < 0 || sweepComponent >= dim {
		return fmt.Errorf("component %d out of range for dimension %d", sweepComponent, dim)
	}
	if sweepSteps < 2 {
		return fmt.Errorf("steps must be at least 2, got %d", sweepSteps)
	}

	base := ns.ToSlice(p.InitialValues)
	data := make([]float64, sweepSteps)
	for i := range data {
		u := make([]float64, dim)
		copy(u, base)
		u[sweepCoord] = sweepFrom + (sweepTo-sweepFrom)*float64(i)/float64(sweepSteps-1)
		du := ns.ToSlice(p.VectorField(p.TimeSpan[0], ns.FromSlice(u), p.Args...))
		data[i] = du[sweepComponent]
	}

	caption := fmt.Sprintf("%s: du[%d]/dt over u[%d] in [%g, %g]",
		info.Name, sweepComponent, sweepCoord, sweepFrom, sweepTo)
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	return nil
}
