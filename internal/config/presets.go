package config

var Presets = map[string]map[string]*Config{
	"lotka-volterra": {
		"balanced": {
			Problem: "lotka-volterra", Backend: "dense",
			Parameters: []float64{0.5, 0.05, 0.5, 0.05},
		},
		"boom-bust": {
			Problem: "lotka-volterra", Backend: "dense",
			Parameters:    []float64{1.1, 0.4, 0.4, 0.1},
			InitialValues: []float64{10, 10},
			TimeSpan:      []float64{0, 60},
		},
	},
	"lorenz63": {
		"classic": {
			Problem: "lorenz63", Backend: "dense",
			Parameters: []float64{10, 28, 8.0 / 3},
		},
		"pre-chaos": {
			Problem: "lorenz63", Backend: "dense",
			Parameters: []float64{10, 20, 8.0 / 3},
			TimeSpan:   []float64{0, 40},
		},
	},
	"van-der-pol": {
		"relaxed": {
			Problem: "van-der-pol", Backend: "dense",
			Parameters: []float64{1},
		},
		"stiff": {
			Problem: "van-der-pol", Backend: "dense",
			Parameters: []float64{1e3},
			TimeSpan:   []float64{0, 3000},
		},
	},
	"sir": {
		"outbreak": {
			Problem: "sir", Backend: "dense",
			Parameters:    []float64{0.3, 0.1},
			InitialValues: []float64{997, 1, 0},
			TimeSpan:      []float64{0, 160},
		},
		"contained": {
			Problem: "sir", Backend: "dense",
			Parameters:    []float64{0.12, 0.2},
			InitialValues: []float64{997, 1, 0},
			TimeSpan:      []float64{0, 160},
		},
	},
	"rober": {
		"standard": {
			Problem: "rober", Backend: "dense",
		},
		"long": {
			Problem: "rober", Backend: "dense",
			TimeSpan: []float64{0, 1e11},
		},
	},
	"heat-1d": {
		"slow": {
			Problem: "heat-1d", Backend: "dense",
			Parameters: []float64{0.1},
			TimeSpan:   []float64{0, 10},
		},
	},
}

func GetPreset(problem, preset string) *Config {
	problemPresets, ok := Presets[problem]
	if !ok {
		return nil
	}
	cfg, ok := problemPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(problem string) []string {
	problemPresets, ok := Presets[problem]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(problemPresets))
	for name := range problemPresets {
		names = append(names, name)
	}
	return names
}
