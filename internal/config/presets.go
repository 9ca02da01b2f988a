package config

// Presets are ready-made run configurations, keyed by model then name.
var Presets = map[string]map[string]*Config{
	"decay": {
		"fast": {
			Model: "decay", Method: "dopri5", Span: [2]float64{0, 5},
			Rtol: 1e-8, Atol: 1e-8, Params: map[string]float64{"k": 4.0},
		},
		"slow": {
			Model: "decay", Method: "bosh3", Span: [2]float64{0, 20},
			Rtol: 1e-6, Atol: 1e-6, Params: map[string]float64{"k": 0.25},
		},
	},
	"oscillator": {
		"default": {
			Model: "oscillator", Method: "dopri5", Span: [2]float64{0, 20},
			Rtol: 1e-10, Atol: 1e-10, Params: map[string]float64{"omega": 1.0},
		},
		"stiffish": {
			Model: "oscillator", Method: "dopri5", Span: [2]float64{0, 10},
			Rtol: 1e-8, Atol: 1e-8, Params: map[string]float64{"omega": 25.0},
		},
	},
	"twolevel": {
		"rabi": {
			Model: "twolevel", Method: "dopri5", Span: [2]float64{0, 12.566370614359172},
			Rtol: 1e-10, Atol: 1e-10, Params: map[string]float64{"rabi": 1.0},
		},
	},
	"piecewise": {
		"acceptance": {
			Model: "piecewise", Method: "dopri5", Span: [2]float64{0, 2},
			TEval: []float64{1.0, 1.5, 1.7, 2.0}, Rtol: 1e-10, Atol: 1e-10,
		},
	},
}

// GetPreset returns a copy of the named preset, nil if absent.
func GetPreset(model, name string) *Config {
	group, ok := Presets[model]
	if !ok {
		return nil
	}
	p, ok := group[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// ListPresets returns the preset names for a model, nil if none.
func ListPresets(model string) []string {
	group, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
