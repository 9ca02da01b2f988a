package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMethod = "dopri5"
	DefaultRtol   = 1e-8
	DefaultAtol   = 1e-8
	DefaultSpanT0 = 0.0
	DefaultSpanT1 = 10.0
)

// Config describes one solve run: the model, the integrator token and
// tolerances, the span, and an optional evaluation grid.
type Config struct {
	Model    string             `yaml:"model"`
	Method   string             `yaml:"method"`
	Span     [2]float64         `yaml:"span"`
	TEval    []float64          `yaml:"t_eval"`
	Rtol     float64            `yaml:"rtol"`
	Atol     float64            `yaml:"atol"`
	Dt0      float64            `yaml:"dt0"`
	MaxSteps int                `yaml:"max_steps"`
	Params   map[string]float64 `yaml:"params"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:  "decay",
		Method: DefaultMethod,
		Span:   [2]float64{DefaultSpanT0, DefaultSpanT1},
		Rtol:   DefaultRtol,
		Atol:   DefaultAtol,
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
