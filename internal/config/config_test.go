package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "decay" {
		t.Errorf("expected model decay, got %s", cfg.Model)
	}
	if cfg.Method != DefaultMethod {
		t.Errorf("expected method %s, got %s", DefaultMethod, cfg.Method)
	}
	if cfg.Rtol <= 0 || cfg.Atol <= 0 {
		t.Error("tolerances should be positive")
	}
	if cfg.Span[0] == cfg.Span[1] {
		t.Error("default span should not be degenerate")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Model = "piecewise"
	cfg.Span = [2]float64{0, 2}
	cfg.TEval = []float64{1.0, 1.5, 1.7, 2.0}
	cfg.Params = map[string]float64{"y0": 1.0}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Model != "piecewise" {
		t.Errorf("model = %s", loaded.Model)
	}
	if loaded.Span != cfg.Span {
		t.Errorf("span = %v", loaded.Span)
	}
	if len(loaded.TEval) != 4 || loaded.TEval[2] != 1.7 {
		t.Errorf("t_eval = %v", loaded.TEval)
	}
	if loaded.Params["y0"] != 1.0 {
		t.Errorf("params = %v", loaded.Params)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("piecewise", "acceptance")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if len(cfg.TEval) != 4 {
		t.Errorf("t_eval = %v", cfg.TEval)
	}

	if GetPreset("piecewise", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "acceptance") != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets("decay")) == 0 {
		t.Error("expected presets for decay")
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent model")
	}
}
