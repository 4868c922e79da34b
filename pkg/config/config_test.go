package config

import "testing"

func TestDefaultPlacerConfig(t *testing.T) {
	cfg := DefaultPlacerConfig()
	if cfg.Iterations <= 0 {
		t.Errorf("Iterations = %d, want > 0", cfg.Iterations)
	}
	if cfg.Generations <= 0 {
		t.Errorf("Generations = %d, want > 0", cfg.Generations)
	}
	if cfg.InitialTemperature <= 0 {
		t.Errorf("InitialTemperature = %f, want > 0", cfg.InitialTemperature)
	}
	if cfg.Cooling <= 0 || cfg.Cooling >= 1 {
		t.Errorf("Cooling = %f, want in (0, 1)", cfg.Cooling)
	}
	if cfg.InterchangeRatio < 1 {
		t.Errorf("InterchangeRatio = %d, want >= 1", cfg.InterchangeRatio)
	}
}

func TestDefaultRouterConfig(t *testing.T) {
	cfg := DefaultRouterConfig()
	if cfg.ViolationWeight <= 0 {
		t.Errorf("ViolationWeight = %f, want > 0", cfg.ViolationWeight)
	}
	if cfg.NormMargin <= 0 || cfg.NormMargin >= 0.5 {
		t.Errorf("NormMargin = %f, want in (0, 0.5)", cfg.NormMargin)
	}
	if cfg.ViolationCost <= 0 {
		t.Errorf("ViolationCost = %d, want > 0", cfg.ViolationCost)
	}
}

func TestDefaultExtractorConfig(t *testing.T) {
	cfg := DefaultExtractorConfig()
	if cfg.StartSignalStrength <= cfg.MinSignalStrength {
		t.Errorf("StartSignalStrength (%d) should exceed MinSignalStrength (%d)",
			cfg.StartSignalStrength, cfg.MinSignalStrength)
	}
	if cfg.MinSignalStrength < 1 {
		t.Errorf("MinSignalStrength = %d, want >= 1", cfg.MinSignalStrength)
	}
}

func TestDefaultTimingConfig(t *testing.T) {
	cfg := DefaultTimingConfig()
	if len(cfg.DriverCellNames) == 0 {
		t.Error("DriverCellNames is empty")
	}
	if len(cfg.DrivenCellNames) == 0 {
		t.Error("DrivenCellNames is empty")
	}

	hasDFF := func(names []string) bool {
		for _, n := range names {
			if n == "DFF" {
				return true
			}
		}
		return false
	}
	if !hasDFF(cfg.DriverCellNames) {
		t.Error("DriverCellNames should include DFF so register outputs seed combinational paths")
	}
	if !hasDFF(cfg.DrivenCellNames) {
		t.Error("DrivenCellNames should include DFF so register inputs terminate combinational paths")
	}
}
