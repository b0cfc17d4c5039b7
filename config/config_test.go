package config

import "testing"

func TestLoadEmbeddedDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.Mesh.NI <= 0 || cfg.Mesh.NJ <= 0 {
		t.Errorf("expected positive mesh dimensions from embedded defaults, got %d x %d", cfg.Mesh.NI, cfg.Mesh.NJ)
	}
}

func TestMustInitAndCfg(t *testing.T) {
	MustInit("")
	if Cfg() == nil {
		t.Fatal("expected Cfg() to return a non-nil config after MustInit")
	}
}

func TestBuildEOSKinds(t *testing.T) {
	cfg, _ := Load("")

	cfg.EOS.Kind = "gamma_law"
	if _, err := cfg.BuildEOS(); err != nil {
		t.Errorf("gamma_law: unexpected error %v", err)
	}

	cfg.EOS.Kind = "isothermal"
	if _, err := cfg.BuildEOS(); err != nil {
		t.Errorf("isothermal: unexpected error %v", err)
	}

	cfg.EOS.Kind = "locally_isothermal"
	if _, err := cfg.BuildEOS(); err != nil {
		t.Errorf("locally_isothermal: unexpected error %v", err)
	}

	cfg.EOS.Kind = "bogus"
	if _, err := cfg.BuildEOS(); err == nil {
		t.Error("expected an error for an unknown eos.kind")
	}
}

func TestBuildMassesParsesAllSinkModels(t *testing.T) {
	cfg, _ := Load("")
	cfg.Masses = []MassConfig{
		{Mass: 1, Model: "acceleration_free"},
		{Mass: 1, Model: "torque_free"},
		{Mass: 1, Model: "force_free"},
		{Mass: 1, Model: "inactive"},
	}
	masses, err := cfg.BuildMasses()
	if err != nil {
		t.Fatalf("BuildMasses failed: %v", err)
	}
	if len(masses) != 4 {
		t.Fatalf("expected 4 masses, got %d", len(masses))
	}
}

func TestBuildExecModeDefaultsToSerial(t *testing.T) {
	cfg, _ := Load("")
	cfg.Exec = ""
	mode, err := cfg.BuildExecMode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mode != 0 {
		t.Errorf("expected default exec mode to be Serial (0), got %v", mode)
	}
}
