package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScenarioSaveLoad(t *testing.T) {
	sc := DefaultScenario(FourWheelOffset)
	sc.Name = "bench_offset"
	sc.Terrain = TerrainConfig{Kind: TerrainPitchRoll, PitchDeg: 15, RollDeg: 10}
	path := filepath.Join(t.TempDir(), "scenario.json")

	if err := sc.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}

	if *loaded != sc {
		t.Errorf("loaded scenario differs:\n got %+v\nwant %+v", *loaded, sc)
	}
	if err := loaded.Validate(); err != nil {
		t.Errorf("loaded scenario invalid: %v", err)
	}
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("loading a missing file should fail")
	}
}

func TestLoadScenarioBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadScenario(path); err == nil {
		t.Fatal("loading malformed JSON should fail")
	}
}

func TestScenarioStepDefaults(t *testing.T) {
	sc := Scenario{}
	if sc.Step() != DefaultTimeStep {
		t.Errorf("Step() = %g, want default %g", sc.Step(), DefaultTimeStep)
	}
	sc.TimeStep = 0.01
	if sc.Step() != 0.01 {
		t.Errorf("Step() = %g, want 0.01", sc.Step())
	}
}
