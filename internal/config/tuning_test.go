package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func TestLoadTuningConfig_PartialOverride(t *testing.T) {
	path := writeTempConfig(t, `{"max_algo_passes": 1}`)

	cfg, err := LoadTuningConfig(path)
	if err != nil {
		t.Fatalf("LoadTuningConfig: %v", err)
	}
	if cfg.MaxAlgoPasses == nil || *cfg.MaxAlgoPasses != 1 {
		t.Fatalf("expected max_algo_passes=1, got %v", cfg.MaxAlgoPasses)
	}
	if cfg.FirstWindowRadius != nil {
		t.Fatalf("expected first_window_radius to remain unset, got %v", *cfg.FirstWindowRadius)
	}
}

func TestLoadTuningConfig_RejectsNonJSONExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.txt")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}

	if _, err := LoadTuningConfig(path); err == nil {
		t.Fatalf("expected an error for a non-.json extension")
	}
}

func TestValidate_RejectsOutOfRangeDaylitPortion(t *testing.T) {
	bad := 1.5
	cfg := &TuningConfig{MinDaylitPortionOfLand: &bad}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validation error for min_daylit_portion_of_land=1.5")
	}
}

func TestEmptyTuningConfig_RoundTripsThroughJSON(t *testing.T) {
	cfg := EmptyTuningConfig()
	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "{}" {
		t.Fatalf("expected empty config to marshal to {}, got %s", data)
	}
}
