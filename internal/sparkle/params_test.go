package sparkle

import (
	"math"
	"testing"

	"github.com/wx-star/abisparkle-go/internal/config"
)

func TestDefaultParamsMatchesReference(t *testing.T) {
	p := DefaultParams()

	if p.MinDaylitPortionOfLand != 0.10 {
		t.Fatalf("min_daylit_portion_of_land = %v, want 0.10", p.MinDaylitPortionOfLand)
	}
	if p.MaxAlgoPasses != 2 {
		t.Fatalf("max_algo_passes = %d, want 2", p.MaxAlgoPasses)
	}
	if p.FirstWindowRadius != 15 {
		t.Fatalf("first_window_radius = %d, want 15", p.FirstWindowRadius)
	}
	if p.MaxWindowRadiusIter != 3 {
		t.Fatalf("max_window_radius_iter = %d, want 3", p.MaxWindowRadiusIter)
	}
	if math.Abs(p.MaxSunZaThreshold-deg2rad(85)) > 1e-9 {
		t.Fatalf("max_sun_za_threshold = %v, want %v", p.MaxSunZaThreshold, deg2rad(85))
	}
}

func TestApplyTuningOverridesOnlySetFields(t *testing.T) {
	override := 5
	cfg := &config.TuningConfig{MaxAlgoPasses: &override}

	p := ApplyTuning(cfg)
	if p.MaxAlgoPasses != 5 {
		t.Fatalf("max_algo_passes = %d, want 5", p.MaxAlgoPasses)
	}
	if p.FirstWindowRadius != DefaultParams().FirstWindowRadius {
		t.Fatalf("first_window_radius was overridden unexpectedly: %d", p.FirstWindowRadius)
	}
}

func TestApplyTuningNilConfigReturnsDefaults(t *testing.T) {
	p := ApplyTuning(nil)
	if p != DefaultParams() {
		t.Fatalf("ApplyTuning(nil) should equal DefaultParams()")
	}
}
