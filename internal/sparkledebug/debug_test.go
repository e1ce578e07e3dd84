package sparkledebug

import (
	"strings"
	"testing"

	"github.com/wx-star/abisparkle-go/internal/sparkle"
)

func buildFixture(t *testing.T) *sparkle.FrameContext {
	t.Helper()
	n := 1
	in := &sparkle.FrameInputs{
		Height: 1, Width: 1,
		C02Rf: []float64{0.6}, C05Rf: []float64{0.65}, C07Rf: []float64{0.5},
		C07Bt: []float64{310}, C14Bt: []float64{290},
		C02Dqf: make([]uint8, n), C05Dqf: make([]uint8, n), C07Dqf: make([]uint8, n), C14Dqf: make([]uint8, n),
		WaterMask: []bool{true}, CloudMask: []bool{false},
		SunZa: []float64{0.3}, SunAz: []float64{0}, SatZa: []float64{0.3}, SatAz: []float64{0},
		GlintAngle: []float64{0.3}, LatDeg: []float64{10}, LonDeg: []float64{20},
	}
	return sparkle.NewFrameContext(in, sparkle.DefaultParams())
}

func TestReport_ValidBandsReportValid(t *testing.T) {
	fc := buildFixture(t)
	report := Report(fc, 0, 0)

	if !strings.Contains(report, "c02_rf") {
		t.Fatalf("expected report to mention c02_rf, got %q", report)
	}
	if !strings.Contains(report, "VALID") {
		t.Fatalf("expected at least one VALID verdict, got %q", report)
	}
}

func TestReport_MissingDeviationStatsReportsNA(t *testing.T) {
	fc := buildFixture(t)
	report := Report(fc, 0, 0)

	if !strings.Contains(report, "N/A") {
		t.Fatalf("expected N/A for an untouched pixel's deviation stats, got %q", report)
	}
}

func TestDump_UnvalidatedPixelReportsNeverValidated(t *testing.T) {
	fc := buildFixture(t)
	if err := fc.Run("test"); err != nil {
		t.Fatalf("Run: %v", err)
	}

	out := Dump(fc.Result, 0, 0, 1)
	if !strings.Contains(out, "never validated") {
		t.Fatalf("expected never-validated message, got %q", out)
	}
}
