package sparklenav

import (
	"math"
	"testing"
)

func TestGlintAngle_TwiceZenithWhenSunAndSatelliteCoincide(t *testing.T) {
	// Coincident sun and satellite directions are not specular: the glint
	// angle is the angle to the mirrored sun vector, i.e. 2 * zenith.
	angle := GlintAngle(0, 0.5, 0, 0.5)
	if math.Abs(angle-1.0) > 1e-9 {
		t.Fatalf("expected glint angle ~1.0 (2 * zenith) for coincident geometry, got %v", angle)
	}
}

func TestGlintAngle_MatchesClosedForm(t *testing.T) {
	sunAz, sunZa := 0.2, 0.4
	satAz, satZa := 1.1, 0.6

	got := GlintAngle(sunAz, sunZa, satAz, satZa)
	want := math.Acos(math.Cos(sunZa)*math.Cos(satZa) - math.Sin(sunZa)*math.Sin(satZa)*math.Cos(sunAz-satAz))
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCalcReflections_NadirSunAndSatelliteGivesZeroOmega(t *testing.T) {
	refl := CalcReflections(0, 0, 0, 0)
	if math.Abs(refl.Omega) > 1e-9 {
		t.Fatalf("expected omega ~0 when sun and satellite are both at nadir, got %v", refl.Omega)
	}
}

func TestCalcReflections_GammaWrapsIntoPositiveRange(t *testing.T) {
	refl := CalcReflections(3.0, 0.8, -3.0, 0.8)
	if refl.Gamma < 0 || refl.Gamma >= 2*math.Pi {
		t.Fatalf("gamma must be in [0, 2pi), got %v", refl.Gamma)
	}
}
