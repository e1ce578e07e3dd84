package sparkle

import "math"

// dqfGood reports whether a DQF code is usable ({0,2}).
func dqfGood(code uint8) bool { return code == 0 || code == 2 }

// PreMaskResult holds the four rasters produced by the Pre-Mask Builder.
type PreMaskResult struct {
	BadDqf      []bool
	Validated   []bool
	Invalidated []bool
	Skip        []bool
}

// BuildPreMasks implements spec.md §4.3: four boolean rasters derived
// purely from inputs, with each contributing condition recording its flag
// bit as it goes.
func BuildPreMasks(in *FrameInputs, params Params, flags *FlagRegistry) *PreMaskResult {
	n := in.Height * in.Width
	res := &PreMaskResult{
		BadDqf:      make([]bool, n),
		Validated:   make([]bool, n),
		Invalidated: make([]bool, n),
		Skip:        make([]bool, n),
	}

	for i := 0; i < n; i++ {
		res.BadDqf[i] = !dqfGood(in.C02Dqf[i]) || !dqfGood(in.C05Dqf[i]) || !dqfGood(in.C07Dqf[i]) || !dqfGood(in.C14Dqf[i])
		if res.BadDqf[i] {
			flags.SetFlag(i, FlagPixelPreinvalidatedByBadDqf)
		}
	}

	for i := 0; i < n; i++ {
		if in.C02Rf[i] > params.C0xRfMaxThreshold && in.C05Rf[i] > params.C0xRfMaxThreshold && in.C07Rf[i] > params.C0xRfMaxThreshold {
			res.Validated[i] = true
			flags.SetFlag(i, FlagPixelPrevalidatedByMaxRfThresholds)
		}
	}

	for i := 0; i < n; i++ {
		invalid := false
		if res.BadDqf[i] {
			invalid = true
		}
		if isBadOrNaN(in.C02Rf[i]) || isBadOrNaN(in.C05Rf[i]) || isBadOrNaN(in.C07Rf[i]) || isBadOrNaN(in.C07Bt[i]) || isBadOrNaN(in.C14Bt[i]) {
			invalid = true
			flags.SetFlag(i, FlagPixelPreinvalidatedByBadData)
		}
		if !in.WaterMask[i] {
			invalid = true
			flags.SetFlag(i, FlagPixelPreinvalidatedByWaterMask)
		}
		if in.SatZa[i] > params.MaxSatZaThreshold {
			invalid = true
			flags.SetFlag(i, FlagPixelPreinvalidatedByMaxSatZaThreshold)
		}
		if in.SunZa[i] > params.MaxSunZaThreshold {
			invalid = true
			flags.SetFlag(i, FlagPixelPreinvalidatedByMaxSunZaThreshold)
		}
		if in.SunZa[i] <= params.MinSunZaThreshold {
			invalid = true
			flags.SetFlag(i, FlagPixelPreinvalidatedByMinSunZaThreshold)
		}
		if in.GlintAngle[i] <= params.MinGlintAngleThreshold {
			invalid = true
			flags.SetFlag(i, FlagPixelPreinvalidatedByMinGlintAngleThresh)
		}
		res.Invalidated[i] = invalid
	}

	borderWidth := params.ExcludeBorderWidth
	for y := 0; y < in.Height; y++ {
		for x := 0; x < in.Width; x++ {
			i := y*in.Width + x
			skip := false
			if in.CloudMask[i] {
				skip = true
				flags.SetFlag(i, FlagPixelSkippedByCloudMask)
			}
			if y < borderWidth || y >= in.Height-borderWidth || x < borderWidth || x >= in.Width-borderWidth {
				skip = true
				flags.SetFlag(i, FlagPixelSkippedByBorderMask)
			}
			if in.C02Rf[i] <= params.C02RfMinThreshold {
				skip = true
				flags.SetFlag(i, FlagPixelSkippedByMinC02RfThreshold)
			}
			if in.C05Rf[i] <= params.C05RfMinThreshold {
				skip = true
				flags.SetFlag(i, FlagPixelSkippedByMinC05RfThreshold)
			}
			if in.C07Rf[i] <= params.C07RfMinThreshold {
				skip = true
				flags.SetFlag(i, FlagPixelSkippedByMinC07RfThreshold)
			}
			if in.C07Bt[i] <= params.C07BtMinThreshold {
				skip = true
				flags.SetFlag(i, FlagPixelSkippedByMinC07BtThreshold)
			}
			if in.C14Bt[i] <= params.C14BtMinThreshold {
				skip = true
				flags.SetFlag(i, FlagPixelSkippedByMinC14BtThreshold)
			}
			res.Skip[i] = skip
		}
	}

	return res
}

// isBadOrNaN reports whether v is <= 0 or NaN. This replaces the original
// implementation's `x == NaN` sentinel check (always false in Python,
// and in Go too) with a proper math.IsNaN test, per the corrected Open
// Question in spec.md §9.
func isBadOrNaN(v float64) bool {
	return v <= 0 || math.IsNaN(v)
}
