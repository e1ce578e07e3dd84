package sparkle

import "github.com/wx-star/abisparkle-go/internal/monitoring"

// passFlagForPass maps a 1-indexed pass number to its considered-on flag,
// per the spec's table (only passes 1 and 2 are named; max_algo_passes is
// never configured above 2 in practice, but the detector itself does not
// assume that).
func passFlagForPass(pass int) int {
	switch pass {
	case 1:
		return FlagPixelConsideredOnFirstPass
	case 2:
		return FlagPixelConsideredOnSecondPass
	default:
		return PassFlag(pass)
	}
}

func windowIterationFlagForIter(iter int) int {
	switch iter {
	case 1:
		return FlagPixelHad1WindowIterations
	case 2:
		return FlagPixelHad2WindowIterations
	case 3:
		return FlagPixelHad3WindowIterations
	default:
		return WindowIterationFlag(iter)
	}
}

// RunDetector implements spec.md §4.5: up to params.MaxAlgoPasses outer
// passes, each visiting every pixel currently false in ws.Skip in
// row-major order. The outer scan is strictly sequential: a validation
// within a pass is visible to later candidates in the same pass via
// ws.Discard, per the Design Note on the detector's feedback loop.
func RunDetector(in *FrameInputs, params Params, flags *FlagRegistry, stats *StatStore, ws *WorkingState) {
	for pass := 1; pass <= params.MaxAlgoPasses; pass++ {
		validatedThisPass := 0

		for y := 0; y < in.Height; y++ {
			for x := 0; x < in.Width; x++ {
				idx := in.idx(y, x)
				if ws.Skip[idx] {
					continue
				}

				flags.SetFlag(idx, passFlagForPass(pass))
				stats.SetDebug(idx, StatAlgoPasses, float64(pass))

				if dqfNeighborBad(in, ws.BadDqf, y, x, params.ExcludeDQFRadius) {
					ws.Skip[idx] = true
					flags.SetFlag(idx, FlagPixelInvalidatedByDqfNeighbor)
					continue
				}

				sized := sizeWindow(in, ws.Discard, y, x, params.FirstWindowRadius, params.MaxWindowRadiusIter, params.MinWindowCleanProportionThresh)
				stats.SetDebug(idx, StatWindowRadius, float64(sized.Radius))
				stats.SetDebug(idx, StatWindowIterations, float64(sized.Iteration))
				stats.SetDebug(idx, StatWindowValidProportion, sized.CleanFraction)
				if !sized.Valid {
					ws.Skip[idx] = true
					flags.SetFlag(idx, FlagPixelInvalidatedByWindowSizing)
					continue
				}
				flags.SetFlag(idx, windowIterationFlagForIter(sized.Iteration))

				ws2 := computeWindowStats(in, ws.Discard, y, x, sized.Radius)
				stats.SetDeviation(idx, StatC02RfDeviation, ws2.C02RfDeviation)
				stats.SetDeviation(idx, StatC02RfStdev, ws2.C02RfStdev)
				stats.SetDeviation(idx, StatC05RfDeviation, ws2.C05RfDeviation)
				stats.SetDeviation(idx, StatC05RfStdev, ws2.C05RfStdev)
				stats.SetDeviation(idx, StatC07RfDeviation, ws2.C07RfDeviation)
				stats.SetDeviation(idx, StatC07RfStdev, ws2.C07RfStdev)
				stats.SetDeviation(idx, StatC14BtDeviation, ws2.C14BtDeviation)
				stats.SetDeviation(idx, StatC14BtStdev, ws2.C14BtStdev)

				if ws2.C02RfDeviation > params.C02RfDeviationMinThreshold &&
					ws2.C05RfDeviation > params.C05RfDeviationMinThreshold &&
					ws2.C07RfDeviation > params.C07RfDeviationMinThreshold &&
					ws2.C14BtDeviation > params.C14BtDeviationMinThreshold &&
					ws2.C14BtStdev <= params.C14BtStandardDeviationMaxThresh {
					ws.Validated[idx] = true
					ws.Skip[idx] = true
					ws.Discard[idx] = true
					flags.SetFlag(idx, FlagPixelValidatedByWindowDeviation)
					validatedThisPass++
				}
			}
		}

		monitoring.Logf("sparkle: pass %d complete, %d pixels validated", pass, validatedThisPass)

		anyValidated := false
		for _, v := range ws.Validated {
			if v {
				anyValidated = true
				break
			}
		}
		if !anyValidated {
			break
		}
	}
}

// dqfNeighborBad reports whether any pixel within Chebyshev radius r of
// (y,x) (including the candidate itself) has a bad DQF.
func dqfNeighborBad(in *FrameInputs, badDqf []bool, y, x, r int) bool {
	y0, y1 := y-r, y+r
	x0, x1 := x-r, x+r
	if y0 < 0 {
		y0 = 0
	}
	if x0 < 0 {
		x0 = 0
	}
	if y1 >= in.Height {
		y1 = in.Height - 1
	}
	if x1 >= in.Width {
		x1 = in.Width - 1
	}
	for wy := y0; wy <= y1; wy++ {
		base := wy * in.Width
		for wx := x0; wx <= x1; wx++ {
			if badDqf[base+wx] {
				return true
			}
		}
	}
	return false
}
