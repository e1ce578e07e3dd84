package sparkle

import "fmt"

// subsampleFactor is the fixed stride used by the daylit-land gate, per
// spec.md §5.
const subsampleFactor = 10

// CheckDaylitLandPortion implements the daylit-land gate from spec.md §5:
// subsample sun_za and water_mask by subsampleFactor (both share the
// frame's single H x W shape), then compute the fraction of subsampled land
// pixels whose sun_za is within maxSunZa. Returns ErrGateRefused if that
// fraction is below minDaylitPortion.
func CheckDaylitLandPortion(in *FrameInputs, params Params) error {
	landCount, daylitLandCount := 0, 0

	for y := 0; y < in.Height; y += subsampleFactor {
		for x := 0; x < in.Width; x += subsampleFactor {
			idx := in.idx(y, x)
			if !in.WaterMask[idx] {
				continue
			}
			landCount++
			if in.SunZa[idx] <= params.MaxSunZaThreshold {
				daylitLandCount++
			}
		}
	}

	if landCount == 0 {
		return fmt.Errorf("%w: no land pixels in subsampled frame", ErrGateRefused)
	}

	fraction := float64(daylitLandCount) / float64(landCount)
	if fraction < params.MinDaylitPortionOfLand {
		return fmt.Errorf("%w: daylit land fraction %.4f below threshold %.4f", ErrGateRefused, fraction, params.MinDaylitPortionOfLand)
	}
	return nil
}

// NormalizeShape implements original_source's norm_shape: when an
// auxiliary raster's reported shape does not match the source shape, it is
// acceptable only if the aspect ratio matches (the caller is then expected
// to have nearest-neighbor resampled it upstream); otherwise it is a fatal
// configuration error.
func NormalizeShape(sourceHeight, sourceWidth, rasterHeight, rasterWidth int) error {
	if sourceHeight == rasterHeight && sourceWidth == rasterWidth {
		return nil
	}
	sourceRatio := float64(sourceWidth) / float64(sourceHeight)
	rasterRatio := float64(rasterWidth) / float64(rasterHeight)
	const epsilon = 1e-6
	if sourceRatio-rasterRatio > epsilon || rasterRatio-sourceRatio > epsilon {
		return fmt.Errorf("%w: source shape (%d,%d) vs raster shape (%d,%d)", ErrShapeMismatch, sourceHeight, sourceWidth, rasterHeight, rasterWidth)
	}
	return nil
}
