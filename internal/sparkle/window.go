package sparkle

import (
	"sync"

	"gonum.org/v1/gonum/stat"
)

// WindowSizeResult is the outcome of the adaptive window sizing procedure
// (spec.md §4.5.1).
type WindowSizeResult struct {
	Valid          bool
	Radius         int
	Iteration      int
	CleanFraction  float64
}

// sizeWindow iterates k = 1..maxIter, radius = firstRadius*k, and returns
// the smallest full-sized window whose non-discarded fraction exceeds
// threshold. It operates on discard_mask only, never the band rasters.
func sizeWindow(in *FrameInputs, discard []bool, y, x, firstRadius, maxIter int, threshold float64) WindowSizeResult {
	var last WindowSizeResult
	for k := 1; k <= maxIter; k++ {
		radius := firstRadius * k
		y0, y1 := y-radius, y+radius
		x0, x1 := x-radius, x+radius
		full := (y1-y0+1)*(x1-x0+1) == (2*radius+1)*(2*radius+1)
		if y0 < 0 || x0 < 0 || y1 >= in.Height || x1 >= in.Width {
			full = false
		}
		last = WindowSizeResult{Valid: false, Radius: radius, Iteration: k}
		if !full {
			continue
		}
		size := (2*radius + 1) * (2*radius + 1)
		clean := 0
		for wy := y0; wy <= y1; wy++ {
			base := wy * in.Width
			for wx := x0; wx <= x1; wx++ {
				if !discard[base+wx] {
					clean++
				}
			}
		}
		cleanFraction := float64(clean) / float64(size)
		last.CleanFraction = cleanFraction
		if cleanFraction > threshold {
			last.Valid = true
			return last
		}
	}
	return last
}

// WindowStats holds the per-band deviation/stdev results of a single
// candidate's windowed-deviation computation.
type WindowStats struct {
	C02RfDeviation, C02RfStdev float64
	C05RfDeviation, C05RfStdev float64
	C07RfDeviation, C07RfStdev float64
	C14BtDeviation, C14BtStdev float64
}

// computeWindowStats extracts the chosen window from each of the four band
// rasters, copies the non-discarded positions into a window-local sample
// slice (never mutating the source rasters), and reduces each band's
// surviving samples with a population mean/stdev. Per spec.md §9's
// Design Note, bands are independent and may be computed concurrently; the
// outer per-pixel scan that calls this remains strictly sequential.
func computeWindowStats(in *FrameInputs, discard []bool, y, x, radius int) WindowStats {
	y0, y1 := y-radius, y+radius
	x0, x1 := x-radius, x+radius

	bandSamples := func(band []float64) []float64 {
		samples := make([]float64, 0, (y1-y0+1)*(x1-x0+1))
		for wy := y0; wy <= y1; wy++ {
			base := wy * in.Width
			for wx := x0; wx <= x1; wx++ {
				i := base + wx
				if discard[i] {
					continue
				}
				samples = append(samples, band[i])
			}
		}
		return samples
	}

	type bandResult struct {
		mean, stdev float64
	}
	bands := []struct {
		name string
		data []float64
	}{
		{"c02_rf", in.C02Rf},
		{"c05_rf", in.C05Rf},
		{"c07_rf", in.C07Rf},
		{"c14_bt", in.C14Bt},
	}
	results := make([]bandResult, len(bands))

	var wg sync.WaitGroup
	for bi := range bands {
		wg.Add(1)
		go func(bi int) {
			defer wg.Done()
			samples := bandSamples(bands[bi].data)
			if len(samples) == 0 {
				results[bi] = bandResult{}
				return
			}
			// numpy's nanmean/nanstd default to a population (ddof=0)
			// standard deviation; PopMeanStdDev matches that convention.
			mean, std := stat.PopMeanStdDev(samples, nil)
			results[bi] = bandResult{mean: mean, stdev: std}
		}(bi)
	}
	wg.Wait()

	idx := in.idx(y, x)
	return WindowStats{
		C02RfDeviation: in.C02Rf[idx] - results[0].mean,
		C02RfStdev:     results[0].stdev,
		C05RfDeviation: in.C05Rf[idx] - results[1].mean,
		C05RfStdev:     results[1].stdev,
		C07RfDeviation: in.C07Rf[idx] - results[2].mean,
		C07RfStdev:     results[2].stdev,
		C14BtDeviation: in.C14Bt[idx] - results[3].mean,
		C14BtStdev:     results[3].stdev,
	}
}
