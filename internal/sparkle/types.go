// Package sparkle implements the Sparkle Detection and Characterization
// Algorithm: pre-masking, the iterative windowed-deviation detector with
// adaptive window sizing, and the flag/stat stores that make per-pixel
// decisions auditable.
package sparkle

import (
	"errors"
	"time"
)

// ErrShapeMismatch is returned when an auxiliary raster's shape cannot be
// reconciled with the source shape (aspect ratio differs).
var ErrShapeMismatch = errors.New("sparkle: raster shape mismatch")

// ErrGateRefused is returned when the daylit-land gate rejects a frame.
// It is non-fatal: the caller should skip the frame and log once.
var ErrGateRefused = errors.New("sparkle: daylit-land gate refused frame")

// FrameInputs bundles every raster and piece of metadata the core requires,
// all already resampled to a common H x W shape by external collaborators.
type FrameInputs struct {
	Height, Width int

	// Band rasters, float32 semantics carried as float64 for computation.
	C02Rf []float64 // reflectance factor
	C05Rf []float64
	C07Rf []float64
	C07Bt []float64 // brightness temperature
	C14Bt []float64

	// Per-band data-quality flag codes; {0,2} are good.
	C02Dqf []uint8
	C05Dqf []uint8
	C07Dqf []uint8
	C14Dqf []uint8

	WaterMask []bool // True = land
	CloudMask []bool // True = cloudy

	// Navigation, radians unless noted.
	SunZa      []float64
	SunAz      []float64
	SatZa      []float64
	SatAz      []float64
	GlintAngle []float64
	LatDeg     []float64
	LonDeg     []float64

	// PixelAreaM2 is the per-pixel ground footprint area in square meters,
	// supplied by the external geodetic collaborator (pixel_area is not
	// recomputed inside the core, matching the out-of-scope geodetic
	// angle computation named in spec.md §1). May be nil; area_m is then
	// reported as 0.
	PixelAreaM2 []float64

	FrameStartTime time.Time
	FrameEndTime   time.Time
}

func (f *FrameInputs) idx(y, x int) int { return y*f.Width + x }

// NewBoolRaster allocates a H*W bool slice sized to f.
func (f *FrameInputs) NewBoolRaster() []bool { return make([]bool, f.Height*f.Width) }

// NewFloat64Raster allocates a H*W float64 slice sized to f.
func (f *FrameInputs) NewFloat64Raster() []float64 { return make([]float64, f.Height*f.Width) }
