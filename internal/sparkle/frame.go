package sparkle

import "github.com/wx-star/abisparkle-go/internal/monitoring"

// FrameContext is the single owner of a frame's working-state rasters,
// flags, and stats for the duration of one run. It replaces the source's
// self-referential object graph (Design Note, spec.md §9): child
// components hold only the raster slices they need, not a back-reference
// to the context itself.
type FrameContext struct {
	Inputs *FrameInputs
	Params Params

	Flags *FlagRegistry
	Stats *StatStore

	PreMask *PreMaskResult
	Working *WorkingState
	Result  *Result
}

// NewFrameContext allocates the flag and stat stores for in and freezes
// params for the frame's duration.
func NewFrameContext(in *FrameInputs, params Params) *FrameContext {
	return &FrameContext{
		Inputs: in,
		Params: params,
		Flags:  NewFlagRegistry(in.Height, in.Width),
		Stats:  NewStatStore(),
	}
}

// Run drives the full pipeline: daylit-land gate, Pre-Mask Builder, Mask
// Finalizer, Detector, Clusterer & Metadata Emitter. Returns ErrGateRefused
// (non-fatal, no outputs) if the gate refuses the frame.
func (fc *FrameContext) Run(event string) error {
	if err := CheckDaylitLandPortion(fc.Inputs, fc.Params); err != nil {
		monitoring.Logf("sparkle: frame refused: %v", err)
		return err
	}

	fc.PreMask = BuildPreMasks(fc.Inputs, fc.Params, fc.Flags)
	fc.Working = Finalize(fc.PreMask, fc.Flags)
	RunDetector(fc.Inputs, fc.Params, fc.Flags, fc.Stats, fc.Working)
	fc.Result = EmitMetadata(fc.Inputs, fc.Flags, fc.Stats, fc.Working, event)

	validated := 0
	for _, v := range fc.Working.Validated {
		if v {
			validated++
		}
	}
	monitoring.Logf("sparkle: frame complete, %d pixels validated across %d clusters", validated, len(fc.Result.Clusters))

	return nil
}
