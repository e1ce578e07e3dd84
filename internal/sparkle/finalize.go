package sparkle

// WorkingState holds the four working-state rasters the Detector reads and
// mutates, plus the bad_dqf raster computed once by the Pre-Mask Builder.
type WorkingState struct {
	Validated   []bool
	Invalidated []bool
	Skip        []bool
	Discard     []bool
	BadDqf      []bool
}

// Finalize implements spec.md §4.4: the atomic composition step that
// resolves overlaps between the Pre-Mask Builder's rasters before the
// Detector runs.
//
//  1. validated <- validated AND NOT invalidated
//  2. discard   <- validated OR invalidated
//  3. skip      <- skip OR discard
//  4. emit the three pre-algo-masking flag bits
func Finalize(pre *PreMaskResult, flags *FlagRegistry) *WorkingState {
	n := len(pre.Validated)
	ws := &WorkingState{
		Validated:   make([]bool, n),
		Invalidated: pre.Invalidated,
		Skip:        make([]bool, n),
		Discard:     make([]bool, n),
		BadDqf:      pre.BadDqf,
	}

	for i := 0; i < n; i++ {
		ws.Validated[i] = pre.Validated[i] && !pre.Invalidated[i]
	}
	for i := 0; i < n; i++ {
		ws.Discard[i] = ws.Validated[i] || ws.Invalidated[i]
	}
	for i := 0; i < n; i++ {
		ws.Skip[i] = pre.Skip[i] || ws.Discard[i]
	}

	flags.SetMaskFlag(ws.Validated, FlagPixelValidatedByPreAlgoMasking)
	flags.SetMaskFlag(ws.Invalidated, FlagPixelInvalidatedByPreAlgoMasking)
	flags.SetMaskFlag(ws.Skip, FlagPixelSkippedByPreAlgoMasking)

	return ws
}
