package sparkle

import (
	"sort"

	"github.com/samber/lo"
)

// Flag bit numbers. Stable — external tooling reads these by number, so
// existing bits are never renumbered, only added to.
const (
	FlagUnprocessedPixel                    = 0
	FlagOffsetPreValidatedMask               = 1
	FlagPixelValidatedByPreAlgoMasking       = 2
	FlagPixelPrevalidatedByMaxRfThresholds   = 3

	FlagOffsetSkipMask                      = 10
	FlagPixelSkippedByPreAlgoMasking        = 11
	FlagPixelSkippedByCloudMask             = 12
	FlagPixelSkippedByBorderMask            = 13
	FlagPixelSkippedByMinC02RfThreshold     = 14
	FlagPixelSkippedByMinC05RfThreshold     = 15
	FlagPixelSkippedByMinC07RfThreshold     = 16
	FlagPixelSkippedByMinC07BtThreshold     = 17
	FlagPixelSkippedByMinC14BtThreshold     = 18

	FlagOffsetPreInvalidatedMask                  = 20
	FlagPixelInvalidatedByPreAlgoMasking          = 21
	FlagPixelPreinvalidatedByBadDqf               = 22
	FlagPixelPreinvalidatedByBadData              = 23
	FlagPixelPreinvalidatedByWaterMask            = 24
	FlagPixelPreinvalidatedByMaxSatZaThreshold    = 25
	FlagPixelPreinvalidatedByMaxSunZaThreshold    = 26
	FlagPixelPreinvalidatedByMinSunZaThreshold    = 27
	FlagPixelPreinvalidatedByMinGlintAngleThresh  = 28

	FlagOffsetAlgoPasses          = 30
	FlagPixelConsideredOnFirstPass  = 31
	FlagPixelConsideredOnSecondPass = 32

	FlagOffsetWindowIterations      = 40
	FlagPixelHad1WindowIterations   = 41
	FlagPixelHad2WindowIterations   = 42
	FlagPixelHad3WindowIterations   = 43

	FlagOffsetAlgoFailureStates       = 50
	FlagPixelInvalidatedByDqfNeighbor   = 51
	FlagPixelInvalidatedByWindowSizing  = 52

	FlagOffsetAlgoSuccessStates         = 60
	FlagPixelValidatedByWindowDeviation = 61
)

// flagNames is the frozen bit-number to name dictionary from spec.md §4.2.
var flagNames = map[int]string{
	FlagUnprocessedPixel:                  "unprocessed_pixel",
	FlagOffsetPreValidatedMask:             "flag_offset_pre_validated_mask",
	FlagPixelValidatedByPreAlgoMasking:     "pixel_validated_by_pre_algo_masking",
	FlagPixelPrevalidatedByMaxRfThresholds: "pixel_prevalidated_by_max_rf_thresholds",

	FlagOffsetSkipMask:                  "flag_offset_skip_mask",
	FlagPixelSkippedByPreAlgoMasking:    "pixel_skipped_by_pre_algo_masking",
	FlagPixelSkippedByCloudMask:         "pixel_skipped_by_cloud_mask",
	FlagPixelSkippedByBorderMask:        "pixel_skipped_by_border_mask",
	FlagPixelSkippedByMinC02RfThreshold: "pixel_skipped_by_min_c02_rf_threshold",
	FlagPixelSkippedByMinC05RfThreshold: "pixel_skipped_by_min_c05_rf_threshold",
	FlagPixelSkippedByMinC07RfThreshold: "pixel_skipped_by_min_c07_rf_threshold",
	FlagPixelSkippedByMinC07BtThreshold: "pixel_skipped_by_min_c07_bt_threshold",
	FlagPixelSkippedByMinC14BtThreshold: "pixel_skipped_by_min_c14_bt_threshold",

	FlagOffsetPreInvalidatedMask:                 "flag_offset_pre_invalidated_mask",
	FlagPixelInvalidatedByPreAlgoMasking:         "pixel_invalidated_by_pre_algo_masking",
	FlagPixelPreinvalidatedByBadDqf:              "pixel_preinvalidated_by_bad_dqf",
	FlagPixelPreinvalidatedByBadData:             "pixel_preinvalidated_by_bad_data",
	FlagPixelPreinvalidatedByWaterMask:           "pixel_preinvalidated_by_water_mask",
	FlagPixelPreinvalidatedByMaxSatZaThreshold:   "pixel_preinvalidated_by_max_sat_za_threshold",
	FlagPixelPreinvalidatedByMaxSunZaThreshold:   "pixel_preinvalidated_by_max_sun_za_threshold",
	FlagPixelPreinvalidatedByMinSunZaThreshold:   "pixel_preinvalidated_by_min_sun_za_threshold",
	FlagPixelPreinvalidatedByMinGlintAngleThresh: "pixel_preinvalidated_by_min_glint_angle_threshold",

	FlagOffsetAlgoPasses:            "flag_offset_algo_passes",
	FlagPixelConsideredOnFirstPass:  "pixel_considered_on_first_pass",
	FlagPixelConsideredOnSecondPass: "pixel_considered_on_second_pass",

	FlagOffsetWindowIterations:    "flag_offset_window_iterations",
	FlagPixelHad1WindowIterations: "pixel_had_1_window_iterations",
	FlagPixelHad2WindowIterations: "pixel_had_2_window_iterations",
	FlagPixelHad3WindowIterations: "pixel_had_3_window_iterations",

	FlagOffsetAlgoFailureStates:        "flag_offset_algo_failure_states",
	FlagPixelInvalidatedByDqfNeighbor:  "pixel_invalidated_by_dqf_neighbor",
	FlagPixelInvalidatedByWindowSizing: "pixel_invalidated_by_window_sizing",

	FlagOffsetAlgoSuccessStates:         "flag_offset_algo_success_states",
	FlagPixelValidatedByWindowDeviation: "pixel_validated_by_window_deviation",
}

// PassFlag returns the bit number for the pass-count flag of the given
// 1-indexed pass.
func PassFlag(pass int) int { return FlagOffsetAlgoPasses + pass }

// WindowIterationFlag returns the bit number for the window-iteration flag
// of the given 1-indexed iteration count.
func WindowIterationFlag(iter int) int { return FlagOffsetWindowIterations + iter }

// FlagRegistry owns the per-pixel algo_flags bitfield and the stable
// name table.
type FlagRegistry struct {
	Height, Width int
	Bits          []int64
}

// NewFlagRegistry allocates a zeroed flag raster of the given shape.
func NewFlagRegistry(height, width int) *FlagRegistry {
	return &FlagRegistry{Height: height, Width: width, Bits: make([]int64, height*width)}
}

func (r *FlagRegistry) idx(y, x int) int { return y*r.Width + x }

// SetFlag ORs bit into the bitfield at idx.
func (r *FlagRegistry) SetFlag(idx, bit int) {
	r.Bits[idx] |= int64(1) << uint(bit)
}

// SetFlagYX is the (y,x)-addressed form of SetFlag.
func (r *FlagRegistry) SetFlagYX(y, x, bit int) {
	r.SetFlag(r.idx(y, x), bit)
}

// SetMaskFlag applies SetFlag to every true position in mask.
func (r *FlagRegistry) SetMaskFlag(mask []bool, bit int) {
	for i, v := range mask {
		if v {
			r.SetFlag(i, bit)
		}
	}
}

// HasFlag tests whether bit is set in bitfield.
func HasFlag(bitfield int64, bit int) bool {
	mask := int64(1) << uint(bit)
	return bitfield&mask == mask
}

// Decode returns the ordered list of bit-name strings set at idx.
func (r *FlagRegistry) Decode(idx int) []string {
	return DecodeBitfield(r.Bits[idx])
}

// DecodeBitfield returns the ordered list of bit-name strings set in
// bitfield, independent of any particular raster.
func DecodeBitfield(bitfield int64) []string {
	bits := lo.Filter(lo.Keys(flagNames), func(bit int, _ int) bool {
		return HasFlag(bitfield, bit)
	})
	sort.Ints(bits)
	return lo.Map(bits, func(bit int, _ int) string {
		return flagNames[bit]
	})
}

// FlagName returns the name registered for bit, or "" if unregistered.
func FlagName(bit int) string { return flagNames[bit] }
