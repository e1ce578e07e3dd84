package sparkle

import "testing"

func TestSetFlagAndHasFlag(t *testing.T) {
	r := NewFlagRegistry(2, 2)
	r.SetFlagYX(0, 1, FlagPixelSkippedByCloudMask)

	idx := r.idx(0, 1)
	if !HasFlag(r.Bits[idx], FlagPixelSkippedByCloudMask) {
		t.Fatalf("expected cloud-mask flag set at (0,1)")
	}
	if HasFlag(r.Bits[idx], FlagPixelSkippedByBorderMask) {
		t.Fatalf("did not expect border flag set")
	}
}

func TestSetMaskFlag(t *testing.T) {
	r := NewFlagRegistry(1, 3)
	mask := []bool{true, false, true}
	r.SetMaskFlag(mask, FlagPixelSkippedByBorderMask)

	if !HasFlag(r.Bits[0], FlagPixelSkippedByBorderMask) {
		t.Fatalf("expected bit set at index 0")
	}
	if HasFlag(r.Bits[1], FlagPixelSkippedByBorderMask) {
		t.Fatalf("did not expect bit set at index 1")
	}
	if !HasFlag(r.Bits[2], FlagPixelSkippedByBorderMask) {
		t.Fatalf("expected bit set at index 2")
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	r := NewFlagRegistry(1, 1)
	r.SetFlag(0, FlagPixelSkippedByCloudMask)
	r.SetFlag(0, FlagPixelSkippedByBorderMask)

	names := r.Decode(0)
	if len(names) != 2 {
		t.Fatalf("expected 2 decoded names, got %d: %v", len(names), names)
	}

	// Re-encoding each decoded name's bit must leave the bitfield unchanged.
	before := r.Bits[0]
	r.SetFlag(0, FlagPixelSkippedByCloudMask)
	r.SetFlag(0, FlagPixelSkippedByBorderMask)
	if r.Bits[0] != before {
		t.Fatalf("re-encoding changed bitfield: before=%d after=%d", before, r.Bits[0])
	}
}

func TestFlagMonotonicity(t *testing.T) {
	r := NewFlagRegistry(1, 1)
	r.SetFlag(0, FlagPixelSkippedByCloudMask)
	before := r.Bits[0]
	r.SetFlag(0, FlagPixelSkippedByBorderMask)
	if r.Bits[0]&before != before {
		t.Fatalf("setting a new flag cleared a previously set bit")
	}
}

func TestPassAndWindowIterationFlags(t *testing.T) {
	if PassFlag(1) != FlagOffsetAlgoPasses+1 {
		t.Fatalf("unexpected pass flag for pass 1")
	}
	if WindowIterationFlag(2) != FlagOffsetWindowIterations+2 {
		t.Fatalf("unexpected window-iteration flag for iter 2")
	}
}
