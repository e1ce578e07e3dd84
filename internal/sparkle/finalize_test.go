package sparkle

import "testing"

func TestFinalize_ValidatedClearedWhereInvalidated(t *testing.T) {
	pre := &PreMaskResult{
		Validated:   []bool{true, true, false},
		Invalidated: []bool{true, false, false},
		Skip:        []bool{false, false, false},
		BadDqf:      []bool{false, false, false},
	}
	flags := NewFlagRegistry(1, 3)

	ws := Finalize(pre, flags)

	if ws.Validated[0] {
		t.Fatalf("pixel 0 is both validated and invalidated pre-finalize; finalize must clear validated")
	}
	if !ws.Validated[1] {
		t.Fatalf("pixel 1 should remain validated")
	}
}

func TestFinalize_DiscardSubsetOfSkip(t *testing.T) {
	pre := &PreMaskResult{
		Validated:   []bool{true, false},
		Invalidated: []bool{false, true},
		Skip:        []bool{false, false},
		BadDqf:      []bool{false, false},
	}
	flags := NewFlagRegistry(1, 2)

	ws := Finalize(pre, flags)

	for i := range ws.Discard {
		if ws.Discard[i] && !ws.Skip[i] {
			t.Fatalf("discard must be a subset of skip at %d", i)
		}
	}
}

func TestFinalize_EmitsPreAlgoMaskingFlags(t *testing.T) {
	pre := &PreMaskResult{
		Validated:   []bool{true},
		Invalidated: []bool{false},
		Skip:        []bool{false},
		BadDqf:      []bool{false},
	}
	flags := NewFlagRegistry(1, 1)

	Finalize(pre, flags)

	names := flags.Decode(0)
	found := false
	for _, n := range names {
		if n == "pixel_validated_by_pre_algo_masking" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected pixel_validated_by_pre_algo_masking flag, got %v", names)
	}
}
