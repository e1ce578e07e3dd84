package sparkle

import "testing"

func TestStatStoreLazyAllocationAndDefaults(t *testing.T) {
	s := NewStatStore()

	if v := s.GetDeviation(42, StatC02RfDeviation, -1); v != -1 {
		t.Fatalf("expected default for untouched pixel, got %v", v)
	}
	if s.HasDeviation(42) {
		t.Fatalf("expected no deviation recorded yet")
	}

	s.SetDeviation(42, StatC02RfDeviation, 0.9)
	if v := s.GetDeviation(42, StatC02RfDeviation, -1); v != 0.9 {
		t.Fatalf("got %v, want 0.9", v)
	}
	if v := s.GetDeviation(42, StatC05RfDeviation, -1); v != -1 {
		t.Fatalf("expected default for a different key on the same pixel, got %v", v)
	}
	if !s.HasDeviation(42) {
		t.Fatalf("expected deviation recorded after SetDeviation")
	}
}

func TestStatStoreDebugIndependentOfDeviations(t *testing.T) {
	s := NewStatStore()
	s.SetDebug(7, StatWindowRadius, 15)

	if v := s.GetDebug(7, StatWindowRadius, 0); v != 15 {
		t.Fatalf("got %v, want 15", v)
	}
	if v := s.GetDeviation(7, StatWindowRadius, -1); v != -1 {
		t.Fatalf("debug and deviation maps should be independent")
	}
}
