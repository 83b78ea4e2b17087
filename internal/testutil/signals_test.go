package testutil

import (
	"math"
	"testing"
)

func TestCycleSine(t *testing.T) {
	s := CycleSine(1, 1.0, 64)
	if len(s) != 64 {
		t.Fatalf("len = %d, want 64", len(s))
	}
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	if math.Abs(s[16]-1) > 1e-15 {
		t.Fatalf("s[16] = %v, want 1", s[16])
	}
	if math.Abs(s[48]+1) > 1e-15 {
		t.Fatalf("s[48] = %v, want -1", s[48])
	}
}

func TestSquareSeries(t *testing.T) {
	s := SquareSeries(8, 1)
	want := CycleSine(1, -1, 8)
	RequireSliceNearlyEqual(t, s, want, 1e-15)

	// The first quarter of the negated series is negative.
	s = SquareSeries(64, 31)
	for i := 1; i < 32; i++ {
		if s[i] >= 0 {
			t.Fatalf("s[%d] = %v, want < 0", i, s[i])
		}
	}
}

func TestDC(t *testing.T) {
	dc := DC(0.5, 4)
	for i, v := range dc {
		if v != 0.5 {
			t.Fatalf("dc[%d] = %v, want 0.5", i, v)
		}
	}
}
