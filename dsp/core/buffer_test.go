package core

import (
	"math"
	"testing"
)

func TestEnsureLenReuse(t *testing.T) {
	buf := make([]float64, 4, 8)

	out := EnsureLen(buf, 6)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}

	if cap(out) != cap(buf) {
		t.Fatalf("cap = %d, want %d", cap(out), cap(buf))
	}

	if got := EnsureLen(buf, 0); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestRoundBlock(t *testing.T) {
	buf := []float64{0.1234564, -0.7853981634, 1e-9, -1e-9}
	RoundBlock(buf, 6)

	want := []float64{0.123456, -0.785398, 0, 0}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}
	if !math.Signbit(buf[3]) {
		t.Fatal("expected negative zero to keep its sign")
	}
}

func TestPeak(t *testing.T) {
	if got := Peak(nil); got != 0 {
		t.Fatalf("Peak(nil) = %v, want 0", got)
	}
	if got := Peak([]float64{0.25, -0.9, 0.5}); got != 0.9 {
		t.Fatalf("Peak() = %v, want 0.9", got)
	}
}
