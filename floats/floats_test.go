package floats_test

import (
	"math"
	"testing"

	"github.com/meenmo/timevalue/floats"
)

func TestEpsilon(t *testing.T) {
	t.Parallel()

	if got := floats.Epsilon[float64](); got != math.Nextafter(1, 2)-1 {
		t.Fatalf("Epsilon[float64] mismatch: got %g", got)
	}
	if got := floats.Epsilon[float32](); got != math.Nextafter32(1, 2)-1 {
		t.Fatalf("Epsilon[float32] mismatch: got %g", got)
	}
	// float32 epsilon is far coarser than float64's.
	if float64(floats.Epsilon[float32]()) <= floats.Epsilon[float64]() {
		t.Fatalf("expected Epsilon[float32] > Epsilon[float64]")
	}
}

func TestAbs(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want float64 }{
		{0, 0},
		{1.5, 1.5},
		{-1.5, 1.5},
		{-0.001, 0.001},
	}
	for _, c := range cases {
		if got := floats.Abs(c.in); got != c.want {
			t.Fatalf("Abs(%g) = %g, want %g", c.in, got, c.want)
		}
	}
}

func TestNaN(t *testing.T) {
	t.Parallel()

	if !floats.IsNaN(floats.NaN[float64]()) {
		t.Fatalf("NaN[float64] is not NaN")
	}
	if !floats.IsNaN(floats.NaN[float32]()) {
		t.Fatalf("NaN[float32] is not NaN")
	}
	if floats.IsNaN(1.0) {
		t.Fatalf("IsNaN(1.0) = true")
	}
}

func TestIsFinite(t *testing.T) {
	t.Parallel()

	if !floats.IsFinite(0.0) || !floats.IsFinite(-123.456) {
		t.Fatalf("finite values reported non-finite")
	}
	if floats.IsFinite(math.Inf(1)) || floats.IsFinite(math.Inf(-1)) {
		t.Fatalf("infinity reported finite")
	}
	if floats.IsFinite(math.NaN()) {
		t.Fatalf("NaN reported finite")
	}
	if !floats.IsFinite(floats.MaxValue[float64]()) {
		t.Fatalf("MaxValue reported non-finite")
	}
}

func TestPow(t *testing.T) {
	t.Parallel()

	if got := floats.Pow(1.2, -1.0); math.Abs(got-1/1.2) > 1e-15 {
		t.Fatalf("Pow(1.2, -1) = %g", got)
	}
	var got32 float32 = floats.Pow[float32](1.1, 2)
	if math.Abs(float64(got32)-1.21) > 1e-6 {
		t.Fatalf("Pow[float32](1.1, 2) = %g", got32)
	}
}
