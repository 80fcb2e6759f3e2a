package window

import (
	"math"
	"testing"
)

func TestGenerateHannEndpoints(t *testing.T) {
	w := Generate(TypeHann, 64)

	if w[0] > 1e-12 || w[63] > 1e-12 {
		t.Fatalf("symmetric Hann must taper to zero at both ends: %v %v", w[0], w[63])
	}

	mid := w[31]
	if mid < 0.99 {
		t.Fatalf("Hann midpoint too low: %v", mid)
	}

	// Symmetry.
	for i := range w {
		j := len(w) - 1 - i
		if math.Abs(w[i]-w[j]) > 1e-12 {
			t.Fatalf("asymmetric at %d: %v vs %v", i, w[i], w[j])
		}
	}
}

func TestGeneratePeriodicHann(t *testing.T) {
	w := Generate(TypeHann, 8, WithPeriodic())
	if w[0] > 1e-12 {
		t.Fatalf("periodic Hann starts at zero: %v", w[0])
	}
	// Periodic form is not symmetric about the final sample.
	if math.Abs(w[len(w)-1]) < 1e-12 {
		t.Fatalf("periodic Hann must not end at zero")
	}
}

func TestGenerateDegenerateLengths(t *testing.T) {
	if w := Generate(TypeHann, 0); w != nil {
		t.Fatalf("length 0 should return nil, got %v", w)
	}

	w := Generate(TypeHann, 1)
	if len(w) != 1 || w[0] != 0 {
		// Hann at x=0 is 0.
		t.Fatalf("length-1 Hann: %v", w)
	}

	w = Generate(TypeRectangular, 1)
	if len(w) != 1 || w[0] != 1 {
		t.Fatalf("length-1 rectangular: %v", w)
	}
}

func TestApply(t *testing.T) {
	buf := []float64{1, 1, 1, 1}
	Apply(TypeHann, buf)

	want := []float64{0, 0.75, 0.75, 0}
	for i := range buf {
		if math.Abs(buf[i]-want[i]) > 1e-12 {
			t.Fatalf("Apply[%d]=%v want=%v", i, buf[i], want[i])
		}
	}
}

func TestNamedConstructors(t *testing.T) {
	for _, tc := range []struct {
		name string
		fn   func(int, ...Option) ([]float64, error)
	}{
		{"hann", Hann},
		{"hamming", Hamming},
		{"blackman", Blackman},
	} {
		w, err := tc.fn(16)
		if err != nil {
			t.Fatalf("%s error: %v", tc.name, err)
		}
		if len(w) != 16 {
			t.Fatalf("%s length: %d", tc.name, len(w))
		}

		if _, err := tc.fn(0); err == nil {
			t.Fatalf("%s should reject size 0", tc.name)
		}
	}
}

func TestHammingEndpoints(t *testing.T) {
	w := Generate(TypeHamming, 5)
	if math.Abs(w[0]-0.08) > 1e-12 {
		t.Fatalf("Hamming endpoint: got %v want 0.08", w[0])
	}
}

func TestEquivalentNoiseBandwidth(t *testing.T) {
	// Rectangular window has ENBW of exactly 1 bin.
	enbw, err := EquivalentNoiseBandwidth(Generate(TypeRectangular, 128))
	if err != nil {
		t.Fatalf("ENBW error: %v", err)
	}
	if math.Abs(enbw-1) > 1e-12 {
		t.Fatalf("rectangular ENBW: got %v want 1", enbw)
	}

	// Hann is 1.5 bins in the long-window limit.
	enbw, err = EquivalentNoiseBandwidth(Generate(TypeHann, 4096))
	if err != nil {
		t.Fatalf("ENBW error: %v", err)
	}
	if math.Abs(enbw-1.5) > 1e-2 {
		t.Fatalf("Hann ENBW: got %v want ~1.5", enbw)
	}

	if _, err := EquivalentNoiseBandwidth(nil); err == nil {
		t.Fatalf("empty coefficients should error")
	}
}

func TestApplyCoefficients(t *testing.T) {
	out, err := ApplyCoefficients([]float64{2, 4}, []float64{0.5, 0.25})
	if err != nil {
		t.Fatalf("ApplyCoefficients error: %v", err)
	}
	if out[0] != 1 || out[1] != 1 {
		t.Fatalf("unexpected product: %v", out)
	}

	if _, err := ApplyCoefficients([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatalf("length mismatch should error")
	}

	buf := []float64{2, 4}
	if err := ApplyCoefficientsInPlace(buf, []float64{0.5, 0.5}); err != nil {
		t.Fatalf("in-place error: %v", err)
	}
	if buf[0] != 1 || buf[1] != 2 {
		t.Fatalf("unexpected in-place product: %v", buf)
	}
}
