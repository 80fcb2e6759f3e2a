package spectral

import (
	"math"
	"testing"

	"github.com/neurodsp/eegmetrics/internal/testutil"
)

func TestPSDSinePeak(t *testing.T) {
	a := NewAnalyzer(Config{SampleRate: 256})
	signal := testutil.DeterministicSine(10, 256, 50, 512)

	psd := a.PSD(signal)
	if psd.Empty() {
		t.Fatalf("expected non-empty PSD")
	}
	if psd.BinHz != 0.5 {
		t.Fatalf("BinHz=%v want=0.5", psd.BinHz)
	}
	if len(psd.Values) != 257 {
		t.Fatalf("bin count=%d want=257", len(psd.Values))
	}

	peak := 0
	for i, v := range psd.Values {
		if v > psd.Values[peak] {
			peak = i
		}
	}
	if got := float64(peak) * psd.BinHz; got != 10 {
		t.Fatalf("peak frequency=%v want=10", got)
	}

	testutil.RequireFinite(t, psd.Values)
}

func TestPSDSegmentLengthFollowsShortSignals(t *testing.T) {
	a := NewAnalyzer(Config{SampleRate: 256})

	// 256 samples: the segment shrinks to the signal length.
	psd := a.PSD(testutil.DeterministicNoise(3, 1, 256))
	if psd.BinHz != 1 {
		t.Fatalf("BinHz=%v want=1", psd.BinHz)
	}
	if len(psd.Values) != 129 {
		t.Fatalf("bin count=%d want=129", len(psd.Values))
	}

	// Odd, non-power-of-two length exercises the padding transform.
	psd = a.PSD(testutil.DeterministicNoise(4, 1, 101))
	if psd.Empty() {
		t.Fatalf("expected non-empty PSD for odd-length signal")
	}
	testutil.RequireFinite(t, psd.Values)
}

func TestPSDOverlapAveraging(t *testing.T) {
	a := NewAnalyzer(Config{SampleRate: 256, WindowSize: 64})

	// 256 samples with 64-sample segments at 50% overlap: 7 full segments.
	signal := testutil.DeterministicSine(16, 256, 1, 256)
	psd := a.PSD(signal)
	if psd.Empty() {
		t.Fatalf("expected non-empty PSD")
	}
	if psd.BinHz != 4 {
		t.Fatalf("BinHz=%v want=4", psd.BinHz)
	}

	peak := 0
	for i, v := range psd.Values {
		if v > psd.Values[peak] {
			peak = i
		}
	}
	if got := float64(peak) * psd.BinHz; got != 16 {
		t.Fatalf("peak frequency=%v want=16", got)
	}
}

func TestPSDDegenerate(t *testing.T) {
	a := NewAnalyzer(Config{SampleRate: 256})

	if psd := a.PSD(nil); !psd.Empty() {
		t.Fatalf("empty signal: want empty PSD")
	}
	if psd := a.PSD([]float64{1}); !psd.Empty() {
		t.Fatalf("single sample: want empty PSD")
	}
}

func TestPSDAllZeroSignal(t *testing.T) {
	a := NewAnalyzer(Config{SampleRate: 256})

	psd := a.PSD(make([]float64, 512))
	if psd.Empty() {
		t.Fatalf("all-zero signal still has a defined spectrum")
	}
	for i, v := range psd.Values {
		if v != 0 {
			t.Fatalf("bin %d: got %v want 0", i, v)
		}
	}
}

func TestPSDScratchReuseAcrossCalls(t *testing.T) {
	a := NewAnalyzer(Config{SampleRate: 256})
	signal := testutil.DeterministicSine(10, 256, 50, 512)

	first := a.PSD(signal)

	// A shorter all-zero signal reuses the pooled accumulator; stale sums
	// from the sine estimate must not leak into its bins.
	flat := a.PSD(make([]float64, 256))
	for i, v := range flat.Values {
		if v != 0 {
			t.Fatalf("bin %d carries stale power %v", i, v)
		}
	}

	// The earlier result is caller-owned and must survive later estimates.
	again := a.PSD(signal)
	testutil.RequireSliceNearlyEqual(t, again.Values, first.Values, 0)
}

func TestPSDParsevalScale(t *testing.T) {
	// The averaged squared-magnitude spectrum of a windowed sine must carry
	// finite, strictly positive total power.
	a := NewAnalyzer(Config{SampleRate: 256})
	psd := a.PSD(testutil.DeterministicSine(10, 256, 50, 512))

	total := 0.0
	for _, v := range psd.Values {
		if v < 0 {
			t.Fatalf("negative PSD value %v", v)
		}
		total += v
	}
	if total <= 0 || math.IsInf(total, 0) {
		t.Fatalf("unexpected total power %v", total)
	}
}
