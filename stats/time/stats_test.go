package time

import (
	"math"
	"testing"
)

func TestCalculateKnownSignal(t *testing.T) {
	f := Calculate([]float64{1, -1, 1, -1})

	if f.Length != 4 {
		t.Fatalf("Length=%d want=4", f.Length)
	}
	if math.Abs(f.Mean) > 1e-12 {
		t.Fatalf("Mean=%v want=0", f.Mean)
	}
	if math.Abs(f.Variance-1) > 1e-12 {
		t.Fatalf("Variance=%v want=1", f.Variance)
	}
	if math.Abs(f.StdDev-1) > 1e-12 {
		t.Fatalf("StdDev=%v want=1", f.StdDev)
	}
	if f.PeakToPeak != 2 {
		t.Fatalf("PeakToPeak=%v want=2", f.PeakToPeak)
	}
	if f.ZeroCrossings != 3 {
		t.Fatalf("ZeroCrossings=%d want=3", f.ZeroCrossings)
	}
}

func TestZeroCrossingBoundarySemantics(t *testing.T) {
	// Zero counts as non-negative: -1 -> 0 crosses, 0 -> 1 does not.
	f := Calculate([]float64{-1, 0, 1, -1})
	if f.ZeroCrossings != 2 {
		t.Fatalf("ZeroCrossings=%d want=2", f.ZeroCrossings)
	}

	// An all-zero signal never transitions.
	f = Calculate(make([]float64, 16))
	if f.ZeroCrossings != 0 {
		t.Fatalf("all-zero ZeroCrossings=%d want=0", f.ZeroCrossings)
	}
}

func TestCalculateDegenerate(t *testing.T) {
	if f := Calculate(nil); f != (Features{}) {
		t.Fatalf("empty signal: want zero features, got %+v", f)
	}

	// A single sample is also defined-zero, not a partial result.
	if f := Calculate([]float64{42}); f != (Features{}) {
		t.Fatalf("single sample: want zero features, got %+v", f)
	}
}

func TestAnomalous(t *testing.T) {
	limits := DefaultAnomalyLimits()

	cases := []struct {
		name string
		f    Features
		want bool
	}{
		{"quiet", Features{StdDev: 10, PeakToPeak: 40, Mean: 1}, false},
		{"high-stddev", Features{StdDev: 101}, true},
		{"high-p2p", Features{PeakToPeak: 301}, true},
		{"dc-offset", Features{Mean: -51}, true},
		{"at-threshold", Features{StdDev: 100, PeakToPeak: 300, Mean: 50}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Anomalous(tc.f, limits); got != tc.want {
				t.Fatalf("Anomalous(%+v)=%v want=%v", tc.f, got, tc.want)
			}
		})
	}
}

func TestMeanKahan(t *testing.T) {
	if got := Mean(nil); got != 0 {
		t.Fatalf("Mean(nil)=%v want=0", got)
	}

	if got := Mean([]float64{1, 2, 3, 4}); math.Abs(got-2.5) > 1e-12 {
		t.Fatalf("Mean=%v want=2.5", got)
	}
}

func TestVarianceHelper(t *testing.T) {
	if got := Variance([]float64{5}); got != 0 {
		t.Fatalf("Variance of single sample=%v want=0", got)
	}

	if got := Variance([]float64{2, 4, 4, 4, 5, 5, 7, 9}); math.Abs(got-4) > 1e-12 {
		t.Fatalf("Variance=%v want=4", got)
	}
}
