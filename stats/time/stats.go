// Package time computes per-channel time-domain features of an EEG signal:
// descriptive statistics and the fixed-threshold artifact flag.
package time

import "math"

// Features holds time-domain signal features computed in a single pass.
type Features struct {
	Length        int     `json:"length"`
	Mean          float64 `json:"mean"`
	Variance      float64 `json:"variance"`
	StdDev        float64 `json:"stdDev"`
	Min           float64 `json:"min"`
	Max           float64 `json:"max"`
	PeakToPeak    float64 `json:"peakToPeak"`
	ZeroCrossings int     `json:"zeroCrossings"`
}

// AnomalyLimits holds the artifact-detection thresholds. The defaults are
// provisional calibration, not normalized for recording length, amplitude
// units, or demographics.
type AnomalyLimits struct {
	MaxStdDev     float64 `json:"maxStdDev"`
	MaxPeakToPeak float64 `json:"maxPeakToPeak"`
	MaxAbsMean    float64 `json:"maxAbsMean"`
}

// DefaultAnomalyLimits returns the default artifact thresholds in microvolts.
func DefaultAnomalyLimits() AnomalyLimits {
	return AnomalyLimits{
		MaxStdDev:     100,
		MaxPeakToPeak: 300,
		MaxAbsMean:    50,
	}
}

// Calculate computes all features in a single pass using Welford's online
// algorithm for a numerically stable variance.
//
// Zero crossings count sign transitions between consecutive samples: a
// transition where one sample is >= 0 and the previous < 0, or vice versa.
// The count is raw, not normalized by duration.
//
// Signals with fewer than two samples produce a zero-valued result.
func Calculate(signal []float64) Features {
	n := len(signal)
	if n < 2 {
		return Features{}
	}

	var (
		mean          float64
		m2            float64
		maxVal        = signal[0]
		minVal        = signal[0]
		zeroCrossings int
	)

	for i, x := range signal {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)

		if x > maxVal {
			maxVal = x
		}

		if x < minVal {
			minVal = x
		}

		if i > 0 {
			prev := signal[i-1]
			if (prev < 0 && x >= 0) || (prev >= 0 && x < 0) {
				zeroCrossings++
			}
		}
	}

	variance := m2 / float64(n)

	return Features{
		Length:        n,
		Mean:          mean,
		Variance:      variance,
		StdDev:        math.Sqrt(variance),
		Min:           minVal,
		Max:           maxVal,
		PeakToPeak:    maxVal - minVal,
		ZeroCrossings: zeroCrossings,
	}
}

// Anomalous reports whether the features exceed any artifact threshold.
func Anomalous(f Features, limits AnomalyLimits) bool {
	return f.StdDev > limits.MaxStdDev ||
		f.PeakToPeak > limits.MaxPeakToPeak ||
		math.Abs(f.Mean) > limits.MaxAbsMean
}

// Variance returns the population variance of the signal, 0 for fewer than
// two samples.
func Variance(signal []float64) float64 {
	return Calculate(signal).Variance
}

// Mean returns the mean of the signal using Kahan summation, 0 when empty.
func Mean(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sum, c float64
	for _, x := range signal {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(signal))
}
