package spectral

import (
	stattime "github.com/neurodsp/eegmetrics/stats/time"
)

// SpikeCount counts transient excursions above mean + sigma*stddev.
//
// An excursion begins on the first sample strictly above threshold whose
// predecessor was at or below it, and ends when the signal falls back to or
// below threshold. Only onsets are counted, so the count is independent of
// excursion duration.
func SpikeCount(signal []float64, sigma float64) int {
	if len(signal) < 2 {
		return 0
	}

	f := stattime.Calculate(signal)
	threshold := f.Mean + sigma*f.StdDev

	count := 0
	for i := 1; i < len(signal); i++ {
		if signal[i] > threshold && signal[i-1] <= threshold {
			count++
		}
	}

	return count
}

// SpikeRate returns spike onsets per second at the analyzer's sampling rate.
func (a *Analyzer) SpikeRate(signal []float64) float64 {
	n := len(signal)
	if n == 0 {
		return 0
	}

	seconds := float64(n) / a.cfg.SampleRate

	return float64(SpikeCount(signal, a.cfg.SpikeSigma)) / seconds
}
