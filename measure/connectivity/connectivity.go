// Package connectivity computes inter-channel coupling measures over a full
// EEG recording: the Pearson correlation matrix, coherence aggregates, and
// region-averaged signal power for the montage's anatomical groups.
//
// Unlike the per-channel spectral stage, everything here needs the complete
// channel set; recordings with fewer than two channels yield zero-valued
// coherence terms by definition.
package connectivity

import (
	"math"

	"github.com/neurodsp/eegmetrics/eeg"
	stattime "github.com/neurodsp/eegmetrics/stats/time"
)

// Config holds the connectivity calibration.
type Config struct {
	// RemoteOffset is subtracted from local coherence to model reduced
	// long-range coupling. It is a fixed modeling constant, not a measured
	// quantity; the default is provisional calibration.
	RemoteOffset float64 `json:"remoteOffset"`
	// Montage supplies the anatomical electrode groups.
	Montage eeg.Montage `json:"montage"`
}

// DefaultConfig returns the default calibration with the 10-20 montage.
func DefaultConfig() Config {
	return Config{
		RemoteOffset: 0.2,
		Montage:      eeg.Default1020(),
	}
}

// Profile holds the connectivity measures of one recording.
type Profile struct {
	LocalCoherence  float64 `json:"localCoherence"`
	RemoteCoherence float64 `json:"remoteCoherence"`
	SyncIndex       float64 `json:"synchronizationIndex"`
	FrontalPower    float64 `json:"frontalPower"`
	TemporalPower   float64 `json:"temporalPower"`
}

// Analyze computes the full connectivity profile of a recording.
func Analyze(rec eeg.Recording, cfg Config) Profile {
	local := meanAbsCorrelation(rec.Channels)

	return Profile{
		LocalCoherence:  local,
		RemoteCoherence: math.Max(0, local-cfg.RemoteOffset),
		SyncIndex:       local,
		FrontalPower:    RegionPower(rec.Channels, cfg.Montage.Frontal),
		TemporalPower:   RegionPower(rec.Channels, cfg.Montage.Temporal),
	}
}

// Pearson returns the Pearson correlation coefficient of the overlapping
// prefix of x and y. Degenerate inputs (overlap under two samples, zero
// variance on either side) return 0.
func Pearson(x, y []float64) float64 {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	if n < 2 {
		return 0
	}

	meanX := stattime.Mean(x[:n])
	meanY := stattime.Mean(y[:n])

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	if varX == 0 || varY == 0 {
		return 0
	}

	return cov / math.Sqrt(varX*varY)
}

// Matrix returns the symmetric channel-by-channel Pearson correlation
// matrix with a unit diagonal.
func Matrix(channels []eeg.Channel) [][]float64 {
	n := len(channels)
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		out[i][i] = 1
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := Pearson(channels[i].Samples, channels[j].Samples)
			out[i][j] = r
			out[j][i] = r
		}
	}

	return out
}

// meanAbsCorrelation averages |r| over all unordered channel pairs, 0 when
// fewer than two channels are present.
func meanAbsCorrelation(channels []eeg.Channel) float64 {
	n := len(channels)
	if n < 2 {
		return 0
	}

	sum := 0.0
	pairs := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sum += math.Abs(Pearson(channels[i].Samples, channels[j].Samples))
			pairs++
		}
	}

	return sum / float64(pairs)
}

// RegionPower returns the mean per-channel variance across the named
// electrode set. The normalizer is the full set size: absent electrodes
// contribute nothing but still count, so sparse recordings are not inflated.
func RegionPower(channels []eeg.Channel, region []string) float64 {
	if len(region) == 0 {
		return 0
	}

	sum := 0.0
	for _, ch := range channels {
		if eeg.Contains(region, ch.Name) {
			sum += stattime.Variance(ch.Samples)
		}
	}

	return sum / float64(len(region))
}
