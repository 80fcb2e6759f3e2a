// Package risk maps channel-averaged spectral biomarkers and the recording's
// synchronization index to five capped sub-scores and a bounded composite
// risk score.
//
// Scoring is a pure function with no error states: callers guarantee finite
// inputs. The linear-map anchors are provisional clinical constants, not
// validated thresholds; they live behind Calibration so alternative
// calibrations can be injected without code changes.
package risk

import "github.com/neurodsp/eegmetrics/dsp/core"

// Calibration holds the clinical anchor points of the five linear maps.
type Calibration struct {
	// DeltaTheta: ratios above the anchor accumulate risk over the span.
	DeltaThetaAnchor float64 `json:"deltaThetaAnchor"`
	DeltaThetaSpan   float64 `json:"deltaThetaSpan"`
	// Alpha: absolute power below the anchor accumulates risk over the span.
	AlphaAnchor float64 `json:"alphaAnchor"`
	AlphaSpan   float64 `json:"alphaSpan"`
	// Complexity: approximate entropy saturates the sub-score at the anchor.
	ComplexityAnchor float64 `json:"complexityAnchor"`
	// Sync: synchronization below the anchor accumulates risk.
	SyncAnchor float64 `json:"syncAnchor"`
	// Spike: rate at which the anomaly sub-score saturates, in spikes/s.
	SpikeAnchor float64 `json:"spikeAnchor"`
}

// DefaultCalibration returns the default clinical anchor constants.
func DefaultCalibration() Calibration {
	return Calibration{
		DeltaThetaAnchor: 1.2,
		DeltaThetaSpan:   0.5,
		AlphaAnchor:      4,
		AlphaSpan:        2,
		ComplexityAnchor: 1.5,
		SyncAnchor:       0.4,
		SpikeAnchor:      0.5,
	}
}

// Sub-score caps. The caps sum to 100, bounding the composite score.
const (
	DeltaThetaCap   = 25
	ReducedAlphaCap = 20
	ComplexityCap   = 15
	ConnectivityCap = 15
	AnomaliesCap    = 25
)

// Inputs are the channel-mean biomarkers entering the scoring model. All
// values must be finite; upstream stages guarantee this by construction.
type Inputs struct {
	DeltaThetaRatio float64 `json:"deltaThetaRatio"`
	AlphaPower      float64 `json:"alphaAbsolutePower"`
	Complexity      float64 `json:"complexity"`
	SpikeRate       float64 `json:"spikeRateHz"`
	SyncIndex       float64 `json:"synchronizationIndex"`
}

// Factors are the five independently capped sub-scores.
type Factors struct {
	DeltaTheta   float64 `json:"deltaTheta"`
	ReducedAlpha float64 `json:"reducedAlpha"`
	Complexity   float64 `json:"complexity"`
	Connectivity float64 `json:"connectivity"`
	Anomalies    float64 `json:"anomalies"`
}

// Sum returns the uncapped total of the sub-scores.
func (f Factors) Sum() float64 {
	return f.DeltaTheta + f.ReducedAlpha + f.Complexity + f.Connectivity + f.Anomalies
}

// Score evaluates the five linear maps and the bounded composite score.
func Score(in Inputs, cal Calibration) (Factors, float64) {
	f := Factors{
		DeltaTheta:   core.Clamp((in.DeltaThetaRatio-cal.DeltaThetaAnchor)/cal.DeltaThetaSpan*DeltaThetaCap, 0, DeltaThetaCap),
		ReducedAlpha: core.Clamp((cal.AlphaAnchor-in.AlphaPower)/cal.AlphaSpan*ReducedAlphaCap, 0, ReducedAlphaCap),
		Connectivity: core.Clamp((cal.SyncAnchor-in.SyncIndex)/cal.SyncAnchor*ConnectivityCap, 0, ConnectivityCap),
		Anomalies:    core.Clamp(in.SpikeRate/cal.SpikeAnchor*AnomaliesCap, 0, AnomaliesCap),
	}

	if in.Complexity > cal.ComplexityAnchor {
		f.Complexity = ComplexityCap
	} else {
		f.Complexity = core.Clamp(in.Complexity/cal.ComplexityAnchor*ComplexityCap, 0, ComplexityCap)
	}

	return f, core.Clamp(f.Sum(), 0, 100)
}
