package pipeline

import (
	"fmt"

	"github.com/neurodsp/eegmetrics/measure/connectivity"
	"github.com/neurodsp/eegmetrics/measure/risk"
	"github.com/neurodsp/eegmetrics/measure/spectral"
	stattime "github.com/neurodsp/eegmetrics/stats/time"
)

// ChannelFeatures pairs a channel name with its time-domain features and
// artifact flag.
type ChannelFeatures struct {
	Channel string `json:"channelName"`
	stattime.Features
	Anomalous bool `json:"anomalous"`
}

// Biomarker is one line of the clinical summary: a named value, the normal
// range it is judged against, and the verdict.
type Biomarker struct {
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	NormalRange string  `json:"normalRange"`
	Abnormal    bool    `json:"isAbnormal"`
}

// Metrics is the pipeline's sole output artifact, produced fresh per run.
type Metrics struct {
	ChannelProfiles []spectral.Profile   `json:"channelProfiles"`
	BasicFeatures   []ChannelFeatures    `json:"basicFeatures"`
	Connectivity    connectivity.Profile `json:"connectivity"`
	RiskFactors     risk.Factors         `json:"riskFactors"`
	RiskScore       float64              `json:"riskScore"`
	Biomarkers      []Biomarker          `json:"biomarkerSummaries"`
}

// biomarkers renders the channel-mean inputs against the calibration's
// normal ranges.
func biomarkers(in risk.Inputs, cal risk.Calibration) []Biomarker {
	return []Biomarker{
		{
			Name:        "Delta/theta ratio",
			Value:       in.DeltaThetaRatio,
			NormalRange: fmt.Sprintf("< %.1f", cal.DeltaThetaAnchor),
			Abnormal:    in.DeltaThetaRatio > cal.DeltaThetaAnchor,
		},
		{
			Name:        "Alpha band power",
			Value:       in.AlphaPower,
			NormalRange: fmt.Sprintf(">= %.1f uV^2", cal.AlphaAnchor),
			Abnormal:    in.AlphaPower < cal.AlphaAnchor,
		},
		{
			Name:        "Signal complexity (ApEn)",
			Value:       in.Complexity,
			NormalRange: fmt.Sprintf("< %.1f", cal.ComplexityAnchor),
			Abnormal:    in.Complexity >= cal.ComplexityAnchor,
		},
		{
			Name:        "Spike rate",
			Value:       in.SpikeRate,
			NormalRange: fmt.Sprintf("< %.1f /s", cal.SpikeAnchor),
			Abnormal:    in.SpikeRate >= cal.SpikeAnchor,
		},
		{
			Name:        "Synchronization index",
			Value:       in.SyncIndex,
			NormalRange: fmt.Sprintf(">= %.1f", cal.SyncAnchor),
			Abnormal:    in.SyncIndex < cal.SyncAnchor,
		},
	}
}
