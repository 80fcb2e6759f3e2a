package spectral

import (
	"github.com/neurodsp/eegmetrics/eeg"
	"github.com/neurodsp/eegmetrics/stats/frequency"
)

// BandPower is one evaluated band within a channel profile.
type BandPower struct {
	Name            string  `json:"name"`
	Absolute        float64 `json:"absolutePower"`
	RelativePercent float64 `json:"relativePowerPercent"`
}

// Profile holds the spectral biomarkers of a single channel.
type Profile struct {
	Channel         string      `json:"channelName"`
	Bands           []BandPower `json:"bands"`
	DeltaThetaRatio float64     `json:"deltaThetaRatio"`
	AlphaPower      float64     `json:"alphaAbsolutePower"`
	Complexity      float64     `json:"complexity"`
	SpikeRate       float64     `json:"spikeRateHz"`
}

// BandAbsolute returns the absolute power of the named band, 0 if absent.
func (p Profile) BandAbsolute(name string) float64 {
	for _, b := range p.Bands {
		if b.Name == name {
			return b.Absolute
		}
	}
	return 0
}

// Profile computes the full spectral profile of one channel: Welch PSD,
// band decomposition, delta/theta ratio, approximate entropy, and spike
// rate. An empty channel yields an all-zero profile.
func (a *Analyzer) Profile(ch eeg.Channel) Profile {
	p := Profile{
		Channel: ch.Name,
		Bands:   make([]BandPower, len(a.cfg.Bands)),
	}
	for i, b := range a.cfg.Bands {
		p.Bands[i].Name = b.Name
	}

	psd := a.PSD(ch.Samples)
	if !psd.Empty() {
		powers := frequency.BandPowers(psd.Values, psd.BinHz, a.cfg.Bands)
		for i, pw := range powers {
			p.Bands[i].Absolute = pw.Absolute
			p.Bands[i].RelativePercent = pw.RelativePercent
		}
	}

	p.DeltaThetaRatio = frequency.Ratio(
		p.BandAbsolute(frequency.BandDelta.Name),
		p.BandAbsolute(frequency.BandTheta.Name),
	)
	p.AlphaPower = p.BandAbsolute(frequency.BandAlpha.Name)
	p.Complexity = ApproximateEntropy(ch.Samples, a.cfg.ApEnDim, a.cfg.ApEnTolerance)
	p.SpikeRate = a.SpikeRate(ch.Samples)

	return p
}
