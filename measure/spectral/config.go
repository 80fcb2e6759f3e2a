package spectral

import (
	"github.com/neurodsp/eegmetrics/dsp/core"
	"github.com/neurodsp/eegmetrics/stats/frequency"
)

const (
	defaultApEnDim       = 2
	defaultApEnTolerance = 0.2
	defaultSpikeSigma    = 3
)

// Config holds spectral analysis parameters.
type Config struct {
	// SampleRate in Hz; required for frequency axes and spike rates.
	SampleRate float64
	// WindowSize caps the Welch segment length. Signals shorter than this
	// use their own length as the segment length.
	WindowSize int
	// Bands to evaluate; defaults to the five canonical EEG bands.
	Bands []frequency.Band
	// ApEnDim is the approximate-entropy template length m.
	ApEnDim int
	// ApEnTolerance is the match tolerance r as a fraction of the signal's
	// standard deviation.
	ApEnTolerance float64
	// SpikeSigma is the spike threshold distance from the mean, in standard
	// deviations.
	SpikeSigma float64
}

func normalizeConfig(cfg Config) Config {
	// Unset acquisition parameters fall back to the shared processor
	// defaults so analyzers and generators agree on rate and block size.
	def := core.DefaultProcessorConfig()
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = def.SampleRate
	}
	if cfg.WindowSize <= 0 {
		cfg.WindowSize = def.BlockSize
	}
	if len(cfg.Bands) == 0 {
		cfg.Bands = frequency.CanonicalBands()
	}
	if cfg.ApEnDim <= 0 {
		cfg.ApEnDim = defaultApEnDim
	}
	if cfg.ApEnTolerance <= 0 {
		cfg.ApEnTolerance = defaultApEnTolerance
	}
	if cfg.SpikeSigma <= 0 {
		cfg.SpikeSigma = defaultSpikeSigma
	}
	return cfg
}

// Analyzer performs spectral analysis with a fixed configuration. It holds
// no per-call state and is safe for concurrent use across channels.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer creates an analyzer, filling unset config fields with defaults.
func NewAnalyzer(cfg Config) *Analyzer {
	return &Analyzer{cfg: normalizeConfig(cfg)}
}

// Config returns the normalized configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}
