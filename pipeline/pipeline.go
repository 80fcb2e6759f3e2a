package pipeline

import (
	"runtime"
	"sync"

	"github.com/neurodsp/eegmetrics/eeg"
	"github.com/neurodsp/eegmetrics/measure/connectivity"
	"github.com/neurodsp/eegmetrics/measure/risk"
	"github.com/neurodsp/eegmetrics/measure/spectral"
	stattime "github.com/neurodsp/eegmetrics/stats/time"
)

type config struct {
	spectral      spectral.Config
	connectivity  connectivity.Config
	calibration   risk.Calibration
	anomalyLimits stattime.AnomalyLimits
	workers       int
}

func defaultConfig() config {
	return config{
		connectivity:  connectivity.DefaultConfig(),
		calibration:   risk.DefaultCalibration(),
		anomalyLimits: stattime.DefaultAnomalyLimits(),
	}
}

// Option configures an Analyze run.
type Option func(*config)

// WithSpectralConfig overrides the spectral analysis parameters. A zero
// SampleRate is filled from the recording.
func WithSpectralConfig(cfg spectral.Config) Option {
	return func(c *config) { c.spectral = cfg }
}

// WithConnectivityConfig overrides the connectivity calibration.
func WithConnectivityConfig(cfg connectivity.Config) Option {
	return func(c *config) { c.connectivity = cfg }
}

// WithCalibration overrides the risk scoring calibration.
func WithCalibration(cal risk.Calibration) Option {
	return func(c *config) { c.calibration = cal }
}

// WithAnomalyLimits overrides the artifact-detection thresholds.
func WithAnomalyLimits(limits stattime.AnomalyLimits) Option {
	return func(c *config) { c.anomalyLimits = limits }
}

// WithWorkers caps the channel-stage worker pool. Values below one select
// GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// Analyze runs the full pipeline over one recording. The per-channel stage
// fans out across a bounded worker pool; results keep the recording's
// channel order regardless of scheduling. The remaining stages run after
// every channel has finished.
func Analyze(rec eeg.Recording, opts ...Option) Metrics {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.spectral.SampleRate <= 0 {
		cfg.spectral.SampleRate = rec.SampleRate
	}

	n := len(rec.Channels)
	m := Metrics{
		ChannelProfiles: make([]spectral.Profile, n),
		BasicFeatures:   make([]ChannelFeatures, n),
	}
	if n == 0 {
		m.Biomarkers = biomarkers(risk.Inputs{}, cfg.calibration)
		return m
	}

	analyzer := spectral.NewAnalyzer(cfg.spectral)

	workers := cfg.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				ch := rec.Channels[i]
				m.ChannelProfiles[i] = analyzer.Profile(ch)

				f := stattime.Calculate(ch.Samples)
				m.BasicFeatures[i] = ChannelFeatures{
					Channel:   ch.Name,
					Features:  f,
					Anomalous: stattime.Anomalous(f, cfg.anomalyLimits),
				}
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	m.Connectivity = connectivity.Analyze(rec, cfg.connectivity)

	in := meanInputs(m.ChannelProfiles)
	in.SyncIndex = m.Connectivity.SyncIndex

	if flat(m) {
		// A recording with no signal content carries no evidence either
		// way; report a zero score rather than penalizing absent alpha
		// and absent synchronization.
		m.RiskFactors = risk.Factors{}
		m.RiskScore = 0
	} else {
		m.RiskFactors, m.RiskScore = risk.Score(in, cfg.calibration)
	}
	m.Biomarkers = biomarkers(in, cfg.calibration)

	return m
}

// meanInputs reduces the per-channel profiles to channel-mean biomarkers.
func meanInputs(profiles []spectral.Profile) risk.Inputs {
	if len(profiles) == 0 {
		return risk.Inputs{}
	}

	var in risk.Inputs
	for _, p := range profiles {
		in.DeltaThetaRatio += p.DeltaThetaRatio
		in.AlphaPower += p.AlphaPower
		in.Complexity += p.Complexity
		in.SpikeRate += p.SpikeRate
	}

	n := float64(len(profiles))
	in.DeltaThetaRatio /= n
	in.AlphaPower /= n
	in.Complexity /= n
	in.SpikeRate /= n

	return in
}

// flat reports whether every channel is constant: zero variance and zero
// total band power across the board.
func flat(m Metrics) bool {
	for _, f := range m.BasicFeatures {
		if f.Variance > 0 {
			return false
		}
	}
	for _, p := range m.ChannelProfiles {
		for _, b := range p.Bands {
			if b.Absolute > 0 {
				return false
			}
		}
	}
	return true
}
