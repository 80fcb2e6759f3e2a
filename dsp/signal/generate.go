// Package signal generates deterministic synthetic EEG channels: rhythmic
// tones, background noise, and spike transients. It backs the CLI's demo
// mode and makes reproducible fixtures for benchmarks and examples.
package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/neurodsp/eegmetrics/dsp/core"
	"github.com/neurodsp/eegmetrics/eeg"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Sine generates a sine wave at the configured sample rate.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sine sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// AddSpikes copies data and superimposes one-sample transients of the given
// amplitude every period samples, starting at the first full period. A
// period under one sample leaves the copy unchanged.
func AddSpikes(data []float64, period int, amplitude float64) []float64 {
	out := make([]float64, len(data))
	copy(out, data)
	if period < 1 {
		return out
	}
	for i := period; i < len(out); i += period {
		out[i] += amplitude
	}
	return out
}

// Channel synthesizes one named EEG channel: a rhythmic tone at toneHz
// layered over seeded white noise at a tenth of the tone amplitude.
func (g *Generator) Channel(name string, toneHz, amplitude float64, samples int) (eeg.Channel, error) {
	tone, err := g.Sine(toneHz, amplitude, samples)
	if err != nil {
		return eeg.Channel{}, fmt.Errorf("channel %s: %w", name, err)
	}
	noise, err := g.WhiteNoise(amplitude/10, samples)
	if err != nil {
		return eeg.Channel{}, fmt.Errorf("channel %s: %w", name, err)
	}
	for i := range tone {
		tone[i] += noise[i]
	}
	return eeg.Channel{Name: name, Samples: tone, SampleRate: g.cfg.SampleRate}, nil
}

// Recording synthesizes a multi-channel recording with an alpha-dominant
// rhythm on every named channel. Each channel gets its own noise seed so
// channels correlate through the shared tone, not through the noise. A
// non-positive sample count falls back to one configured block.
func (g *Generator) Recording(names []string, toneHz, amplitude float64, samples int) (eeg.Recording, error) {
	if samples <= 0 {
		samples = g.cfg.BlockSize
	}
	channels := make([]eeg.Channel, len(names))
	for i, name := range names {
		per := &Generator{cfg: g.cfg, seed: g.seed + int64(i)}
		ch, err := per.Channel(name, toneHz, amplitude, samples)
		if err != nil {
			return eeg.Recording{}, err
		}
		channels[i] = ch
	}
	return eeg.NewRecording(channels, g.cfg.SampleRate)
}

// Normalize scales data to the target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
