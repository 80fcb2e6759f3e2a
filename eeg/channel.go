package eeg

import "fmt"

// Channel holds one electrode's voltage samples at a fixed sampling rate.
//
// Samples are in microvolts by convention, though no unit is enforced.
// A Channel is constructed once at ingestion and not mutated afterwards.
type Channel struct {
	Name       string    `json:"name"`
	Samples    []float64 `json:"-"`
	SampleRate float64   `json:"sampleRateHz"`
}

// Duration returns the channel length in seconds, 0 for an invalid rate.
func (c Channel) Duration() float64 {
	if c.SampleRate <= 0 {
		return 0
	}
	return float64(len(c.Samples)) / c.SampleRate
}

// Recording is an ordered set of channels captured at a common sampling
// rate. Channel names need not be unique but typically are.
type Recording struct {
	Channels   []Channel `json:"channels"`
	SampleRate float64   `json:"sampleRateHz"`
	Duration   float64   `json:"durationSeconds"`
}

// NewRecording builds a Recording from channels sharing sampleRate. The
// duration is derived from the first channel.
func NewRecording(channels []Channel, sampleRate float64) (Recording, error) {
	if sampleRate <= 0 {
		return Recording{}, fmt.Errorf("recording sample rate must be > 0: %f", sampleRate)
	}

	rec := Recording{
		Channels:   channels,
		SampleRate: sampleRate,
	}
	if len(channels) > 0 {
		rec.Duration = float64(len(channels[0].Samples)) / sampleRate
	}

	return rec, nil
}
