package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/neurodsp/eegmetrics/eeg"
)

const defaultSampleRate = 256

type config struct {
	sampleRate float64
}

// Option configures a read.
type Option func(*config)

// WithSampleRate sets the sampling rate in Hz assumed for delimited files,
// which carry no rate metadata of their own. The default is 256 Hz.
func WithSampleRate(hz float64) Option {
	return func(c *config) { c.sampleRate = hz }
}

// ReadRecording reads a recording from path, dispatching on the file
// extension: .csv, .tsv and .txt are delimited text; .edf is recognized but
// returns ErrEDFSamplesUnsupported since only its header is decoded. Any
// other extension fails with ErrUnsupportedFormat.
func ReadRecording(path string, opts ...Option) (eeg.Recording, error) {
	cfg := config{sampleRate: defaultSampleRate}
	for _, opt := range opts {
		opt(&cfg)
	}

	f, err := os.Open(path)
	if err != nil {
		return eeg.Recording{}, fmt.Errorf("open recording: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return readDelimited(f, ',', cfg.sampleRate)
	case ".tsv", ".txt":
		return readDelimited(f, '\t', cfg.sampleRate)
	case ".edf":
		if _, err := ReadEDFHeader(f); err != nil {
			return eeg.Recording{}, err
		}
		return eeg.Recording{}, fmt.Errorf("%s: %w", path, ErrEDFSamplesUnsupported)
	default:
		return eeg.Recording{}, fmt.Errorf("%q: %w", ext, ErrUnsupportedFormat)
	}
}
