package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/neurodsp/eegmetrics/eeg"
)

// readDelimited parses a header row of channel names followed by sample
// rows. A leading timestamp column is detected from the header ("time" in
// the first token) or from the first data row (a non-numeric first field)
// and dropped. Short rows are skipped; non-numeric cells contribute no
// sample to their channel.
func readDelimited(r io.Reader, comma rune, sampleRate float64) (eeg.Recording, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return eeg.Recording{}, ErrEmptyFile
	}
	if err != nil {
		return eeg.Recording{}, fmt.Errorf("read header row: %w", err)
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return eeg.Recording{}, fmt.Errorf("read sample rows: %w", err)
	}

	hasTimestamp := strings.Contains(strings.ToLower(strings.TrimSpace(header[0])), "time")
	if !hasTimestamp && len(rows) > 0 && len(rows[0]) > 0 {
		if _, perr := strconv.ParseFloat(strings.TrimSpace(rows[0][0]), 64); perr != nil {
			hasTimestamp = true
		}
	}

	names := header
	if hasTimestamp {
		names = header[1:]
	}

	channels := make([]eeg.Channel, len(names))
	for i, name := range names {
		channels[i] = eeg.Channel{
			Name:       strings.TrimSpace(name),
			Samples:    make([]float64, 0, len(rows)),
			SampleRate: sampleRate,
		}
	}

	width := len(header)
	for _, row := range rows {
		if len(row) < width {
			continue
		}
		fields := row
		if hasTimestamp {
			fields = row[1:]
		}
		for i := range channels {
			v, perr := strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
			if perr != nil {
				continue
			}
			channels[i].Samples = append(channels[i].Samples, v)
		}
	}

	return eeg.NewRecording(channels, sampleRate)
}
