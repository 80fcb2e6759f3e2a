package ingest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurodsp/eegmetrics/ingest"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadRecordingCSV(t *testing.T) {
	path := writeFile(t, "session.csv",
		"F3,F4,Cz\n"+
			"1.5,-2.25,0\n"+
			"2.5,3.5,1\n"+
			"-1,0.5,2\n")

	rec, err := ingest.ReadRecording(path)
	require.NoError(t, err)

	require.Len(t, rec.Channels, 3)
	assert.Equal(t, "F3", rec.Channels[0].Name)
	assert.Equal(t, "Cz", rec.Channels[2].Name)
	assert.Equal(t, []float64{1.5, 2.5, -1}, rec.Channels[0].Samples)
	assert.Equal(t, []float64{-2.25, 3.5, 0.5}, rec.Channels[1].Samples)
	assert.Equal(t, 256.0, rec.SampleRate)
	assert.InDelta(t, 3.0/256.0, rec.Duration, 1e-12)
}

func TestReadRecordingTimestampColumn(t *testing.T) {
	t.Run("named in header", func(t *testing.T) {
		path := writeFile(t, "session.csv",
			"Timestamp,F3,F4\n"+
				"0.000,1,2\n"+
				"0.004,3,4\n")

		rec, err := ingest.ReadRecording(path)
		require.NoError(t, err)

		require.Len(t, rec.Channels, 2)
		assert.Equal(t, "F3", rec.Channels[0].Name)
		assert.Equal(t, []float64{1, 3}, rec.Channels[0].Samples)
		assert.Equal(t, []float64{2, 4}, rec.Channels[1].Samples)
	})

	t.Run("non-numeric first data field", func(t *testing.T) {
		path := writeFile(t, "session.csv",
			"t,F3,F4\n"+
				"00:00:00,1,2\n"+
				"00:00:01,3,4\n")

		rec, err := ingest.ReadRecording(path)
		require.NoError(t, err)

		require.Len(t, rec.Channels, 2)
		assert.Equal(t, []float64{1, 3}, rec.Channels[0].Samples)
	})
}

func TestReadRecordingAbsorbsRowAnomalies(t *testing.T) {
	path := writeFile(t, "session.csv",
		"F3,F4\n"+
			"1,2\n"+
			"3\n"+ // short row, skipped
			"bad,4\n"+ // non-numeric cell, absent sample
			"5,6\n")

	rec, err := ingest.ReadRecording(path)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 5}, rec.Channels[0].Samples)
	assert.Equal(t, []float64{2, 4, 6}, rec.Channels[1].Samples)
}

func TestReadRecordingTSV(t *testing.T) {
	path := writeFile(t, "session.tsv",
		"F3\tF4\n"+
			"1\t2\n"+
			"3\t4\n")

	rec, err := ingest.ReadRecording(path, ingest.WithSampleRate(128))
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 3}, rec.Channels[0].Samples)
	assert.Equal(t, 128.0, rec.SampleRate)
}

func TestReadRecordingFailures(t *testing.T) {
	t.Run("unknown extension", func(t *testing.T) {
		path := writeFile(t, "session.wav", "not a recording")
		_, err := ingest.ReadRecording(path)
		require.ErrorIs(t, err, ingest.ErrUnsupportedFormat)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, "session.csv", "")
		_, err := ingest.ReadRecording(path)
		require.ErrorIs(t, err, ingest.ErrEmptyFile)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ingest.ReadRecording(filepath.Join(t.TempDir(), "absent.csv"))
		require.Error(t, err)
	})
}
