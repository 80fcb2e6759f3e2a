package ingest

import "errors"

var (
	// ErrUnsupportedFormat reports a file extension no reader claims.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrEmptyFile reports a file with no content to parse.
	ErrEmptyFile = errors.New("file is empty")

	// ErrEDFSamplesUnsupported reports that only the EDF header is decoded.
	// Waveform records are not implemented; callers needing samples must
	// convert to delimited text first.
	ErrEDFSamplesUnsupported = errors.New("edf sample decoding not supported")
)
