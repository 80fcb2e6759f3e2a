package ingest

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// edfHeaderSize is the fixed-layout portion preceding the per-signal fields.
const edfHeaderSize = 256

// EDFHeader holds the fixed-layout metadata fields of an EDF file header.
type EDFHeader struct {
	Version     string `json:"version"`
	PatientID   string `json:"patientId"`
	RecordingID string `json:"recordingId"`
	DataRecords int    `json:"dataRecords"`
	SignalCount int    `json:"signalCount"`
}

// ReadEDFHeader decodes the 256-byte fixed header. Field positions follow
// the EDF specification: bytes 0-8 version, 8-88 patient id, 88-168
// recording id, 236-244 record count, 252-256 signal count, all stored as
// space-padded ASCII.
func ReadEDFHeader(r io.Reader) (EDFHeader, error) {
	b := make([]byte, edfHeaderSize)
	n, err := io.ReadFull(r, b)
	if n == 0 && err != nil {
		return EDFHeader{}, ErrEmptyFile
	}
	if err != nil {
		return EDFHeader{}, fmt.Errorf("read edf header: %w", err)
	}

	hdr := EDFHeader{
		Version:     field(b, 0, 8),
		PatientID:   field(b, 8, 88),
		RecordingID: field(b, 88, 168),
	}

	hdr.DataRecords, err = strconv.Atoi(field(b, 236, 244))
	if err != nil {
		return EDFHeader{}, fmt.Errorf("parse edf record count: %w", err)
	}

	hdr.SignalCount, err = strconv.Atoi(field(b, 252, 256))
	if err != nil {
		return EDFHeader{}, fmt.Errorf("parse edf signal count: %w", err)
	}

	return hdr, nil
}

func field(b []byte, lo, hi int) string {
	return strings.TrimSpace(string(b[lo:hi]))
}
