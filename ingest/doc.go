// Package ingest builds eeg.Recording values from files on disk.
//
// Two sources are supported: delimited text (CSV/TSV with a header row of
// channel names and an optional leading timestamp column) and the EDF
// fixed-layout binary header. Row-level anomalies in text files are absorbed
// locally: short rows are skipped and non-numeric cells contribute no
// sample. Only structurally impossible requests, an unknown extension or an
// empty file, fail the whole read.
package ingest
