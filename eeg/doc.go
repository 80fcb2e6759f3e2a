// Package eeg defines the canonical in-memory model for multi-channel EEG
// recordings: channels of voltage samples at a fixed sampling rate, plus the
// electrode montage used to group channels into anatomical regions.
//
// The package holds no analysis logic. Channels are built once by an
// ingestion layer and treated as immutable by everything downstream.
package eeg
