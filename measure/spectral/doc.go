// Package spectral derives the per-channel spectral biomarkers of an EEG
// recording: Welch power spectral density, canonical band powers, the
// delta/theta slow-wave ratio, approximate-entropy complexity, and the
// spike (transient discharge) rate.
//
// Every function is pure and operates on a single channel; channels can be
// analyzed concurrently. Degenerate inputs (empty or near-empty signals)
// produce zero-valued results rather than errors.
package spectral
