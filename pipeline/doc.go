// Package pipeline composes the analysis stages into one pure computation:
// per-channel spectral profiling and basic features run in parallel across
// channels, then connectivity over the full channel set, then risk scoring
// and biomarker summaries.
//
// Analyze performs no I/O and holds no state between runs; the returned
// Metrics value is owned entirely by the caller.
package pipeline
