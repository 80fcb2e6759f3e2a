// Package spectrum provides spectrum-domain helpers shared by the spectral
// estimators.
//
// The package does not implement FFT itself. It operates on complex bins
// produced by an FFT stage and extracts magnitude and power, using
// SIMD-backed vector math with pooled scratch buffers.
package spectrum
