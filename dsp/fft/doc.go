// Package fft implements a radix-2 Cooley-Tukey discrete Fourier transform
// over a single buffer with explicit stride arithmetic for the even/odd
// de-interleaving.
//
// The transform preserves the input length for any N. Odd-length inputs are
// right-padded with exactly one zero, transformed recursively, and truncated
// back to N bins. Even lengths split by stride; sub-lengths that turn odd
// (e.g. 6 -> 3) pad again at that level. For power-of-two lengths the result
// is the exact DFT and the recursion allocates nothing beyond the output.
package fft
