package fft

import (
	"math"
	"math/cmplx"
)

// Forward computes the discrete Fourier transform of a real-valued signal.
// The output has the same length as the input.
func Forward(signal []float64) []complex128 {
	if len(signal) == 0 {
		return nil
	}

	in := make([]complex128, len(signal))
	for i, v := range signal {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, len(signal))
	recurse(out, in, 0, 1, len(in))

	return out
}

// ForwardComplex computes the transform of a complex-valued input.
func ForwardComplex(x []complex128) []complex128 {
	if len(x) == 0 {
		return nil
	}

	out := make([]complex128, len(x))
	recurse(out, x, 0, 1, len(x))

	return out
}

// Inverse computes the inverse transform via the conjugate method:
// conj(Forward(conj(X))) / N. For power-of-two lengths this is the exact
// DFT inverse, so Inverse(Forward(x)) recovers x to numerical tolerance.
func Inverse(bins []complex128) []complex128 {
	n := len(bins)
	if n == 0 {
		return nil
	}

	tmp := make([]complex128, n)
	for i, v := range bins {
		tmp[i] = cmplx.Conj(v)
	}

	out := make([]complex128, n)
	recurse(out, tmp, 0, 1, n)

	invN := complex(1/float64(n), 0)
	for i, v := range out {
		out[i] = cmplx.Conj(v) * invN
	}

	return out
}

// BinFrequency returns the center frequency in Hz of bin i for an N-point
// transform at the given sampling rate.
func BinFrequency(i, n int, sampleRate float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(i) * sampleRate / float64(n)
}

// recurse writes the n-point transform of the strided subsequence
// src[offset], src[offset+stride], ... into dst[:n].
func recurse(dst, src []complex128, offset, stride, n int) {
	if n == 1 {
		dst[0] = src[offset]
		return
	}

	if n%2 != 0 {
		// Odd length: gather the subsequence, right-pad one zero, transform
		// at n+1, keep the first n bins.
		padded := make([]complex128, n+1)
		for i := 0; i < n; i++ {
			padded[i] = src[offset+i*stride]
		}

		tmp := make([]complex128, n+1)
		recurse(tmp, padded, 0, 1, n+1)
		copy(dst[:n], tmp[:n])

		return
	}

	half := n / 2
	recurse(dst[:half], src, offset, 2*stride, half)
	recurse(dst[half:n], src, offset+stride, 2*stride, half)

	for k := 0; k < half; k++ {
		angle := -2 * math.Pi * float64(k) / float64(n)
		w := cmplx.Rect(1, angle)

		even := dst[k]
		odd := w * dst[half+k]

		dst[k] = even + odd
		dst[half+k] = even - odd
	}
}
