package core

// EnsureLen returns a slice of length n, reusing buf's capacity when it is
// large enough. The contents are unspecified after a call: pooled scratch
// buffers may carry data from earlier use, so accumulating callers must Zero
// the result before summing into it.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Zero clears buf in place.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// CopyInto copies the common prefix of src into dst and returns the number
// of samples copied. Neither slice is grown.
func CopyInto(dst, src []float64) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	copy(dst[:n], src[:n])
	return n
}
