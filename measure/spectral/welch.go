package spectral

import (
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/neurodsp/eegmetrics/dsp/core"
	"github.com/neurodsp/eegmetrics/dsp/fft"
	"github.com/neurodsp/eegmetrics/dsp/spectrum"
	"github.com/neurodsp/eegmetrics/dsp/window"
)

// welchScratch holds the per-call segment and bin buffers, pooled across
// calls so steady-state estimation allocates only the returned PSD.
type welchScratch struct {
	seg []float64
	acc []float64
	pow []float64
}

var welchPool = sync.Pool{
	New: func() any { return &welchScratch{} },
}

// PSD is a one-sided Welch power spectral density estimate. Bin i covers
// frequency i*BinHz; the last bin is the Nyquist frequency.
type PSD struct {
	Values []float64 `json:"values"`
	BinHz  float64   `json:"binHz"`
}

// Empty reports whether the estimate contains no bins.
func (p PSD) Empty() bool {
	return len(p.Values) == 0
}

// PSD estimates the power spectral density of the signal using Welch's
// method: Hann-windowed segments of length min(WindowSize, N) with 50%
// overlap, squared magnitudes accumulated per bin across all full segments
// and averaged by segment count.
//
// Bin frequencies are deterministic from the segment length and sampling
// rate, so accumulation runs over a fixed-size array indexed by bin. A
// signal too short for a single 2-sample segment yields an empty estimate.
func (a *Analyzer) PSD(signal []float64) PSD {
	n := len(signal)

	w := a.cfg.WindowSize
	if n < w {
		w = n
	}
	if w < 2 {
		return PSD{}
	}

	hop := w / 2
	binCount := w/2 + 1

	coeffs := window.Generate(window.TypeHann, w)

	sc := welchPool.Get().(*welchScratch)
	defer welchPool.Put(sc)

	sc.seg = core.EnsureLen(sc.seg, w)
	sc.acc = core.EnsureLen(sc.acc, binCount)
	sc.pow = core.EnsureLen(sc.pow, binCount)

	// Pooled buffers carry stale data from earlier estimates.
	core.Zero(sc.acc)
	seg, acc, pow := sc.seg, sc.acc, sc.pow

	// Power-of-two segments run through the planned FFT backend; other
	// lengths use the padding radix-2 transform.
	forward := fft.Forward
	if core.IsPowerOfTwo(w) {
		if plan, err := algofft.NewPlan64(w); err == nil {
			in := make([]complex128, w)
			out := make([]complex128, w)
			forward = func(seg []float64) []complex128 {
				for i, v := range seg {
					in[i] = complex(v, 0)
				}
				if err := plan.Forward(out, in); err != nil {
					return fft.Forward(seg)
				}
				return out
			}
		}
	}

	segments := 0
	for start := 0; start+w <= n; start += hop {
		core.CopyInto(seg, signal[start:start+w])
		vecmath.MulBlockInPlace(seg, coeffs)

		bins := forward(seg)
		spectrum.PowerInto(pow, bins)
		vecmath.AddBlockInPlace(acc, pow)
		segments++
	}

	if segments == 0 {
		return PSD{}
	}

	// The accumulator is pooled, so the averaged result is scaled into a
	// fresh slice owned by the caller.
	values := make([]float64, binCount)
	vecmath.ScaleBlock(values, acc, 1/float64(segments))

	return PSD{
		Values: values,
		BinHz:  a.cfg.SampleRate / float64(w),
	}
}
