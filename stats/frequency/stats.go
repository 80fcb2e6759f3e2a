// Package frequency decomposes a power spectral density into the canonical
// EEG frequency bands and derives band-ratio statistics.
package frequency

// Band is a named frequency interval in Hz, inclusive at both edges.
type Band struct {
	Name   string  `json:"name"`
	LowHz  float64 `json:"lowHz"`
	HighHz float64 `json:"highHz"`
}

// The five canonical EEG bands.
var (
	BandDelta = Band{Name: "delta", LowHz: 0.5, HighHz: 4}
	BandTheta = Band{Name: "theta", LowHz: 4, HighHz: 8}
	BandAlpha = Band{Name: "alpha", LowHz: 8, HighHz: 12}
	BandBeta  = Band{Name: "beta", LowHz: 12, HighHz: 30}
	BandGamma = Band{Name: "gamma", LowHz: 30, HighHz: 50}
)

// CanonicalBands returns the five standard bands in ascending order.
func CanonicalBands() []Band {
	return []Band{BandDelta, BandTheta, BandAlpha, BandBeta, BandGamma}
}

// Power holds the absolute and relative power of one band.
//
// Relative power is the band's share of the summed absolute power across the
// evaluated band set, in percent. When the total is zero the relative power
// is defined as 0.
type Power struct {
	Absolute        float64 `json:"absolutePower"`
	RelativePercent float64 `json:"relativePowerPercent"`
}

// AbsolutePower returns the mean PSD value over the bins whose frequency
// falls inside the band, 0 when no bin is in range. Bin i has frequency
// i*binHz.
func AbsolutePower(psd []float64, binHz float64, b Band) float64 {
	if len(psd) == 0 || binHz <= 0 {
		return 0
	}

	sum := 0.0
	count := 0

	for i, v := range psd {
		f := float64(i) * binHz
		if f >= b.LowHz && f <= b.HighHz {
			sum += v
			count++
		}
	}

	if count == 0 {
		return 0
	}

	return sum / float64(count)
}

// BandPowers evaluates every band against the PSD and fills in relative
// powers against the summed absolute power of the set.
func BandPowers(psd []float64, binHz float64, bands []Band) []Power {
	out := make([]Power, len(bands))

	total := 0.0
	for i, b := range bands {
		out[i].Absolute = AbsolutePower(psd, binHz, b)
		total += out[i].Absolute
	}

	if total == 0 {
		return out
	}

	for i := range out {
		out[i].RelativePercent = out[i].Absolute / total * 100
	}

	return out
}

// Ratio returns num/den when both are strictly positive, else 0. Used for
// the slow/fast-wave ratios so that silent bands yield a defined value
// instead of an infinity or NaN.
func Ratio(num, den float64) float64 {
	if num <= 0 || den <= 0 {
		return 0
	}
	return num / den
}
