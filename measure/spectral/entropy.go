package spectral

import (
	"math"

	stattime "github.com/neurodsp/eegmetrics/stats/time"
)

// ApproximateEntropy estimates signal irregularity as ApEn(m, r) with the
// tolerance r given as a fraction of the signal's standard deviation.
//
// The estimator counts template pairs: for every ordered index pair (i, j),
// two length-m subsequences match iff every pointwise absolute difference
// is at most r. ApEn is ln(phi_m / phi_m+1) with phi the pair count
// normalized by the squared number of templates. The pairwise comparison is
// O(N^2), acceptable at clinical recording block sizes.
//
// Either raw count being zero yields 0 (avoids log of zero), as do signals
// too short to form an m+1 template. Regular signals score near 0; noise
// scores higher.
func ApproximateEntropy(signal []float64, m int, rFraction float64) float64 {
	n := len(signal)
	if m <= 0 || n <= m+1 {
		return 0
	}

	f := stattime.Calculate(signal)
	r := rFraction * f.StdDev

	countM := templateMatches(signal, m, r)
	countM1 := templateMatches(signal, m+1, r)
	if countM == 0 || countM1 == 0 {
		return 0
	}

	templatesM := float64(n - m + 1)
	templatesM1 := float64(n - m)

	phiM := float64(countM) / (templatesM * templatesM)
	phiM1 := float64(countM1) / (templatesM1 * templatesM1)

	// The simplified estimator can dip marginally below zero when the two
	// match densities are nearly identical; complexity is defined >= 0.
	return math.Max(0, math.Log(phiM/phiM1))
}

// templateMatches counts ordered pairs (i, j), self-pairs included, whose
// length-m windows stay within tolerance r at every offset.
func templateMatches(signal []float64, m int, r float64) int {
	last := len(signal) - m

	count := 0
	for i := 0; i <= last; i++ {
		for j := 0; j <= last; j++ {
			if windowsMatch(signal, i, j, m, r) {
				count++
			}
		}
	}

	return count
}

func windowsMatch(signal []float64, i, j, m int, r float64) bool {
	for k := 0; k < m; k++ {
		if math.Abs(signal[i+k]-signal[j+k]) > r {
			return false
		}
	}
	return true
}
