package eeg

import "strings"

// Montage groups electrode names into the anatomical regions used by the
// connectivity stage. It is injected configuration: alternate layouts
// (high-density caps, reduced ambulatory sets) are supplied by the caller
// without code changes.
type Montage struct {
	Frontal  []string `json:"frontal"`
	Temporal []string `json:"temporal"`
}

// Default1020 returns the frontal and temporal electrode sets of the
// international 10-20 system used by the default calibration.
func Default1020() Montage {
	return Montage{
		Frontal:  []string{"Fp1", "Fp2", "F7", "F3", "Fz", "F4", "F8"},
		Temporal: []string{"T7", "T8", "P7", "P8"},
	}
}

// Contains reports whether name matches one of the set's electrode names.
// Matching ignores case and surrounding whitespace.
func Contains(set []string, name string) bool {
	name = strings.TrimSpace(name)
	for _, s := range set {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}
