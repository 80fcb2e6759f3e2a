package fft_test

import (
	"fmt"

	"github.com/neurodsp/eegmetrics/dsp/fft"
)

func ExampleForward() {
	bins := fft.Forward([]float64{1, 0, 0, 0})
	fmt.Printf("%.0f %.0f %.0f %.0f\n", real(bins[0]), real(bins[1]), real(bins[2]), real(bins[3]))
	// Output:
	// 1 1 1 1
}

func ExampleBinFrequency() {
	fmt.Printf("%.1f\n", fft.BinFrequency(20, 512, 256))
	// Output:
	// 10.0
}
