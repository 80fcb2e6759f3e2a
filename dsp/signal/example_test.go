package signal_test

import (
	"fmt"

	"github.com/neurodsp/eegmetrics/dsp/core"
	"github.com/neurodsp/eegmetrics/dsp/signal"
)

func ExampleGenerator_Recording() {
	g := signal.NewGenerator(
		[]core.ProcessorOption{core.WithSampleRate(256)},
		signal.WithSeed(42),
	)

	rec, err := g.Recording([]string{"F3", "F4"}, 10, 40, 512)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("channels=%d rate=%.0f duration=%.0fs\n",
		len(rec.Channels), rec.SampleRate, rec.Duration)
	// Output:
	// channels=2 rate=256 duration=2s
}
