package risk_test

import (
	"fmt"

	"github.com/neurodsp/eegmetrics/measure/risk"
)

func ExampleScore() {
	in := risk.Inputs{
		DeltaThetaRatio: 1.45, // halfway between anchor 1.2 and cap at 1.7
		AlphaPower:      6,
		Complexity:      0,
		SpikeRate:       0,
		SyncIndex:       0.6,
	}

	factors, score := risk.Score(in, risk.DefaultCalibration())
	fmt.Printf("deltaTheta=%.1f score=%.1f\n", factors.DeltaTheta, score)
	// Output:
	// deltaTheta=12.5 score=12.5
}
